package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/menu/domain"
	"github.com/dhaba/restaurant-pos/internal/menu/repository"
	"github.com/dhaba/restaurant-pos/pkg/auth"
)

func setupRouter(t *testing.T) (*mux.Router, domain.MenuRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.MenuItem{}))

	repo := repository.NewGormMenuRepository(db)
	router := mux.NewRouter()
	NewMenuHandler(repo).RegisterRoutes(router)
	return router, repo
}

func bearerToken(t *testing.T, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(1, "tester", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(router *mux.Router, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateItemRequiresAdmin(t *testing.T) {
	router, _ := setupRouter(t)
	payload := map[string]interface{}{"name": "Dal Makhani", "category": "mains", "price": 240}

	w := doJSON(router, "POST", "/api/menu", "", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, "POST", "/api/menu", bearerToken(t, "waiter"), payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, "POST", "/api/menu", bearerToken(t, "admin"), payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestListItemsIsPublic(t *testing.T) {
	router, repo := setupRouter(t)
	require.NoError(t, repo.Create(&domain.MenuItem{Name: "Paneer Tikka", Category: "starters", Price: 280, Available: true}))
	require.NoError(t, repo.Create(&domain.MenuItem{Name: "Gulab Jamun", Category: "desserts", Price: 90, Available: true}))

	w := doJSON(router, "GET", "/api/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Items []domain.MenuItem `json:"items"`
			Total int               `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data.Items, 2)
	assert.Equal(t, 2, resp.Data.Total)
}

func TestListItemsFiltersByCategory(t *testing.T) {
	router, repo := setupRouter(t)
	require.NoError(t, repo.Create(&domain.MenuItem{Name: "Paneer Tikka", Category: "starters", Price: 280}))
	require.NoError(t, repo.Create(&domain.MenuItem{Name: "Gulab Jamun", Category: "desserts", Price: 90}))

	w := doJSON(router, "GET", "/api/menu?category=desserts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Items []domain.MenuItem `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "Gulab Jamun", resp.Data.Items[0].Name)
}

func TestToggleAvailability(t *testing.T) {
	router, repo := setupRouter(t)
	item := &domain.MenuItem{Name: "Biryani", Category: "mains", Price: 320, Available: true}
	require.NoError(t, repo.Create(item))

	w := doJSON(router, "PATCH", "/api/menu/1/availability", bearerToken(t, "waiter"), map[string]bool{"available": false})
	require.Equal(t, http.StatusOK, w.Code)

	reloaded, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Available)
}

func TestGetItemNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(router, "GET", "/api/menu/99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
