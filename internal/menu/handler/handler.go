package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dhaba/restaurant-pos/internal/menu/domain"
	"github.com/dhaba/restaurant-pos/internal/menu/usecase/command"
	"github.com/dhaba/restaurant-pos/internal/menu/usecase/query"
	userhttp "github.com/dhaba/restaurant-pos/internal/user/delivery/http"
	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// MenuHandler handles HTTP requests for the menu using CQRS pattern
type MenuHandler struct {
	// Command handlers
	createHandler *command.CreateItemHandler
	updateHandler *command.UpdateItemHandler
	deleteHandler *command.DeleteItemHandler
	toggleHandler *command.ToggleAvailabilityHandler

	// Query handlers
	getHandler      *query.GetItemHandler
	listHandler     *query.ListItemsHandler
	specialsHandler *query.ListSpecialsHandler

	repo domain.MenuRepository
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(repo domain.MenuRepository) *MenuHandler {
	return &MenuHandler{
		createHandler:   command.NewCreateItemHandler(repo),
		updateHandler:   command.NewUpdateItemHandler(repo),
		deleteHandler:   command.NewDeleteItemHandler(repo),
		toggleHandler:   command.NewToggleAvailabilityHandler(repo),
		getHandler:      query.NewGetItemHandler(repo),
		listHandler:     query.NewListItemsHandler(repo),
		specialsHandler: query.NewListSpecialsHandler(repo),
		repo:            repo,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type menuItemRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	IsSpecial   *bool    `json:"is_special"`
	PrepMinutes int      `json:"prep_minutes"`
	Allergens   []string `json:"allergens"`
	DietaryTags []string `json:"dietary_tags"`
}

// CreateItem handles POST /api/menu
func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateItemCommand{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		PrepMinutes: req.PrepMinutes,
		Allergens:   req.Allergens,
		DietaryTags: req.DietaryTags,
	}
	if req.IsSpecial != nil {
		cmd.IsSpecial = *req.IsSpecial
	}

	item, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create menu item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Menu item created successfully",
		Data:    item,
	})
}

// ListItems handles GET /api/menu
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	q := query.ListItemsQuery{
		Category: r.URL.Query().Get("category"),
		Limit:    limit,
		Offset:   offset,
	}

	items, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list menu items")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list menu items",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"items": items,
			"total": len(items),
		},
	})
}

// ListSpecials handles GET /api/menu/specials
func (h *MenuHandler) ListSpecials(w http.ResponseWriter, r *http.Request) {
	items, err := h.specialsHandler.Handle(query.ListSpecialsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list specials")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list specials",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"items": items,
			"total": len(items),
		},
	})
}

// GetItem handles GET /api/menu/{id}
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	item, err := h.getHandler.Handle(query.GetItemQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Menu item not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    item,
	})
}

// UpdateItem handles PUT /api/menu/{id}
func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateItemCommand{
		ID:          uint(id),
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsSpecial:   req.IsSpecial,
		PrepMinutes: req.PrepMinutes,
		Allergens:   req.Allergens,
		DietaryTags: req.DietaryTags,
	}

	item, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update menu item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Menu item updated successfully",
		Data:    item,
	})
}

// DeleteItem handles DELETE /api/menu/{id}
func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteItemCommand{ID: uint(id)}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete menu item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Menu item deleted successfully",
	})
}

// ToggleAvailability handles PATCH /api/menu/{id}/availability
func (h *MenuHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid item ID",
		})
		return
	}

	var req struct {
		Available bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.ToggleAvailabilityCommand{ID: uint(id), Available: req.Available}
	if err := h.toggleHandler.Handle(cmd); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update availability")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Availability updated successfully",
	})
}

// RegisterRoutes registers all menu routes
func (h *MenuHandler) RegisterRoutes(router *mux.Router) {
	// Public browse routes (customer menu view)
	router.HandleFunc("/api/menu", h.ListItems).Methods("GET")
	router.HandleFunc("/api/menu/specials", h.ListSpecials).Methods("GET")
	router.HandleFunc("/api/menu/{id:[0-9]+}", h.GetItem).Methods("GET")

	// Staff routes
	router.HandleFunc("/api/menu/{id:[0-9]+}/availability", userhttp.AuthMiddleware(h.ToggleAvailability)).Methods("PATCH")

	// Admin routes
	router.HandleFunc("/api/menu", userhttp.AdminMiddleware(h.CreateItem)).Methods("POST")
	router.HandleFunc("/api/menu/{id:[0-9]+}", userhttp.AdminMiddleware(h.UpdateItem)).Methods("PUT")
	router.HandleFunc("/api/menu/{id:[0-9]+}", userhttp.AdminMiddleware(h.DeleteItem)).Methods("DELETE")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
