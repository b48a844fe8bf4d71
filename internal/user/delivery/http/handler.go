package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dhaba/restaurant-pos/internal/user/domain"
	"github.com/dhaba/restaurant-pos/internal/user/usecase/command"
	"github.com/dhaba/restaurant-pos/internal/user/usecase/query"
	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// UserHandler handles HTTP requests for staff accounts
type UserHandler struct {
	// Command handlers
	registerHandler   *command.RegisterUserHandler
	loginHandler      *command.LoginUserHandler
	changeRoleHandler *command.ChangeRoleHandler

	// Query handlers
	getUserHandler *query.GetUserHandler
	listHandler    *query.ListUsersHandler

	repo         domain.UserRepository
	loginCounter *prometheus.CounterVec
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo domain.UserRepository) *UserHandler {
	loginCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_staff_logins_total",
			Help: "Total number of staff login attempts",
		},
		[]string{"outcome"},
	)
	prometheus.MustRegister(loginCounter)

	return &UserHandler{
		registerHandler:   command.NewRegisterUserHandler(repo),
		loginHandler:      command.NewLoginUserHandler(repo),
		changeRoleHandler: command.NewChangeRoleHandler(repo),
		getUserHandler:    query.NewGetUserHandler(repo),
		listHandler:       query.NewListUsersHandler(repo),
		repo:              repo,
		loginCounter:      loginCounter,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Register handles POST /api/auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	user, err := h.registerHandler.Handle(command.RegisterUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to register user")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "User registered successfully",
		Data:    user,
	})
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.loginHandler.Handle(command.LoginUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.loginCounter.WithLabelValues("failure").Inc()
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Invalid credentials",
		})
		return
	}

	h.loginCounter.WithLabelValues("success").Inc()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// Me handles GET /api/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(uint)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "User ID not found in context",
		})
		return
	}

	user, err := h.getUserHandler.Handle(query.GetUserQuery{UserID: userID})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "User not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    user,
	})
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid user ID",
		})
		return
	}

	user, err := h.getUserHandler.Handle(query.GetUserQuery{UserID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "User not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    user,
	})
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	users, err := h.listHandler.Handle(query.ListUsersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list users")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list users",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"users": users,
			"total": len(users),
		},
	})
}

// ChangeRole handles PATCH /api/users/{id}/role
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid user ID",
		})
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.changeRoleHandler.Handle(command.ChangeRoleCommand{
		UserID: uint(id),
		Role:   req.Role,
	}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to change role")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Role updated successfully",
	})
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	// Auth routes
	router.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", h.Login).Methods("POST")

	// Authenticated routes
	router.HandleFunc("/api/users/me", AuthMiddleware(h.Me)).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/users", AdminMiddleware(h.ListUsers)).Methods("GET")
	router.HandleFunc("/api/users/{id:[0-9]+}", AdminMiddleware(h.GetUser)).Methods("GET")
	router.HandleFunc("/api/users/{id:[0-9]+}/role", AdminMiddleware(h.ChangeRole)).Methods("PATCH")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
