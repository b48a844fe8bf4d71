package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dhaba/restaurant-pos/internal/table/domain"
	"github.com/dhaba/restaurant-pos/internal/table/usecase/command"
	"github.com/dhaba/restaurant-pos/internal/table/usecase/query"
	userhttp "github.com/dhaba/restaurant-pos/internal/user/delivery/http"
	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// TableHandler handles HTTP requests for the dining room floor plan
type TableHandler struct {
	// Command handlers
	createHandler *command.CreateTableHandler
	stageHandler  *command.UpdateStageHandler
	statusHandler *command.SetStatusHandler
	moveHandler   *command.MoveTableHandler

	// Query handlers
	getHandler  *query.GetTableHandler
	listHandler *query.ListTablesHandler

	repo domain.TableRepository
}

// NewTableHandler creates a new table handler
func NewTableHandler(repo domain.TableRepository) *TableHandler {
	return &TableHandler{
		createHandler: command.NewCreateTableHandler(repo),
		stageHandler:  command.NewUpdateStageHandler(repo),
		statusHandler: command.NewSetStatusHandler(repo),
		moveHandler:   command.NewMoveTableHandler(repo),
		getHandler:    query.NewGetTableHandler(repo),
		listHandler:   query.NewListTablesHandler(repo),
		repo:          repo,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateTable handles POST /api/tables
func (h *TableHandler) CreateTable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number   int     `json:"number"`
		Capacity int     `json:"capacity"`
		PosX     float64 `json:"pos_x"`
		PosY     float64 `json:"pos_y"`
		Shape    string  `json:"shape"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	table, err := h.createHandler.Handle(command.CreateTableCommand{
		Number:   req.Number,
		Capacity: req.Capacity,
		PosX:     req.PosX,
		PosY:     req.PosY,
		Shape:    req.Shape,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create table")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Table created successfully",
		Data:    table,
	})
}

// ListTables handles GET /api/tables
func (h *TableHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.listHandler.Handle(query.ListTablesQuery{
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list tables")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"tables": tables,
			"total":  len(tables),
		},
	})
}

// GetTable handles GET /api/tables/{id}
func (h *TableHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	table, err := h.getHandler.Handle(query.GetTableQuery{TableID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Table not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    table,
	})
}

// SetStatus handles PATCH /api/tables/{id}/status
func (h *TableHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	table, err := h.statusHandler.Handle(command.SetStatusCommand{
		TableID: id,
		Status:  req.Status,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrIllegalTransition) {
			status = http.StatusConflict
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Table status updated successfully",
		Data:    table,
	})
}

// UpdateStage handles PATCH /api/tables/{id}/stage
func (h *TableHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Stage string `json:"stage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.stageHandler.Handle(command.UpdateStageCommand{
		TableID: id,
		Stage:   req.Stage,
	}); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Table stage updated successfully",
	})
}

// MoveTable handles PATCH /api/tables/{id}/position
func (h *TableHandler) MoveTable(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		PosX float64 `json:"pos_x"`
		PosY float64 `json:"pos_y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.moveHandler.Handle(command.MoveTableCommand{
		TableID: id,
		PosX:    req.PosX,
		PosY:    req.PosY,
	}); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Table position updated successfully",
	})
}

// RegisterRoutes registers all table routes
func (h *TableHandler) RegisterRoutes(router *mux.Router) {
	// Staff routes
	router.HandleFunc("/api/tables", userhttp.AuthMiddleware(h.ListTables)).Methods("GET")
	router.HandleFunc("/api/tables/{id:[0-9]+}", userhttp.AuthMiddleware(h.GetTable)).Methods("GET")
	router.HandleFunc("/api/tables/{id:[0-9]+}/status", userhttp.AuthMiddleware(h.SetStatus)).Methods("PATCH")
	router.HandleFunc("/api/tables/{id:[0-9]+}/stage", userhttp.AuthMiddleware(h.UpdateStage)).Methods("PATCH")
	router.HandleFunc("/api/tables/{id:[0-9]+}/position", userhttp.AuthMiddleware(h.MoveTable)).Methods("PATCH")

	// Admin routes
	router.HandleFunc("/api/tables", userhttp.AdminMiddleware(h.CreateTable)).Methods("POST")
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid table ID",
		})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
