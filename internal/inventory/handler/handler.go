package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dhaba/restaurant-pos/internal/inventory/usecase/command"
	"github.com/dhaba/restaurant-pos/internal/inventory/usecase/query"
	userhttp "github.com/dhaba/restaurant-pos/internal/user/delivery/http"
)

// InventoryHandler handles HTTP requests for inventory using CQRS pattern
type InventoryHandler struct {
	// Command handlers
	createHandler *command.CreateItemHandler
	updateHandler *command.UpdateItemHandler
	deleteHandler *command.DeleteItemHandler
	adjustHandler *command.AdjustQuantityHandler

	// Query handlers
	getHandler      *query.GetItemHandler
	listHandler     *query.ListItemsHandler
	lowStockHandler *query.LowStockHandler
}

// NewInventoryHandlerWithDI creates a new inventory handler using dependency injection
func NewInventoryHandlerWithDI(
	createHandler *command.CreateItemHandler,
	updateHandler *command.UpdateItemHandler,
	deleteHandler *command.DeleteItemHandler,
	adjustHandler *command.AdjustQuantityHandler,
	getHandler *query.GetItemHandler,
	listHandler *query.ListItemsHandler,
	lowStockHandler *query.LowStockHandler,
) *InventoryHandler {
	return &InventoryHandler{
		createHandler:   createHandler,
		updateHandler:   updateHandler,
		deleteHandler:   deleteHandler,
		adjustHandler:   adjustHandler,
		getHandler:      getHandler,
		listHandler:     listHandler,
		lowStockHandler: lowStockHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type itemRequest struct {
	Name         string   `json:"name"`
	Quantity     *float64 `json:"quantity"`
	Unit         string   `json:"unit"`
	MinThreshold *float64 `json:"min_threshold"`
	MaxThreshold *float64 `json:"max_threshold"`
	CostPerUnit  *float64 `json:"cost_per_unit"`
	Supplier     string   `json:"supplier"`
	ExpiryDate   string   `json:"expiry_date"` // YYYY-MM-DD
}

func (req *itemRequest) expiry() (*time.Time, error) {
	if req.ExpiryDate == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateItem handles POST /api/inventory
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	expiry, err := req.expiry()
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid expiry_date, want YYYY-MM-DD"})
		return
	}

	cmd := command.CreateItemCommand{
		Name:       req.Name,
		Unit:       req.Unit,
		Supplier:   req.Supplier,
		ExpiryDate: expiry,
	}
	if req.Quantity != nil {
		cmd.Quantity = *req.Quantity
	}
	if req.MinThreshold != nil {
		cmd.MinThreshold = *req.MinThreshold
	}
	if req.MaxThreshold != nil {
		cmd.MaxThreshold = *req.MaxThreshold
	}
	if req.CostPerUnit != nil {
		cmd.CostPerUnit = *req.CostPerUnit
	}

	item, err := h.createHandler.Handle(cmd)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Inventory item created successfully",
		Data:    item,
	})
}

// UpdateItem handles PUT /api/inventory/{id}
func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid item ID"})
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	expiry, err := req.expiry()
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid expiry_date, want YYYY-MM-DD"})
		return
	}

	item, err := h.updateHandler.Handle(command.UpdateItemCommand{
		ID:           id,
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		MinThreshold: req.MinThreshold,
		MaxThreshold: req.MaxThreshold,
		CostPerUnit:  req.CostPerUnit,
		Supplier:     req.Supplier,
		ExpiryDate:   expiry,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory item updated successfully",
		Data:    item,
	})
}

// DeleteItem handles DELETE /api/inventory/{id}
func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid item ID"})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteItemCommand{ID: id}); err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Inventory item deleted successfully",
	})
}

// AdjustQuantity handles PATCH /api/inventory/{id}/quantity
func (h *InventoryHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid item ID"})
		return
	}

	var req struct {
		Delta float64 `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	item, err := h.adjustHandler.Handle(r.Context(), command.AdjustQuantityCommand{ID: id, Delta: req.Delta})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity adjusted successfully",
		Data:    item,
	})
}

// GetItem handles GET /api/inventory/{id}
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid item ID"})
		return
	}

	item, err := h.getHandler.Handle(query.GetItemQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Inventory item not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: item})
}

// ListItems handles GET /api/inventory
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := query.ListItemsQuery{}
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			q.Limit = limit
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil {
			q.Offset = offset
		}
	}

	items, err := h.listHandler.Handle(q)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list inventory"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// ListLowStock handles GET /api/inventory/low-stock
func (h *InventoryHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.lowStockHandler.Handle(query.LowStockQuery{})
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list low stock items"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory", userhttp.AuthMiddleware(h.ListItems)).Methods("GET")
	router.HandleFunc("/api/inventory/low-stock", userhttp.AuthMiddleware(h.ListLowStock)).Methods("GET")
	router.HandleFunc("/api/inventory/{id:[0-9]+}", userhttp.AuthMiddleware(h.GetItem)).Methods("GET")
	router.HandleFunc("/api/inventory/{id:[0-9]+}/quantity", userhttp.AuthMiddleware(h.AdjustQuantity)).Methods("PATCH")
	router.HandleFunc("/api/inventory", userhttp.AdminMiddleware(h.CreateItem)).Methods("POST")
	router.HandleFunc("/api/inventory/{id:[0-9]+}", userhttp.AdminMiddleware(h.UpdateItem)).Methods("PUT")
	router.HandleFunc("/api/inventory/{id:[0-9]+}", userhttp.AdminMiddleware(h.DeleteItem)).Methods("DELETE")
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
