package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dhaba/restaurant-pos/internal/order/domain"
	"github.com/dhaba/restaurant-pos/internal/order/usecase/command"
	"github.com/dhaba/restaurant-pos/internal/order/usecase/query"
	userhttp "github.com/dhaba/restaurant-pos/internal/user/delivery/http"
	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// OrderHandler handles HTTP requests for carts and orders using CQRS pattern
type OrderHandler struct {
	// Command handlers
	addItemHandler        *command.AddItemHandler
	updateQuantityHandler *command.UpdateQuantityHandler
	removeItemHandler     *command.RemoveItemHandler
	clearCartHandler      *command.ClearCartHandler
	submitHandler         *command.SubmitOrderHandler
	updateStatusHandler   *command.UpdateStatusHandler

	// Query handlers
	getCartHandler *query.GetCartHandler
	getHandler     *query.GetOrderHandler
	listHandler    *query.ListOrdersHandler
	statsHandler   *query.GetStatsHandler
	revenueHandler *query.GetRevenueHandler

	repo domain.OrderRepository

	ordersPlaced  prometheus.Counter
	statusChanges *prometheus.CounterVec
}

// NewOrderHandlerWithDI creates a new order handler using dependency injection
func NewOrderHandlerWithDI(
	addItemHandler *command.AddItemHandler,
	updateQuantityHandler *command.UpdateQuantityHandler,
	removeItemHandler *command.RemoveItemHandler,
	clearCartHandler *command.ClearCartHandler,
	submitHandler *command.SubmitOrderHandler,
	updateStatusHandler *command.UpdateStatusHandler,
	getCartHandler *query.GetCartHandler,
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
	statsHandler *query.GetStatsHandler,
	revenueHandler *query.GetRevenueHandler,
	repo domain.OrderRepository,
) *OrderHandler {
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pos_orders_placed_total",
		Help: "Total number of orders submitted",
	})
	statusChanges := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_order_status_changes_total",
			Help: "Total number of order status transitions",
		},
		[]string{"to_status"},
	)
	prometheus.MustRegister(ordersPlaced)
	prometheus.MustRegister(statusChanges)

	return &OrderHandler{
		addItemHandler:        addItemHandler,
		updateQuantityHandler: updateQuantityHandler,
		removeItemHandler:     removeItemHandler,
		clearCartHandler:      clearCartHandler,
		submitHandler:         submitHandler,
		updateStatusHandler:   updateStatusHandler,
		getCartHandler:        getCartHandler,
		getHandler:            getHandler,
		listHandler:           listHandler,
		statsHandler:          statsHandler,
		revenueHandler:        revenueHandler,
		repo:                  repo,
		ordersPlaced:          ordersPlaced,
		statusChanges:         statusChanges,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// GetCart handles GET /api/cart/{cartId}
func (h *OrderHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]

	c, err := h.getCartHandler.Handle(query.GetCartQuery{CartID: cartID})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    c,
	})
}

// AddItem handles POST /api/cart/{cartId}/items
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]

	var req struct {
		MenuItemID uint `json:"menu_item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	c, err := h.addItemHandler.Handle(command.AddItemCommand{
		CartID:     cartID,
		MenuItemID: req.MenuItemID,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    c,
	})
}

// UpdateQuantity handles PATCH /api/cart/{cartId}/items/{lineId}
func (h *OrderHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	c, err := h.updateQuantityHandler.Handle(command.UpdateQuantityCommand{
		CartID:   vars["cartId"],
		LineID:   vars["lineId"],
		Quantity: req.Quantity,
	})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    c,
	})
}

// RemoveItem handles DELETE /api/cart/{cartId}/items/{lineId}
func (h *OrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	c, err := h.removeItemHandler.Handle(command.RemoveItemCommand{
		CartID: vars["cartId"],
		LineID: vars["lineId"],
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    c,
	})
}

// ClearCart handles DELETE /api/cart/{cartId}
func (h *OrderHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]

	if err := h.clearCartHandler.Handle(command.ClearCartCommand{CartID: cartID}); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

// SubmitOrder handles POST /api/orders
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CartID       string `json:"cart_id"`
		TableNumber  int    `json:"table_number"`
		CustomerName string `json:"customer_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	order, err := h.submitHandler.Handle(r.Context(), command.SubmitOrderCommand{
		CartID:       req.CartID,
		TableNumber:  req.TableNumber,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			respondJSON(w, http.StatusUnprocessableEntity, Response{
				Success: false,
				Error:   "Cart is empty",
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to submit order")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.ordersPlaced.Inc()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return
	}

	order, err := h.getHandler.Handle(query.GetOrderQuery{OrderID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Order not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.listHandler.Handle(query.ListOrdersQuery{
		Status: r.URL.Query().Get("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"orders": orders,
			"total":  len(orders),
		},
	})
}

// UpdateStatus handles PATCH /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
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

	order, err := h.updateStatusHandler.Handle(r.Context(), command.UpdateStatusCommand{
		OrderID: uint(id),
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

	h.statusChanges.WithLabelValues(order.Status).Inc()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order status updated successfully",
		Data:    order,
	})
}

// GetStats handles GET /api/orders/stats
func (h *OrderHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get order stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get order stats",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// GetRevenue handles GET /api/orders/revenue
func (h *OrderHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.revenueHandler.Handle(query.GetRevenueQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get revenue")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get revenue",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    revenue,
	})
}

// RegisterRoutes registers all cart and order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	// Cart routes (staff terminals)
	router.HandleFunc("/api/cart/{cartId}", userhttp.AuthMiddleware(h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart/{cartId}/items", userhttp.AuthMiddleware(h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/{cartId}/items/{lineId}", userhttp.AuthMiddleware(h.UpdateQuantity)).Methods("PATCH")
	router.HandleFunc("/api/cart/{cartId}/items/{lineId}", userhttp.AuthMiddleware(h.RemoveItem)).Methods("DELETE")
	router.HandleFunc("/api/cart/{cartId}", userhttp.AuthMiddleware(h.ClearCart)).Methods("DELETE")

	// Order routes
	router.HandleFunc("/api/orders", userhttp.AuthMiddleware(h.SubmitOrder)).Methods("POST")
	router.HandleFunc("/api/orders", userhttp.AuthMiddleware(h.ListOrders)).Methods("GET")
	router.HandleFunc("/api/orders/stats", userhttp.AuthMiddleware(h.GetStats)).Methods("GET")
	router.HandleFunc("/api/orders/revenue", userhttp.AdminMiddleware(h.GetRevenue)).Methods("GET")
	router.HandleFunc("/api/orders/{id:[0-9]+}", userhttp.AuthMiddleware(h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/orders/{id:[0-9]+}/status", userhttp.AuthMiddleware(h.UpdateStatus)).Methods("PATCH")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
