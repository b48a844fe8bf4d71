package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dhaba/restaurant-pos/internal/payment/domain"
	"github.com/dhaba/restaurant-pos/internal/payment/usecase/command"
	"github.com/dhaba/restaurant-pos/internal/payment/usecase/query"
	userhttp "github.com/dhaba/restaurant-pos/internal/user/delivery/http"
	"github.com/dhaba/restaurant-pos/pkg/logger"
)

// PaymentHandler handles HTTP requests for payments using CQRS pattern
type PaymentHandler struct {
	// Command handlers
	recordHandler       *command.RecordPaymentHandler
	updateStatusHandler *command.UpdatePaymentStatusHandler

	// Query handlers
	getHandler         *query.GetPaymentHandler
	listHandler        *query.ListPaymentsHandler
	collectionsHandler *query.DailyCollectionsHandler

	paymentsRecorded *prometheus.CounterVec
}

// NewPaymentHandlerWithDI creates a new payment handler using dependency injection
func NewPaymentHandlerWithDI(
	recordHandler *command.RecordPaymentHandler,
	updateStatusHandler *command.UpdatePaymentStatusHandler,
	getHandler *query.GetPaymentHandler,
	listHandler *query.ListPaymentsHandler,
	collectionsHandler *query.DailyCollectionsHandler,
) *PaymentHandler {
	paymentsRecorded := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_payments_recorded_total",
			Help: "Total number of payments recorded",
		},
		[]string{"method"},
	)
	prometheus.MustRegister(paymentsRecorded)

	return &PaymentHandler{
		recordHandler:       recordHandler,
		updateStatusHandler: updateStatusHandler,
		getHandler:          getHandler,
		listHandler:         listHandler,
		collectionsHandler:  collectionsHandler,
		paymentsRecorded:    paymentsRecorded,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RecordPayment handles POST /api/payments
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var cmd command.RecordPaymentCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.recordHandler.Handle(r.Context(), cmd)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrOverpayment) {
			status = http.StatusUnprocessableEntity
		}
		logger.Warn(r.Context()).Err(err).Uint("order_id", cmd.OrderID).Msg("Payment rejected")
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.paymentsRecorded.WithLabelValues(result.Payment.Method).Inc()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Payment recorded successfully",
		Data:    result,
	})
}

// UpdatePaymentStatus handles PATCH /api/orders/{id}/payment
func (h *PaymentHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseID(r, "id")
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

	order, err := h.updateStatusHandler.Handle(r.Context(), command.UpdatePaymentStatusCommand{
		OrderID: orderID,
		Status:  req.Status,
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
		Message: "Payment status updated successfully",
		Data:    order,
	})
}

// GetPayment handles GET /api/payments/{id}
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid payment ID",
		})
		return
	}

	payment, err := h.getHandler.Handle(query.GetPaymentQuery{PaymentID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Payment not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    payment,
	})
}

// ListPayments handles GET /api/payments
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	q := query.ListPaymentsQuery{}
	if v := r.URL.Query().Get("order_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "Invalid order_id",
			})
			return
		}
		q.OrderID = uint(id)
	}
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

	payments, err := h.listHandler.Handle(q)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list payments",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    payments,
	})
}

// GetCollections handles GET /api/collections
func (h *PaymentHandler) GetCollections(w http.ResponseWriter, r *http.Request) {
	result, err := h.collectionsHandler.Handle(query.DailyCollectionsQuery{
		Range: r.URL.Query().Get("range"),
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
		Data:    result,
	})
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/payments", userhttp.AuthMiddleware(h.RecordPayment)).Methods("POST")
	router.HandleFunc("/api/payments", userhttp.AuthMiddleware(h.ListPayments)).Methods("GET")
	router.HandleFunc("/api/payments/{id:[0-9]+}", userhttp.AuthMiddleware(h.GetPayment)).Methods("GET")
	router.HandleFunc("/api/orders/{id:[0-9]+}/payment", userhttp.AuthMiddleware(h.UpdatePaymentStatus)).Methods("PATCH")
	router.HandleFunc("/api/collections", userhttp.AdminMiddleware(h.GetCollections)).Methods("GET")
}

func parseID(r *http.Request, key string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[key], 10, 32)
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
