package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dhaba/restaurant-pos/internal/reservation/domain"
	"github.com/dhaba/restaurant-pos/internal/reservation/usecase/command"
	"github.com/dhaba/restaurant-pos/internal/reservation/usecase/query"
	userhttp "github.com/dhaba/restaurant-pos/internal/user/delivery/http"
)

// ReservationHandler handles HTTP requests for reservations using CQRS pattern
type ReservationHandler struct {
	// Command handlers
	createHandler  *command.CreateReservationHandler
	confirmHandler *command.ConfirmReservationHandler
	cancelHandler  *command.CancelReservationHandler

	// Query handlers
	getHandler  *query.GetReservationHandler
	listHandler *query.ListReservationsHandler
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(repo domain.ReservationRepository, tables domain.TableMarker) *ReservationHandler {
	return &ReservationHandler{
		createHandler:  command.NewCreateReservationHandler(repo),
		confirmHandler: command.NewConfirmReservationHandler(repo, tables),
		cancelHandler:  command.NewCancelReservationHandler(repo, tables),
		getHandler:     query.NewGetReservationHandler(repo),
		listHandler:    query.NewListReservationsHandler(repo),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateReservation handles POST /api/reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName  string `json:"customer_name"`
		CustomerPhone string `json:"customer_phone"`
		TableNumber   int    `json:"table_number"`
		Date          string `json:"date"`
		Time          string `json:"time"`
		PartySize     int    `json:"party_size"`
		Notes         string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	reservation, err := h.createHandler.Handle(command.CreateReservationCommand{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TableNumber:   req.TableNumber,
		Date:          req.Date,
		Time:          req.Time,
		PartySize:     req.PartySize,
		Notes:         req.Notes,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Reservation created successfully",
		Data:    reservation,
	})
}

// ConfirmReservation handles POST /api/reservations/{id}/confirm
func (h *ReservationHandler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid reservation ID"})
		return
	}

	reservation, err := h.confirmHandler.Handle(r.Context(), command.ConfirmReservationCommand{ReservationID: id})
	if err != nil {
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Reservation confirmed successfully",
		Data:    reservation,
	})
}

// CancelReservation handles POST /api/reservations/{id}/cancel
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid reservation ID"})
		return
	}

	reservation, err := h.cancelHandler.Handle(r.Context(), command.CancelReservationCommand{ReservationID: id})
	if err != nil {
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Reservation cancelled successfully",
		Data:    reservation,
	})
}

// GetReservation handles GET /api/reservations/{id}
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid reservation ID"})
		return
	}

	reservation, err := h.getHandler.Handle(query.GetReservationQuery{ReservationID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Reservation not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: reservation})
}

// ListReservations handles GET /api/reservations
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	q := query.ListReservationsQuery{
		Date:   r.URL.Query().Get("date"),
		Status: r.URL.Query().Get("status"),
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

	reservations, err := h.listHandler.Handle(q)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: reservations})
}

// RegisterRoutes registers reservation routes
func (h *ReservationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reservations", userhttp.AuthMiddleware(h.CreateReservation)).Methods("POST")
	router.HandleFunc("/api/reservations", userhttp.AuthMiddleware(h.ListReservations)).Methods("GET")
	router.HandleFunc("/api/reservations/{id:[0-9]+}", userhttp.AuthMiddleware(h.GetReservation)).Methods("GET")
	router.HandleFunc("/api/reservations/{id:[0-9]+}/confirm", userhttp.AuthMiddleware(h.ConfirmReservation)).Methods("POST")
	router.HandleFunc("/api/reservations/{id:[0-9]+}/cancel", userhttp.AuthMiddleware(h.CancelReservation)).Methods("POST")
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
