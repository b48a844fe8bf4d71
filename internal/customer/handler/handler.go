package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dhaba/restaurant-pos/internal/customer/domain"
	userhttp "github.com/dhaba/restaurant-pos/internal/user/delivery/http"
)

// CustomerHandler handles HTTP requests for the customer directory
type CustomerHandler struct {
	repo domain.CustomerRepository
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(repo domain.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type customerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// CreateCustomer handles POST /api/customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.Name == "" || req.Phone == "" {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Name and phone are required"})
		return
	}

	customer := &domain.Customer{Name: req.Name, Phone: req.Phone, Email: req.Email}
	if err := h.repo.Create(customer); err != nil {
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: "Customer with this phone already exists"})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Customer created successfully",
		Data:    customer,
	})
}

// GetCustomer handles GET /api/customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid customer ID"})
		return
	}

	customer, err := h.repo.FindByID(id)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Customer not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: customer})
}

// ListCustomers handles GET /api/customers, with optional phone lookup
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	if phone := r.URL.Query().Get("phone"); phone != "" {
		customer, err := h.repo.FindByPhone(phone)
		if err != nil {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Customer not found"})
			return
		}
		respondJSON(w, http.StatusOK, Response{Success: true, Data: customer})
		return
	}

	limit := 50
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	customers, err := h.repo.FindAll(limit, offset)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list customers"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: customers})
}

// UpdateCustomer handles PUT /api/customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid customer ID"})
		return
	}

	customer, err := h.repo.FindByID(id)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Customer not found"})
		return
	}

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Email != "" {
		customer.Email = req.Email
	}

	if err := h.repo.Update(customer); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to update customer"})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Customer updated successfully",
		Data:    customer,
	})
}

// RecordVisit handles POST /api/customers/{id}/visit
func (h *CustomerHandler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid customer ID"})
		return
	}

	customer, err := h.repo.FindByID(id)
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Customer not found"})
		return
	}

	customer.RecordVisit(time.Now())
	if err := h.repo.Update(customer); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to record visit"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: customer})
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid customer ID"})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to delete customer"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Customer deleted successfully"})
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/customers", userhttp.AuthMiddleware(h.CreateCustomer)).Methods("POST")
	router.HandleFunc("/api/customers", userhttp.AuthMiddleware(h.ListCustomers)).Methods("GET")
	router.HandleFunc("/api/customers/{id:[0-9]+}", userhttp.AuthMiddleware(h.GetCustomer)).Methods("GET")
	router.HandleFunc("/api/customers/{id:[0-9]+}", userhttp.AuthMiddleware(h.UpdateCustomer)).Methods("PUT")
	router.HandleFunc("/api/customers/{id:[0-9]+}/visit", userhttp.AuthMiddleware(h.RecordVisit)).Methods("POST")
	router.HandleFunc("/api/customers/{id:[0-9]+}", userhttp.AdminMiddleware(h.DeleteCustomer)).Methods("DELETE")
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
