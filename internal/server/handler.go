// Package server exposes the engine over HTTP. Viewers poll the read
// endpoints on their own intervals; each response reflects the
// engine's state at call time, nothing more.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"where-is-my-table/internal/engine"
	"where-is-my-table/internal/logger"
	"where-is-my-table/internal/models"
)

// Handler handles HTTP requests for the table service
type Handler struct {
	engine *engine.Engine
	logger *logger.Logger
}

// NewHandler creates a new handler around the engine.
func NewHandler(eng *engine.Engine, log *logger.Logger) *Handler {
	return &Handler{
		engine: eng,
		logger: log,
	}
}

// SetupRoutes sets up the HTTP routes
func (h *Handler) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/tables", h.withLogging(h.CreateTable))
	mux.HandleFunc("GET /api/tables", h.withLogging(h.ListTables))
	mux.HandleFunc("GET /api/tables/{id}", h.withLogging(h.GetTable))
	mux.HandleFunc("DELETE /api/tables/{id}", h.withLogging(h.DeleteTable))

	mux.HandleFunc("POST /api/orders", h.withLogging(h.SubmitOrder))
	mux.HandleFunc("GET /api/orders", h.withLogging(h.ListOrders))
	mux.HandleFunc("GET /api/orders/{id}", h.withLogging(h.GetOrder))
	mux.HandleFunc("PUT /api/orders/{id}/status", h.withLogging(h.UpdateOrderStatus))

	mux.HandleFunc("POST /api/chefs", h.withLogging(h.CreateChef))
	mux.HandleFunc("GET /api/chefs", h.withLogging(h.ListChefs))
	mux.HandleFunc("PUT /api/chefs/{id}", h.withLogging(h.UpdateChef))
	mux.HandleFunc("DELETE /api/chefs/{id}", h.withLogging(h.DeleteChef))

	mux.HandleFunc("GET /api/customers", h.withLogging(h.ListCustomers))
	mux.HandleFunc("GET /api/customers/{phone}", h.withLogging(h.GetCustomer))

	mux.HandleFunc("GET /api/analytics", h.withLogging(h.Analytics))
	mux.HandleFunc("GET /health", h.HealthCheck)

	return mux
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}, requestID string) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", "bad_json", requestID)
		return false
	}
	return true
}

// CreateTable handles POST /api/tables requests
func (h *Handler) CreateTable(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.CreateTableRequest
	if !h.decode(w, r, &req, requestID) {
		return
	}

	table, err := h.engine.CreateTable(req)
	if err != nil {
		h.writeEngineError(w, err, requestID)
		return
	}
	h.writeJSON(w, http.StatusCreated, table)
}

// ListTables handles GET /api/tables requests
func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.engine.ListTables())
}

// GetTable handles GET /api/tables/{id} requests
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	table, err := h.engine.GetTable(r.PathValue("id"))
	if err != nil {
		h.writeEngineError(w, err, requestID)
		return
	}
	h.writeJSON(w, http.StatusOK, table)
}

// DeleteTable handles DELETE /api/tables/{id} requests
func (h *Handler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if err := h.engine.DeleteTable(r.PathValue("id")); err != nil {
		h.writeEngineError(w, err, requestID)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Table deleted"})
}

// SubmitOrder handles POST /api/orders requests
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.SubmitOrderRequest
	if !h.decode(w, r, &req, requestID) {
		return
	}

	order, err := h.engine.SubmitOrder(req)
	if err != nil {
		h.logger.Error("order_rejected", "Order submission rejected", requestID, err, map[string]interface{}{
			"customer_name": req.CustomerName,
			"type":          req.Type,
		})
		h.writeEngineError(w, err, requestID)
		return
	}

	h.logger.Debug("order_created", "Order created", requestID, map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.Number,
	})
	h.writeJSON(w, http.StatusCreated, order)
}

// ListOrders handles GET /api/orders requests, optionally filtered by
// the status and type query parameters.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	orderType := r.URL.Query().Get("type")
	h.writeJSON(w, http.StatusOK, h.engine.ListOrders(status, orderType))
}

// GetOrder handles GET /api/orders/{id} requests
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	view, err := h.engine.GetOrder(r.PathValue("id"))
	if err != nil {
		h.writeEngineError(w, err, requestID)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// UpdateOrderStatus handles PUT /api/orders/{id}/status requests
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.UpdateOrderStatusRequest
	if !h.decode(w, r, &req, requestID) {
		return
	}
	if err := req.Validate(); err != nil {
		h.writeEngineError(w, err, requestID)
		return
	}

	view, err := h.engine.AdvanceStatus(r.PathValue("id"), models.OrderStatus(req.Status))
	if err != nil {
		h.writeEngineError(w, err, requestID)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// CreateChef handles POST /api/chefs requests
func (h *Handler) CreateChef(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.CreateChefRequest
	if !h.decode(w, r, &req, requestID) {
		return
	}

	chef, err := h.engine.CreateChef(req)
	if err != nil {
		h.writeEngineError(w, err, requestID)
		return
	}
	h.writeJSON(w, http.StatusCreated, chef)
}

// ListChefs handles GET /api/chefs requests
func (h *Handler) ListChefs(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.engine.ListChefs())
}

// UpdateChef handles PUT /api/chefs/{id} requests
func (h *Handler) UpdateChef(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.CreateChefRequest
	if !h.decode(w, r, &req, requestID) {
		return
	}

	chef, err := h.engine.UpdateChef(r.PathValue("id"), req)
	if err != nil {
		h.writeEngineError(w, err, requestID)
		return
	}
	h.writeJSON(w, http.StatusOK, chef)
}

// DeleteChef handles DELETE /api/chefs/{id} requests
func (h *Handler) DeleteChef(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if err := h.engine.DeleteChef(r.PathValue("id")); err != nil {
		h.writeEngineError(w, err, requestID)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Chef deleted"})
}

// ListCustomers handles GET /api/customers requests
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.engine.ListCustomers())
}

// GetCustomer handles GET /api/customers/{phone} requests
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	customer, err := h.engine.GetCustomerByPhone(r.PathValue("phone"))
	if err != nil {
		h.writeEngineError(w, err, requestID)
		return
	}
	h.writeJSON(w, http.StatusOK, customer)
}

// Analytics handles GET /api/analytics requests
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.engine.Snapshot())
}

// HealthCheck handles GET /health requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "table-service",
	})
}

// withLogging adds request logging middleware
func (h *Handler) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := logger.GenerateRequestID()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		h.logger.Debug("request_completed",
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": duration.Milliseconds(),
			})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
