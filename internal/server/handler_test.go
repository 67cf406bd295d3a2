package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"where-is-my-table/internal/engine"
	"where-is-my-table/internal/logger"
	"where-is-my-table/internal/models"
)

func newTestMux() *http.ServeMux {
	log := logger.New("server-test")
	return NewHandler(engine.New(log), log).SetupRoutes()
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func submitPayload(tableNumber *int) map[string]interface{} {
	payload := map[string]interface{}{
		"customer_name":  "Ayan Serik",
		"customer_phone": "+77010000001",
		"type":           "dinein",
		"items": []map[string]interface{}{
			{"menu_item_id": "menu_1", "menu_item_name": "Margherita", "quantity": 2, "price": 200, "preparation_time": 15},
			{"menu_item_id": "menu_2", "menu_item_name": "Lemonade", "quantity": 1, "price": 50, "preparation_time": 2},
		},
	}
	if tableNumber != nil {
		payload["table_number"] = *tableNumber
	} else {
		payload["type"] = "takeaway"
		payload["customer_address"] = "12 Abay Avenue, apt 4"
	}
	return payload
}

func TestCreateAndListTables(t *testing.T) {
	mux := newTestMux()

	rec := doRequest(t, mux, http.MethodPost, "/api/tables", map[string]interface{}{"chair_count": 4})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var table models.Table
	decodeBody(t, rec, &table)
	if table.Number != 1 || table.Status != models.TableAvailable {
		t.Errorf("unexpected table: %+v", table)
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/tables", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var tables []models.Table
	decodeBody(t, rec, &tables)
	if len(tables) != 1 {
		t.Errorf("expected 1 table, got %d", len(tables))
	}
}

func TestCreateTableCapacityConflict(t *testing.T) {
	mux := newTestMux()

	for i := 0; i < engine.MaxTables; i++ {
		rec := doRequest(t, mux, http.MethodPost, "/api/tables", map[string]interface{}{"chair_count": 2})
		if rec.Code != http.StatusCreated {
			t.Fatalf("table %d: expected 201, got %d", i+1, rec.Code)
		}
	}

	rec := doRequest(t, mux, http.MethodPost, "/api/tables", map[string]interface{}{"chair_count": 2})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for 31st table, got %d", rec.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["code"] != "capacity_exceeded" {
		t.Errorf("expected capacity_exceeded code, got %v", body["code"])
	}
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	mux := newTestMux()

	rec := doRequest(t, mux, http.MethodPost, "/api/tables", map[string]interface{}{"chair_count": 4})
	var table models.Table
	decodeBody(t, rec, &table)

	rec = doRequest(t, mux, http.MethodPost, "/api/orders", submitPayload(&table.Number))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var order models.Order
	decodeBody(t, rec, &order)
	if order.Status != models.StatusProcessing {
		t.Errorf("expected processing status, got %s", order.Status)
	}
	if order.GrandTotal != 472.5 {
		t.Errorf("expected dinein grand total 472.5, got %v", order.GrandTotal)
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/tables/"+table.ID, nil)
	decodeBody(t, rec, &table)
	if table.Status != models.TableReserved {
		t.Errorf("expected reserved table, got %s", table.Status)
	}

	// A second submission for the same table races against held state.
	rec = doRequest(t, mux, http.MethodPost, "/api/orders", submitPayload(&table.Number))
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for reserved table, got %d", rec.Code)
	}

	// Deleting the reserved table is rejected.
	rec = doRequest(t, mux, http.MethodDelete, "/api/tables/"+table.ID, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 deleting reserved table, got %d", rec.Code)
	}

	rec = doRequest(t, mux, http.MethodPut, fmt.Sprintf("/api/orders/%s/status", order.ID),
		map[string]string{"status": "done"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var view models.OrderView
	decodeBody(t, rec, &view)
	if view.DisplayStatus != "served" {
		t.Errorf("expected display status served, got %q", view.DisplayStatus)
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/tables/"+table.ID, nil)
	decodeBody(t, rec, &table)
	if table.Status != models.TableAvailable {
		t.Errorf("expected table released, got %s", table.Status)
	}
}

func TestIllegalTransitionOverHTTP(t *testing.T) {
	mux := newTestMux()

	rec := doRequest(t, mux, http.MethodPost, "/api/orders", submitPayload(nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var order models.Order
	decodeBody(t, rec, &order)

	rec = doRequest(t, mux, http.MethodPut, fmt.Sprintf("/api/orders/%s/status", order.ID),
		map[string]string{"status": "pending"})
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for backward transition, got %d", rec.Code)
	}

	rec = doRequest(t, mux, http.MethodPut, fmt.Sprintf("/api/orders/%s/status", order.ID),
		map[string]string{"status": "burned"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", rec.Code)
	}
}

func TestValidationErrorsOverHTTP(t *testing.T) {
	mux := newTestMux()

	payload := submitPayload(nil)
	payload["items"] = []map[string]interface{}{}
	rec := doRequest(t, mux, http.MethodPost, "/api/orders", payload)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty cart, got %d", rec.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["code"] != "empty_cart" {
		t.Errorf("expected empty_cart code, got %v", body["code"])
	}

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{not json"))
	rec2 := httptest.NewRecorder()
	mux.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed JSON, got %d", rec2.Code)
	}
}

func TestNotFoundOverHTTP(t *testing.T) {
	mux := newTestMux()

	tests := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/api/tables/table_99", nil},
		{http.MethodDelete, "/api/tables/table_99", nil},
		{http.MethodGet, "/api/orders/order_missing", nil},
		{http.MethodPut, "/api/orders/order_missing/status", map[string]string{"status": "done"}},
		{http.MethodGet, "/api/customers/+70000000000", nil},
		{http.MethodDelete, "/api/chefs/chef_missing", nil},
	}
	for _, tt := range tests {
		rec := doRequest(t, mux, tt.method, tt.path, tt.body)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected 404, got %d", tt.method, tt.path, rec.Code)
		}
	}
}

func TestAnalyticsOverHTTP(t *testing.T) {
	mux := newTestMux()

	doRequest(t, mux, http.MethodPost, "/api/chefs", map[string]string{"name": "Aruzhan"})
	doRequest(t, mux, http.MethodPost, "/api/orders", submitPayload(nil))

	rec := doRequest(t, mux, http.MethodGet, "/api/analytics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var snap models.AnalyticsSnapshot
	decodeBody(t, rec, &snap)
	if snap.TotalOrders != 1 || snap.TotalChefs != 1 || snap.TotalClients != 1 {
		t.Errorf("unexpected snapshot totals: %+v", snap)
	}
	if snap.TotalRevenue != 522.5 {
		t.Errorf("expected revenue 522.5, got %v", snap.TotalRevenue)
	}
}

func TestHealthCheck(t *testing.T) {
	mux := newTestMux()

	rec := doRequest(t, mux, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("expected ok status, got %v", body["status"])
	}
}
