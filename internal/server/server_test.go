package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/bookdesk/internal/models"
	"github.com/avolkov/bookdesk/internal/store"
)

func testServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	c := st.AddCustomer(models.Customer{FullName: "Ivanov", Email: "ivanov@mail.ru", RegistrationDate: "2024-01-15"})
	st.AddCustomer(models.Customer{FullName: "Petrov", RegistrationDate: "2024-02-01"})
	_, err := st.AddOrder(models.Order{CustomerID: c.ID, Date: "2024-02-01", Quantity: 2, Price: 100})
	require.NoError(t, err)

	return NewServer(st), st
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv, _ := testServer(t)

	w := get(srv, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 2, body["customers"])
}

func TestListCustomersWithQuery(t *testing.T) {
	srv, _ := testServer(t)

	w := get(srv, "/api/customers?q=mail.ru")
	assert.Equal(t, http.StatusOK, w.Code)

	var customers []models.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customers))
	require.Len(t, customers, 1)
	assert.Equal(t, "Ivanov", customers[0].FullName)
}

func TestGetCustomer(t *testing.T) {
	srv, _ := testServer(t)

	assert.Equal(t, http.StatusOK, get(srv, "/api/customers/1").Code)
	assert.Equal(t, http.StatusNotFound, get(srv, "/api/customers/99").Code)
	assert.Equal(t, http.StatusBadRequest, get(srv, "/api/customers/abc").Code)
}

func TestGetCustomerOrdersAndStats(t *testing.T) {
	srv, _ := testServer(t)

	w := get(srv, "/api/customers/1/orders")
	assert.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD001", orders[0].ID)

	w = get(srv, "/api/customers/1/stats")
	assert.Equal(t, http.StatusOK, w.Code)
	var stats store.OrderStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Count)
	assert.InDelta(t, 200.0, stats.TotalAmount, 1e-9)

	assert.Equal(t, http.StatusNotFound, get(srv, "/api/customers/99/orders").Code)
}

func TestGetReport(t *testing.T) {
	srv, _ := testServer(t)

	w := get(srv, "/api/reports/customer_summary")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CUSTOMER SUMMARY REPORT")
	assert.Contains(t, w.Body.String(), "Total customers: 2")

	w = get(srv, "/api/reports/order_statistics?from=2025-01-01")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No orders found.")

	assert.Equal(t, http.StatusBadRequest, get(srv, "/api/reports/bogus").Code)
}
