package orders

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind-api/northwind-api/internal/schema"
)

func newTestRouter(t *testing.T) (chi.Router, *mockRepository) {
	t.Helper()
	repo := newMockRepository()
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), NewService(repo))
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r, repo
}

func doRequest(t *testing.T, r chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateReturnsNestedDetails(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{
		"CustomerID": "VINET",
		"OrderDate": "1996-07-04",
		"details": [
			{"ProductID": 10, "UnitPrice": 10.00, "Quantity": 5, "Discount": 0.0}
		]
	}`
	rec := doRequest(t, r, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, float64(1), created["OrderID"])
	assert.Equal(t, "VINET", created["CustomerID"])
	assert.Equal(t, "1996-07-04", created["OrderDate"])

	details, ok := created["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	detail := details[0].(map[string]any)
	assert.Equal(t, float64(10), detail["ProductID"])
	assert.Equal(t, "10.00", detail["UnitPrice"])
	assert.Equal(t, float64(5), detail["Quantity"])
	assert.Equal(t, "0.00", detail["Discount"])
}

func TestCreateMissingOrderDate(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodPost, "/orders", `{"CustomerID":"VINET"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errs map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errs))
	assert.Equal(t, []string{"Missing data for required field."}, errs["OrderDate"])
}

func TestCreateBadDetailFieldKeyedByIndex(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{
		"CustomerID": "VINET",
		"OrderDate": "1996-07-04",
		"details": [{"ProductID": "nope"}]
	}`
	rec := doRequest(t, r, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errs map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errs))
	assert.Equal(t, []string{"Not a valid integer."}, errs["details.0.ProductID"])
}

func TestShowAlwaysCarriesDetailsArray(t *testing.T) {
	r, repo := newTestRouter(t)
	repo.orders[1] = &Order{ID: 1, CustomerID: "VINET", OrderDate: schema.NewDate(1996, time.July, 4)}
	repo.nextID = 2

	rec := doRequest(t, r, http.MethodGet, "/orders/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	details, ok := got["details"].([]any)
	require.True(t, ok)
	assert.Empty(t, details)
}

func TestShowNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/orders/42", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Order ID 42 not found"}`, rec.Body.String())
}

func TestHistoryUnknownCustomerIs404(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/orders/history/NOONE", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Customer ID NOONE not found"}`, rec.Body.String())
}

func TestHistoryCustomerWithoutOrdersIs200Message(t *testing.T) {
	r, repo := newTestRouter(t)
	repo.customers["ALFKI"] = true

	rec := doRequest(t, r, http.MethodGet, "/orders/history/ALFKI", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Customer ID ALFKI has no orders"}`, rec.Body.String())
}

func TestHistoryReturnsOrdersArray(t *testing.T) {
	r, repo := newTestRouter(t)
	repo.customers["VINET"] = true
	repo.orders[1] = &Order{ID: 1, CustomerID: "VINET", OrderDate: schema.NewDate(1996, time.July, 4)}
	repo.orders[2] = &Order{ID: 2, CustomerID: "VINET", OrderDate: schema.NewDate(1996, time.July, 10)}
	repo.nextID = 3

	rec := doRequest(t, r, http.MethodGet, "/orders/history/VINET", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var history []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "1996-07-10", history[0]["OrderDate"])
	assert.Equal(t, "1996-07-04", history[1]["OrderDate"])
}

func TestDeleteReturnsNoContent(t *testing.T) {
	r, repo := newTestRouter(t)
	repo.orders[1] = &Order{ID: 1, CustomerID: "VINET", OrderDate: schema.NewDate(1996, time.July, 4)}
	repo.details[1] = []OrderDetail{{OrderID: 1, ProductID: 10, Quantity: 5}}
	repo.nextID = 2

	rec := doRequest(t, r, http.MethodDelete, "/orders/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.details)
}

func TestUpdateNoBody(t *testing.T) {
	r, repo := newTestRouter(t)
	repo.orders[1] = &Order{ID: 1, CustomerID: "VINET", OrderDate: schema.NewDate(1996, time.July, 4)}
	repo.nextID = 2

	rec := doRequest(t, r, http.MethodPut, "/orders/1", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"No input data provided"}`, rec.Body.String())
}
