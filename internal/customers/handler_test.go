package customers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestCreateReturnsCreatedEntity(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodPost, "/customers", `{"CustomerID":"ALFKI","CompanyName":"Alfreds Futterkiste"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "ALFKI", created["CustomerID"])
	assert.Equal(t, "Alfreds Futterkiste", created["CompanyName"])
	assert.NotContains(t, created, "ContactName")
}

func TestCreateValidationErrorBody(t *testing.T) {
	r, repo := newTestRouter(t)

	rec := doRequest(t, r, http.MethodPost, "/customers", `{"CustomerID":"ABC"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errs map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errs))
	assert.Equal(t, []string{"CustomerID must be 5 characters."}, errs["CustomerID"])
	assert.Equal(t, []string{"Missing data for required field."}, errs["CompanyName"])
	assert.Empty(t, repo.rows)
}

func TestCreateNoBody(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodPost, "/customers", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"No input data provided"}`, rec.Body.String())
}

func TestCreateStorageError(t *testing.T) {
	r, repo := newTestRouter(t)
	repo.txError = errors.New("connection refused")

	rec := doRequest(t, r, http.MethodPost, "/customers", `{"CustomerID":"ALFKI","CompanyName":"Alfreds Futterkiste"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload["message"], "Error inserting customer:")
}

func TestShowNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/customers/NOONE", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Customer ID NOONE not found"}`, rec.Body.String())
}

func TestUpdateReturnsMergedRow(t *testing.T) {
	r, repo := newTestRouter(t)
	repo.rows["ALFKI"] = &Customer{ID: "ALFKI", CompanyName: "Alfreds Futterkiste"}

	rec := doRequest(t, r, http.MethodPut, "/customers/ALFKI", `{"ContactName":"Maria Anders"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Alfreds Futterkiste", got["CompanyName"])
	assert.Equal(t, "Maria Anders", got["ContactName"])
}

func TestUpdateUnknownFieldRejected(t *testing.T) {
	r, repo := newTestRouter(t)
	repo.rows["ALFKI"] = &Customer{ID: "ALFKI", CompanyName: "Alfreds Futterkiste"}

	rec := doRequest(t, r, http.MethodPut, "/customers/ALFKI", `{"Bogus":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errs map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errs))
	assert.Equal(t, []string{"Unknown field."}, errs["Bogus"])
}

func TestDeleteReturnsNoContent(t *testing.T) {
	r, repo := newTestRouter(t)
	repo.rows["ALFKI"] = &Customer{ID: "ALFKI", CompanyName: "Alfreds Futterkiste"}

	rec := doRequest(t, r, http.MethodDelete, "/customers/ALFKI", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(t, r, http.MethodDelete, "/customers/ALFKI", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
