package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
	"github.com/shiftledger/shiftledger-backend-go/internal/handler/http/response"
)

type fakeLedgerService struct {
	ensureResult ledger.InitResult
	rows         []ledger.RowResponse
	updateErr    error
}

func (f *fakeLedgerService) GetRow(_ context.Context, _ ledger.Month, rowID string) (ledger.RowResponse, error) {
	for _, row := range f.rows {
		if row.ID == rowID {
			return row, nil
		}
	}
	return ledger.RowResponse{}, ledger.ErrRowNotFound
}

func (f *fakeLedgerService) EnsureMonth(_ context.Context, month ledger.Month) (ledger.InitResult, error) {
	return f.ensureResult, nil
}

func (f *fakeLedgerService) ListMonth(_ context.Context, _ ledger.Month, employeeID *string) ([]ledger.RowResponse, error) {
	if employeeID == nil {
		return f.rows, nil
	}
	var filtered []ledger.RowResponse
	for _, row := range f.rows {
		if row.EmployeeID == *employeeID {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

func (f *fakeLedgerService) UpdateRow(_ context.Context, _ ledger.Month, rowID string, req ledger.UpdateRowRequest) (ledger.RowResponse, error) {
	if f.updateErr != nil {
		return ledger.RowResponse{}, f.updateErr
	}
	if req.IsEmpty() {
		return ledger.RowResponse{}, ledger.ErrNoUpdatableFields
	}
	if _, err := req.Validate(rowID); err != nil {
		return ledger.RowResponse{}, err
	}
	return ledger.RowResponse{ID: rowID}, nil
}

func ledgerTestRouter(svc ledger.LedgerService) http.Handler {
	handler := NewLedgerHandler(svc)
	r := chi.NewRouter()
	r.Route("/api/v1/ledger", func(r chi.Router) {
		r.Get("/{month}", handler.ListMonth)
		r.Post("/{month}/initialize", handler.InitializeMonth)
		r.Get("/{month}/rows/{rowID}", handler.GetRow)
		r.Patch("/{month}/rows/{rowID}", handler.UpdateRow)
	})
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestLedgerHandler_InvalidMonthKey(t *testing.T) {
	router := ledgerTestRouter(&fakeLedgerService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ledger/2025-06", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestLedgerHandler_ListMonth(t *testing.T) {
	svc := &fakeLedgerService{rows: []ledger.RowResponse{
		{ID: "row-1", EmployeeID: "emp-1", Date: "2025-06-01", Presence: ledger.PresenceDayOff},
		{ID: "row-2", EmployeeID: "emp-2", Date: "2025-06-01", Presence: ledger.PresenceDayOff},
	}}
	router := ledgerTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ledger/2025_06", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.EqualValues(t, 2, resp.Meta.TotalItems)
}

func TestLedgerHandler_ListMonthFilteredByEmployee(t *testing.T) {
	svc := &fakeLedgerService{rows: []ledger.RowResponse{
		{ID: "row-1", EmployeeID: "emp-1", Date: "2025-06-01"},
		{ID: "row-2", EmployeeID: "emp-2", Date: "2025-06-01"},
	}}
	router := ledgerTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ledger/2025_06?employee_id=emp-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Meta)
	assert.EqualValues(t, 1, resp.Meta.TotalItems)
}

func TestLedgerHandler_InitializeMonth(t *testing.T) {
	svc := &fakeLedgerService{ensureResult: ledger.InitResult{Month: "2025_06", RowsCreated: 60}}
	router := ledgerTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ledger/2025_06/initialize", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestLedgerHandler_GetRow(t *testing.T) {
	svc := &fakeLedgerService{rows: []ledger.RowResponse{
		{ID: "row-1", EmployeeID: "emp-1", Date: "2025-06-01", Presence: ledger.PresencePresent},
	}}
	router := ledgerTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ledger/2025_06/rows/row-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestLedgerHandler_GetRowNotFound(t *testing.T) {
	router := ledgerTestRouter(&fakeLedgerService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ledger/2025_06/rows/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLedgerHandler_UpdateRowEmptyBody(t *testing.T) {
	router := ledgerTestRouter(&fakeLedgerService{})

	body := bytes.NewBufferString(`{}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/ledger/2025_06/rows/row-1", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLedgerHandler_UpdateRowValidation(t *testing.T) {
	router := ledgerTestRouter(&fakeLedgerService{})

	body := bytes.NewBufferString(`{"presence": "vacationing"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/ledger/2025_06/rows/row-1", body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "presence")
}

func TestLedgerHandler_UpdateRowNotFound(t *testing.T) {
	router := ledgerTestRouter(&fakeLedgerService{updateErr: ledger.ErrRowNotFound})

	body := bytes.NewBufferString(`{"presence": "present"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/ledger/2025_06/rows/ghost", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
