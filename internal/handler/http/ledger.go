package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/ledger"
	"github.com/shiftledger/shiftledger-backend-go/internal/handler/http/response"
)

type LedgerHandler interface {
	InitializeMonth(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	GetRow(w http.ResponseWriter, r *http.Request)
	UpdateRow(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &ledgerHandlerImpl{ledgerService: ledgerService}
}

func monthParam(r *http.Request) (ledger.Month, error) {
	return ledger.ParseMonth(chi.URLParam(r, "month"))
}

func (h *ledgerHandlerImpl) InitializeMonth(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.ledgerService.EnsureMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Month initialized", result)
}

func (h *ledgerHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var employeeID *string
	if id := r.URL.Query().Get("employee_id"); id != "" {
		employeeID = &id
	}

	rows, err := h.ledgerService.ListMonth(r.Context(), month, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, rows, &response.Meta{TotalItems: int64(len(rows))})
}

func (h *ledgerHandlerImpl) GetRow(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rowID := chi.URLParam(r, "rowID")
	if rowID == "" {
		response.BadRequest(w, "Row ID is required", nil)
		return
	}

	result, err := h.ledgerService.GetRow(r.Context(), month, rowID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ledgerHandlerImpl) UpdateRow(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rowID := chi.URLParam(r, "rowID")
	if rowID == "" {
		response.BadRequest(w, "Row ID is required", nil)
		return
	}

	var req ledger.UpdateRowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ledgerService.UpdateRow(r.Context(), month, rowID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ledger row updated", result)
}
