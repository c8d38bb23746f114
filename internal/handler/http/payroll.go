package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/payroll"
	"github.com/shiftledger/shiftledger-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	RunMonth(w http.ResponseWriter, r *http.Request)
	ForecastMonth(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.payrollService.ComputeEmployee(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) RunMonth(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.RunMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ForecastMonth(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ForecastMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
