package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/attendance"
	"github.com/shiftledger/shiftledger-backend-go/internal/handler/http/response"
	"github.com/shiftledger/shiftledger-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	SyncDay(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) SyncDay(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(chi.URLParam(r, "date"))
	if !ok {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	result, err := h.attendanceService.SyncDay(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day synchronized", result)
}
