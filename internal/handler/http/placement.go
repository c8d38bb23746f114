package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftledger/shiftledger-backend-go/internal/domain/placement"
	"github.com/shiftledger/shiftledger-backend-go/internal/handler/http/response"
	"github.com/shiftledger/shiftledger-backend-go/internal/pkg/validator"
)

type PlacementHandler interface {
	GetDay(w http.ResponseWriter, r *http.Request)
}

type placementHandlerImpl struct {
	placementService placement.PlacementService
}

func NewPlacementHandler(placementService placement.PlacementService) PlacementHandler {
	return &placementHandlerImpl{placementService: placementService}
}

func (h *placementHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(chi.URLParam(r, "date"))
	if !ok {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	result, err := h.placementService.ForDay(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
