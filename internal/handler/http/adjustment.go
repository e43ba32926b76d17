package http

import (
	"encoding/json"
	"net/http"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/adjustment"
	"github.com/athos-hr/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/athos-hr/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AdjustmentHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService adjustment.AdjustmentService) AdjustmentHandler {
	return &adjustmentHandlerImpl{
		adjustmentService: adjustmentService,
	}
}

// Submit implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.Unauthorized(w, "Token carries no employee identity")
		return
	}

	var req adjustment.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.adjustmentService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment request submitted", result)
}

// ListMy implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.Unauthorized(w, "Token carries no employee identity")
		return
	}

	result, err := h.adjustmentService.ListMy(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPending implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.adjustmentService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req := adjustment.DecideRequest{RequestID: chi.URLParam(r, "id")}

	result, err := h.adjustmentService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Reject implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req adjustment.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")

	result, err := h.adjustmentService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
