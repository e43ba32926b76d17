package http

import (
	"encoding/json"
	"net/http"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/kiosk"
	"github.com/athos-hr/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/athos-hr/timeclock-backend-go/internal/handler/http/response"
)

type KioskHandler interface {
	StartSession(w http.ResponseWriter, r *http.Request)
	Scan(w http.ResponseWriter, r *http.Request)
	IssueToken(w http.ResponseWriter, r *http.Request)
	PunchStatus(w http.ResponseWriter, r *http.Request)
}

type kioskHandlerImpl struct {
	kioskService kiosk.KioskService
}

func NewKioskHandler(kioskService kiosk.KioskService) KioskHandler {
	return &kioskHandlerImpl{
		kioskService: kioskService,
	}
}

// StartSession implements KioskHandler. The device key is the credential;
// this endpoint sits outside the authenticated group.
func (h *kioskHandlerImpl) StartSession(w http.ResponseWriter, r *http.Request) {
	var req kiosk.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.kioskService.StartSession(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Scan implements KioskHandler.
func (h *kioskHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req kiosk.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.kioskService.Scan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

// IssueToken implements KioskHandler.
func (h *kioskHandlerImpl) IssueToken(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.Unauthorized(w, "Token carries no employee identity")
		return
	}

	result, err := h.kioskService.IssueToken(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PunchStatus implements KioskHandler.
func (h *kioskHandlerImpl) PunchStatus(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.Unauthorized(w, "Token carries no employee identity")
		return
	}

	result, err := h.kioskService.PunchStatus(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
