package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/athos-hr/timeclock-backend-go/internal/domain/timeclock"
	"github.com/athos-hr/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/athos-hr/timeclock-backend-go/internal/handler/http/response"
)

type TimeclockHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	Mirror(w http.ResponseWriter, r *http.Request)
}

type timeclockHandlerImpl struct {
	timeclockService timeclock.TimeclockService
}

func NewTimeclockHandler(timeclockService timeclock.TimeclockService) TimeclockHandler {
	return &timeclockHandlerImpl{
		timeclockService: timeclockService,
	}
}

// Punch implements TimeclockHandler.
func (h *timeclockHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.Unauthorized(w, "Token carries no employee identity")
		return
	}

	var req timeclock.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.timeclockService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

// Mirror implements TimeclockHandler. Employees see their own mirror;
// administrators may pass employee_id to see anyone's.
func (h *timeclockHandlerImpl) Mirror(w http.ResponseWriter, r *http.Request) {
	ownID, ok := middleware.EmployeeID(r.Context())

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		if !ok {
			response.Unauthorized(w, "Token carries no employee identity")
			return
		}
		employeeID = ownID
	}
	if employeeID != ownID && middleware.Role(r.Context()) != middleware.RoleAdmin {
		response.HandleError(w, timeclock.ErrNotOwnMirror)
		return
	}

	req := timeclock.MirrorRequest{
		EmployeeID: employeeID,
		Month:      r.URL.Query().Get("month"),
	}

	result, err := h.timeclockService.Mirror(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
