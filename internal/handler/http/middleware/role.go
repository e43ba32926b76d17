package middleware

import (
	"net/http"

	"github.com/athos-hr/timeclock-backend-go/internal/handler/http/response"
)

const (
	RoleEmployee = "employee"
	RoleKiosk    = "kiosk"
	RoleAdmin    = "admin"
)

// RequireEmployee allows employee tokens; admins pass too so they can act on
// any employee's behalf where the handler permits it.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := Role(r.Context())
		if role != RoleEmployee && role != RoleAdmin {
			response.Forbidden(w, "Employee access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireKiosk requires a kiosk session token.
func RequireKiosk(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Role(r.Context()) != RoleKiosk {
			response.Forbidden(w, "Kiosk access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin requires admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Role(r.Context()) != RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
