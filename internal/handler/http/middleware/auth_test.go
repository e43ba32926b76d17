package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedRequest(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims == nil {
		return req.WithContext(jwtauth.NewContext(req.Context(), nil, nil))
	}
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthRequired(ja)(next)

	tests := []struct {
		name       string
		claims     map[string]interface{}
		wantStatus int
	}{
		{
			name:       "access token passes",
			claims:     map[string]interface{}{"employee_id": "emp-1", "role": "employee", "type": "access"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "punch token is not a session credential",
			claims:     map[string]interface{}{"employee_id": "emp-1", "type": "kiosk_punch"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing type claim rejected",
			claims:     map[string]interface{}{"employee_id": "emp-1", "role": "employee"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing token rejected",
			claims:     nil,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, authedRequest(t, ja, tt.claims))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
