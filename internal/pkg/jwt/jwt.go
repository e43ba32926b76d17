package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Service interface {
	JWTAuth() *jwtauth.JWTAuth

	// GenerateKioskSessionToken mints the long-lived session token a kiosk
	// device holds after exchanging its device key.
	GenerateKioskSessionToken(deviceLabel string) (token string, expiresAt int64, err error)

	// GeneratePunchToken mints the short-lived capability an employee device
	// renders as a QR code for the kiosk hand-off.
	GeneratePunchToken(employeeID string) (token string, expiresAt int64, err error)

	// ValidatePunchToken verifies signature and validity window and returns
	// the employee the token was minted for.
	ValidatePunchToken(tokenString string) (employeeID string, err error)
}

type JWTService struct {
	secretKey            string
	punchTokenWindow     time.Duration
	kioskSessionDuration string
	tokenAuth            *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, punchTokenWindow time.Duration, kioskSessionDuration string) Service {
	return &JWTService{
		secretKey:            secretKey,
		punchTokenWindow:     punchTokenWindow,
		kioskSessionDuration: kioskSessionDuration,
		tokenAuth:            jwtauth.New("HS256", []byte(secretKey), nil),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateKioskSessionToken(deviceLabel string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.kioskSessionDuration)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"device": deviceLabel,
		"role":   "kiosk",
		"type":   "access",
		"exp":    expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GeneratePunchToken(employeeID string) (token string, expiresAt int64, err error) {
	now := time.Now()
	expiresAt = now.Add(j.punchTokenWindow).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "kiosk_punch",
		"iat":         now.Unix(),
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidatePunchToken(tokenString string) (employeeID string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired()) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "kiosk_punch" {
		return "", ErrTokenInvalid
	}

	// The window is enforced from issuance time, not only from exp.
	if token.IssuedAt().IsZero() || time.Since(token.IssuedAt()) > j.punchTokenWindow {
		return "", ErrTokenExpired
	}

	employeeIDVal, ok := token.Get("employee_id")
	if !ok {
		return "", ErrTokenInvalid
	}
	employeeID, ok = employeeIDVal.(string)
	if !ok || employeeID == "" {
		return "", ErrTokenInvalid
	}

	return employeeID, nil
}
