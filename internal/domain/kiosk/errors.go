package kiosk

import "errors"

// Typed handshake failures per the kiosk wire contract. None of them mutate
// the punch ledger.
var (
	ErrTokenExpired     = errors.New("punch token expired")
	ErrTokenInvalid     = errors.New("punch token signature invalid")
	ErrUnknownEmployee  = errors.New("punch token refers to an unknown employee")
	ErrDeviceKeyInvalid = errors.New("kiosk device key invalid")
)
