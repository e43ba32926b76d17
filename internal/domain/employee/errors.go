package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAnchorRequired   = errors.New("schedule anchor date is required for the 12x36 schedule")
)
