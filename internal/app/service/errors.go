package service

import "errors"

// Sentinel errors the controllers translate into localized responses
var (
	ErrMissingFields    = errors.New("required fields missing")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrInvalidMethod    = errors.New("invalid contact method")
	ErrInvalidOption    = errors.New("option not offered for this drone")
	ErrIgnoredEventType = errors.New("event type not tracked")
)
