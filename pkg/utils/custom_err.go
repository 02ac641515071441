package utils

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrAIService           = errors.New("ai service error")
	ErrMalformedAIResponse = errors.New("failed to parse ai response")
	ErrDatabaseError       = errors.New("database error")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyExists  = errors.New("email already exists")
)
