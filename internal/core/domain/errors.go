package domain

import "errors"

// Common domain errors
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Client errors
var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidPIN     = errors.New("invalid pin")
	ErrPINMismatch    = errors.New("pins do not match")
)

// Token errors
var (
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// Record errors
var (
	ErrLoanNotFound         = errors.New("loan not found")
	ErrSettledLoanNotFound  = errors.New("settled loan not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrProductNotFound      = errors.New("product not found")
)
