package services

import "errors"

var (
	// ErrStoreUnavailable means no database pool is configured or reachable.
	// Reads degrade to empty results; mutations surface a warning.
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrItemNotFound       = errors.New("menu item not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError is a user-correctable checkout input failure.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

var (
	ErrNameRequired  = &ValidationError{Field: "customerName", Msg: "Por favor, insira seu nome"}
	ErrPhoneRequired = &ValidationError{Field: "customerPhone", Msg: "Por favor, insira seu telefone"}
	ErrEmptyCart     = &ValidationError{Field: "items", Msg: "Seu carrinho está vazio"}
)
