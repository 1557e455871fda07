package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrAccountInactive   = errors.New("account is inactive")
	ErrEmailTaken        = errors.New("email already registered")
	ErrNoFieldsProvided  = errors.New("no fields provided")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrInvalidCredential = errors.New("invalid credential")
)

// DatabaseError wraps a store-layer failure so the underlying message can be
// passed through to operators while still matching with errors.As.
type DatabaseError struct {
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error: %v", e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}
