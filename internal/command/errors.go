package command

import "errors"

var (
	// ErrInvalidCredentials covers every login failure. Callers cannot tell
	// a malformed number from an unknown card or a wrong PIN.
	ErrInvalidCredentials = errors.New("wrong card number or PIN")

	ErrInvalidCard       = errors.New("invalid card number")
	ErrCardNotFound      = errors.New("card does not exist")
	ErrSameCard          = errors.New("cannot transfer to the same card")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrInvalidAmount     = errors.New("amount must be positive")
)
