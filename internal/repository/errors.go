package repository

import "errors"

var (
	ErrNotFound          = errors.New("card not found")
	ErrDuplicateNumber   = errors.New("card number already issued")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
