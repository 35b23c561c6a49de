package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrStoreUnknown = errors.New("unknown rule store")
)
