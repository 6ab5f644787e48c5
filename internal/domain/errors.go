package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrOutOfRange      = errors.New("position out of range")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNilRecipe       = errors.New("recipe is nil")
	ErrAlreadyFinished = errors.New("recipe already finished")
)
