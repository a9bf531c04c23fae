package game

import "errors"

var (
	// ErrInvalidConfiguration is returned when a Model is built from a
	// Configuration that is not consistent.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOutOfBounds is returned when a guess lies outside [min, max].
	ErrOutOfBounds = errors.New("the number is outside boundaries")

	// ErrBuilderConsumed is returned when a Builder is used after Build.
	ErrBuilderConsumed = errors.New("the builder can only be used once")

	// ErrFieldAlreadySet is returned when a Builder field is set twice.
	ErrFieldAlreadySet = errors.New("field already set")
)
