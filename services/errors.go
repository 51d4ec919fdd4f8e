package services

import (
	"errors"
	"fmt"
)

// Failure classes surfaced to controllers; each maps to one HTTP status.
// The wrapped message states which rule was violated.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("invalid input")
)

func notFound(msg string) error     { return fmt.Errorf("%w: %s", ErrNotFound, msg) }
func forbidden(msg string) error    { return fmt.Errorf("%w: %s", ErrForbidden, msg) }
func invalidState(msg string) error { return fmt.Errorf("%w: %s", ErrInvalidState, msg) }
func validation(msg string) error   { return fmt.Errorf("%w: %s", ErrValidation, msg) }
