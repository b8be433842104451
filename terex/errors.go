package terex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"errors"
	"fmt"
)

// Error kinds of operations on trees. Errors returned by this module wrap
// one of these; check with errors.Is.
var (
	// ErrDomain flags an operation which is undefined for its operands,
	// e.g., differentiating a mapping.
	ErrDomain = errors.New("domain error")
	// ErrLengthMismatch flags arithmetic on sequences of unequal length.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrUnitMismatch flags additive combination of quantities with
	// different dimensions.
	ErrUnitMismatch = errors.New("unit mismatch")
	// ErrTypeMismatch flags arithmetic mixing incompatible container and
	// scalar kinds.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrTooDeep flags trees exceeding MaxHeight.
	ErrTooDeep = errors.New("expression nested too deeply")
)

// DomainError creates an error wrapping ErrDomain.
func DomainError(format string, args ...interface{}) error {
	return wrap(ErrDomain, format, args...)
}

// TypeMismatchError creates an error wrapping ErrTypeMismatch.
func TypeMismatchError(format string, args ...interface{}) error {
	return wrap(ErrTypeMismatch, format, args...)
}

func lengthMismatch(format string, args ...interface{}) error {
	return wrap(ErrLengthMismatch, format, args...)
}

func unitMismatch(format string, args ...interface{}) error {
	return wrap(ErrUnitMismatch, format, args...)
}

func wrap(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
