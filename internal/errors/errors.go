// Package errors provides the error taxonomy shared by every cryptographic component.
// Callers branch on these sentinels with Is rather than matching error strings.
package errors

import (
	"errors"
	"fmt"
)

// Standard error kinds for cryptographic operations.
var (
	// ErrConfiguration indicates an unsupported or unknown algorithm, mode, padding or
	// signature name. It is never retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidArgument indicates a precondition violation (non-positive length, empty
	// required field, misaligned input for an unpadded mode).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrKey indicates key material of the wrong length or type for the requested operation.
	ErrKey = errors.New("key error")

	// ErrKeyFormat indicates malformed encoded or PEM-like key input.
	ErrKeyFormat = errors.New("key format error")

	// ErrDecryption indicates the data could not be decrypted with the given key and
	// parameters. It does not distinguish a wrong key from corrupted data.
	ErrDecryption = errors.New("decryption error")

	// ErrIO indicates a failure while reading key material from a stream.
	ErrIO = errors.New("io error")
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
