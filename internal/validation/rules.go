// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/cipherkit/internal/errors"
)

// WrapValidationError wraps validation errors as ErrInvalidArgument
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidArgument, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// Transformation validates the shape of a transformation string: either a bare algorithm
// ("AES") or algorithm/mode/padding with no empty part. Whether the triple is supported is
// left to the cipher engines.
var Transformation = validation.NewStringRuleWithError(
	func(s string) bool {
		parts := strings.Split(s, "/")
		if len(parts) != 1 && len(parts) != 3 {
			return false
		}
		for _, p := range parts {
			if strings.TrimSpace(p) == "" {
				return false
			}
		}
		return true
	},
	validation.NewError(
		"validation_transformation",
		"must be an algorithm or an algorithm/mode/padding triple",
	),
)

// AESKeyBits validates an AES key size in bits.
var AESKeyBits = validation.In(128, 192, 256).Error("must be 128, 192 or 256")

// MultipleOf8 validates that an int is a whole number of bytes when read as a bit count.
var MultipleOf8 = validation.By(func(value interface{}) error {
	n, ok := value.(int)
	if !ok {
		return validation.NewError("validation_multiple_of_8_type", "must be an integer")
	}
	if n%8 != 0 {
		return validation.NewError("validation_multiple_of_8", "must be a multiple of 8")
	}
	return nil
})
