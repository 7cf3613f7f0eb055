// Package usecase implements business logic orchestration for cryptographic operations.
//
// # Key Components
//
// The package includes:
//   - SymmetricUseCase: AES encryption with raw or PBKDF2-derived keys
//   - AsymmetricUseCase: RSA key generation, key loading and chunked encryption
//   - SignatureUseCase: RSA signing and verification
//   - Metrics decorators recording operation counts and durations
//
// # Key Handling
//
// Derived keys exist only for the duration of one call and are zeroed before the call
// returns, whether it succeeded or not.
package usecase

import (
	"context"
	"encoding/base64"
	"fmt"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	cryptoService "github.com/allisson/cipherkit/internal/crypto/service"
	apperrors "github.com/allisson/cipherkit/internal/errors"
	appValidation "github.com/allisson/cipherkit/internal/validation"
)

// symmetricUseCase implements SymmetricUseCase.
type symmetricUseCase struct {
	keyDeriver            cryptoService.KeyDeriver
	cipher                cryptoService.SymmetricCipher
	rng                   cryptoService.SecureRandom
	defaultTransformation string
}

// NewSymmetricUseCase creates a SymmetricUseCase. defaultTransformation is used whenever a
// caller passes an empty transformation.
func NewSymmetricUseCase(
	keyDeriver cryptoService.KeyDeriver,
	cipher cryptoService.SymmetricCipher,
	rng cryptoService.SecureRandom,
	defaultTransformation string,
) SymmetricUseCase {
	return &symmetricUseCase{
		keyDeriver:            keyDeriver,
		cipher:                cipher,
		rng:                   rng,
		defaultTransformation: defaultTransformation,
	}
}

// Encrypt encrypts content.
func (s *symmetricUseCase) Encrypt(
	ctx context.Context,
	content []byte,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) ([]byte, error) {
	return s.withKey(ctx, transformation, password,
		func(spec cryptoDomain.TransformationSpec, key []byte) ([]byte, error) {
			return s.cipher.Encrypt(content, spec, key, iv)
		},
	)
}

// Decrypt decrypts content.
func (s *symmetricUseCase) Decrypt(
	ctx context.Context,
	content []byte,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) ([]byte, error) {
	return s.withKey(ctx, transformation, password,
		func(spec cryptoDomain.TransformationSpec, key []byte) ([]byte, error) {
			return s.cipher.Decrypt(content, spec, key, iv)
		},
	)
}

// EncryptToBase64 encrypts content and encodes the result as base64.
func (s *symmetricUseCase) EncryptToBase64(
	ctx context.Context,
	content []byte,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) (string, error) {
	ciphertext, err := s.Encrypt(ctx, content, transformation, password, iv)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// EncryptString encrypts the UTF-8 bytes of content.
func (s *symmetricUseCase) EncryptString(
	ctx context.Context,
	content string,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) (string, error) {
	return s.EncryptToBase64(ctx, []byte(content), transformation, password, iv)
}

// DecryptFromBase64 decodes base64 content and decrypts it.
func (s *symmetricUseCase) DecryptFromBase64(
	ctx context.Context,
	content string,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) ([]byte, error) {
	ciphertext, err := decodeBase64("content", content)
	if err != nil {
		return nil, err
	}
	return s.Decrypt(ctx, ciphertext, transformation, password, iv)
}

// DecryptToString decrypts content into a string.
func (s *symmetricUseCase) DecryptToString(
	ctx context.Context,
	content []byte,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) (string, error) {
	plaintext, err := s.Decrypt(ctx, content, transformation, password, iv)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// DecryptFromBase64ToString decodes base64 content and decrypts it into a string.
func (s *symmetricUseCase) DecryptFromBase64ToString(
	ctx context.Context,
	content string,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) (string, error) {
	plaintext, err := s.DecryptFromBase64(ctx, content, transformation, password, iv)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// GenerateKey returns a random AES key.
func (s *symmetricUseCase) GenerateKey(ctx context.Context, keyLengthBits int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	err := validation.Validate(keyLengthBits,
		validation.Required.Error("key length is required"),
		appValidation.AESKeyBits,
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}
	return cryptoService.GenerateAESKey(s.rng, keyLengthBits)
}

// GenerateIV returns length random bytes.
func (s *symmetricUseCase) GenerateIV(ctx context.Context, length int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cryptoService.GenerateIV(s.rng, length)
}

// withKey resolves the transformation, derives the key, runs fn and zeroes the key.
func (s *symmetricUseCase) withKey(
	ctx context.Context,
	transformation string,
	password cryptoDomain.Password,
	fn func(spec cryptoDomain.TransformationSpec, key []byte) ([]byte, error),
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spec, err := resolveTransformation(transformation, s.defaultTransformation)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	key, err := s.keyDeriver.DeriveKey(spec, password)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	return fn(spec, key)
}

// resolveTransformation applies the default and validates the result. A missing or padded
// value is an invalid argument; a string of the wrong shape is a configuration error, like any
// other transformation the engines do not know.
func resolveTransformation(transformation, fallback string) (cryptoDomain.TransformationSpec, error) {
	if transformation == "" {
		transformation = fallback
	}
	err := validation.Validate(transformation,
		validation.Required.Error("transformation is required"),
		appValidation.NoWhitespace,
	)
	if err != nil {
		return cryptoDomain.TransformationSpec{}, apperrors.Wrapf(
			apperrors.ErrInvalidArgument,
			"transformation %q: %v",
			transformation,
			err,
		)
	}
	if err := validation.Validate(transformation, appValidation.Transformation); err != nil {
		return cryptoDomain.TransformationSpec{}, fmt.Errorf(
			"%w: %q: %v",
			cryptoDomain.ErrMalformedTransformation,
			transformation,
			err,
		)
	}
	return cryptoDomain.ParseTransformation(transformation), nil
}

// validatePassword checks the fields of a DerivedPassword. Raw keys are checked by the
// deriver against the algorithm.
func validatePassword(password cryptoDomain.Password) error {
	switch p := password.(type) {
	case nil:
		return apperrors.Wrap(apperrors.ErrInvalidArgument, "password is required")
	case cryptoDomain.DerivedPassword:
		err := validation.ValidateStruct(&p,
			validation.Field(&p.IterationCount,
				validation.Required.Error("iteration count is required"),
				validation.Min(1),
			),
			validation.Field(&p.KeyLengthBits,
				validation.Required.Error("key length is required"),
				validation.Min(8),
				appValidation.MultipleOf8,
			),
		)
		return appValidation.WrapValidationError(err)
	default:
		return nil
	}
}

// decodeBase64 validates and decodes a base64 argument. Empty text decodes to no bytes.
func decodeBase64(field, text string) ([]byte, error) {
	err := validation.Validate(text, appValidation.Base64)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidArgument, "%s: %v", field, err)
	}
	return base64.StdEncoding.DecodeString(text)
}
