package service

import (
	"crypto/sha1" //nolint:gosec // PBKDF2WithHmacSHA1 compatibility
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	apperrors "github.com/allisson/cipherkit/internal/errors"
)

// PasswordKeyDeriver implements KeyDeriver for RawPassword and DerivedPassword.
type PasswordKeyDeriver struct{}

// NewKeyDeriver creates a new PasswordKeyDeriver.
func NewKeyDeriver() *PasswordKeyDeriver {
	return &PasswordKeyDeriver{}
}

// DeriveKey returns key bytes for spec.
//
// A RawPassword is copied verbatim and must already have a valid key length. A
// DerivedPassword is run through PBKDF2 and yields KeyLengthBits/8 bytes.
func (d *PasswordKeyDeriver) DeriveKey(
	spec cryptoDomain.TransformationSpec,
	password cryptoDomain.Password,
) ([]byte, error) {
	validLength, err := keyLengthValidator(spec)
	if err != nil {
		return nil, err
	}

	switch p := password.(type) {
	case cryptoDomain.RawPassword:
		if !validLength(len(p.Key)) {
			return nil, fmt.Errorf(
				"%w: %s requires a valid key length, got %d bytes",
				cryptoDomain.ErrInvalidKeySize,
				spec.Algorithm,
				len(p.Key),
			)
		}
		key := make([]byte, len(p.Key))
		copy(key, p.Key)
		return key, nil

	case cryptoDomain.DerivedPassword:
		if p.IterationCount <= 0 {
			return nil, apperrors.Wrap(apperrors.ErrInvalidArgument, "iteration count must be greater than 0")
		}
		if p.KeyLengthBits <= 0 || p.KeyLengthBits%8 != 0 {
			return nil, apperrors.Wrapf(
				apperrors.ErrInvalidArgument,
				"key length must be a positive multiple of 8 bits, got %d",
				p.KeyLengthBits,
			)
		}
		prf, err := prfHash(p.EffectivePRF())
		if err != nil {
			return nil, err
		}
		if !validLength(p.KeyLengthBits / 8) {
			return nil, fmt.Errorf(
				"%w: %s does not accept %d-bit keys",
				cryptoDomain.ErrInvalidKeySize,
				spec.Algorithm,
				p.KeyLengthBits,
			)
		}
		return pbkdf2.Key([]byte(p.Password), p.Salt, p.IterationCount, p.KeyLengthBits/8, prf), nil

	default:
		return nil, fmt.Errorf("%w: %T", cryptoDomain.ErrUnsupportedPassword, password)
	}
}

// keyLengthValidator returns the key length rule for the algorithm of spec.
func keyLengthValidator(spec cryptoDomain.TransformationSpec) (func(int) bool, error) {
	if spec.IsAES() {
		return isAESKeyLength, nil
	}
	return nil, fmt.Errorf("%w: %q", cryptoDomain.ErrUnsupportedAlgorithm, spec.Algorithm)
}

func isAESKeyLength(n int) bool {
	return n == 16 || n == 24 || n == 32
}

func prfHash(prf cryptoDomain.PRF) (func() hash.Hash, error) {
	switch prf {
	case cryptoDomain.HMACSHA1:
		return sha1.New, nil
	case cryptoDomain.HMACSHA224:
		return sha256.New224, nil
	case cryptoDomain.HMACSHA256:
		return sha256.New, nil
	case cryptoDomain.HMACSHA384:
		return sha512.New384, nil
	case cryptoDomain.HMACSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", cryptoDomain.ErrUnsupportedPRF, prf)
	}
}
