package service

import (
	"crypto/rand"
	"fmt"
	"io"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	apperrors "github.com/allisson/cipherkit/internal/errors"
)

// CryptoRandom implements SecureRandom on top of crypto/rand, which is safe for concurrent use.
type CryptoRandom struct {
	source io.Reader
}

// NewSecureRandom returns a SecureRandom backed by crypto/rand.Reader.
func NewSecureRandom() *CryptoRandom {
	return &CryptoRandom{source: rand.Reader}
}

// GenerateBytes returns n random bytes.
func (r *CryptoRandom) GenerateBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, cryptoDomain.ErrInvalidLength
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(r.source, b); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrIO, "failed to generate random bytes: %v", err)
	}
	return b, nil
}

// Reader returns the underlying entropy source.
func (r *CryptoRandom) Reader() io.Reader {
	return r.source
}

// GenerateIV returns a random initialization vector of length bytes.
func GenerateIV(rng SecureRandom, length int) ([]byte, error) {
	return rng.GenerateBytes(length)
}

// GenerateAESKey returns random key bytes for AES-128, AES-192 or AES-256.
func GenerateAESKey(rng SecureRandom, keyLengthBits int) ([]byte, error) {
	if keyLengthBits%8 != 0 || !isAESKeyLength(keyLengthBits/8) {
		return nil, fmt.Errorf("%w: %d bits", cryptoDomain.ErrInvalidKeyLength, keyLengthBits)
	}
	return rng.GenerateBytes(keyLengthBits / 8)
}
