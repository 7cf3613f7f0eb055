package service

import (
	"crypto/subtle"
	"fmt"
	"strings"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
)

// padding adds and removes block padding. unpad reports every failure as
// cryptoDomain.ErrDecryptionFailed so callers cannot tell a bad key from bad padding.
type padding interface {
	pad(src []byte, blockSize int) ([]byte, error)
	unpad(src []byte, blockSize int) ([]byte, error)
}

func lookupPadding(name string, rng SecureRandom) (padding, error) {
	switch {
	case strings.EqualFold(name, cryptoDomain.PaddingNone):
		return noPadding{}, nil
	case strings.EqualFold(name, cryptoDomain.PaddingPKCS5),
		strings.EqualFold(name, cryptoDomain.PaddingPKCS7):
		return pkcs7Padding{}, nil
	case strings.EqualFold(name, cryptoDomain.PaddingISO10126):
		return iso10126Padding{rng: rng}, nil
	default:
		return nil, fmt.Errorf("%w: %q", cryptoDomain.ErrUnsupportedPadding, name)
	}
}

type noPadding struct{}

func (noPadding) pad(src []byte, _ int) ([]byte, error) {
	out := make([]byte, len(src))
	copy(out, src)
	return out, nil
}

func (noPadding) unpad(src []byte, _ int) ([]byte, error) {
	return src, nil
}

// pkcs7Padding appends n bytes of value n, 1 <= n <= blockSize.
type pkcs7Padding struct{}

func (pkcs7Padding) pad(src []byte, blockSize int) ([]byte, error) {
	n := blockSize - len(src)%blockSize
	out := make([]byte, len(src)+n)
	copy(out, src)
	for i := len(src); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out, nil
}

func (pkcs7Padding) unpad(src []byte, blockSize int) ([]byte, error) {
	n, err := trailingPadLength(src, blockSize)
	if err != nil {
		return nil, err
	}

	expected := make([]byte, n)
	for i := range expected {
		expected[i] = byte(n)
	}
	if subtle.ConstantTimeCompare(src[len(src)-n:], expected) != 1 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return src[:len(src)-n], nil
}

// iso10126Padding appends n-1 random bytes followed by the byte n. Only the last byte is
// checked on removal.
type iso10126Padding struct {
	rng SecureRandom
}

func (p iso10126Padding) pad(src []byte, blockSize int) ([]byte, error) {
	n := blockSize - len(src)%blockSize
	out := make([]byte, len(src)+n)
	copy(out, src)
	if n > 1 {
		filler, err := p.rng.GenerateBytes(n - 1)
		if err != nil {
			return nil, err
		}
		copy(out[len(src):], filler)
	}
	out[len(out)-1] = byte(n)
	return out, nil
}

func (iso10126Padding) unpad(src []byte, blockSize int) ([]byte, error) {
	n, err := trailingPadLength(src, blockSize)
	if err != nil {
		return nil, err
	}
	return src[:len(src)-n], nil
}

func trailingPadLength(src []byte, blockSize int) (int, error) {
	if len(src) == 0 || len(src)%blockSize != 0 {
		return 0, cryptoDomain.ErrDecryptionFailed
	}
	n := int(src[len(src)-1])
	if n == 0 || n > blockSize {
		return 0, cryptoDomain.ErrDecryptionFailed
	}
	return n, nil
}
