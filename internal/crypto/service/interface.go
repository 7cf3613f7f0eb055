// Package service implements the cryptographic engines: secure randomness, key derivation,
// AES block cipher modes, RSA key codec, chunked RSA encryption and RSA signatures.
//
// Every engine is stateless and safe for concurrent use. Engines never log or cache key
// material and never return a partial buffer on failure.
package service

import (
	"crypto/rsa"
	"io"
	"math/big"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
)

// SecureRandom supplies cryptographically strong random bytes.
type SecureRandom interface {
	// GenerateBytes returns n random bytes. n must be greater than 0.
	GenerateBytes(n int) ([]byte, error)

	// Reader exposes the underlying source, for example for RSA key generation.
	Reader() io.Reader
}

// KeyDeriver turns a Password into cipher key bytes.
type KeyDeriver interface {
	// DeriveKey returns key bytes for the algorithm of spec. The caller owns the returned
	// slice and should scrub it with cryptoDomain.Zero after use.
	DeriveKey(spec cryptoDomain.TransformationSpec, password cryptoDomain.Password) ([]byte, error)
}

// SymmetricCipher encrypts and decrypts with AES in the mode and padding named by spec.
type SymmetricCipher interface {
	// Encrypt transforms content. iv may be nil for ECB; other modes require it.
	Encrypt(content []byte, spec cryptoDomain.TransformationSpec, key, iv []byte) ([]byte, error)

	// Decrypt reverses Encrypt. Any padding or block-size failure is reported as
	// cryptoDomain.ErrDecryptionFailed.
	Decrypt(content []byte, spec cryptoDomain.TransformationSpec, key, iv []byte) ([]byte, error)
}

// KeyCodec parses, builds, generates and serializes RSA keys.
type KeyCodec interface {
	DecodePublicKey(der []byte) (*rsa.PublicKey, error)
	DecodePrivateKey(der []byte) (*rsa.PrivateKey, error)
	PublicKeyFromComponents(modulus, exponent *big.Int) (*rsa.PublicKey, error)
	PublicKeyFromDecimal(modulus, exponent string) (*rsa.PublicKey, error)
	GenerateKeyPair(keyLengthBits int, rng io.Reader) (*cryptoDomain.KeyPair, error)
	EncodePublicKey(key *rsa.PublicKey) ([]byte, error)
	EncodePrivateKey(key *rsa.PrivateKey) ([]byte, error)
}

// RSACipher encrypts and decrypts data of any length by splitting it into RSA blocks.
type RSACipher interface {
	// Encrypt accepts an *rsa.PublicKey or an *rsa.PrivateKey. keyLengthBits may be 0 to use
	// the modulus size of key.
	Encrypt(data []byte, spec cryptoDomain.TransformationSpec, key any, keyLengthBits int) ([]byte, error)

	// Decrypt splits data on the fixed RSA block size (keyLengthBits/8 bytes).
	Decrypt(data []byte, spec cryptoDomain.TransformationSpec, key any, keyLengthBits int) ([]byte, error)
}

// Signer signs and verifies data with RSA keys.
type Signer interface {
	Sign(data []byte, algorithm string, privateKey *rsa.PrivateKey) ([]byte, error)

	// Verify reports a signature mismatch as (false, nil). Configuration and key errors are
	// returned as errors.
	Verify(data, signature []byte, algorithm string, publicKey *rsa.PublicKey) (bool, error)
}
