// Package usecase defines the business logic interfaces for cryptographic operations.
//
// Use cases sit between callers (the CLI) and the engines in the service package. They
// resolve default transformations, validate input, derive and scrub keys and provide the
// text and base64 conveniences callers usually want.
package usecase

import (
	"context"
	"crypto/rsa"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
)

// SymmetricUseCase defines AES encryption with keys derived from a Password.
//
// An empty transformation selects the configured default. iv may be nil for ECB. Every
// call derives its key, runs the cipher and zeroes the key before returning.
type SymmetricUseCase interface {
	// Encrypt encrypts content.
	Encrypt(
		ctx context.Context,
		content []byte,
		transformation string,
		password cryptoDomain.Password,
		iv []byte,
	) ([]byte, error)

	// Decrypt decrypts content. Failures caused by a wrong key, IV or corrupted data are
	// all reported as ErrDecryption.
	Decrypt(
		ctx context.Context,
		content []byte,
		transformation string,
		password cryptoDomain.Password,
		iv []byte,
	) ([]byte, error)

	// EncryptToBase64 encrypts content and returns standard base64 without line breaks.
	EncryptToBase64(
		ctx context.Context,
		content []byte,
		transformation string,
		password cryptoDomain.Password,
		iv []byte,
	) (string, error)

	// EncryptString encrypts the UTF-8 bytes of content and returns base64.
	EncryptString(
		ctx context.Context,
		content string,
		transformation string,
		password cryptoDomain.Password,
		iv []byte,
	) (string, error)

	// DecryptFromBase64 decodes content and decrypts it.
	DecryptFromBase64(
		ctx context.Context,
		content string,
		transformation string,
		password cryptoDomain.Password,
		iv []byte,
	) ([]byte, error)

	// DecryptToString decrypts content and returns the plaintext as a string.
	DecryptToString(
		ctx context.Context,
		content []byte,
		transformation string,
		password cryptoDomain.Password,
		iv []byte,
	) (string, error)

	// DecryptFromBase64ToString decodes, decrypts and returns the plaintext as a string.
	DecryptFromBase64ToString(
		ctx context.Context,
		content string,
		transformation string,
		password cryptoDomain.Password,
		iv []byte,
	) (string, error)

	// GenerateKey returns a random AES key of keyLengthBits (128, 192 or 256).
	GenerateKey(ctx context.Context, keyLengthBits int) ([]byte, error)

	// GenerateIV returns length random bytes for use as an IV.
	GenerateIV(ctx context.Context, length int) ([]byte, error)
}

// AsymmetricUseCase defines RSA key generation, key loading and chunked encryption.
//
// key arguments accept an *rsa.PublicKey or an *rsa.PrivateKey. keyLengthBits may be 0
// to use the modulus size of the key.
type AsymmetricUseCase interface {
	// GenerateKeyPair generates a key pair. keyLengthBits 0 selects the configured default.
	GenerateKeyPair(ctx context.Context, keyLengthBits int) (*cryptoDomain.KeyPair, error)

	// GenerateKeyPairBase64 generates a key pair and returns the X.509 public key and the
	// PKCS#8 private key as base64 text.
	GenerateKeyPairBase64(ctx context.Context, keyLengthBits int) (publicKey, privateKey string, err error)

	// LoadPublicKey decodes base64 or PEM-like public key text.
	LoadPublicKey(ctx context.Context, text string) (*rsa.PublicKey, error)

	// LoadPrivateKey decodes base64 or PEM-like private key text.
	LoadPrivateKey(ctx context.Context, text string) (*rsa.PrivateKey, error)

	// Encrypt encrypts data of any length.
	Encrypt(ctx context.Context, data []byte, transformation string, key any, keyLengthBits int) ([]byte, error)

	// Decrypt decrypts data produced by Encrypt.
	Decrypt(ctx context.Context, data []byte, transformation string, key any, keyLengthBits int) ([]byte, error)

	// EncryptToBase64 encrypts data and returns base64.
	EncryptToBase64(
		ctx context.Context,
		data []byte,
		transformation string,
		key any,
		keyLengthBits int,
	) (string, error)

	// DecryptFromBase64 decodes base64 data and decrypts it.
	DecryptFromBase64(
		ctx context.Context,
		data string,
		transformation string,
		key any,
		keyLengthBits int,
	) ([]byte, error)
}

// SignatureUseCase defines RSA signing and verification.
type SignatureUseCase interface {
	// Sign signs data with the named algorithm, for example SHA256withRSA.
	Sign(ctx context.Context, data []byte, algorithm string, key *rsa.PrivateKey) ([]byte, error)

	// SignToBase64 signs data and returns the signature as base64.
	SignToBase64(ctx context.Context, data []byte, algorithm string, key *rsa.PrivateKey) (string, error)

	// Verify reports whether signature matches data. A mismatch is (false, nil); an unknown
	// algorithm or a missing key is returned as an error.
	Verify(ctx context.Context, data, signature []byte, algorithm string, key *rsa.PublicKey) (bool, error)

	// VerifyBase64 is Verify with a base64 signature. Text that is not base64 is
	// ErrInvalidArgument.
	VerifyBase64(ctx context.Context, data []byte, signature, algorithm string, key *rsa.PublicKey) (bool, error)
}
