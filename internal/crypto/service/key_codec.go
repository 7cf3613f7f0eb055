package service

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"io"
	"math/big"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	apperrors "github.com/allisson/cipherkit/internal/errors"
)

// PEM block types written by EncodePublicKeyToPEM and EncodePrivateKeyToPEM.
const (
	pemPublicKeyType  = "PUBLIC KEY"
	pemPrivateKeyType = "PRIVATE KEY"
)

// RSAKeyCodec implements KeyCodec.
type RSAKeyCodec struct {
	rng SecureRandom
}

// NewKeyCodec creates an RSAKeyCodec. rng is used when GenerateKeyPair is called without a
// source of its own.
func NewKeyCodec(rng SecureRandom) *RSAKeyCodec {
	return &RSAKeyCodec{rng: rng}
}

// DecodePublicKey parses an X.509 SubjectPublicKeyInfo, falling back to a bare PKCS#1
// RSAPublicKey.
func (c *RSAKeyCodec) DecodePublicKey(der []byte) (*rsa.PublicKey, error) {
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		pkcs1, pkcs1Err := x509.ParsePKCS1PublicKey(der)
		if pkcs1Err != nil {
			return nil, fmt.Errorf("%w: public key: %v", cryptoDomain.ErrMalformedKey, err)
		}
		return pkcs1, nil
	}

	publicKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: expected RSA public key, got %T", cryptoDomain.ErrInvalidKeyType, parsed)
	}
	return publicKey, nil
}

// DecodePrivateKey parses a PKCS#8 PrivateKeyInfo, falling back to PKCS#1 RSAPrivateKey.
func (c *RSAKeyCodec) DecodePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		pkcs1, pkcs1Err := x509.ParsePKCS1PrivateKey(der)
		if pkcs1Err != nil {
			return nil, fmt.Errorf("%w: private key: %v", cryptoDomain.ErrMalformedKey, err)
		}
		return pkcs1, nil
	}

	privateKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: expected RSA private key, got %T", cryptoDomain.ErrInvalidKeyType, parsed)
	}
	return privateKey, nil
}

// PublicKeyFromComponents builds a public key from its modulus and public exponent.
//
// Only public keys can be rebuilt this way. A private key needs more than (modulus,
// exponent) and must be decoded from its PKCS#8 form instead.
func (c *RSAKeyCodec) PublicKeyFromComponents(modulus, exponent *big.Int) (*rsa.PublicKey, error) {
	if modulus == nil || exponent == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidArgument, "modulus and exponent are required")
	}
	if modulus.Sign() <= 0 || modulus.Bit(0) == 0 {
		return nil, fmt.Errorf("%w: modulus must be a positive odd integer", cryptoDomain.ErrInvalidKeyType)
	}
	if !exponent.IsInt64() || exponent.Bit(0) == 0 ||
		exponent.Int64() < 3 || exponent.Int64() > 1<<31-1 {
		return nil, fmt.Errorf("%w: unsupported public exponent %s", cryptoDomain.ErrInvalidKeyType, exponent)
	}

	return &rsa.PublicKey{
		N: new(big.Int).Set(modulus),
		E: int(exponent.Int64()),
	}, nil
}

// PublicKeyFromDecimal parses decimal modulus and exponent strings.
func (c *RSAKeyCodec) PublicKeyFromDecimal(modulus, exponent string) (*rsa.PublicKey, error) {
	n, ok := new(big.Int).SetString(modulus, 10)
	if !ok {
		return nil, fmt.Errorf("%w: modulus is not a decimal integer", cryptoDomain.ErrMalformedKey)
	}
	e, ok := new(big.Int).SetString(exponent, 10)
	if !ok {
		return nil, fmt.Errorf("%w: exponent is not a decimal integer", cryptoDomain.ErrMalformedKey)
	}
	return c.PublicKeyFromComponents(n, e)
}

// GenerateKeyPair generates an RSA key pair of keyLengthBits bits, or the default 1024 when
// keyLengthBits is 0. rng may be nil to use the codec's secure random source.
func (c *RSAKeyCodec) GenerateKeyPair(keyLengthBits int, rng io.Reader) (*cryptoDomain.KeyPair, error) {
	if keyLengthBits == 0 {
		keyLengthBits = cryptoDomain.RSADefaultKeyBits
	}
	if keyLengthBits < cryptoDomain.RSAMinKeyBits || keyLengthBits > cryptoDomain.RSAMaxKeyBits {
		return nil, fmt.Errorf(
			"%w: RSA key length must be between %d and %d bits, got %d",
			cryptoDomain.ErrInvalidKeyLength,
			cryptoDomain.RSAMinKeyBits,
			cryptoDomain.RSAMaxKeyBits,
			keyLengthBits,
		)
	}
	if rng == nil {
		rng = c.rng.Reader()
	}

	privateKey, err := rsa.GenerateKey(rng, keyLengthBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}
	return cryptoDomain.NewKeyPair(privateKey), nil
}

// EncodePublicKey serializes key as X.509 SubjectPublicKeyInfo DER.
func (c *RSAKeyCodec) EncodePublicKey(key *rsa.PublicKey) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: public key is nil", cryptoDomain.ErrInvalidKeyType)
	}
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidKeyType, err)
	}
	return der, nil
}

// EncodePrivateKey serializes key as PKCS#8 DER.
func (c *RSAKeyCodec) EncodePrivateKey(key *rsa.PrivateKey) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: private key is nil", cryptoDomain.ErrInvalidKeyType)
	}
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidKeyType, err)
	}
	return der, nil
}

// EncodePublicKeyToBase64 returns the base64 text of the X.509 encoding.
func EncodePublicKeyToBase64(codec KeyCodec, key *rsa.PublicKey) (string, error) {
	der, err := codec.EncodePublicKey(key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(der), nil
}

// EncodePrivateKeyToBase64 returns the base64 text of the PKCS#8 encoding.
func EncodePrivateKeyToBase64(codec KeyCodec, key *rsa.PrivateKey) (string, error) {
	der, err := codec.EncodePrivateKey(key)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(der)
	return base64.StdEncoding.EncodeToString(der), nil
}

// LoadPublicKey decodes a base64 or PEM-like public key.
func LoadPublicKey(codec KeyCodec, text string) (*rsa.PublicKey, error) {
	der, err := LoadKeyFromPemLikeText(text)
	if err != nil {
		return nil, err
	}
	return codec.DecodePublicKey(der)
}

// LoadPrivateKey decodes a base64 or PEM-like private key.
func LoadPrivateKey(codec KeyCodec, text string) (*rsa.PrivateKey, error) {
	der, err := LoadKeyFromPemLikeText(text)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(der)
	return codec.DecodePrivateKey(der)
}

// EncodePublicKeyToPEM wraps the X.509 encoding in a "PUBLIC KEY" PEM block.
func EncodePublicKeyToPEM(codec KeyCodec, key *rsa.PublicKey) ([]byte, error) {
	der, err := codec.EncodePublicKey(key)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemPublicKeyType, Bytes: der}), nil
}

// EncodePrivateKeyToPEM wraps the PKCS#8 encoding in a "PRIVATE KEY" PEM block.
func EncodePrivateKeyToPEM(codec KeyCodec, key *rsa.PrivateKey) ([]byte, error) {
	der, err := codec.EncodePrivateKey(key)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(der)
	return pem.EncodeToMemory(&pem.Block{Type: pemPrivateKeyType, Bytes: der}), nil
}
