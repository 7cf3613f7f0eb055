package usecase

import (
	"context"
	"crypto/rsa"
	"encoding/base64"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	cryptoService "github.com/allisson/cipherkit/internal/crypto/service"
	apperrors "github.com/allisson/cipherkit/internal/errors"
	appValidation "github.com/allisson/cipherkit/internal/validation"
)

// asymmetricUseCase implements AsymmetricUseCase.
type asymmetricUseCase struct {
	keyCodec         cryptoService.KeyCodec
	cipher           cryptoService.RSACipher
	defaultKeyBits   int
	defaultTransform string
}

// NewAsymmetricUseCase creates an AsymmetricUseCase. defaultKeyBits is used by
// GenerateKeyPair when called with 0.
func NewAsymmetricUseCase(
	keyCodec cryptoService.KeyCodec,
	cipher cryptoService.RSACipher,
	defaultKeyBits int,
) AsymmetricUseCase {
	if defaultKeyBits == 0 {
		defaultKeyBits = cryptoDomain.RSADefaultKeyBits
	}
	return &asymmetricUseCase{
		keyCodec:         keyCodec,
		cipher:           cipher,
		defaultKeyBits:   defaultKeyBits,
		defaultTransform: cryptoDomain.RSAECBPKCS1Padding,
	}
}

// GenerateKeyPair generates an RSA key pair.
func (a *asymmetricUseCase) GenerateKeyPair(ctx context.Context, keyLengthBits int) (*cryptoDomain.KeyPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if keyLengthBits == 0 {
		keyLengthBits = a.defaultKeyBits
	}

	err := validation.Validate(keyLengthBits,
		validation.Min(cryptoDomain.RSAMinKeyBits),
		validation.Max(cryptoDomain.RSAMaxKeyBits),
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	return a.keyCodec.GenerateKeyPair(keyLengthBits, nil)
}

// GenerateKeyPairBase64 generates a key pair and returns both halves as base64 text.
func (a *asymmetricUseCase) GenerateKeyPairBase64(
	ctx context.Context,
	keyLengthBits int,
) (string, string, error) {
	keyPair, err := a.GenerateKeyPair(ctx, keyLengthBits)
	if err != nil {
		return "", "", err
	}

	publicKey, err := cryptoService.EncodePublicKeyToBase64(a.keyCodec, keyPair.PublicKey)
	if err != nil {
		return "", "", err
	}
	privateKey, err := cryptoService.EncodePrivateKeyToBase64(a.keyCodec, keyPair.PrivateKey)
	if err != nil {
		return "", "", err
	}
	return publicKey, privateKey, nil
}

// LoadPublicKey decodes public key text.
func (a *asymmetricUseCase) LoadPublicKey(ctx context.Context, text string) (*rsa.PublicKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cryptoService.LoadPublicKey(a.keyCodec, text)
}

// LoadPrivateKey decodes private key text.
func (a *asymmetricUseCase) LoadPrivateKey(ctx context.Context, text string) (*rsa.PrivateKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cryptoService.LoadPrivateKey(a.keyCodec, text)
}

// Encrypt encrypts data with the RSA cipher.
func (a *asymmetricUseCase) Encrypt(
	ctx context.Context,
	data []byte,
	transformation string,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	spec, err := a.prepare(ctx, transformation, key)
	if err != nil {
		return nil, err
	}
	return a.cipher.Encrypt(data, spec, key, keyLengthBits)
}

// Decrypt decrypts data with the RSA cipher.
func (a *asymmetricUseCase) Decrypt(
	ctx context.Context,
	data []byte,
	transformation string,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	spec, err := a.prepare(ctx, transformation, key)
	if err != nil {
		return nil, err
	}
	return a.cipher.Decrypt(data, spec, key, keyLengthBits)
}

// EncryptToBase64 encrypts data and encodes the ciphertext as base64.
func (a *asymmetricUseCase) EncryptToBase64(
	ctx context.Context,
	data []byte,
	transformation string,
	key any,
	keyLengthBits int,
) (string, error) {
	ciphertext, err := a.Encrypt(ctx, data, transformation, key, keyLengthBits)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptFromBase64 decodes base64 data and decrypts it.
func (a *asymmetricUseCase) DecryptFromBase64(
	ctx context.Context,
	data string,
	transformation string,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	ciphertext, err := decodeBase64("data", data)
	if err != nil {
		return nil, err
	}
	return a.Decrypt(ctx, ciphertext, transformation, key, keyLengthBits)
}

func (a *asymmetricUseCase) prepare(
	ctx context.Context,
	transformation string,
	key any,
) (cryptoDomain.TransformationSpec, error) {
	if err := ctx.Err(); err != nil {
		return cryptoDomain.TransformationSpec{}, err
	}
	if key == nil {
		return cryptoDomain.TransformationSpec{}, apperrors.Wrap(apperrors.ErrInvalidArgument, "key is required")
	}
	return resolveTransformation(transformation, a.defaultTransform)
}
