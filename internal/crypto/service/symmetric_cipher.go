package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
)

// AESCipher implements SymmetricCipher for the AES family.
//
// Supported modes are ECB, CBC, CFB (128-bit feedback), OFB, CTR and CTS; supported paddings
// are NoPadding, PKCS5Padding/PKCS7Padding and ISO10126Padding. Padding is applied before the
// mode runs, so AES/CTR/PKCS5Padding pads to a whole block just like the JCA providers do.
//
// Only padded modes can detect a wrong key or IV. With NoPadding a wrong key silently yields
// garbage, so a successful Decrypt is not proof of integrity.
//
// Thread safety: the cipher holds no mutable state and is safe for concurrent use.
type AESCipher struct {
	rng SecureRandom
}

// NewAESCipher creates an AESCipher. rng feeds ISO10126 padding filler.
func NewAESCipher(rng SecureRandom) *AESCipher {
	return &AESCipher{rng: rng}
}

// Encrypt encrypts content with key and the optional iv.
func (c *AESCipher) Encrypt(
	content []byte,
	spec cryptoDomain.TransformationSpec,
	key, iv []byte,
) ([]byte, error) {
	block, mode, pad, err := c.prepare(spec, key, iv)
	if err != nil {
		return nil, err
	}

	padded, err := pad.pad(content, block.BlockSize())
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(padded)

	out, err := mode.encrypt(block, iv, padded)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt with %s: %w", spec, err)
	}
	return out, nil
}

// Decrypt decrypts content with key and the optional iv.
func (c *AESCipher) Decrypt(
	content []byte,
	spec cryptoDomain.TransformationSpec,
	key, iv []byte,
) ([]byte, error) {
	block, mode, pad, err := c.prepare(spec, key, iv)
	if err != nil {
		return nil, err
	}

	raw, err := mode.decrypt(block, iv, content)
	if err != nil {
		return nil, err
	}

	plaintext, err := pad.unpad(raw, block.BlockSize())
	if err != nil {
		cryptoDomain.Zero(raw)
		return nil, err
	}
	return plaintext, nil
}

// prepare resolves the transformation and validates key and IV before any data is touched.
func (c *AESCipher) prepare(
	spec cryptoDomain.TransformationSpec,
	key, iv []byte,
) (cipher.Block, blockMode, padding, error) {
	if !spec.IsAES() {
		return nil, nil, nil, fmt.Errorf("%w: %q", cryptoDomain.ErrUnsupportedAlgorithm, spec.Algorithm)
	}

	mode, err := lookupMode(spec.Mode)
	if err != nil {
		return nil, nil, nil, err
	}

	pad, err := lookupPadding(spec.Padding, c.rng)
	if err != nil {
		return nil, nil, nil, err
	}

	if !isAESKeyLength(len(key)) {
		return nil, nil, nil, fmt.Errorf(
			"%w: AES key must be 16, 24 or 32 bytes, got %d",
			cryptoDomain.ErrInvalidKeySize,
			len(key),
		)
	}

	if spec.RequiresIV() {
		if iv == nil {
			return nil, nil, nil, fmt.Errorf("%w: mode %s", cryptoDomain.ErrIVRequired, spec.Mode)
		}
		if len(iv) != aes.BlockSize {
			return nil, nil, nil, fmt.Errorf(
				"%w: expected %d bytes, got %d",
				cryptoDomain.ErrInvalidIVSize,
				aes.BlockSize,
				len(iv),
			)
		}
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidKeySize, err)
	}
	return block, mode, pad, nil
}
