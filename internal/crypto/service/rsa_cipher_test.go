package service

import (
	"bytes"
	"crypto/rsa"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	apperrors "github.com/allisson/cipherkit/internal/errors"
)

func TestMaxRoundLength(t *testing.T) {
	assert.Equal(t, 53, MaxRoundLength(512))
	assert.Equal(t, 117, MaxRoundLength(1024))
	assert.Equal(t, 245, MaxRoundLength(2048))
}

func TestRSAChunkCipher_RoundTrip(t *testing.T) {
	priv1024, priv2048 := testKeys(t)
	c := NewRSACipher(NewSecureRandom(), 4)
	data := randomBytes(t, 500)

	tests := []struct {
		name           string
		transformation string
		encryptKey     any
		decryptKey     any
		bits           int
		blocks         int
	}{
		{"PKCS1 public to private 1024", cryptoDomain.RSAECBPKCS1Padding, &priv1024.PublicKey, priv1024, 1024, 5},
		{"PKCS1 public to private 2048", cryptoDomain.RSAECBPKCS1Padding, &priv2048.PublicKey, priv2048, 2048, 3},
		{"PKCS1 private to public", cryptoDomain.RSAECBPKCS1Padding, priv1024, &priv1024.PublicKey, 1024, 5},
		{"bare RSA defaults to PKCS1", cryptoDomain.AlgorithmRSA, &priv1024.PublicKey, priv1024, 1024, 5},
		{"key length taken from key", cryptoDomain.RSAECBPKCS1Padding, &priv1024.PublicKey, priv1024, 0, 5},
		{"OAEP SHA-1", cryptoDomain.RSAECBOAEPSHA1, &priv1024.PublicKey, priv1024, 1024, 6},
		{"OAEP SHA-256", cryptoDomain.RSAECBOAEPSHA256, &priv1024.PublicKey, priv1024, 1024, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := cryptoDomain.ParseTransformation(tt.transformation)

			ciphertext, err := c.Encrypt(data, spec, tt.encryptKey, tt.bits)
			require.NoError(t, err)
			blockSize := tt.bits / 8
			if blockSize == 0 {
				blockSize = 128
			}
			assert.Len(t, ciphertext, tt.blocks*blockSize)

			plaintext, err := c.Decrypt(ciphertext, spec, tt.decryptKey, tt.bits)
			require.NoError(t, err)
			assert.Equal(t, data, plaintext)
		})
	}
}

func TestRSAChunkCipher_BlockBoundaries(t *testing.T) {
	priv, _ := testKeys(t)
	c := NewRSACipher(NewSecureRandom(), 0)
	spec := cryptoDomain.ParseTransformation(cryptoDomain.RSAECBPKCS1Padding)

	for _, n := range []int{0, 1, 116, 117, 118, 234, 235} {
		data := randomBytes(t, n)
		ciphertext, err := c.Encrypt(data, spec, &priv.PublicKey, 1024)
		require.NoError(t, err)
		assert.Len(t, ciphertext, (n+116)/117*128, "length %d", n)

		plaintext, err := c.Decrypt(ciphertext, spec, priv, 1024)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(data, plaintext), "length %d", n)
	}
}

func TestRSAChunkCipher_NoPadding(t *testing.T) {
	priv, _ := testKeys(t)
	c := NewRSACipher(NewSecureRandom(), 2)
	spec := cryptoDomain.ParseTransformation(cryptoDomain.RSAECBNoPadding)

	data := randomBytes(t, 117)
	data[0] = 0x01

	for _, keys := range []struct {
		name string
		enc  any
		dec  any
	}{
		{"public to private", &priv.PublicKey, priv},
		{"private to public", priv, &priv.PublicKey},
	} {
		t.Run(keys.name, func(t *testing.T) {
			ciphertext, err := c.Encrypt(data, spec, keys.enc, 1024)
			require.NoError(t, err)
			require.Len(t, ciphertext, 128)

			block, err := c.Decrypt(ciphertext, spec, keys.dec, 1024)
			require.NoError(t, err)
			require.Len(t, block, 128)
			assert.Equal(t, make([]byte, 11), block[:11])
			assert.Equal(t, data, block[11:])
		})
	}
}

func TestRSAChunkCipher_Errors(t *testing.T) {
	priv, priv2048 := testKeys(t)
	c := NewRSACipher(NewSecureRandom(), 2)
	pkcs1 := cryptoDomain.ParseTransformation(cryptoDomain.RSAECBPKCS1Padding)
	oaep := cryptoDomain.ParseTransformation(cryptoDomain.RSAECBOAEPSHA256)

	ciphertext, err := c.Encrypt([]byte("secret"), pkcs1, &priv.PublicKey, 1024)
	require.NoError(t, err)

	t.Run("misaligned ciphertext", func(t *testing.T) {
		out, err := c.Decrypt(ciphertext[:100], pkcs1, priv, 1024)
		assert.ErrorIs(t, err, apperrors.ErrDecryption)
		assert.Nil(t, out)

		out, err = c.Decrypt(append(bytes.Clone(ciphertext), 0x00), pkcs1, priv, 1024)
		assert.ErrorIs(t, err, apperrors.ErrDecryption)
		assert.Nil(t, out)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		tampered := bytes.Clone(ciphertext)
		tampered[10] ^= 0xFF
		out, err := c.Decrypt(tampered, pkcs1, priv, 1024)
		assert.ErrorIs(t, err, apperrors.ErrDecryption)
		assert.Nil(t, out)
	})

	t.Run("wrong private key", func(t *testing.T) {
		out, err := c.Decrypt(ciphertext, pkcs1, priv2048, 0)
		assert.ErrorIs(t, err, apperrors.ErrDecryption)
		assert.Nil(t, out)
	})

	t.Run("key length mismatch", func(t *testing.T) {
		_, err := c.Encrypt([]byte("x"), pkcs1, &priv.PublicKey, 2048)
		assert.ErrorIs(t, err, apperrors.ErrKey)

		_, err = c.Decrypt(ciphertext, pkcs1, priv, 512)
		assert.ErrorIs(t, err, apperrors.ErrKey)
	})

	t.Run("wrong key type", func(t *testing.T) {
		_, err := c.Encrypt([]byte("x"), pkcs1, []byte("key"), 1024)
		assert.ErrorIs(t, err, apperrors.ErrKey)

		var nilKey *rsa.PublicKey
		_, err = c.Encrypt([]byte("x"), pkcs1, nilKey, 1024)
		assert.ErrorIs(t, err, apperrors.ErrKey)
	})

	t.Run("OAEP direction", func(t *testing.T) {
		_, err := c.Encrypt([]byte("x"), oaep, priv, 1024)
		assert.ErrorIs(t, err, apperrors.ErrKey)

		_, err = c.Decrypt(make([]byte, 128), oaep, &priv.PublicKey, 1024)
		assert.ErrorIs(t, err, apperrors.ErrKey)
	})

	t.Run("configuration", func(t *testing.T) {
		for _, transformation := range []string{
			cryptoDomain.AESCBCPKCS7Padding,
			"RSA/CBC/PKCS1Padding",
			"RSA/ECB/PKCS7Padding",
		} {
			spec := cryptoDomain.ParseTransformation(transformation)
			_, err := c.Encrypt([]byte("x"), spec, &priv.PublicKey, 1024)
			assert.ErrorIs(t, err, apperrors.ErrConfiguration, transformation)

			_, err = c.Decrypt(ciphertext, spec, priv, 1024)
			assert.ErrorIs(t, err, apperrors.ErrConfiguration, transformation)
		}
	})
}

func TestRSAChunkCipher_WorkerCountDoesNotChangeOutput(t *testing.T) {
	priv, _ := testKeys(t)
	spec := cryptoDomain.ParseTransformation(cryptoDomain.RSAECBPKCS1Padding)
	data := randomBytes(t, 117*20+3)

	// Private-key PKCS#1 encryption is deterministic, so outputs can be compared directly.
	serial, err := NewRSACipher(NewSecureRandom(), 1).Encrypt(data, spec, priv, 1024)
	require.NoError(t, err)
	parallel, err := NewRSACipher(NewSecureRandom(), 16).Encrypt(data, spec, priv, 1024)
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)

	plaintext, err := NewRSACipher(NewSecureRandom(), 16).Decrypt(parallel, spec, &priv.PublicKey, 1024)
	require.NoError(t, err)
	assert.Equal(t, data, plaintext)
}

func TestRSAChunkCipher_RoundTripProperty(t *testing.T) {
	priv, _ := testKeys(t)
	c := NewRSACipher(NewSecureRandom(), 4)
	spec := cryptoDomain.ParseTransformation(cryptoDomain.RSAECBPKCS1Padding)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 25

	properties := gopter.NewProperties(parameters)

	properties.Property("ciphertext is whole blocks and decrypts to the input", prop.ForAll(
		func(data []byte) bool {
			ciphertext, err := c.Encrypt(data, spec, &priv.PublicKey, 1024)
			if err != nil || len(ciphertext)%128 != 0 {
				return false
			}
			plaintext, err := c.Decrypt(ciphertext, spec, priv, 1024)
			return err == nil && bytes.Equal(data, plaintext)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}
