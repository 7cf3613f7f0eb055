package service

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	apperrors "github.com/allisson/cipherkit/internal/errors"
)

type unknownPassword struct {
	cryptoDomain.RawPassword
}

func TestPasswordKeyDeriver_Raw(t *testing.T) {
	d := NewKeyDeriver()
	spec := cryptoDomain.ParseTransformation(cryptoDomain.AESCBCPKCS7Padding)

	t.Run("valid lengths are copied verbatim", func(t *testing.T) {
		for _, n := range []int{16, 24, 32} {
			raw := make([]byte, n)
			raw[0] = 0x42
			key, err := d.DeriveKey(spec, cryptoDomain.RawPassword{Key: raw})
			require.NoError(t, err)
			assert.Equal(t, raw, key)

			key[1] = 0xFF
			assert.Zero(t, raw[1], "returned key must not alias the password")
		}
	})

	t.Run("invalid length is a key error", func(t *testing.T) {
		for _, n := range []int{0, 15, 17, 33} {
			_, err := d.DeriveKey(spec, cryptoDomain.RawPassword{Key: make([]byte, n)})
			assert.ErrorIs(t, err, apperrors.ErrKey)
		}
	})

	t.Run("text password", func(t *testing.T) {
		key, err := d.DeriveKey(spec, cryptoDomain.NewRawPassword("0123456789abcdef"))
		require.NoError(t, err)
		assert.Equal(t, []byte("0123456789abcdef"), key)
	})
}

func TestPasswordKeyDeriver_Derived(t *testing.T) {
	d := NewKeyDeriver()
	spec := cryptoDomain.ParseTransformation(cryptoDomain.AESCBCPKCS7Padding)

	tests := []struct {
		name       string
		password   cryptoDomain.DerivedPassword
		expectedHx string
	}{
		{
			// RFC 6070, c=1, truncated to 16 bytes.
			name: "hmac-sha1 one iteration",
			password: cryptoDomain.DerivedPassword{
				Password: "password", Salt: []byte("salt"), IterationCount: 1, KeyLengthBits: 128,
			},
			expectedHx: "0c60c80f961f0e71f3a9b524af601206",
		},
		{
			// RFC 6070, c=4096, truncated to 16 bytes.
			name: "hmac-sha1 4096 iterations",
			password: cryptoDomain.DerivedPassword{
				Password: "password", Salt: []byte("salt"), IterationCount: 4096, KeyLengthBits: 128,
			},
			expectedHx: "4b007901b765489abead49d926f721d0",
		},
		{
			name: "hmac-sha256",
			password: cryptoDomain.DerivedPassword{
				Password:       "password",
				Salt:           []byte("salt"),
				IterationCount: 1,
				KeyLengthBits:  256,
				PRF:            cryptoDomain.HMACSHA256,
			},
			expectedHx: "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b",
		},
		{
			name: "hmac-sha224",
			password: cryptoDomain.DerivedPassword{
				Password:       "password",
				Salt:           []byte("salt"),
				IterationCount: 1,
				KeyLengthBits:  256,
				PRF:            cryptoDomain.HMACSHA224,
			},
			expectedHx: "3c198cbdb9464b7857966bd05b7bc92bc1cc4e6e63155d4e490557fd85989497",
		},
		{
			name: "hmac-sha384",
			password: cryptoDomain.DerivedPassword{
				Password:       "password",
				Salt:           []byte("salt"),
				IterationCount: 1,
				KeyLengthBits:  256,
				PRF:            cryptoDomain.HMACSHA384,
			},
			expectedHx: "c0e14f06e49e32d73f9f52ddf1d0c5c7191609233631dadd76a567db42b78676",
		},
		{
			name: "hmac-sha512",
			password: cryptoDomain.DerivedPassword{
				Password:       "password",
				Salt:           []byte("salt"),
				IterationCount: 1,
				KeyLengthBits:  256,
				PRF:            cryptoDomain.HMACSHA512,
			},
			expectedHx: "867f70cf1ade02cff3752599a3a53dc4af34c7a669815ae5d513554e1c8cf252",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := d.DeriveKey(spec, tt.password)
			require.NoError(t, err)
			assert.Equal(t, mustHex(t, tt.expectedHx), key)
		})
	}
}

func TestPasswordKeyDeriver_Errors(t *testing.T) {
	d := NewKeyDeriver()
	aesSpec := cryptoDomain.ParseTransformation(cryptoDomain.AESCBCPKCS7Padding)
	valid := cryptoDomain.DerivedPassword{
		Password: "pw", Salt: []byte("salt"), IterationCount: 10, KeyLengthBits: 128,
	}

	tests := []struct {
		name     string
		spec     cryptoDomain.TransformationSpec
		password cryptoDomain.Password
		expected error
	}{
		{"zero iterations", aesSpec, withIterations(valid, 0), apperrors.ErrInvalidArgument},
		{"negative iterations", aesSpec, withIterations(valid, -5), apperrors.ErrInvalidArgument},
		{"zero key length", aesSpec, withKeyBits(valid, 0), apperrors.ErrInvalidArgument},
		{"key length not in bytes", aesSpec, withKeyBits(valid, 130), apperrors.ErrInvalidArgument},
		{"key length not valid for AES", aesSpec, withKeyBits(valid, 64), apperrors.ErrKey},
		{"unknown prf", aesSpec, withPRF(valid, "md4"), apperrors.ErrConfiguration},
		{"unknown algorithm", cryptoDomain.ParseTransformation("DES/CBC/PKCS5Padding"), valid, apperrors.ErrConfiguration},
		{"unknown password type", aesSpec, unknownPassword{}, apperrors.ErrKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := d.DeriveKey(tt.spec, tt.password)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, key)
		})
	}
}

func TestPasswordKeyDeriver_Deterministic(t *testing.T) {
	d := NewKeyDeriver()
	spec := cryptoDomain.ParseTransformation(cryptoDomain.AESCBCPKCS7Padding)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("same inputs derive the same key", prop.ForAll(
		func(password string, salt []byte, iterations int) bool {
			p := cryptoDomain.DerivedPassword{
				Password: password, Salt: salt, IterationCount: iterations, KeyLengthBits: 256,
			}
			k1, err1 := d.DeriveKey(spec, p)
			k2, err2 := d.DeriveKey(spec, p)
			return err1 == nil && err2 == nil && len(k1) == 32 && string(k1) == string(k2)
		},
		gen.AlphaString(),
		gen.SliceOf(gen.UInt8()),
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t)
}

func withIterations(p cryptoDomain.DerivedPassword, n int) cryptoDomain.DerivedPassword {
	p.IterationCount = n
	return p
}

func withKeyBits(p cryptoDomain.DerivedPassword, n int) cryptoDomain.DerivedPassword {
	p.KeyLengthBits = n
	return p
}

func withPRF(p cryptoDomain.DerivedPassword, prf cryptoDomain.PRF) cryptoDomain.DerivedPassword {
	p.PRF = prf
	return p
}
