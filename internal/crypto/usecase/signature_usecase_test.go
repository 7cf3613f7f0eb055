package usecase

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	cryptoService "github.com/allisson/cipherkit/internal/crypto/service"
	serviceMocks "github.com/allisson/cipherkit/internal/crypto/service/mocks"
	apperrors "github.com/allisson/cipherkit/internal/errors"
)

func TestSignatureUseCase_SignAndVerify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := NewSignatureUseCase(cryptoService.NewSigner())
	keyPair := sharedKeyPair(t)
	data := []byte("message to sign")

	t.Run("Raw", func(t *testing.T) {
		t.Parallel()

		signature, err := uc.Sign(ctx, data, cryptoDomain.SHA256WithRSA, keyPair.PrivateKey)
		require.NoError(t, err)
		assert.Len(t, signature, keyPair.KeyLengthBytes())

		ok, err := uc.Verify(ctx, data, signature, cryptoDomain.SHA256WithRSA, keyPair.PublicKey)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Base64", func(t *testing.T) {
		t.Parallel()

		signature, err := uc.SignToBase64(ctx, data, cryptoDomain.SHA1WithRSA, keyPair.PrivateKey)
		require.NoError(t, err)

		ok, err := uc.VerifyBase64(ctx, data, signature, cryptoDomain.SHA1WithRSA, keyPair.PublicKey)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("MismatchIsNotAnError", func(t *testing.T) {
		t.Parallel()

		signature, err := uc.SignToBase64(ctx, data, cryptoDomain.SHA512WithRSA, keyPair.PrivateKey)
		require.NoError(t, err)

		ok, err := uc.VerifyBase64(ctx, []byte("tampered"), signature, cryptoDomain.SHA512WithRSA, keyPair.PublicKey)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = uc.VerifyBase64(ctx, data, signature, cryptoDomain.SHA256WithRSA, keyPair.PublicKey)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSignatureUseCase_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := NewSignatureUseCase(cryptoService.NewSigner())
	keyPair := sharedKeyPair(t)

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		t.Parallel()

		_, err := uc.Sign(ctx, []byte("x"), "SHA3withRSA", keyPair.PrivateKey)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)

		ok, err := uc.Verify(ctx, []byte("x"), []byte("sig"), "SHA3withRSA", keyPair.PublicKey)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
		assert.False(t, ok)
	})

	t.Run("NilKey", func(t *testing.T) {
		t.Parallel()

		_, err := uc.SignToBase64(ctx, []byte("x"), cryptoDomain.SHA256WithRSA, nil)
		assert.ErrorIs(t, err, apperrors.ErrKey)

		_, err = uc.Verify(ctx, []byte("x"), []byte("sig"), cryptoDomain.SHA256WithRSA, nil)
		assert.ErrorIs(t, err, apperrors.ErrKey)
	})

	t.Run("InvalidBase64SignatureIsMismatch", func(t *testing.T) {
		t.Parallel()

		ok, err := uc.VerifyBase64(ctx, []byte("x"), "!!not-base64!!", cryptoDomain.SHA256WithRSA, keyPair.PublicKey)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("InvalidBase64SignatureStillChecksAlgorithmAndKey", func(t *testing.T) {
		t.Parallel()

		ok, err := uc.VerifyBase64(ctx, []byte("x"), "!!not-base64!!", "SHA3withRSA", keyPair.PublicKey)
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
		assert.False(t, ok)

		ok, err = uc.VerifyBase64(ctx, []byte("x"), "!!not-base64!!", cryptoDomain.SHA256WithRSA, nil)
		assert.ErrorIs(t, err, apperrors.ErrKey)
		assert.False(t, ok)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		t.Parallel()
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := uc.Sign(canceled, []byte("x"), cryptoDomain.SHA256WithRSA, keyPair.PrivateKey)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSignatureUseCase_VerifyBase64DecodesSignature(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	signer := serviceMocks.NewMockSigner(t)
	uc := NewSignatureUseCase(signer)
	keyPair := sharedKeyPair(t)

	signer.On("Verify", []byte("data"), []byte{0xde, 0xad}, cryptoDomain.MD5WithRSA, keyPair.PublicKey).
		Return(true, nil).
		Once()

	ok, err := uc.VerifyBase64(
		ctx,
		[]byte("data"),
		base64.StdEncoding.EncodeToString([]byte{0xde, 0xad}),
		cryptoDomain.MD5WithRSA,
		keyPair.PublicKey,
	)
	require.NoError(t, err)
	assert.True(t, ok)
}
