package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	cryptoService "github.com/allisson/cipherkit/internal/crypto/service"
	apperrors "github.com/allisson/cipherkit/internal/errors"
)

func TestRunSignVerify(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()
	useCases := newTestUseCases()
	kp := testKeyPair(t)

	publicText, err := cryptoService.EncodePublicKeyToBase64(useCases.codec, kp.PublicKey)
	require.NoError(t, err)
	privatePEM, err := cryptoService.EncodePrivateKeyToPEM(useCases.codec, kp.PrivateKey)
	require.NoError(t, err)

	var signed bytes.Buffer
	err = RunSign(ctx, useCases.signature, useCases.asymmetric, logger, IOTuple{
		Reader: strings.NewReader("release v1.2.3"),
		Writer: &signed,
	}, bytes.NewReader(privatePEM), cryptoDomain.SHA256WithRSA, "")
	require.NoError(t, err)
	signature := strings.TrimSpace(signed.String())

	t.Run("valid", func(t *testing.T) {
		var out bytes.Buffer
		err := RunVerify(ctx, useCases.signature, useCases.asymmetric, logger, IOTuple{Writer: &out},
			strings.NewReader(publicText), cryptoDomain.SHA256WithRSA, signature, "release v1.2.3")
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out.String())
	})

	t.Run("tampered-data", func(t *testing.T) {
		var out bytes.Buffer
		err := RunVerify(ctx, useCases.signature, useCases.asymmetric, logger, IOTuple{Writer: &out},
			strings.NewReader(publicText), cryptoDomain.SHA256WithRSA, signature, "release v1.2.4")
		assert.ErrorIs(t, err, ErrSignatureMismatch)
		assert.Equal(t, "invalid\n", out.String())
	})

	t.Run("unknown-algorithm", func(t *testing.T) {
		err := RunVerify(ctx, useCases.signature, useCases.asymmetric, logger, IOTuple{Writer: &bytes.Buffer{}},
			strings.NewReader(publicText), "SHA3withRSA", signature, "release v1.2.3")
		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("signature-not-base64", func(t *testing.T) {
		err := RunVerify(ctx, useCases.signature, useCases.asymmetric, logger, IOTuple{Writer: &bytes.Buffer{}},
			strings.NewReader(publicText), cryptoDomain.SHA256WithRSA, "@@@", "release v1.2.3")
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("sign-with-bad-key", func(t *testing.T) {
		err := RunSign(ctx, useCases.signature, useCases.asymmetric, logger, IOTuple{Writer: &bytes.Buffer{}},
			strings.NewReader("not base64 at all!"), cryptoDomain.SHA256WithRSA, "data")
		assert.ErrorIs(t, err, apperrors.ErrKeyFormat)
	})
}
