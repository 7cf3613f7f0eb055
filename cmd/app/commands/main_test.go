package commands

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	cryptoService "github.com/allisson/cipherkit/internal/crypto/service"
	cryptoUseCase "github.com/allisson/cipherkit/internal/crypto/usecase"
)

var (
	keyPairOnce sync.Once
	keyPair     *cryptoDomain.KeyPair
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testUseCases struct {
	codec      cryptoService.KeyCodec
	symmetric  cryptoUseCase.SymmetricUseCase
	asymmetric cryptoUseCase.AsymmetricUseCase
	signature  cryptoUseCase.SignatureUseCase
}

func newTestUseCases() testUseCases {
	rng := cryptoService.NewSecureRandom()
	codec := cryptoService.NewKeyCodec(rng)
	return testUseCases{
		codec: codec,
		symmetric: cryptoUseCase.NewSymmetricUseCase(
			cryptoService.NewKeyDeriver(),
			cryptoService.NewAESCipher(rng),
			rng,
			cryptoDomain.AESCBCPKCS7Padding,
		),
		asymmetric: cryptoUseCase.NewAsymmetricUseCase(codec, cryptoService.NewRSACipher(rng, 2), 1024),
		signature:  cryptoUseCase.NewSignatureUseCase(cryptoService.NewSigner()),
	}
}

// testKeyPair returns a 1024-bit key pair shared by the tests in this package.
func testKeyPair(t *testing.T) *cryptoDomain.KeyPair {
	t.Helper()
	keyPairOnce.Do(func() {
		keyPair, _ = newTestUseCases().asymmetric.GenerateKeyPair(context.Background(), 1024)
	})
	require.NotNil(t, keyPair)
	return keyPair
}
