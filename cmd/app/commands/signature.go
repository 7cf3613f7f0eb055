package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	cryptoUseCase "github.com/allisson/cipherkit/internal/crypto/usecase"
)

// ErrSignatureMismatch is returned by RunVerify when the signature does not match, so the
// process exits non-zero.
var ErrSignatureMismatch = errors.New("signature does not match")

// RunSign signs the input with the private key read from keyReader and prints the
// signature as base64.
func RunSign(
	ctx context.Context,
	signatureUseCase cryptoUseCase.SignatureUseCase,
	asymmetricUseCase cryptoUseCase.AsymmetricUseCase,
	logger *slog.Logger,
	streams IOTuple,
	keyReader io.Reader,
	algorithm string,
	input string,
) error {
	text, err := readKeyText(keyReader)
	if err != nil {
		return fmt.Errorf("failed to read private key: %w", err)
	}
	privateKey, err := asymmetricUseCase.LoadPrivateKey(ctx, text)
	if err != nil {
		return err
	}

	data, err := readInput(input, streams.Reader)
	if err != nil {
		return err
	}

	signature, err := signatureUseCase.SignToBase64(ctx, data, algorithm, privateKey)
	if err != nil {
		return fmt.Errorf("failed to sign: %w", err)
	}

	logger.Info("content signed", slog.String("algorithm", algorithm), slog.Int("input_bytes", len(data)))
	_, err = fmt.Fprintln(streams.Writer, signature)
	return err
}

// RunVerify checks a base64 signature against the input with the public key read from
// keyReader. It prints "valid" or "invalid"; an invalid signature also returns
// ErrSignatureMismatch.
func RunVerify(
	ctx context.Context,
	signatureUseCase cryptoUseCase.SignatureUseCase,
	asymmetricUseCase cryptoUseCase.AsymmetricUseCase,
	logger *slog.Logger,
	streams IOTuple,
	keyReader io.Reader,
	algorithm string,
	signature string,
	input string,
) error {
	text, err := readKeyText(keyReader)
	if err != nil {
		return fmt.Errorf("failed to read public key: %w", err)
	}
	publicKey, err := asymmetricUseCase.LoadPublicKey(ctx, text)
	if err != nil {
		return err
	}

	data, err := readInput(input, streams.Reader)
	if err != nil {
		return err
	}

	ok, err := signatureUseCase.VerifyBase64(ctx, data, signature, algorithm, publicKey)
	if err != nil {
		return fmt.Errorf("failed to verify: %w", err)
	}

	logger.Info("signature verified", slog.String("algorithm", algorithm), slog.Bool("valid", ok))
	if !ok {
		_, _ = fmt.Fprintln(streams.Writer, "invalid")
		return ErrSignatureMismatch
	}
	_, err = fmt.Fprintln(streams.Writer, "valid")
	return err
}
