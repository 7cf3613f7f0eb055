package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	cryptoService "github.com/allisson/cipherkit/internal/crypto/service"
	cryptoUseCase "github.com/allisson/cipherkit/internal/crypto/usecase"
	apperrors "github.com/allisson/cipherkit/internal/errors"
)

// RSAParams holds the options shared by rsa-encrypt and rsa-decrypt.
type RSAParams struct {
	Transformation string
	// KeyLengthBits may be 0 to use the modulus size of the key.
	KeyLengthBits int
	// KeyType is "public" or "private" and names the kind of key read from the key reader.
	KeyType string
	Input   string
}

// RSAKeyPairOutput is the JSON shape printed by rsa-generate --format json.
type RSAKeyPairOutput struct {
	ID            string    `json:"id"`
	KeyLengthBits int       `json:"key_length_bits"`
	PublicKey     string    `json:"public_key"`
	PrivateKey    string    `json:"private_key"`
	CreatedAt     time.Time `json:"created_at"`
}

// RunRSAGenerate generates a key pair and prints it as base64 lines, PEM blocks or JSON.
func RunRSAGenerate(
	ctx context.Context,
	asymmetricUseCase cryptoUseCase.AsymmetricUseCase,
	keyCodec cryptoService.KeyCodec,
	logger *slog.Logger,
	writer io.Writer,
	keyLengthBits int,
	format string,
) error {
	keyPair, err := asymmetricUseCase.GenerateKeyPair(ctx, keyLengthBits)
	if err != nil {
		return fmt.Errorf("failed to generate key pair: %w", err)
	}

	logger.Info("RSA key pair generated",
		slog.String("id", keyPair.ID.String()),
		slog.Int("key_length_bits", keyPair.KeyLengthBits),
	)

	switch format {
	case "pem":
		publicPEM, err := cryptoService.EncodePublicKeyToPEM(keyCodec, keyPair.PublicKey)
		if err != nil {
			return err
		}
		privatePEM, err := cryptoService.EncodePrivateKeyToPEM(keyCodec, keyPair.PrivateKey)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(writer, "%s%s", publicPEM, privatePEM)
		return err

	case "", "base64", "json":
		publicKey, err := cryptoService.EncodePublicKeyToBase64(keyCodec, keyPair.PublicKey)
		if err != nil {
			return err
		}
		privateKey, err := cryptoService.EncodePrivateKeyToBase64(keyCodec, keyPair.PrivateKey)
		if err != nil {
			return err
		}

		if format != "json" {
			_, err = fmt.Fprintf(writer, "PUBLIC_KEY=%s\nPRIVATE_KEY=%s\n", publicKey, privateKey)
			return err
		}

		output := RSAKeyPairOutput{
			ID:            keyPair.ID.String(),
			KeyLengthBits: keyPair.KeyLengthBits,
			PublicKey:     publicKey,
			PrivateKey:    privateKey,
			CreatedAt:     keyPair.CreatedAt,
		}
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)

	default:
		return fmt.Errorf("invalid format: %s (valid options: base64, pem, json)", format)
	}
}

// RunRSAEncrypt encrypts the input with the key read from keyReader and prints base64.
func RunRSAEncrypt(
	ctx context.Context,
	asymmetricUseCase cryptoUseCase.AsymmetricUseCase,
	logger *slog.Logger,
	streams IOTuple,
	keyReader io.Reader,
	params RSAParams,
) error {
	key, err := loadRSAKey(ctx, asymmetricUseCase, keyReader, params.KeyType)
	if err != nil {
		return err
	}

	plaintext, err := readInput(params.Input, streams.Reader)
	if err != nil {
		return err
	}

	encoded, err := asymmetricUseCase.EncryptToBase64(
		ctx,
		plaintext,
		params.Transformation,
		key,
		params.KeyLengthBits,
	)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	logger.Info("content encrypted",
		slog.String("key_type", params.KeyType),
		slog.Int("input_bytes", len(plaintext)),
	)
	_, err = fmt.Fprintln(streams.Writer, encoded)
	return err
}

// RunRSADecrypt decrypts base64 input with the key read from keyReader.
func RunRSADecrypt(
	ctx context.Context,
	asymmetricUseCase cryptoUseCase.AsymmetricUseCase,
	logger *slog.Logger,
	streams IOTuple,
	keyReader io.Reader,
	params RSAParams,
) error {
	key, err := loadRSAKey(ctx, asymmetricUseCase, keyReader, params.KeyType)
	if err != nil {
		return err
	}

	encoded, err := readInput(params.Input, streams.Reader)
	if err != nil {
		return err
	}

	plaintext, err := asymmetricUseCase.DecryptFromBase64(
		ctx,
		trimText(encoded),
		params.Transformation,
		key,
		params.KeyLengthBits,
	)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	logger.Info("content decrypted",
		slog.String("key_type", params.KeyType),
		slog.Int("output_bytes", len(plaintext)),
	)
	_, err = streams.Writer.Write(plaintext)
	return err
}

// loadRSAKey reads a public or private key from r.
func loadRSAKey(
	ctx context.Context,
	asymmetricUseCase cryptoUseCase.AsymmetricUseCase,
	r io.Reader,
	keyType string,
) (any, error) {
	if keyType != "public" && keyType != "private" {
		return nil, apperrors.Wrapf(
			apperrors.ErrInvalidArgument,
			"invalid key type: %s (valid options: public, private)",
			keyType,
		)
	}

	text, err := readKeyText(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s key: %w", keyType, err)
	}

	if keyType == "public" {
		return asymmetricUseCase.LoadPublicKey(ctx, text)
	}
	return asymmetricUseCase.LoadPrivateKey(ctx, text)
}
