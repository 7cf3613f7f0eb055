package commands

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	cryptoUseCase "github.com/allisson/cipherkit/internal/crypto/usecase"
)

// AESParams holds the options shared by aes-encrypt and aes-decrypt.
type AESParams struct {
	PasswordParams
	Transformation string
	// IV is base64; it may be empty for ECB.
	IV string
	// Input is used instead of reading the IOTuple reader when set.
	Input string
}

// RunAESGenerateKey prints a random AES key of keyLengthBits as base64 (or hex).
func RunAESGenerateKey(
	ctx context.Context,
	symmetricUseCase cryptoUseCase.SymmetricUseCase,
	logger *slog.Logger,
	writer io.Writer,
	keyLengthBits int,
	encoding string,
) error {
	key, err := symmetricUseCase.GenerateKey(ctx, keyLengthBits)
	if err != nil {
		return fmt.Errorf("failed to generate AES key: %w", err)
	}
	defer cryptoDomain.Zero(key)

	text, err := encodeBytes(key, encoding)
	if err != nil {
		return err
	}

	logger.Info("AES key generated", slog.Int("key_length_bits", keyLengthBits))
	_, err = fmt.Fprintln(writer, text)
	return err
}

// RunAESGenerateIV prints length random bytes as base64 (or hex).
func RunAESGenerateIV(
	ctx context.Context,
	symmetricUseCase cryptoUseCase.SymmetricUseCase,
	logger *slog.Logger,
	writer io.Writer,
	length int,
	encoding string,
) error {
	iv, err := symmetricUseCase.GenerateIV(ctx, length)
	if err != nil {
		return fmt.Errorf("failed to generate IV: %w", err)
	}

	text, err := encodeBytes(iv, encoding)
	if err != nil {
		return err
	}

	logger.Info("IV generated", slog.Int("length", length))
	_, err = fmt.Fprintln(writer, text)
	return err
}

// RunAESEncrypt encrypts the input and prints the ciphertext as base64.
func RunAESEncrypt(
	ctx context.Context,
	symmetricUseCase cryptoUseCase.SymmetricUseCase,
	logger *slog.Logger,
	streams IOTuple,
	params AESParams,
) error {
	password, iv, err := aesKeyMaterial(params)
	if err != nil {
		return err
	}

	plaintext, err := readInput(params.Input, streams.Reader)
	if err != nil {
		return err
	}

	encoded, err := symmetricUseCase.EncryptToBase64(ctx, plaintext, params.Transformation, password, iv)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	logger.Info("content encrypted",
		slog.String("transformation", params.Transformation),
		slog.Int("input_bytes", len(plaintext)),
	)
	_, err = fmt.Fprintln(streams.Writer, encoded)
	return err
}

// RunAESDecrypt decrypts base64 input and writes the raw plaintext.
func RunAESDecrypt(
	ctx context.Context,
	symmetricUseCase cryptoUseCase.SymmetricUseCase,
	logger *slog.Logger,
	streams IOTuple,
	params AESParams,
) error {
	password, iv, err := aesKeyMaterial(params)
	if err != nil {
		return err
	}

	encoded, err := readInput(params.Input, streams.Reader)
	if err != nil {
		return err
	}

	plaintext, err := symmetricUseCase.DecryptFromBase64(ctx, trimText(encoded), params.Transformation, password, iv)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	logger.Info("content decrypted",
		slog.String("transformation", params.Transformation),
		slog.Int("output_bytes", len(plaintext)),
	)
	_, err = streams.Writer.Write(plaintext)
	return err
}

func aesKeyMaterial(params AESParams) (cryptoDomain.Password, []byte, error) {
	password, err := buildPassword(params.PasswordParams)
	if err != nil {
		return nil, nil, err
	}
	iv, err := decodeOptionalBase64("iv", params.IV)
	if err != nil {
		return nil, nil, err
	}
	return password, iv, nil
}

// encodeBytes renders b as "base64" or "hex".
func encodeBytes(b []byte, encoding string) (string, error) {
	switch encoding {
	case "", "base64":
		return base64.StdEncoding.EncodeToString(b), nil
	case "hex":
		return hex.EncodeToString(b), nil
	default:
		return "", fmt.Errorf("invalid encoding: %s (valid options: base64, hex)", encoding)
	}
}
