// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/allisson/cipherkit/internal/app"
	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	cryptoService "github.com/allisson/cipherkit/internal/crypto/service"
	apperrors "github.com/allisson/cipherkit/internal/errors"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// PasswordParams describes the key material given on the command line. Key (base64 raw
// key bytes) takes precedence over Password.
type PasswordParams struct {
	Key           string
	Password      string
	Salt          string
	Iterations    int
	KeyLengthBits int
	PRF           string
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// WithContainer runs fn against a container and then dumps metrics (when enabled) to
// metricsOut before closing the container.
func WithContainer(container *app.Container, metricsOut io.Writer, fn func(*app.Container) error) error {
	logger := container.Logger()
	defer closeContainer(container, logger)

	if err := fn(container); err != nil {
		return err
	}

	if !container.Config().MetricsEnabled {
		return nil
	}
	provider, err := container.MetricsProvider()
	if err != nil {
		return err
	}
	return provider.WriteText(metricsOut)
}

// readInput returns inline when set, otherwise everything readable from r.
func readInput(inline string, r io.Reader) ([]byte, error) {
	if inline != "" {
		return []byte(inline), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrIO, "failed to read input: %v", err)
	}
	return data, nil
}

// readKeyText reads PEM-like key text from r and returns it as plain base64.
func readKeyText(r io.Reader) (string, error) {
	der, err := cryptoService.ReadPemLikeKey(r)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(der)
	return base64.StdEncoding.EncodeToString(der), nil
}

// decodeOptionalBase64 decodes s, treating an empty string as nil.
func decodeOptionalBase64(name, s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidArgument, "%s must be base64: %v", name, err)
	}
	return b, nil
}

// buildPassword turns PasswordParams into a cryptoDomain.Password.
func buildPassword(p PasswordParams) (cryptoDomain.Password, error) {
	switch {
	case p.Key != "":
		key, err := decodeOptionalBase64("key", p.Key)
		if err != nil {
			return nil, err
		}
		return cryptoDomain.RawPassword{Key: key}, nil
	case p.Password != "":
		return cryptoDomain.DerivedPassword{
			Password:       p.Password,
			Salt:           []byte(p.Salt),
			IterationCount: p.Iterations,
			KeyLengthBits:  p.KeyLengthBits,
			PRF:            cryptoDomain.PRF(p.PRF),
		}, nil
	default:
		return nil, fmt.Errorf("%w: either --key or --password is required", apperrors.ErrInvalidArgument)
	}
}

// trimText strips surrounding whitespace, such as the newline after piped base64.
func trimText(b []byte) string {
	return strings.TrimSpace(string(b))
}
