package commands

import (
	"fmt"
	"log/slog"

	cryptoService "github.com/allisson/cipherkit/internal/crypto/service"
)

// RunSHA256 prints the lowercase hex SHA-256 digest of the input.
func RunSHA256(logger *slog.Logger, streams IOTuple, input string) error {
	data, err := readInput(input, streams.Reader)
	if err != nil {
		return err
	}

	logger.Debug("computing digest", slog.Int("input_bytes", len(data)))
	_, err = fmt.Fprintln(streams.Writer, cryptoService.SHA256Hex(data))
	return err
}
