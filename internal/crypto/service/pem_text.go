package service

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
)

// LoadKeyFromPemLikeText extracts key bytes from PEM-like text.
//
// Each line is trimmed; empty lines and lines starting with '-' (headers, footers and
// comments) are skipped. The remaining lines are joined and base64-decoded. Plain base64
// without any header is accepted as well.
func LoadKeyFromPemLikeText(text string) ([]byte, error) {
	var body strings.Builder
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '-' {
			continue
		}
		body.WriteString(line)
	}
	return decodeKeyBody(body.String())
}

// ReadPemLikeKey reads PEM-like text from r and decodes it like LoadKeyFromPemLikeText.
// A failing reader is reported as cryptoDomain.ErrKeyRead rather than as an empty key.
// Line length is not limited.
func ReadPemLikeKey(r io.Reader) ([]byte, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrKeyRead, err)
	}
	return LoadKeyFromPemLikeText(string(text))
}

func decodeKeyBody(body string) ([]byte, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: no key data", cryptoDomain.ErrMalformedKey)
	}
	der, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", cryptoDomain.ErrMalformedKey, err)
	}
	return der, nil
}
