package usecase

import (
	"context"
	"crypto/rsa"
	"encoding/base64"

	cryptoService "github.com/allisson/cipherkit/internal/crypto/service"
)

// signatureUseCase implements SignatureUseCase.
type signatureUseCase struct {
	signer cryptoService.Signer
}

// NewSignatureUseCase creates a SignatureUseCase.
func NewSignatureUseCase(signer cryptoService.Signer) SignatureUseCase {
	return &signatureUseCase{signer: signer}
}

// Sign signs data.
func (s *signatureUseCase) Sign(
	ctx context.Context,
	data []byte,
	algorithm string,
	key *rsa.PrivateKey,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.signer.Sign(data, algorithm, key)
}

// SignToBase64 signs data and encodes the signature as base64.
func (s *signatureUseCase) SignToBase64(
	ctx context.Context,
	data []byte,
	algorithm string,
	key *rsa.PrivateKey,
) (string, error) {
	signature, err := s.Sign(ctx, data, algorithm, key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// Verify checks signature against data.
func (s *signatureUseCase) Verify(
	ctx context.Context,
	data, signature []byte,
	algorithm string,
	key *rsa.PublicKey,
) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.signer.Verify(data, signature, algorithm, key)
}

// VerifyBase64 decodes a base64 signature and verifies it. Signature text that is not
// base64 is a mismatch, not an error; the algorithm and key are still checked.
func (s *signatureUseCase) VerifyBase64(
	ctx context.Context,
	data []byte,
	signature, algorithm string,
	key *rsa.PublicKey,
) (bool, error) {
	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		raw = nil
	}
	return s.Verify(ctx, data, raw, algorithm, key)
}
