package service

import (
	"crypto"
	_ "crypto/md5" //nolint:gosec // MD5withRSA compatibility
	"crypto/rsa"
	_ "crypto/sha1" //nolint:gosec // SHA1withRSA compatibility
	_ "crypto/sha256"
	_ "crypto/sha512"
	"fmt"
	"strings"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
)

var signatureHashes = map[string]crypto.Hash{
	strings.ToUpper(cryptoDomain.MD5WithRSA):    crypto.MD5,
	strings.ToUpper(cryptoDomain.SHA1WithRSA):   crypto.SHA1,
	strings.ToUpper(cryptoDomain.SHA224WithRSA): crypto.SHA224,
	strings.ToUpper(cryptoDomain.SHA256WithRSA): crypto.SHA256,
	strings.ToUpper(cryptoDomain.SHA384WithRSA): crypto.SHA384,
	strings.ToUpper(cryptoDomain.SHA512WithRSA): crypto.SHA512,
}

// RSASigner implements Signer with RSASSA-PKCS1-v1_5.
type RSASigner struct{}

// NewSigner creates an RSASigner.
func NewSigner() *RSASigner {
	return &RSASigner{}
}

// Sign hashes data with the digest named by algorithm and signs the digest.
func (s *RSASigner) Sign(data []byte, algorithm string, privateKey *rsa.PrivateKey) ([]byte, error) {
	h, err := signatureHash(algorithm)
	if err != nil {
		return nil, err
	}
	if privateKey == nil || privateKey.N == nil {
		return nil, fmt.Errorf("%w: private key is nil", cryptoDomain.ErrInvalidKeyType)
	}

	digest := h.New()
	digest.Write(data)

	signature, err := rsa.SignPKCS1v15(nil, privateKey, h, digest.Sum(nil))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidKeySize, err)
	}
	return signature, nil
}

// Verify checks signature against data. A wrong or malformed signature is not an error.
func (s *RSASigner) Verify(data, signature []byte, algorithm string, publicKey *rsa.PublicKey) (bool, error) {
	h, err := signatureHash(algorithm)
	if err != nil {
		return false, err
	}
	if publicKey == nil || publicKey.N == nil {
		return false, fmt.Errorf("%w: public key is nil", cryptoDomain.ErrInvalidKeyType)
	}

	digest := h.New()
	digest.Write(data)

	return rsa.VerifyPKCS1v15(publicKey, h, digest.Sum(nil), signature) == nil, nil
}

func signatureHash(algorithm string) (crypto.Hash, error) {
	h, ok := signatureHashes[strings.ToUpper(algorithm)]
	if !ok {
		return 0, fmt.Errorf("%w: signature algorithm %q", cryptoDomain.ErrUnsupportedAlgorithm, algorithm)
	}
	return h, nil
}
