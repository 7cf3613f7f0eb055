package usecase

import (
	"context"
	"crypto/rsa"
	"time"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	"github.com/allisson/cipherkit/internal/metrics"
)

// symmetricUseCaseWithMetrics decorates SymmetricUseCase with metrics instrumentation.
type symmetricUseCaseWithMetrics struct {
	next    SymmetricUseCase
	metrics metrics.BusinessMetrics
}

// NewSymmetricUseCaseWithMetrics wraps a SymmetricUseCase with metrics recording.
func NewSymmetricUseCaseWithMetrics(useCase SymmetricUseCase, m metrics.BusinessMetrics) SymmetricUseCase {
	return &symmetricUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encrypt records metrics for AES encryption.
func (s *symmetricUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	content []byte,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) ([]byte, error) {
	start := time.Now()
	out, err := s.next.Encrypt(ctx, content, transformation, password, iv)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpAESEncrypt, start, err)
	return out, err
}

// Decrypt records metrics for AES decryption.
func (s *symmetricUseCaseWithMetrics) Decrypt(
	ctx context.Context,
	content []byte,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) ([]byte, error) {
	start := time.Now()
	out, err := s.next.Decrypt(ctx, content, transformation, password, iv)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpAESDecrypt, start, err)
	return out, err
}

// EncryptToBase64 records metrics for AES encryption to base64.
func (s *symmetricUseCaseWithMetrics) EncryptToBase64(
	ctx context.Context,
	content []byte,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) (string, error) {
	start := time.Now()
	out, err := s.next.EncryptToBase64(ctx, content, transformation, password, iv)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpAESEncrypt, start, err)
	return out, err
}

// EncryptString records metrics for AES encryption of text.
func (s *symmetricUseCaseWithMetrics) EncryptString(
	ctx context.Context,
	content string,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) (string, error) {
	start := time.Now()
	out, err := s.next.EncryptString(ctx, content, transformation, password, iv)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpAESEncrypt, start, err)
	return out, err
}

// DecryptFromBase64 records metrics for AES decryption from base64.
func (s *symmetricUseCaseWithMetrics) DecryptFromBase64(
	ctx context.Context,
	content string,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) ([]byte, error) {
	start := time.Now()
	out, err := s.next.DecryptFromBase64(ctx, content, transformation, password, iv)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpAESDecrypt, start, err)
	return out, err
}

// DecryptToString records metrics for AES decryption to text.
func (s *symmetricUseCaseWithMetrics) DecryptToString(
	ctx context.Context,
	content []byte,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) (string, error) {
	start := time.Now()
	out, err := s.next.DecryptToString(ctx, content, transformation, password, iv)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpAESDecrypt, start, err)
	return out, err
}

// DecryptFromBase64ToString records metrics for AES decryption from base64 to text.
func (s *symmetricUseCaseWithMetrics) DecryptFromBase64ToString(
	ctx context.Context,
	content string,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) (string, error) {
	start := time.Now()
	out, err := s.next.DecryptFromBase64ToString(ctx, content, transformation, password, iv)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpAESDecrypt, start, err)
	return out, err
}

// GenerateKey records metrics for AES key generation.
func (s *symmetricUseCaseWithMetrics) GenerateKey(ctx context.Context, keyLengthBits int) ([]byte, error) {
	start := time.Now()
	out, err := s.next.GenerateKey(ctx, keyLengthBits)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpAESGenerateKey, start, err)
	return out, err
}

// GenerateIV records metrics for IV generation.
func (s *symmetricUseCaseWithMetrics) GenerateIV(ctx context.Context, length int) ([]byte, error) {
	start := time.Now()
	out, err := s.next.GenerateIV(ctx, length)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpAESGenerateIV, start, err)
	return out, err
}

// asymmetricUseCaseWithMetrics decorates AsymmetricUseCase with metrics instrumentation.
type asymmetricUseCaseWithMetrics struct {
	next    AsymmetricUseCase
	metrics metrics.BusinessMetrics
}

// NewAsymmetricUseCaseWithMetrics wraps an AsymmetricUseCase with metrics recording.
func NewAsymmetricUseCaseWithMetrics(useCase AsymmetricUseCase, m metrics.BusinessMetrics) AsymmetricUseCase {
	return &asymmetricUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GenerateKeyPair records metrics for RSA key generation.
func (a *asymmetricUseCaseWithMetrics) GenerateKeyPair(
	ctx context.Context,
	keyLengthBits int,
) (*cryptoDomain.KeyPair, error) {
	start := time.Now()
	keyPair, err := a.next.GenerateKeyPair(ctx, keyLengthBits)
	metrics.Observe(ctx, a.metrics, metrics.DomainCrypto, metrics.OpRSAGenerateKeyPair, start, err)
	return keyPair, err
}

// GenerateKeyPairBase64 records metrics for RSA key generation to text.
func (a *asymmetricUseCaseWithMetrics) GenerateKeyPairBase64(
	ctx context.Context,
	keyLengthBits int,
) (string, string, error) {
	start := time.Now()
	publicKey, privateKey, err := a.next.GenerateKeyPairBase64(ctx, keyLengthBits)
	metrics.Observe(ctx, a.metrics, metrics.DomainCrypto, metrics.OpRSAGenerateKeyPair, start, err)
	return publicKey, privateKey, err
}

// LoadPublicKey records metrics for public key loading.
func (a *asymmetricUseCaseWithMetrics) LoadPublicKey(ctx context.Context, text string) (*rsa.PublicKey, error) {
	start := time.Now()
	key, err := a.next.LoadPublicKey(ctx, text)
	metrics.Observe(ctx, a.metrics, metrics.DomainCrypto, metrics.OpRSALoadPublicKey, start, err)
	return key, err
}

// LoadPrivateKey records metrics for private key loading.
func (a *asymmetricUseCaseWithMetrics) LoadPrivateKey(ctx context.Context, text string) (*rsa.PrivateKey, error) {
	start := time.Now()
	key, err := a.next.LoadPrivateKey(ctx, text)
	metrics.Observe(ctx, a.metrics, metrics.DomainCrypto, metrics.OpRSALoadPrivateKey, start, err)
	return key, err
}

// Encrypt records metrics for RSA encryption.
func (a *asymmetricUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	data []byte,
	transformation string,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	start := time.Now()
	out, err := a.next.Encrypt(ctx, data, transformation, key, keyLengthBits)
	metrics.Observe(ctx, a.metrics, metrics.DomainCrypto, metrics.OpRSAEncrypt, start, err)
	return out, err
}

// Decrypt records metrics for RSA decryption.
func (a *asymmetricUseCaseWithMetrics) Decrypt(
	ctx context.Context,
	data []byte,
	transformation string,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	start := time.Now()
	out, err := a.next.Decrypt(ctx, data, transformation, key, keyLengthBits)
	metrics.Observe(ctx, a.metrics, metrics.DomainCrypto, metrics.OpRSADecrypt, start, err)
	return out, err
}

// EncryptToBase64 records metrics for RSA encryption to base64.
func (a *asymmetricUseCaseWithMetrics) EncryptToBase64(
	ctx context.Context,
	data []byte,
	transformation string,
	key any,
	keyLengthBits int,
) (string, error) {
	start := time.Now()
	out, err := a.next.EncryptToBase64(ctx, data, transformation, key, keyLengthBits)
	metrics.Observe(ctx, a.metrics, metrics.DomainCrypto, metrics.OpRSAEncrypt, start, err)
	return out, err
}

// DecryptFromBase64 records metrics for RSA decryption from base64.
func (a *asymmetricUseCaseWithMetrics) DecryptFromBase64(
	ctx context.Context,
	data string,
	transformation string,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	start := time.Now()
	out, err := a.next.DecryptFromBase64(ctx, data, transformation, key, keyLengthBits)
	metrics.Observe(ctx, a.metrics, metrics.DomainCrypto, metrics.OpRSADecrypt, start, err)
	return out, err
}

// signatureUseCaseWithMetrics decorates SignatureUseCase with metrics instrumentation.
type signatureUseCaseWithMetrics struct {
	next    SignatureUseCase
	metrics metrics.BusinessMetrics
}

// NewSignatureUseCaseWithMetrics wraps a SignatureUseCase with metrics recording.
func NewSignatureUseCaseWithMetrics(useCase SignatureUseCase, m metrics.BusinessMetrics) SignatureUseCase {
	return &signatureUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Sign records metrics for signing.
func (s *signatureUseCaseWithMetrics) Sign(
	ctx context.Context,
	data []byte,
	algorithm string,
	key *rsa.PrivateKey,
) ([]byte, error) {
	start := time.Now()
	out, err := s.next.Sign(ctx, data, algorithm, key)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpSign, start, err)
	return out, err
}

// SignToBase64 records metrics for signing to base64.
func (s *signatureUseCaseWithMetrics) SignToBase64(
	ctx context.Context,
	data []byte,
	algorithm string,
	key *rsa.PrivateKey,
) (string, error) {
	start := time.Now()
	out, err := s.next.SignToBase64(ctx, data, algorithm, key)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpSign, start, err)
	return out, err
}

// Verify records metrics for verification. A mismatch is recorded as a success; only
// errors count as failures.
func (s *signatureUseCaseWithMetrics) Verify(
	ctx context.Context,
	data, signature []byte,
	algorithm string,
	key *rsa.PublicKey,
) (bool, error) {
	start := time.Now()
	ok, err := s.next.Verify(ctx, data, signature, algorithm, key)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpVerify, start, err)
	return ok, err
}

// VerifyBase64 records metrics for verification of a base64 signature.
func (s *signatureUseCaseWithMetrics) VerifyBase64(
	ctx context.Context,
	data []byte,
	signature, algorithm string,
	key *rsa.PublicKey,
) (bool, error) {
	start := time.Now()
	ok, err := s.next.VerifyBase64(ctx, data, signature, algorithm, key)
	metrics.Observe(ctx, s.metrics, metrics.DomainCrypto, metrics.OpVerify, start, err)
	return ok, err
}
