// Package mocks provides mock implementations of the crypto use cases for testing callers.
package mocks

import (
	"context"
	"crypto/rsa"

	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
)

func bytesOrNil(args mock.Arguments, i int) []byte {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]byte)
}

// MockSymmetricUseCase is a mock implementation of SymmetricUseCase.
type MockSymmetricUseCase struct {
	mock.Mock
}

// NewMockSymmetricUseCase creates a MockSymmetricUseCase whose expectations are asserted when the test ends.
func NewMockSymmetricUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSymmetricUseCase {
	m := &MockSymmetricUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Encrypt mocks the Encrypt method.
func (m *MockSymmetricUseCase) Encrypt(
	ctx context.Context,
	content []byte,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) ([]byte, error) {
	args := m.Called(ctx, content, transformation, password, iv)
	return bytesOrNil(args, 0), args.Error(1)
}

// Decrypt mocks the Decrypt method.
func (m *MockSymmetricUseCase) Decrypt(
	ctx context.Context,
	content []byte,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) ([]byte, error) {
	args := m.Called(ctx, content, transformation, password, iv)
	return bytesOrNil(args, 0), args.Error(1)
}

// EncryptToBase64 mocks the EncryptToBase64 method.
func (m *MockSymmetricUseCase) EncryptToBase64(
	ctx context.Context,
	content []byte,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) (string, error) {
	args := m.Called(ctx, content, transformation, password, iv)
	return args.String(0), args.Error(1)
}

// EncryptString mocks the EncryptString method.
func (m *MockSymmetricUseCase) EncryptString(
	ctx context.Context,
	content string,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) (string, error) {
	args := m.Called(ctx, content, transformation, password, iv)
	return args.String(0), args.Error(1)
}

// DecryptFromBase64 mocks the DecryptFromBase64 method.
func (m *MockSymmetricUseCase) DecryptFromBase64(
	ctx context.Context,
	content string,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) ([]byte, error) {
	args := m.Called(ctx, content, transformation, password, iv)
	return bytesOrNil(args, 0), args.Error(1)
}

// DecryptToString mocks the DecryptToString method.
func (m *MockSymmetricUseCase) DecryptToString(
	ctx context.Context,
	content []byte,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) (string, error) {
	args := m.Called(ctx, content, transformation, password, iv)
	return args.String(0), args.Error(1)
}

// DecryptFromBase64ToString mocks the DecryptFromBase64ToString method.
func (m *MockSymmetricUseCase) DecryptFromBase64ToString(
	ctx context.Context,
	content string,
	transformation string,
	password cryptoDomain.Password,
	iv []byte,
) (string, error) {
	args := m.Called(ctx, content, transformation, password, iv)
	return args.String(0), args.Error(1)
}

// GenerateKey mocks the GenerateKey method.
func (m *MockSymmetricUseCase) GenerateKey(ctx context.Context, keyLengthBits int) ([]byte, error) {
	args := m.Called(ctx, keyLengthBits)
	return bytesOrNil(args, 0), args.Error(1)
}

// GenerateIV mocks the GenerateIV method.
func (m *MockSymmetricUseCase) GenerateIV(ctx context.Context, length int) ([]byte, error) {
	args := m.Called(ctx, length)
	return bytesOrNil(args, 0), args.Error(1)
}

// MockAsymmetricUseCase is a mock implementation of AsymmetricUseCase.
type MockAsymmetricUseCase struct {
	mock.Mock
}

// NewMockAsymmetricUseCase creates a MockAsymmetricUseCase whose expectations are asserted when the test ends.
func NewMockAsymmetricUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAsymmetricUseCase {
	m := &MockAsymmetricUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GenerateKeyPair mocks the GenerateKeyPair method.
func (m *MockAsymmetricUseCase) GenerateKeyPair(ctx context.Context, keyLengthBits int) (*cryptoDomain.KeyPair, error) {
	args := m.Called(ctx, keyLengthBits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.KeyPair), args.Error(1)
}

// GenerateKeyPairBase64 mocks the GenerateKeyPairBase64 method.
func (m *MockAsymmetricUseCase) GenerateKeyPairBase64(ctx context.Context, keyLengthBits int) (string, string, error) {
	args := m.Called(ctx, keyLengthBits)
	return args.String(0), args.String(1), args.Error(2)
}

// LoadPublicKey mocks the LoadPublicKey method.
func (m *MockAsymmetricUseCase) LoadPublicKey(ctx context.Context, text string) (*rsa.PublicKey, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.PublicKey), args.Error(1)
}

// LoadPrivateKey mocks the LoadPrivateKey method.
func (m *MockAsymmetricUseCase) LoadPrivateKey(ctx context.Context, text string) (*rsa.PrivateKey, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.PrivateKey), args.Error(1)
}

// Encrypt mocks the Encrypt method.
func (m *MockAsymmetricUseCase) Encrypt(
	ctx context.Context,
	data []byte,
	transformation string,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	args := m.Called(ctx, data, transformation, key, keyLengthBits)
	return bytesOrNil(args, 0), args.Error(1)
}

// Decrypt mocks the Decrypt method.
func (m *MockAsymmetricUseCase) Decrypt(
	ctx context.Context,
	data []byte,
	transformation string,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	args := m.Called(ctx, data, transformation, key, keyLengthBits)
	return bytesOrNil(args, 0), args.Error(1)
}

// EncryptToBase64 mocks the EncryptToBase64 method.
func (m *MockAsymmetricUseCase) EncryptToBase64(
	ctx context.Context,
	data []byte,
	transformation string,
	key any,
	keyLengthBits int,
) (string, error) {
	args := m.Called(ctx, data, transformation, key, keyLengthBits)
	return args.String(0), args.Error(1)
}

// DecryptFromBase64 mocks the DecryptFromBase64 method.
func (m *MockAsymmetricUseCase) DecryptFromBase64(
	ctx context.Context,
	data string,
	transformation string,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	args := m.Called(ctx, data, transformation, key, keyLengthBits)
	return bytesOrNil(args, 0), args.Error(1)
}

// MockSignatureUseCase is a mock implementation of SignatureUseCase.
type MockSignatureUseCase struct {
	mock.Mock
}

// NewMockSignatureUseCase creates a MockSignatureUseCase whose expectations are asserted when the test ends.
func NewMockSignatureUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSignatureUseCase {
	m := &MockSignatureUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Sign mocks the Sign method.
func (m *MockSignatureUseCase) Sign(
	ctx context.Context,
	data []byte,
	algorithm string,
	key *rsa.PrivateKey,
) ([]byte, error) {
	args := m.Called(ctx, data, algorithm, key)
	return bytesOrNil(args, 0), args.Error(1)
}

// SignToBase64 mocks the SignToBase64 method.
func (m *MockSignatureUseCase) SignToBase64(
	ctx context.Context,
	data []byte,
	algorithm string,
	key *rsa.PrivateKey,
) (string, error) {
	args := m.Called(ctx, data, algorithm, key)
	return args.String(0), args.Error(1)
}

// Verify mocks the Verify method.
func (m *MockSignatureUseCase) Verify(
	ctx context.Context,
	data, signature []byte,
	algorithm string,
	key *rsa.PublicKey,
) (bool, error) {
	args := m.Called(ctx, data, signature, algorithm, key)
	return args.Bool(0), args.Error(1)
}

// VerifyBase64 mocks the VerifyBase64 method.
func (m *MockSignatureUseCase) VerifyBase64(
	ctx context.Context,
	data []byte,
	signature, algorithm string,
	key *rsa.PublicKey,
) (bool, error) {
	args := m.Called(ctx, data, signature, algorithm, key)
	return args.Bool(0), args.Error(1)
}
