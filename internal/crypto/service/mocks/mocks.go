// Package mocks provides mock implementations of the cryptographic engines for testing use cases.
package mocks

import (
	"crypto/rsa"
	"io"
	"math/big"

	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
)

func bytesOrNil(args mock.Arguments, i int) []byte {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]byte)
}

// MockSecureRandom is a mock implementation of SecureRandom.
type MockSecureRandom struct {
	mock.Mock
}

// NewMockSecureRandom creates a MockSecureRandom whose expectations are asserted when the test ends.
func NewMockSecureRandom(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSecureRandom {
	m := &MockSecureRandom{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GenerateBytes mocks the GenerateBytes method of SecureRandom.
func (m *MockSecureRandom) GenerateBytes(n int) ([]byte, error) {
	args := m.Called(n)
	return bytesOrNil(args, 0), args.Error(1)
}

// Reader mocks the Reader method of SecureRandom.
func (m *MockSecureRandom) Reader() io.Reader {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(io.Reader)
}

// MockKeyDeriver is a mock implementation of KeyDeriver.
type MockKeyDeriver struct {
	mock.Mock
}

// NewMockKeyDeriver creates a MockKeyDeriver whose expectations are asserted when the test ends.
func NewMockKeyDeriver(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockKeyDeriver {
	m := &MockKeyDeriver{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// DeriveKey mocks the DeriveKey method of KeyDeriver.
func (m *MockKeyDeriver) DeriveKey(
	spec cryptoDomain.TransformationSpec,
	password cryptoDomain.Password,
) ([]byte, error) {
	args := m.Called(spec, password)
	return bytesOrNil(args, 0), args.Error(1)
}

// MockSymmetricCipher is a mock implementation of SymmetricCipher.
type MockSymmetricCipher struct {
	mock.Mock
}

// NewMockSymmetricCipher creates a MockSymmetricCipher whose expectations are asserted when the test ends.
func NewMockSymmetricCipher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSymmetricCipher {
	m := &MockSymmetricCipher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Encrypt mocks the Encrypt method of SymmetricCipher.
func (m *MockSymmetricCipher) Encrypt(
	content []byte,
	spec cryptoDomain.TransformationSpec,
	key, iv []byte,
) ([]byte, error) {
	args := m.Called(content, spec, key, iv)
	return bytesOrNil(args, 0), args.Error(1)
}

// Decrypt mocks the Decrypt method of SymmetricCipher.
func (m *MockSymmetricCipher) Decrypt(
	content []byte,
	spec cryptoDomain.TransformationSpec,
	key, iv []byte,
) ([]byte, error) {
	args := m.Called(content, spec, key, iv)
	return bytesOrNil(args, 0), args.Error(1)
}

// MockKeyCodec is a mock implementation of KeyCodec.
type MockKeyCodec struct {
	mock.Mock
}

// NewMockKeyCodec creates a MockKeyCodec whose expectations are asserted when the test ends.
func NewMockKeyCodec(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockKeyCodec {
	m := &MockKeyCodec{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// DecodePublicKey mocks the DecodePublicKey method of KeyCodec.
func (m *MockKeyCodec) DecodePublicKey(der []byte) (*rsa.PublicKey, error) {
	args := m.Called(der)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.PublicKey), args.Error(1)
}

// DecodePrivateKey mocks the DecodePrivateKey method of KeyCodec.
func (m *MockKeyCodec) DecodePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	args := m.Called(der)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.PrivateKey), args.Error(1)
}

// PublicKeyFromComponents mocks the PublicKeyFromComponents method of KeyCodec.
func (m *MockKeyCodec) PublicKeyFromComponents(modulus, exponent *big.Int) (*rsa.PublicKey, error) {
	args := m.Called(modulus, exponent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.PublicKey), args.Error(1)
}

// PublicKeyFromDecimal mocks the PublicKeyFromDecimal method of KeyCodec.
func (m *MockKeyCodec) PublicKeyFromDecimal(modulus, exponent string) (*rsa.PublicKey, error) {
	args := m.Called(modulus, exponent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.PublicKey), args.Error(1)
}

// GenerateKeyPair mocks the GenerateKeyPair method of KeyCodec.
func (m *MockKeyCodec) GenerateKeyPair(keyLengthBits int, rng io.Reader) (*cryptoDomain.KeyPair, error) {
	args := m.Called(keyLengthBits, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoDomain.KeyPair), args.Error(1)
}

// EncodePublicKey mocks the EncodePublicKey method of KeyCodec.
func (m *MockKeyCodec) EncodePublicKey(key *rsa.PublicKey) ([]byte, error) {
	args := m.Called(key)
	return bytesOrNil(args, 0), args.Error(1)
}

// EncodePrivateKey mocks the EncodePrivateKey method of KeyCodec.
func (m *MockKeyCodec) EncodePrivateKey(key *rsa.PrivateKey) ([]byte, error) {
	args := m.Called(key)
	return bytesOrNil(args, 0), args.Error(1)
}

// MockRSACipher is a mock implementation of RSACipher.
type MockRSACipher struct {
	mock.Mock
}

// NewMockRSACipher creates a MockRSACipher whose expectations are asserted when the test ends.
func NewMockRSACipher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRSACipher {
	m := &MockRSACipher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Encrypt mocks the Encrypt method of RSACipher.
func (m *MockRSACipher) Encrypt(
	data []byte,
	spec cryptoDomain.TransformationSpec,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	args := m.Called(data, spec, key, keyLengthBits)
	return bytesOrNil(args, 0), args.Error(1)
}

// Decrypt mocks the Decrypt method of RSACipher.
func (m *MockRSACipher) Decrypt(
	data []byte,
	spec cryptoDomain.TransformationSpec,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	args := m.Called(data, spec, key, keyLengthBits)
	return bytesOrNil(args, 0), args.Error(1)
}

// MockSigner is a mock implementation of Signer.
type MockSigner struct {
	mock.Mock
}

// NewMockSigner creates a MockSigner whose expectations are asserted when the test ends.
func NewMockSigner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSigner {
	m := &MockSigner{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Sign mocks the Sign method of Signer.
func (m *MockSigner) Sign(data []byte, algorithm string, privateKey *rsa.PrivateKey) ([]byte, error) {
	args := m.Called(data, algorithm, privateKey)
	return bytesOrNil(args, 0), args.Error(1)
}

// Verify mocks the Verify method of Signer.
func (m *MockSigner) Verify(data, signature []byte, algorithm string, publicKey *rsa.PublicKey) (bool, error) {
	args := m.Called(data, signature, algorithm, publicKey)
	return args.Bool(0), args.Error(1)
}
