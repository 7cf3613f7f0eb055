package usecase

import (
	"context"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
	usecaseMocks "github.com/allisson/cipherkit/internal/crypto/usecase/mocks"
	"github.com/allisson/cipherkit/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

// expectRecord sets up both metric calls for one operation.
func (m *mockBusinessMetrics) expectRecord(ctx context.Context, operation, status string) {
	m.On("RecordOperation", ctx, "crypto", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "crypto", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestNewUseCasesWithMetrics(t *testing.T) {
	t.Parallel()
	mockMetrics := &mockBusinessMetrics{}

	symmetric := NewSymmetricUseCaseWithMetrics(usecaseMocks.NewMockSymmetricUseCase(t), mockMetrics)
	assert.Implements(t, (*SymmetricUseCase)(nil), symmetric)

	asymmetric := NewAsymmetricUseCaseWithMetrics(usecaseMocks.NewMockAsymmetricUseCase(t), mockMetrics)
	assert.Implements(t, (*AsymmetricUseCase)(nil), asymmetric)

	signature := NewSignatureUseCaseWithMetrics(usecaseMocks.NewMockSignatureUseCase(t), mockMetrics)
	assert.Implements(t, (*SignatureUseCase)(nil), signature)
}

func TestMetricsDecorator_SymmetricEncrypt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	password := cryptoDomain.NewRawPassword("0123456789abcdef")

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := usecaseMocks.NewMockSymmetricUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Encrypt", ctx, []byte("data"), "", password, []byte(nil)).
			Return([]byte("ciphertext"), nil).
			Once()
		mockMetrics.expectRecord(ctx, "aes_encrypt", "success")

		decorator := NewSymmetricUseCaseWithMetrics(mockUseCase, mockMetrics)
		out, err := decorator.Encrypt(ctx, []byte("data"), "", password, nil)

		assert.NoError(t, err)
		assert.Equal(t, []byte("ciphertext"), out)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := usecaseMocks.NewMockSymmetricUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("DecryptFromBase64ToString", ctx, "AAAA", "", password, []byte(nil)).
			Return("", cryptoDomain.ErrDecryptionFailed).
			Once()
		mockMetrics.expectRecord(ctx, "aes_decrypt", "error")

		decorator := NewSymmetricUseCaseWithMetrics(mockUseCase, mockMetrics)
		_, err := decorator.DecryptFromBase64ToString(ctx, "AAAA", "", password, nil)

		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
		mockMetrics.AssertExpectations(t)
	})
}

func TestMetricsDecorator_SymmetricOperationNames(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	password := cryptoDomain.NewRawPassword("0123456789abcdef")

	tests := []struct {
		name      string
		operation string
		setup     func(m *usecaseMocks.MockSymmetricUseCase)
		call      func(uc SymmetricUseCase)
	}{
		{
			name:      "EncryptToBase64",
			operation: "aes_encrypt",
			setup: func(m *usecaseMocks.MockSymmetricUseCase) {
				m.On("EncryptToBase64", ctx, []byte("x"), "", password, []byte(nil)).Return("eA==", nil).Once()
			},
			call: func(uc SymmetricUseCase) { _, _ = uc.EncryptToBase64(ctx, []byte("x"), "", password, nil) },
		},
		{
			name:      "EncryptString",
			operation: "aes_encrypt",
			setup: func(m *usecaseMocks.MockSymmetricUseCase) {
				m.On("EncryptString", ctx, "x", "", password, []byte(nil)).Return("eA==", nil).Once()
			},
			call: func(uc SymmetricUseCase) { _, _ = uc.EncryptString(ctx, "x", "", password, nil) },
		},
		{
			name:      "Decrypt",
			operation: "aes_decrypt",
			setup: func(m *usecaseMocks.MockSymmetricUseCase) {
				m.On("Decrypt", ctx, []byte("x"), "", password, []byte(nil)).Return([]byte("y"), nil).Once()
			},
			call: func(uc SymmetricUseCase) { _, _ = uc.Decrypt(ctx, []byte("x"), "", password, nil) },
		},
		{
			name:      "DecryptFromBase64",
			operation: "aes_decrypt",
			setup: func(m *usecaseMocks.MockSymmetricUseCase) {
				m.On("DecryptFromBase64", ctx, "eA==", "", password, []byte(nil)).Return([]byte("y"), nil).Once()
			},
			call: func(uc SymmetricUseCase) { _, _ = uc.DecryptFromBase64(ctx, "eA==", "", password, nil) },
		},
		{
			name:      "DecryptToString",
			operation: "aes_decrypt",
			setup: func(m *usecaseMocks.MockSymmetricUseCase) {
				m.On("DecryptToString", ctx, []byte("x"), "", password, []byte(nil)).Return("y", nil).Once()
			},
			call: func(uc SymmetricUseCase) { _, _ = uc.DecryptToString(ctx, []byte("x"), "", password, nil) },
		},
		{
			name:      "GenerateKey",
			operation: "aes_generate_key",
			setup: func(m *usecaseMocks.MockSymmetricUseCase) {
				m.On("GenerateKey", ctx, 256).Return(make([]byte, 32), nil).Once()
			},
			call: func(uc SymmetricUseCase) { _, _ = uc.GenerateKey(ctx, 256) },
		},
		{
			name:      "GenerateIV",
			operation: "aes_generate_iv",
			setup: func(m *usecaseMocks.MockSymmetricUseCase) {
				m.On("GenerateIV", ctx, 16).Return(make([]byte, 16), nil).Once()
			},
			call: func(uc SymmetricUseCase) { _, _ = uc.GenerateIV(ctx, 16) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mockUseCase := usecaseMocks.NewMockSymmetricUseCase(t)
			mockMetrics := &mockBusinessMetrics{}

			tt.setup(mockUseCase)
			mockMetrics.expectRecord(ctx, tt.operation, "success")

			tt.call(NewSymmetricUseCaseWithMetrics(mockUseCase, mockMetrics))
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestMetricsDecorator_Asymmetric(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	publicKey := &rsa.PublicKey{}
	privateKey := &rsa.PrivateKey{}

	tests := []struct {
		name      string
		operation string
		status    string
		setup     func(m *usecaseMocks.MockAsymmetricUseCase)
		call      func(uc AsymmetricUseCase) error
	}{
		{
			name:      "GenerateKeyPair",
			operation: "rsa_generate_key_pair",
			status:    "success",
			setup: func(m *usecaseMocks.MockAsymmetricUseCase) {
				m.On("GenerateKeyPair", ctx, 1024).Return(&cryptoDomain.KeyPair{}, nil).Once()
			},
			call: func(uc AsymmetricUseCase) error {
				_, err := uc.GenerateKeyPair(ctx, 1024)
				return err
			},
		},
		{
			name:      "GenerateKeyPairBase64Error",
			operation: "rsa_generate_key_pair",
			status:    "error",
			setup: func(m *usecaseMocks.MockAsymmetricUseCase) {
				m.On("GenerateKeyPairBase64", ctx, 100).Return("", "", cryptoDomain.ErrInvalidKeyLength).Once()
			},
			call: func(uc AsymmetricUseCase) error {
				_, _, err := uc.GenerateKeyPairBase64(ctx, 100)
				return err
			},
		},
		{
			name:      "LoadPublicKey",
			operation: "rsa_load_public_key",
			status:    "success",
			setup: func(m *usecaseMocks.MockAsymmetricUseCase) {
				m.On("LoadPublicKey", ctx, "text").Return(publicKey, nil).Once()
			},
			call: func(uc AsymmetricUseCase) error {
				_, err := uc.LoadPublicKey(ctx, "text")
				return err
			},
		},
		{
			name:      "LoadPrivateKeyError",
			operation: "rsa_load_private_key",
			status:    "error",
			setup: func(m *usecaseMocks.MockAsymmetricUseCase) {
				m.On("LoadPrivateKey", ctx, "text").Return(nil, cryptoDomain.ErrMalformedKey).Once()
			},
			call: func(uc AsymmetricUseCase) error {
				_, err := uc.LoadPrivateKey(ctx, "text")
				return err
			},
		},
		{
			name:      "Encrypt",
			operation: "rsa_encrypt",
			status:    "success",
			setup: func(m *usecaseMocks.MockAsymmetricUseCase) {
				m.On("Encrypt", ctx, []byte("x"), "", publicKey, 0).Return([]byte("c"), nil).Once()
			},
			call: func(uc AsymmetricUseCase) error {
				_, err := uc.Encrypt(ctx, []byte("x"), "", publicKey, 0)
				return err
			},
		},
		{
			name:      "EncryptToBase64",
			operation: "rsa_encrypt",
			status:    "success",
			setup: func(m *usecaseMocks.MockAsymmetricUseCase) {
				m.On("EncryptToBase64", ctx, []byte("x"), "", publicKey, 0).Return("Yw==", nil).Once()
			},
			call: func(uc AsymmetricUseCase) error {
				_, err := uc.EncryptToBase64(ctx, []byte("x"), "", publicKey, 0)
				return err
			},
		},
		{
			name:      "DecryptError",
			operation: "rsa_decrypt",
			status:    "error",
			setup: func(m *usecaseMocks.MockAsymmetricUseCase) {
				m.On("Decrypt", ctx, []byte("c"), "", privateKey, 0).Return(nil, cryptoDomain.ErrDecryptionFailed).Once()
			},
			call: func(uc AsymmetricUseCase) error {
				_, err := uc.Decrypt(ctx, []byte("c"), "", privateKey, 0)
				return err
			},
		},
		{
			name:      "DecryptFromBase64",
			operation: "rsa_decrypt",
			status:    "success",
			setup: func(m *usecaseMocks.MockAsymmetricUseCase) {
				m.On("DecryptFromBase64", ctx, "Yw==", "", privateKey, 0).Return([]byte("x"), nil).Once()
			},
			call: func(uc AsymmetricUseCase) error {
				_, err := uc.DecryptFromBase64(ctx, "Yw==", "", privateKey, 0)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mockUseCase := usecaseMocks.NewMockAsymmetricUseCase(t)
			mockMetrics := &mockBusinessMetrics{}

			tt.setup(mockUseCase)
			mockMetrics.expectRecord(ctx, tt.operation, tt.status)

			err := tt.call(NewAsymmetricUseCaseWithMetrics(mockUseCase, mockMetrics))
			assert.Equal(t, tt.status == "error", err != nil)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestMetricsDecorator_Signature(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	publicKey := &rsa.PublicKey{}
	privateKey := &rsa.PrivateKey{}

	t.Run("Sign_Success", func(t *testing.T) {
		t.Parallel()
		mockUseCase := usecaseMocks.NewMockSignatureUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("SignToBase64", ctx, []byte("x"), cryptoDomain.SHA256WithRSA, privateKey).
			Return("c2ln", nil).
			Once()
		mockMetrics.expectRecord(ctx, "sign", "success")

		out, err := NewSignatureUseCaseWithMetrics(mockUseCase, mockMetrics).
			SignToBase64(ctx, []byte("x"), cryptoDomain.SHA256WithRSA, privateKey)
		assert.NoError(t, err)
		assert.Equal(t, "c2ln", out)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Sign_Error", func(t *testing.T) {
		t.Parallel()
		mockUseCase := usecaseMocks.NewMockSignatureUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Sign", ctx, []byte("x"), "bogus", privateKey).
			Return(nil, cryptoDomain.ErrUnsupportedAlgorithm).
			Once()
		mockMetrics.expectRecord(ctx, "sign", "error")

		_, err := NewSignatureUseCaseWithMetrics(mockUseCase, mockMetrics).Sign(ctx, []byte("x"), "bogus", privateKey)
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Verify_MismatchRecordsSuccess", func(t *testing.T) {
		t.Parallel()
		mockUseCase := usecaseMocks.NewMockSignatureUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Verify", ctx, []byte("x"), []byte("sig"), cryptoDomain.SHA256WithRSA, publicKey).
			Return(false, nil).
			Once()
		mockMetrics.expectRecord(ctx, "verify", "success")

		ok, err := NewSignatureUseCaseWithMetrics(mockUseCase, mockMetrics).
			Verify(ctx, []byte("x"), []byte("sig"), cryptoDomain.SHA256WithRSA, publicKey)
		assert.NoError(t, err)
		assert.False(t, ok)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("VerifyBase64_Error", func(t *testing.T) {
		t.Parallel()
		mockUseCase := usecaseMocks.NewMockSignatureUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		verifyErr := errors.New("bad signature text")
		mockUseCase.On("VerifyBase64", ctx, []byte("x"), "???", cryptoDomain.SHA256WithRSA, publicKey).
			Return(false, verifyErr).
			Once()
		mockMetrics.expectRecord(ctx, "verify", "error")

		_, err := NewSignatureUseCaseWithMetrics(mockUseCase, mockMetrics).
			VerifyBase64(ctx, []byte("x"), "???", cryptoDomain.SHA256WithRSA, publicKey)
		assert.ErrorIs(t, err, verifyErr)
		mockMetrics.AssertExpectations(t)
	})
}
