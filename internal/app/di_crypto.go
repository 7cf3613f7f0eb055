package app

import (
	"fmt"

	cryptoService "github.com/allisson/cipherkit/internal/crypto/service"
	cryptoUseCase "github.com/allisson/cipherkit/internal/crypto/usecase"
)

// SecureRandom returns the shared random source.
func (c *Container) SecureRandom() cryptoService.SecureRandom {
	c.secureRandomInit.Do(func() {
		c.secureRandom = cryptoService.NewSecureRandom()
	})
	return c.secureRandom
}

// KeyDeriver returns the key derivation engine.
func (c *Container) KeyDeriver() cryptoService.KeyDeriver {
	c.keyDeriverInit.Do(func() {
		c.keyDeriver = cryptoService.NewKeyDeriver()
	})
	return c.keyDeriver
}

// SymmetricCipher returns the AES engine.
func (c *Container) SymmetricCipher() cryptoService.SymmetricCipher {
	c.symmetricCipherInit.Do(func() {
		c.symmetricCipher = cryptoService.NewAESCipher(c.SecureRandom())
	})
	return c.symmetricCipher
}

// KeyCodec returns the RSA key codec.
func (c *Container) KeyCodec() cryptoService.KeyCodec {
	c.keyCodecInit.Do(func() {
		c.keyCodec = cryptoService.NewKeyCodec(c.SecureRandom())
	})
	return c.keyCodec
}

// RSACipher returns the chunked RSA engine, bounded to the configured number of workers.
func (c *Container) RSACipher() cryptoService.RSACipher {
	c.rsaCipherInit.Do(func() {
		c.rsaCipher = cryptoService.NewRSACipher(c.SecureRandom(), c.config.RSAWorkers)
	})
	return c.rsaCipher
}

// Signer returns the RSA signature engine.
func (c *Container) Signer() cryptoService.Signer {
	c.signerInit.Do(func() {
		c.signer = cryptoService.NewSigner()
	})
	return c.signer
}

// SymmetricUseCase returns the AES use case.
func (c *Container) SymmetricUseCase() (cryptoUseCase.SymmetricUseCase, error) {
	var err error
	c.symmetricUseCaseInit.Do(func() {
		c.symmetricUseCase, err = c.initSymmetricUseCase()
		if err != nil {
			c.initErrors["symmetricUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["symmetricUseCase"]; exists {
		return nil, storedErr
	}
	return c.symmetricUseCase, nil
}

// AsymmetricUseCase returns the RSA use case.
func (c *Container) AsymmetricUseCase() (cryptoUseCase.AsymmetricUseCase, error) {
	var err error
	c.asymmetricUseCaseInit.Do(func() {
		c.asymmetricUseCase, err = c.initAsymmetricUseCase()
		if err != nil {
			c.initErrors["asymmetricUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["asymmetricUseCase"]; exists {
		return nil, storedErr
	}
	return c.asymmetricUseCase, nil
}

// SignatureUseCase returns the signature use case.
func (c *Container) SignatureUseCase() (cryptoUseCase.SignatureUseCase, error) {
	var err error
	c.signatureUseCaseInit.Do(func() {
		c.signatureUseCase, err = c.initSignatureUseCase()
		if err != nil {
			c.initErrors["signatureUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["signatureUseCase"]; exists {
		return nil, storedErr
	}
	return c.signatureUseCase, nil
}

func (c *Container) initSymmetricUseCase() (cryptoUseCase.SymmetricUseCase, error) {
	baseUseCase := cryptoUseCase.NewSymmetricUseCase(
		c.KeyDeriver(),
		c.SymmetricCipher(),
		c.SecureRandom(),
		c.config.DefaultAESTransformation,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for symmetric use case: %w", err)
		}
		return cryptoUseCase.NewSymmetricUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initAsymmetricUseCase() (cryptoUseCase.AsymmetricUseCase, error) {
	baseUseCase := cryptoUseCase.NewAsymmetricUseCase(
		c.KeyCodec(),
		c.RSACipher(),
		c.config.RSADefaultKeyBits,
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for asymmetric use case: %w", err)
		}
		return cryptoUseCase.NewAsymmetricUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initSignatureUseCase() (cryptoUseCase.SignatureUseCase, error) {
	baseUseCase := cryptoUseCase.NewSignatureUseCase(c.Signer())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for signature use case: %w", err)
		}
		return cryptoUseCase.NewSignatureUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
