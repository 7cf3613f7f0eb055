package service

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // OAEPWithSHA-1AndMGF1Padding compatibility
	"crypto/sha256"
	"fmt"
	"hash"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
)

// MaxRoundLength is the largest plaintext chunk a PKCS#1 v1.5 padded RSA operation accepts
// for a key of keyLengthBits bits.
func MaxRoundLength(keyLengthBits int) int {
	return keyLengthBits/8 - cryptoDomain.PKCS1PaddingOverhead
}

// RSAChunkCipher implements RSACipher.
//
// Encryption splits plaintext into chunks of the padding's round length and transforms each
// chunk into one ciphertext block of exactly keyLengthBits/8 bytes. Decryption splits on
// that fixed block size, never on the round length.
//
// Blocks are independent, so they are processed by up to workers goroutines; the output is
// assembled in order once every block has succeeded.
type RSAChunkCipher struct {
	rng     SecureRandom
	workers int
}

// NewRSACipher creates an RSAChunkCipher. workers <= 0 uses GOMAXPROCS.
func NewRSACipher(rng SecureRandom, workers int) *RSAChunkCipher {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &RSAChunkCipher{rng: rng, workers: workers}
}

// rsaScheme is a resolved padding for one call.
type rsaScheme struct {
	padding string
	oaep    func() hash.Hash
}

// Encrypt encrypts data with a public key or, for PKCS1Padding and NoPadding, a private key.
func (c *RSAChunkCipher) Encrypt(
	data []byte,
	spec cryptoDomain.TransformationSpec,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	scheme, err := resolveRSAScheme(spec)
	if err != nil {
		return nil, err
	}
	blockSize, err := rsaBlockSize(key, keyLengthBits)
	if err != nil {
		return nil, err
	}

	roundLength := scheme.roundLength(blockSize)
	if roundLength <= 0 {
		return nil, fmt.Errorf("%w: key too small for %s", cryptoDomain.ErrInvalidKeySize, spec.Padding)
	}

	return c.transform(data, roundLength, func(chunk []byte) ([]byte, error) {
		return c.encryptBlock(scheme, key, chunk)
	})
}

// Decrypt decrypts data produced by Encrypt with the matching key.
func (c *RSAChunkCipher) Decrypt(
	data []byte,
	spec cryptoDomain.TransformationSpec,
	key any,
	keyLengthBits int,
) ([]byte, error) {
	scheme, err := resolveRSAScheme(spec)
	if err != nil {
		return nil, err
	}
	blockSize, err := rsaBlockSize(key, keyLengthBits)
	if err != nil {
		return nil, err
	}
	if len(data)%blockSize != 0 {
		return nil, fmt.Errorf(
			"%w: ciphertext length %d is not a multiple of %d",
			cryptoDomain.ErrDecryptionFailed,
			len(data),
			blockSize,
		)
	}

	return c.transform(data, blockSize, func(block []byte) ([]byte, error) {
		return c.decryptBlock(scheme, key, block)
	})
}

// transform applies fn to consecutive slices of at most size bytes and concatenates the
// results in order. Nothing is returned unless every slice succeeds.
func (c *RSAChunkCipher) transform(data []byte, size int, fn func([]byte) ([]byte, error)) ([]byte, error) {
	count := (len(data) + size - 1) / size
	outs := make([][]byte, count)

	var g errgroup.Group
	g.SetLimit(c.workers)
	for i := range count {
		end := min((i+1)*size, len(data))
		chunk := data[i*size : end]
		g.Go(func() error {
			out, err := fn(chunk)
			if err != nil {
				return err
			}
			outs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, out := range outs {
		total += len(out)
	}
	result := make([]byte, 0, total)
	for _, out := range outs {
		result = append(result, out...)
	}
	return result, nil
}

func (c *RSAChunkCipher) encryptBlock(scheme rsaScheme, key any, chunk []byte) ([]byte, error) {
	switch k := key.(type) {
	case *rsa.PublicKey:
		switch {
		case scheme.oaep != nil:
			return wrapRSAEncrypt(rsa.EncryptOAEP(scheme.oaep(), c.rng.Reader(), k, chunk, nil))
		case scheme.padding == cryptoDomain.PaddingPKCS1:
			return wrapRSAEncrypt(rsa.EncryptPKCS1v15(c.rng.Reader(), k, chunk))
		default:
			return wrapRSAEncrypt(rawPublic(k, chunk))
		}
	case *rsa.PrivateKey:
		switch {
		case scheme.oaep != nil:
			return nil, fmt.Errorf("%w: OAEP encryption needs a public key", cryptoDomain.ErrInvalidKeyType)
		case scheme.padding == cryptoDomain.PaddingPKCS1:
			// Block type 1: the private-key operation on the unhashed chunk.
			return wrapRSAEncrypt(rsa.SignPKCS1v15(nil, k, crypto.Hash(0), chunk))
		default:
			return wrapRSAEncrypt(rawPrivate(k, chunk))
		}
	default:
		return nil, fmt.Errorf("%w: %T", cryptoDomain.ErrInvalidKeyType, key)
	}
}

func (c *RSAChunkCipher) decryptBlock(scheme rsaScheme, key any, block []byte) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch k := key.(type) {
	case *rsa.PrivateKey:
		switch {
		case scheme.oaep != nil:
			out, err = rsa.DecryptOAEP(scheme.oaep(), nil, k, block, nil)
		case scheme.padding == cryptoDomain.PaddingPKCS1:
			out, err = rsa.DecryptPKCS1v15(nil, k, block)
		default:
			out, err = rawPrivate(k, block)
		}
	case *rsa.PublicKey:
		switch {
		case scheme.oaep != nil:
			return nil, fmt.Errorf("%w: OAEP decryption needs a private key", cryptoDomain.ErrInvalidKeyType)
		case scheme.padding == cryptoDomain.PaddingPKCS1:
			out, err = openPKCS1Type1(k, block)
		default:
			out, err = rawPublic(k, block)
		}
	default:
		return nil, fmt.Errorf("%w: %T", cryptoDomain.ErrInvalidKeyType, key)
	}
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return out, nil
}

func wrapRSAEncrypt(out []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidKeySize, err)
	}
	return out, nil
}

// roundLength is the plaintext bytes one block can carry.
func (s rsaScheme) roundLength(blockSize int) int {
	if s.oaep != nil {
		return blockSize - 2*s.oaep().Size() - 2
	}
	return blockSize - cryptoDomain.PKCS1PaddingOverhead
}

func resolveRSAScheme(spec cryptoDomain.TransformationSpec) (rsaScheme, error) {
	if !spec.IsRSA() {
		return rsaScheme{}, fmt.Errorf("%w: %q", cryptoDomain.ErrUnsupportedAlgorithm, spec.Algorithm)
	}
	switch strings.ToUpper(spec.Mode) {
	case cryptoDomain.ModeECB, "NONE":
	default:
		return rsaScheme{}, fmt.Errorf("%w: %q", cryptoDomain.ErrUnsupportedMode, spec.Mode)
	}

	switch {
	case strings.EqualFold(spec.Padding, cryptoDomain.PaddingPKCS1):
		return rsaScheme{padding: cryptoDomain.PaddingPKCS1}, nil
	case strings.EqualFold(spec.Padding, cryptoDomain.PaddingNone):
		return rsaScheme{padding: cryptoDomain.PaddingNone}, nil
	case strings.EqualFold(spec.Padding, cryptoDomain.PaddingOAEPSHA1):
		return rsaScheme{padding: cryptoDomain.PaddingOAEPSHA1, oaep: sha1.New}, nil
	case strings.EqualFold(spec.Padding, cryptoDomain.PaddingOAEPSHA256):
		return rsaScheme{padding: cryptoDomain.PaddingOAEPSHA256, oaep: sha256.New}, nil
	default:
		return rsaScheme{}, fmt.Errorf("%w: %q", cryptoDomain.ErrUnsupportedPadding, spec.Padding)
	}
}

// rsaBlockSize checks keyLengthBits against the key and returns the block size in bytes.
func rsaBlockSize(key any, keyLengthBits int) (int, error) {
	var size int
	switch k := key.(type) {
	case *rsa.PublicKey:
		if k == nil || k.N == nil {
			return 0, fmt.Errorf("%w: public key is nil", cryptoDomain.ErrInvalidKeyType)
		}
		size = k.Size()
	case *rsa.PrivateKey:
		if k == nil || k.N == nil {
			return 0, fmt.Errorf("%w: private key is nil", cryptoDomain.ErrInvalidKeyType)
		}
		size = k.Size()
	default:
		return 0, fmt.Errorf("%w: expected RSA key, got %T", cryptoDomain.ErrInvalidKeyType, key)
	}

	if keyLengthBits != 0 && keyLengthBits/8 != size {
		return 0, fmt.Errorf(
			"%w: key length %d bits does not match a %d-bit key",
			cryptoDomain.ErrInvalidKeySize,
			keyLengthBits,
			size*8,
		)
	}
	return size, nil
}
