package service

import (
	"crypto/cipher"
	"crypto/subtle"
	"fmt"
	"strings"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
)

// blockMode runs a block cipher over a whole message. Inputs have already been padded on
// encryption; length rules specific to the mode are enforced here.
type blockMode interface {
	encrypt(b cipher.Block, iv, src []byte) ([]byte, error)
	decrypt(b cipher.Block, iv, src []byte) ([]byte, error)
}

func lookupMode(name string) (blockMode, error) {
	switch strings.ToUpper(name) {
	case cryptoDomain.ModeECB:
		return ecbMode{}, nil
	case cryptoDomain.ModeCBC:
		return cbcMode{}, nil
	case cryptoDomain.ModeCFB:
		return streamMode{
			enc: cipher.NewCFBEncrypter, //nolint:staticcheck // AES/CFB is CFB128 without authentication
			dec: cipher.NewCFBDecrypter, //nolint:staticcheck // AES/CFB is CFB128 without authentication
		}, nil
	case cryptoDomain.ModeOFB:
		return streamMode{
			enc: cipher.NewOFB, //nolint:staticcheck // AES/OFB has no AEAD replacement
			dec: cipher.NewOFB, //nolint:staticcheck // AES/OFB has no AEAD replacement
		}, nil
	case cryptoDomain.ModeCTR:
		return streamMode{enc: cipher.NewCTR, dec: cipher.NewCTR}, nil
	case cryptoDomain.ModeCTS:
		return ctsMode{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", cryptoDomain.ErrUnsupportedMode, name)
	}
}

// ecbMode encrypts each block independently.
type ecbMode struct{}

func (ecbMode) encrypt(b cipher.Block, _, src []byte) ([]byte, error) {
	bs := b.BlockSize()
	if len(src)%bs != 0 {
		return nil, cryptoDomain.ErrInputNotFullBlocks
	}
	dst := make([]byte, len(src))
	for i := 0; i < len(src); i += bs {
		b.Encrypt(dst[i:i+bs], src[i:i+bs])
	}
	return dst, nil
}

func (ecbMode) decrypt(b cipher.Block, _, src []byte) ([]byte, error) {
	bs := b.BlockSize()
	if len(src)%bs != 0 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	dst := make([]byte, len(src))
	for i := 0; i < len(src); i += bs {
		b.Decrypt(dst[i:i+bs], src[i:i+bs])
	}
	return dst, nil
}

type cbcMode struct{}

func (cbcMode) encrypt(b cipher.Block, iv, src []byte) ([]byte, error) {
	if len(src)%b.BlockSize() != 0 {
		return nil, cryptoDomain.ErrInputNotFullBlocks
	}
	dst := make([]byte, len(src))
	cipher.NewCBCEncrypter(b, iv).CryptBlocks(dst, src)
	return dst, nil
}

func (cbcMode) decrypt(b cipher.Block, iv, src []byte) ([]byte, error) {
	if len(src)%b.BlockSize() != 0 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	dst := make([]byte, len(src))
	cipher.NewCBCDecrypter(b, iv).CryptBlocks(dst, src)
	return dst, nil
}

// streamMode covers the feedback and counter modes, which accept any length.
type streamMode struct {
	enc func(cipher.Block, []byte) cipher.Stream
	dec func(cipher.Block, []byte) cipher.Stream
}

func (m streamMode) encrypt(b cipher.Block, iv, src []byte) ([]byte, error) {
	dst := make([]byte, len(src))
	m.enc(b, iv).XORKeyStream(dst, src)
	return dst, nil
}

func (m streamMode) decrypt(b cipher.Block, iv, src []byte) ([]byte, error) {
	dst := make([]byte, len(src))
	m.dec(b, iv).XORKeyStream(dst, src)
	return dst, nil
}

// ctsMode is CBC with ciphertext stealing in the CS3 layout: the last two ciphertext blocks
// are always swapped, and the final block may be short. The message must be at least one
// block long.
type ctsMode struct{}

func (ctsMode) encrypt(b cipher.Block, iv, src []byte) ([]byte, error) {
	bs := b.BlockSize()
	if len(src) < bs {
		return nil, fmt.Errorf("%w: CTS needs at least %d bytes", cryptoDomain.ErrInputNotFullBlocks, bs)
	}
	dst := make([]byte, len(src))
	if len(src) == bs {
		cipher.NewCBCEncrypter(b, iv).CryptBlocks(dst, src)
		return dst, nil
	}

	head, tail := ctsSplit(len(src), bs)
	prev := iv
	if head > 0 {
		cipher.NewCBCEncrypter(b, iv).CryptBlocks(dst[:head], src[:head])
		prev = dst[head-bs : head]
	}

	// X = E(P[n-1] ^ prev); Y = E((P[n] || 0...) ^ X); output Y || X[:d].
	x := make([]byte, bs)
	subtle.XORBytes(x, src[head:head+bs], prev)
	b.Encrypt(x, x)

	last := make([]byte, bs)
	copy(last, src[head+bs:])
	subtle.XORBytes(last, last, x)
	b.Encrypt(dst[head:head+bs], last)
	copy(dst[head+bs:], x[:tail])
	return dst, nil
}

func (ctsMode) decrypt(b cipher.Block, iv, src []byte) ([]byte, error) {
	bs := b.BlockSize()
	if len(src) < bs {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	dst := make([]byte, len(src))
	if len(src) == bs {
		cipher.NewCBCDecrypter(b, iv).CryptBlocks(dst, src)
		return dst, nil
	}

	head, tail := ctsSplit(len(src), bs)
	prev := iv
	if head > 0 {
		cipher.NewCBCDecrypter(b, iv).CryptBlocks(dst[:head], src[:head])
		prev = src[head-bs : head]
	}

	// D = D(Y) = (P[n] || 0...) ^ X, so X = C[n] || D[d:] and P[n] = D[:d] ^ C[n].
	d := make([]byte, bs)
	b.Decrypt(d, src[head:head+bs])

	x := make([]byte, bs)
	copy(x, src[head+bs:])
	copy(x[tail:], d[tail:])
	subtle.XORBytes(dst[head+bs:], d[:tail], x[:tail])

	b.Decrypt(dst[head:head+bs], x)
	subtle.XORBytes(dst[head:head+bs], dst[head:head+bs], prev)
	return dst, nil
}

// ctsSplit returns the length handled by plain CBC and the size of the final block.
func ctsSplit(n, bs int) (head, tail int) {
	tail = n % bs
	if tail == 0 {
		tail = bs
	}
	head = n - tail - bs
	return head, tail
}
