package service

import (
	"crypto/rsa"
	"crypto/subtle"
	"math/big"

	cryptoDomain "github.com/allisson/cipherkit/internal/crypto/domain"
)

// rawPublic computes m^e mod n and returns it left-padded to the modulus size.
func rawPublic(key *rsa.PublicKey, in []byte) ([]byte, error) {
	m := new(big.Int).SetBytes(in)
	if m.Cmp(key.N) >= 0 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	c := new(big.Int).Exp(m, big.NewInt(int64(key.E)), key.N)
	return c.FillBytes(make([]byte, key.Size())), nil
}

// rawPrivate computes c^d mod n. It is only used for RSA/ECB/NoPadding, which offers no
// protection of its own; padded schemes go through crypto/rsa.
func rawPrivate(key *rsa.PrivateKey, in []byte) ([]byte, error) {
	c := new(big.Int).SetBytes(in)
	if c.Cmp(key.N) >= 0 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	m := new(big.Int).Exp(c, key.D, key.N)
	return m.FillBytes(make([]byte, key.Size())), nil
}

// openPKCS1Type1 reverses a private-key PKCS#1 v1.5 operation (block type 1), the format
// produced by encrypting with a private key.
//
//	EM = 0x00 || 0x01 || PS (0xFF, at least 8 bytes) || 0x00 || M
func openPKCS1Type1(key *rsa.PublicKey, block []byte) ([]byte, error) {
	em, err := rawPublic(key, block)
	if err != nil {
		return nil, err
	}

	valid := subtle.ConstantTimeByteEq(em[0], 0x00) & subtle.ConstantTimeByteEq(em[1], 0x01)
	sep := -1
	for i := 2; i < len(em); i++ {
		if em[i] == 0x00 {
			sep = i
			break
		}
		if em[i] != 0xFF {
			valid = 0
			break
		}
	}
	if valid != 1 || sep < 2+8 {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return em[sep+1:], nil
}
