package domain

import (
	"crypto/rsa"
	"time"

	"github.com/google/uuid"
)

// KeyPair is a freshly generated RSA key pair.
//
// The public half serializes to X.509 SubjectPublicKeyInfo and the private half to PKCS#8;
// both are usually carried as base64 or PEM text.
type KeyPair struct {
	ID            uuid.UUID // Unique identifier (UUIDv7)
	PublicKey     *rsa.PublicKey
	PrivateKey    *rsa.PrivateKey
	KeyLengthBits int
	CreatedAt     time.Time
}

// NewKeyPair wraps a generated private key.
func NewKeyPair(privateKey *rsa.PrivateKey) *KeyPair {
	return &KeyPair{
		ID:            uuid.Must(uuid.NewV7()),
		PublicKey:     &privateKey.PublicKey,
		PrivateKey:    privateKey,
		KeyLengthBits: privateKey.N.BitLen(),
		CreatedAt:     time.Now().UTC(),
	}
}

// KeyLengthBytes is the RSA block size, which is also the size of every ciphertext block.
func (k *KeyPair) KeyLengthBytes() int {
	return k.PublicKey.Size()
}
