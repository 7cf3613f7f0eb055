package domain

// Password is the secret a symmetric key is built from. It is a closed sum type:
// RawPassword and DerivedPassword are its only variants.
type Password interface {
	isPassword()
}

// RawPassword is used as key material verbatim. Its length must already be a valid key
// length for the algorithm; it is never truncated or padded.
type RawPassword struct {
	Key []byte
}

// NewRawPassword builds a RawPassword from the bytes of a text secret.
func NewRawPassword(secret string) RawPassword {
	return RawPassword{Key: []byte(secret)}
}

func (RawPassword) isPassword() {}

// PRF names the pseudorandom function used by PBKDF2.
type PRF string

const (
	// HMACSHA1 matches PBKDF2WithHmacSHA1 and is the default.
	HMACSHA1   PRF = "sha1"
	HMACSHA224 PRF = "sha224"
	HMACSHA256 PRF = "sha256"
	HMACSHA384 PRF = "sha384"
	HMACSHA512 PRF = "sha512"
)

// DerivedPassword is stretched into key bytes with PBKDF2.
type DerivedPassword struct {
	Password       string
	Salt           []byte
	IterationCount int
	// KeyLengthBits is the output length; the derived key has KeyLengthBits/8 bytes.
	KeyLengthBits int
	// PRF defaults to HMACSHA1 when empty.
	PRF PRF
}

func (DerivedPassword) isPassword() {}

// EffectivePRF returns the configured PRF or the default.
func (p DerivedPassword) EffectivePRF() PRF {
	if p.PRF == "" {
		return HMACSHA1
	}
	return p.PRF
}
