package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRawPassword(t *testing.T) {
	p := NewRawPassword("0123456789abcdef")
	assert.Equal(t, []byte("0123456789abcdef"), p.Key)
}

func TestDerivedPassword_EffectivePRF(t *testing.T) {
	assert.Equal(t, HMACSHA1, DerivedPassword{}.EffectivePRF())
	assert.Equal(t, HMACSHA256, DerivedPassword{PRF: HMACSHA256}.EffectivePRF())
}

func TestPassword_Variants(t *testing.T) {
	var passwords []Password = []Password{
		RawPassword{Key: []byte("k")},
		DerivedPassword{Password: "p", Salt: []byte("s"), IterationCount: 1, KeyLengthBits: 128},
	}

	kinds := make([]string, 0, len(passwords))
	for _, p := range passwords {
		switch p.(type) {
		case RawPassword:
			kinds = append(kinds, "raw")
		case DerivedPassword:
			kinds = append(kinds, "derived")
		}
	}
	assert.Equal(t, []string{"raw", "derived"}, kinds)
}
