// Package domain defines the data model of the cryptographic utility layer: transformation
// strings, passwords used for key derivation, RSA key pairs and the error kinds shared by
// every engine.
package domain

import (
	"strings"
)

// TransformationSpec identifies a cipher construction as an algorithm/mode/padding triple,
// for example AES/CBC/PKCS7Padding.
//
// A TransformationSpec is immutable and is only split by ParseTransformation; whether the triple is
// supported is decided by the engine that uses it.
type TransformationSpec struct {
	Algorithm string
	Mode      string
	Padding   string
}

// ParseTransformation splits a transformation string.
//
// A bare algorithm name expands to the provider defaults: "AES" is AES/ECB/PKCS5Padding and
// "RSA" is RSA/ECB/PKCS1Padding. Any other shape is returned as-is so the engine can reject it
// with a configuration error.
func ParseTransformation(s string) TransformationSpec {
	parts := strings.Split(strings.TrimSpace(s), "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 1:
		spec := TransformationSpec{Algorithm: parts[0]}
		switch strings.ToUpper(parts[0]) {
		case AlgorithmAES:
			spec.Mode, spec.Padding = ModeECB, PaddingPKCS5
		case AlgorithmRSA:
			spec.Mode, spec.Padding = ModeECB, PaddingPKCS1
		}
		return spec
	case 3:
		return TransformationSpec{Algorithm: parts[0], Mode: parts[1], Padding: parts[2]}
	default:
		return TransformationSpec{Algorithm: s}
	}
}

// String joins the triple back into a transformation string.
func (t TransformationSpec) String() string {
	if t.Mode == "" && t.Padding == "" {
		return t.Algorithm
	}
	return t.Algorithm + "/" + t.Mode + "/" + t.Padding
}

// IsAES reports whether the algorithm field names AES.
func (t TransformationSpec) IsAES() bool {
	return strings.EqualFold(t.Algorithm, AlgorithmAES)
}

// IsRSA reports whether the algorithm field names RSA.
func (t TransformationSpec) IsRSA() bool {
	return strings.EqualFold(t.Algorithm, AlgorithmRSA)
}

// RequiresIV reports whether the mode needs an initialization vector.
// ECB is the only supported mode that does not.
func (t TransformationSpec) RequiresIV() bool {
	switch strings.ToUpper(t.Mode) {
	case ModeCBC, ModeCFB, ModeCTR, ModeCTS, ModeOFB:
		return true
	default:
		return false
	}
}
