package domain

import (
	"github.com/allisson/cipherkit/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap the sentinels from internal/errors, so callers can
// branch on the kind (errors.Is(err, apperrors.ErrKey)) or on the specific cause.
var (
	// ErrUnsupportedAlgorithm indicates the algorithm field of a transformation, or a
	// signature algorithm name, is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrConfiguration, "unsupported algorithm")

	// ErrMalformedTransformation indicates a transformation that is neither a bare algorithm
	// nor an algorithm/mode/padding triple.
	ErrMalformedTransformation = errors.Wrap(errors.ErrConfiguration, "malformed transformation")

	// ErrUnsupportedMode indicates the mode field of a transformation is not supported.
	ErrUnsupportedMode = errors.Wrap(errors.ErrConfiguration, "unsupported mode")

	// ErrUnsupportedPadding indicates the padding field of a transformation is not supported
	// for the requested algorithm.
	ErrUnsupportedPadding = errors.Wrap(errors.ErrConfiguration, "unsupported padding")

	// ErrUnsupportedPRF indicates a key derivation pseudorandom function is not available.
	ErrUnsupportedPRF = errors.Wrap(errors.ErrConfiguration, "unsupported key derivation function")

	// ErrIVRequired indicates a chaining or feedback mode was used without an IV.
	ErrIVRequired = errors.Wrap(errors.ErrConfiguration, "initialization vector required")

	// ErrInvalidIVSize indicates the IV length does not match the cipher block size.
	ErrInvalidIVSize = errors.Wrap(errors.ErrInvalidArgument, "invalid initialization vector size")

	// ErrInvalidKeyLength indicates a requested key size outside the supported range.
	ErrInvalidKeyLength = errors.Wrap(errors.ErrInvalidArgument, "invalid key length")

	// ErrInvalidLength indicates a non-positive length argument.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidArgument, "length must be greater than 0")

	// ErrInputNotFullBlocks indicates unpadded input whose length is not a multiple of the
	// block size for a mode that requires whole blocks.
	ErrInputNotFullBlocks = errors.Wrap(
		errors.ErrInvalidArgument,
		"input length not a multiple of block size",
	)

	// ErrInvalidKeySize indicates key material whose length is not valid for the algorithm.
	ErrInvalidKeySize = errors.Wrap(errors.ErrKey, "invalid key size")

	// ErrInvalidKeyType indicates a key of the wrong type for the requested operation.
	ErrInvalidKeyType = errors.Wrap(errors.ErrKey, "invalid key type")

	// ErrUnsupportedPassword indicates a Password variant the deriver does not know.
	ErrUnsupportedPassword = errors.Wrap(errors.ErrKey, "unsupported password type")

	// ErrMalformedKey indicates encoded key bytes or key text that cannot be parsed.
	ErrMalformedKey = errors.Wrap(errors.ErrKeyFormat, "malformed key")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error can occur due to:
	//   - Wrong decryption key or IV
	//   - Corrupted ciphertext
	//   - Ciphertext length that is not a whole number of blocks
	//
	// The specific cause is not disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrDecryption, "decryption failed")

	// ErrKeyRead indicates key material could not be read from its source.
	ErrKeyRead = errors.Wrap(errors.ErrIO, "failed to read key")
)
