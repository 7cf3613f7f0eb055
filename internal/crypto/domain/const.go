package domain

// Algorithm names accepted in the first field of a transformation string.
const (
	AlgorithmAES = "AES"
	AlgorithmRSA = "RSA"
)

// Block cipher modes.
const (
	ModeECB = "ECB"
	ModeCBC = "CBC"
	ModeCFB = "CFB"
	ModeOFB = "OFB"
	ModeCTR = "CTR"
	ModeCTS = "CTS"
)

// Padding schemes. PKCS5Padding and PKCS7Padding are the same scheme for a 16-byte block.
const (
	PaddingNone       = "NoPadding"
	PaddingPKCS5      = "PKCS5Padding"
	PaddingPKCS7      = "PKCS7Padding"
	PaddingISO10126   = "ISO10126Padding"
	PaddingPKCS1      = "PKCS1Padding"
	PaddingOAEPSHA1   = "OAEPWithSHA-1AndMGF1Padding"
	PaddingOAEPSHA256 = "OAEPWithSHA-256AndMGF1Padding"
)

// AES transformations.
const (
	AES                = "AES"
	AESCBCNoPadding    = "AES/CBC/NoPadding"
	AESCBCPKCS5Padding = "AES/CBC/PKCS5Padding"
	AESCBCPKCS7Padding = "AES/CBC/PKCS7Padding"
	AESCBCISO10126     = "AES/CBC/ISO10126Padding"
	AESCFBNoPadding    = "AES/CFB/NoPadding"
	AESCFBPKCS5Padding = "AES/CFB/PKCS5Padding"
	AESCFBISO10126     = "AES/CFB/ISO10126Padding"
	AESCTRNoPadding    = "AES/CTR/NoPadding"
	AESCTRPKCS5Padding = "AES/CTR/PKCS5Padding"
	AESCTRISO10126     = "AES/CTR/ISO10126Padding"
	AESCTSNoPadding    = "AES/CTS/NoPadding"
	AESCTSPKCS5Padding = "AES/CTS/PKCS5Padding"
	AESCTSISO10126     = "AES/CTS/ISO10126Padding"
	AESECBNoPadding    = "AES/ECB/NoPadding"
	AESECBPKCS5Padding = "AES/ECB/PKCS5Padding"
	AESECBISO10126     = "AES/ECB/ISO10126Padding"
	AESOFBNoPadding    = "AES/OFB/NoPadding"
	AESOFBPKCS5Padding = "AES/OFB/PKCS5Padding"
	AESOFBISO10126     = "AES/OFB/ISO10126Padding"
)

// RSA transformations.
const (
	RSA                = "RSA"
	RSAECBPKCS1Padding = "RSA/ECB/PKCS1Padding"
	RSAECBNoPadding    = "RSA/ECB/NoPadding"
	RSAECBOAEPSHA1     = "RSA/ECB/OAEPWithSHA-1AndMGF1Padding"
	RSAECBOAEPSHA256   = "RSA/ECB/OAEPWithSHA-256AndMGF1Padding"
)

// Signature algorithms (PKCS#1 v1.5).
const (
	MD5WithRSA    = "MD5withRSA"
	SHA1WithRSA   = "SHA1withRSA"
	SHA224WithRSA = "SHA224withRSA"
	SHA256WithRSA = "SHA256withRSA"
	SHA384WithRSA = "SHA384withRSA"
	SHA512WithRSA = "SHA512withRSA"
)

// Sizes.
const (
	// AESBlockSize is the AES block size in bytes, which is also the IV length.
	AESBlockSize = 16

	// RSADefaultKeyBits is used when a key pair is generated without an explicit size.
	RSADefaultKeyBits = 1024
	RSAMinKeyBits     = 512
	RSAMaxKeyBits     = 2048

	// PKCS1PaddingOverhead is the number of bytes PKCS#1 v1.5 padding adds to each block.
	PKCS1PaddingOverhead = 11
)
