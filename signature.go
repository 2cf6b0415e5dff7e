package easysig

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

const (
	// SignatureLength is the length of a serialized signature:
	// <1-byte header><32-byte R><32-byte S>.
	SignatureLength = 65

	// compactSigMagicOffset is the base value of the header byte.
	compactSigMagicOffset = 27

	// compactSigCompPubKey is added to the header byte when the recovered
	// public key is to be read in compressed form.
	compactSigCompPubKey = 4

	// signatureStringPrefix prefixes the checksummed string form of a
	// signature. keyType is mixed into its checksum.
	signatureStringPrefix = "SIG_K1_"
	keyType               = "K1"
	checksumLength        = 4
)

// Signature is a recoverable ECDSA signature. The header byte carries the
// 2-bit recovery index, the compressed key flag and the base offset 27.
//
// Signature values are immutable once created.
type Signature struct {
	r      *big.Int
	s      *big.Int
	header byte
}

// NewSignature creates a signature from its components. It panics if r or s
// is nil or does not fit in 32 bytes.
func NewSignature(r, s *big.Int, header byte) *Signature {
	if r == nil || s == nil {
		panic("easysig: signature r and s must not be nil")
	}
	if r.Sign() < 0 || s.Sign() < 0 || r.BitLen() > 256 || s.BitLen() > 256 {
		panic("easysig: signature r and s must be unsigned 256-bit integers")
	}
	return &Signature{
		r:      new(big.Int).Set(r),
		s:      new(big.Int).Set(s),
		header: header,
	}
}

// NewSignatureFromBytes decodes a signature from its 65-byte serialized form.
func NewSignatureFromBytes(b []byte) (*Signature, error) {
	if len(b) != SignatureLength {
		return nil, fmt.Errorf("%w: signature must be %d bytes, got %d",
			ErrInvalidInput, SignatureLength, len(b))
	}
	header := b[0]
	code := header - compactSigMagicOffset
	if code != code&7 {
		return nil, fmt.Errorf("%w: header byte %d is out of range [%d, %d]",
			ErrInvalidFormat, header, compactSigMagicOffset, compactSigMagicOffset+7)
	}
	return &Signature{
		r:      new(big.Int).SetBytes(b[1:33]),
		s:      new(big.Int).SetBytes(b[33:65]),
		header: header,
	}, nil
}

// NewSignatureFromHex decodes a signature from the hex encoding of its
// serialized form. Both cases are accepted, as is a 0x prefix.
func NewSignatureFromHex(s string) (*Signature, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return NewSignatureFromBytes(b)
}

// NewSignatureFromString decodes a signature from its checksummed string form,
// as produced by String.
func NewSignatureFromString(s string) (*Signature, error) {
	if !strings.HasPrefix(s, signatureStringPrefix) {
		return nil, fmt.Errorf("%w: signature string must start with %s",
			ErrInvalidFormat, signatureStringPrefix)
	}
	decoded := base58.Decode(strings.TrimPrefix(s, signatureStringPrefix))
	if len(decoded) != SignatureLength+checksumLength {
		return nil, fmt.Errorf("%w: decoded signature string has length %d",
			ErrInvalidFormat, len(decoded))
	}
	payload := decoded[:SignatureLength]
	if !bytes.Equal(checksum(payload, keyType), decoded[SignatureLength:]) {
		return nil, ErrChecksumMismatch
	}
	return NewSignatureFromBytes(payload)
}

// R returns a copy of the signature's r value.
func (sig *Signature) R() *big.Int {
	return new(big.Int).Set(sig.r)
}

// S returns a copy of the signature's s value.
func (sig *Signature) S() *big.Int {
	return new(big.Int).Set(sig.s)
}

// Header returns the header byte.
func (sig *Signature) Header() byte {
	return sig.header
}

// RecoveryIndex returns which of the candidate points the signature recovers
// to, in {0, 1, 2, 3}.
func (sig *Signature) RecoveryIndex() int {
	return int((sig.header - compactSigMagicOffset) & 3)
}

// Compressed returns true if the header marks the public key as compressed.
func (sig *Signature) Compressed() bool {
	return (sig.header-compactSigMagicOffset)&compactSigCompPubKey != 0
}

// Bytes serializes the signature as <header><32-byte R><32-byte S>.
func (sig *Signature) Bytes() []byte {
	b := make([]byte, SignatureLength)
	b[0] = sig.header
	sig.r.FillBytes(b[1:33])
	sig.s.FillBytes(b[33:65])
	return b
}

// Hex returns the lowercase hex encoding of the serialized signature.
func (sig *Signature) Hex() string {
	return hex.EncodeToString(sig.Bytes())
}

// String returns the checksummed base58 form of the signature.
func (sig *Signature) String() string {
	b := sig.Bytes()
	return signatureStringPrefix + base58.Encode(append(b, checksum(b, keyType)...))
}

// Equal returns true if both signatures serialize to the same bytes.
func (sig *Signature) Equal(other *Signature) bool {
	if other == nil {
		return false
	}
	return sig.header == other.header &&
		sig.r.Cmp(other.r) == 0 &&
		sig.s.Cmp(other.s) == 0
}

// IsCanonical returns true if neither r nor s, written as 32 big-endian
// bytes, has its top bit set or carries a superfluous leading zero byte.
func (sig *Signature) IsCanonical() bool {
	b := sig.Bytes()
	return isCanonicalInt(b[1:33]) && isCanonicalInt(b[33:65])
}

func isCanonicalInt(b []byte) bool {
	return b[0]&0x80 == 0 && !(b[0] == 0 && b[1]&0x80 == 0)
}
