package easysig

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"
)

// PublicKey represents a secp256k1 public key.
type PublicKey struct {
	publicKey *ecdsa.PublicKey
}

// NewPublicKeyFromPoint creates a public key from the curve point (x, y).
// The point is not checked to lie on the curve.
func NewPublicKeyFromPoint(x, y *big.Int) *PublicKey {
	return &PublicKey{publicKey: &ecdsa.PublicKey{
		Curve: btcec.S256(),
		X:     new(big.Int).Set(x),
		Y:     new(big.Int).Set(y)}}
}

// NewPublicKeyFromBytes parses a public key in SEC uncompressed (65 bytes),
// compressed (33 bytes) or hybrid format.
func NewPublicKeyFromBytes(b []byte) (*PublicKey, error) {
	key, err := btcec.ParsePubKey(b, btcec.S256())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse public key: %v", ErrInvalidInput, err)
	}
	return &PublicKey{publicKey: key.ToECDSA()}, nil
}

// NewPublicKeyFromCompressedBytes parses a public key serialized in SEC
// compressed format. The input must be 33 bytes long.
func NewPublicKeyFromCompressedBytes(b []byte) (*PublicKey, error) {
	if len(b) != btcec.PubKeyBytesLenCompressed {
		return nil, fmt.Errorf("%w: compressed public key must be %d bytes, got %d",
			ErrInvalidInput, btcec.PubKeyBytesLenCompressed, len(b))
	}
	return NewPublicKeyFromBytes(b)
}

// NewPublicKeyFromHex parses a hex-encoded public key, compressed or not.
func NewPublicKeyFromHex(s string) (*PublicKey, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return NewPublicKeyFromBytes(b)
}

// Bytes returns the public key serialized in SEC uncompressed format.
func (pbk *PublicKey) Bytes() []byte {
	return (*btcec.PublicKey)(pbk.publicKey).SerializeUncompressed()
}

// CompressedBytes returns the public key serialized in SEC compressed format.
// The result is 33 bytes long.
func (pbk *PublicKey) CompressedBytes() []byte {
	return (*btcec.PublicKey)(pbk.publicKey).SerializeCompressed()
}

// Hex returns the compressed public key as a hex string.
func (pbk *PublicKey) Hex() string {
	return hex.EncodeToString(pbk.CompressedBytes())
}

// X returns X component of the public key.
func (pbk *PublicKey) X() *big.Int {
	return pbk.publicKey.X
}

// Y returns Y component of the public key.
func (pbk *PublicKey) Y() *big.Int {
	return pbk.publicKey.Y
}

// BitcoinAddress returns the P2PKH Bitcoin address for the compressed
// form of this public key.
func (pbk *PublicKey) BitcoinAddress() string {
	return base58.CheckEncode(Hash160(pbk.CompressedBytes()), 0x00)
}

// EthereumAddress returns an Ethereum address for this public key.
func (pbk *PublicKey) EthereumAddress() string {
	return crypto.PubkeyToAddress(*pbk.publicKey).Hex()
}

// Equal returns true if this key is equal to the other key.
func (pbk *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return pbk.publicKey.X.Cmp(other.publicKey.X) == 0 &&
		pbk.publicKey.Y.Cmp(other.publicKey.Y) == 0
}

// EqualSerializedCompressed returns true if this key is equal to the other,
// given as serialized compressed representation.
func (pbk *PublicKey) EqualSerializedCompressed(other []byte) bool {
	return bytes.Equal(pbk.CompressedBytes(), other)
}

// ToECDSA returns this key as crypto/ecdsa public key.
func (pbk *PublicKey) ToECDSA() *ecdsa.PublicKey {
	return pbk.publicKey
}
