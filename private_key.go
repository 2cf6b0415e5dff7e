package easysig

import (
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

// PrivateKey represents a secp256k1 private key.
type PrivateKey struct {
	privateKey *ecdsa.PrivateKey
}

// NewPrivateKey creates a new random private key.
func NewPrivateKey() (*PrivateKey, error) {
	privateKey, err := ecdsa.GenerateKey(btcec.S256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key, %v", err)
	}
	return &PrivateKey{privateKey: privateKey}, nil
}

// NewPrivateKeyFromSecret creates a private key from secret. The secret must
// be in [1, N-1], where N is the order of the curve.
func NewPrivateKeyFromSecret(secret *big.Int) (*PrivateKey, error) {
	if secret == nil || secret.Sign() <= 0 || secret.Cmp(btcec.S256().N) >= 0 {
		return nil, fmt.Errorf("%w: private key secret is out of range", ErrInvalidInput)
	}
	privateKey := &ecdsa.PrivateKey{
		D: new(big.Int).Set(secret)}
	privateKey.PublicKey.Curve = btcec.S256()
	privateKey.PublicKey.X, privateKey.PublicKey.Y =
		privateKey.PublicKey.Curve.ScalarBaseMult(secret.Bytes())
	return &PrivateKey{privateKey: privateKey}, nil
}

// NewPrivateKeyFromHex creates a private key from a hex-encoded secret,
// optionally prefixed with 0x.
func NewPrivateKeyFromHex(s string) (*PrivateKey, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("%w: private key must be 32 bytes, got %d", ErrInvalidInput, len(b))
	}
	return NewPrivateKeyFromSecret(new(big.Int).SetBytes(b))
}

// Secret returns the private key's secret.
func (pk *PrivateKey) Secret() *big.Int {
	return pk.privateKey.D
}

// secretBytes returns the secret as 32 big-endian bytes.
func (pk *PrivateKey) secretBytes() []byte {
	return padWithZeros(pk.privateKey.D.Bytes(), 32)
}

// PublicKey returns the public key derived from this private key.
func (pk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{publicKey: &pk.privateKey.PublicKey}
}

// Equal returns true if this key is equal to the other key.
func (pk *PrivateKey) Equal(other *PrivateKey) bool {
	return pk.privateKey.D.Cmp(other.privateKey.D) == 0
}

// ToECDSA returns this key as crypto/ecdsa private key.
func (pk *PrivateKey) ToECDSA() *ecdsa.PrivateKey {
	return pk.privateKey
}
