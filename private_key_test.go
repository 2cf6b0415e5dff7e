package easysig

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/assert"
)

func Test_PrivateKey_NewRandom(t *testing.T) {
	assert := assert.New(t)

	pk1, err := NewPrivateKey()
	assert.NoError(err)
	assert.NotNil(pk1)
	pk2, err := NewPrivateKey()
	assert.NoError(err)
	assert.False(pk1.Equal(pk2))
	assert.True(btcec.S256().IsOnCurve(pk1.PublicKey().X(), pk1.PublicKey().Y()))
}

func Test_PrivateKey_FromSecret(t *testing.T) {
	assert := assert.New(t)

	n := btcec.S256().N
	for _, secret := range []*big.Int{nil, big.NewInt(0), big.NewInt(-1), n, new(big.Int).Add(n, big.NewInt(1))} {
		_, err := NewPrivateKeyFromSecret(secret)
		assert.ErrorIs(err, ErrInvalidInput)
	}

	pk, err := NewPrivateKeyFromSecret(new(big.Int).Sub(n, big.NewInt(1)))
	assert.NoError(err)
	assert.Len(pk.secretBytes(), 32)

	pk, err = NewPrivateKeyFromSecret(big.NewInt(12345))
	assert.NoError(err)
	assert.EqualValues(12345, pk.Secret().Int64())
}

func Test_PrivateKey_FromHex(t *testing.T) {
	assert := assert.New(t)

	pk, err := NewPrivateKeyFromHex(testSecretHex)
	assert.NoError(err)
	assert.Equal(testPublicKeyHex, pk.PublicKey().Hex())

	pk2, err := NewPrivateKeyFromHex("0x" + testSecretHex)
	assert.NoError(err)
	assert.True(pk.Equal(pk2))

	_, err = NewPrivateKeyFromHex(testSecretHex[2:])
	assert.ErrorIs(err, ErrInvalidInput)

	_, err = NewPrivateKeyFromHex("0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(err, ErrInvalidInput)

	_, err = NewPrivateKeyFromHex("not a key")
	assert.ErrorIs(err, ErrInvalidInput)
}

func Test_PrivateKey_ToECDSA(t *testing.T) {
	assert := assert.New(t)

	pk, err := NewPrivateKeyFromSecret(big.NewInt(5001))
	assert.NoError(err)
	ecdsaKey := pk.ToECDSA()
	assert.EqualValues(5001, ecdsaKey.D.Int64())
	assert.Equal(serializedKey5001, NewPublicKeyFromPoint(ecdsaKey.X, ecdsaKey.Y).Hex())
}
