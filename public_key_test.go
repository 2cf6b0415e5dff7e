package easysig

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	serializedKey5001 = "0357a4f368868a8a6d572991e484e664810ff14c05c0fa023275251151fe0e53d1"
	key5001X          = "57a4f368868a8a6d572991e484e664810ff14c05c0fa023275251151fe0e53d1"
	key5001Y          = "0d6cc87c5bc29b83368e17869e964f2f53d52ea3aa3e5a9efa1fa578123a0c6d"
)

func Test_PublicKey_SerializeCompressed(t *testing.T) {
	assert := assert.New(t)

	privateKey, err := NewPrivateKeyFromSecret(big.NewInt(5001))
	assert.NoError(err)
	publicKey := privateKey.PublicKey()
	assert.EqualValues(serializedKey5001, fmt.Sprintf("%x", publicKey.CompressedBytes()))
	assert.Equal(serializedKey5001, publicKey.Hex())
}

func Test_PublicKey_FromCompressedBytes(t *testing.T) {
	assert := assert.New(t)

	serialized, _ := new(big.Int).SetString(serializedKey5001, 16)
	publicKey, err := NewPublicKeyFromCompressedBytes(serialized.Bytes())
	assert.NoError(err)
	assert.NotNil(publicKey)
	assert.EqualValues(key5001X, fmt.Sprintf("%064x", publicKey.X()))
	assert.EqualValues(key5001Y, fmt.Sprintf("%064x", publicKey.Y()))
}

func Test_PublicKey_FromCompressedBytesInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := NewPublicKeyFromCompressedBytes(make([]byte, 32))
	assert.ErrorIs(err, ErrInvalidInput)

	// Not a point on the curve.
	b := make([]byte, 33)
	b[0] = 0x02
	b[32] = 0x05
	_, err = NewPublicKeyFromCompressedBytes(b)
	assert.ErrorIs(err, ErrInvalidInput)

	_, err = NewPublicKeyFromHex("zz")
	assert.ErrorIs(err, ErrInvalidInput)
}

func Test_PublicKey_Serialize(t *testing.T) {
	assert := assert.New(t)

	key, err := NewPrivateKey()
	assert.NoError(err)

	b := key.PublicKey().Bytes()
	assert.Len(b, 65)
	assert.EqualValues(0x04, b[0])

	publicKey, err := NewPublicKeyFromBytes(b)
	assert.NoError(err)
	assert.True(publicKey.Equal(key.PublicKey()))

	publicKey, err = NewPublicKeyFromHex(key.PublicKey().Hex())
	assert.NoError(err)
	assert.True(publicKey.Equal(key.PublicKey()))
}

func Test_PublicKey_FromPoint(t *testing.T) {
	assert := assert.New(t)

	key, err := NewPrivateKey()
	assert.NoError(err)
	x := new(big.Int).Set(key.PublicKey().X())
	y := new(big.Int).Set(key.PublicKey().Y())

	publicKey := NewPublicKeyFromPoint(x, y)
	x.SetInt64(1)
	assert.True(publicKey.Equal(key.PublicKey()))
}

func Test_PublicKey_Address(t *testing.T) {
	assert := assert.New(t)

	secret, _ := new(big.Int).SetString("12345deadbeef", 16)
	privateKey, err := NewPrivateKeyFromSecret(secret)
	assert.NoError(err)
	assert.Equal("1F1Pn2y6pDb68E5nYJJeba4TLg2U7B6KF1", privateKey.PublicKey().BitcoinAddress())

	privateKey, err = NewPrivateKeyFromSecret(big.NewInt(1))
	assert.NoError(err)
	assert.Equal("1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", privateKey.PublicKey().BitcoinAddress())
	assert.Equal("0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", privateKey.PublicKey().EthereumAddress())
}

func Test_PublicKey_Equal(t *testing.T) {
	assert := assert.New(t)

	privateKey1, err := NewPrivateKey()
	assert.NoError(err)
	publicKey1 := privateKey1.PublicKey()
	publicKey2, err := NewPublicKeyFromCompressedBytes(publicKey1.CompressedBytes())
	assert.NoError(err)

	assert.True(publicKey1.Equal(publicKey2))
	assert.True(publicKey1.EqualSerializedCompressed(publicKey2.CompressedBytes()))

	privateKey3, err := NewPrivateKey()
	assert.NoError(err)
	publicKey3 := privateKey3.PublicKey()

	assert.False(publicKey1.Equal(publicKey3))
	assert.False(publicKey1.EqualSerializedCompressed(publicKey3.CompressedBytes()))
	assert.False(publicKey1.Equal(nil))
}
