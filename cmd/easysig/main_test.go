package main

import (
	"testing"

	"github.com/regnull/easysig"
	"github.com/stretchr/testify/assert"
)

const testSecretHex = "d0ceb50bcfdd6dc5604ea6c01489c82c0919b575fb586ac8ca7057d7949cb67d"

func run(args ...string) error {
	return newApp().Run(append([]string{"easysig"}, args...))
}

func Test_Commands(t *testing.T) {
	assert := assert.New(t)

	key, err := easysig.NewPrivateKeyFromHex(testSecretHex)
	assert.NoError(err)
	sig, err := key.Sign([]byte("abc"))
	assert.NoError(err)
	pubKey := key.PublicKey().Hex()

	assert.NoError(run("sign", "-k", testSecretHex, "abc"))
	assert.NoError(run("sign", "--hex", "616263"))
	assert.NoError(run("verify", "-s", sig.Hex(), "-p", pubKey, "abc"))
	assert.NoError(run("verify", "-s", sig.String(), "-p", pubKey, "--hex", "616263"))
	assert.NoError(run("recover", "-s", sig.Hex(), "abc"))
	assert.NoError(run("-c", "../../internal/testdata/config.toml", "recover", "-s", sig.String(), "abc"))

	assert.Error(run("verify", "-s", sig.Hex(), "-p", pubKey, "abd"))
	assert.Error(run("verify", "-p", pubKey, "abc"))
	assert.Error(run("sign", "-k", "1234", "abc"))
	assert.Error(run("sign"))
	assert.Error(run("sign", "--hex", "xyz"))
	assert.Error(run("-c", "missing.toml", "sign", "abc"))
}

func Test_Commands_Config(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(run("-c", "../../internal/testdata/config.toml", "sign", "abc"))
	assert.Equal(250, codec.Config().MaxAttempts)
	assert.Equal(25, codec.Config().WarnInterval)

	assert.NoError(run("sign", "abc"))
	assert.Equal(easysig.DefaultConfig(), codec.Config())
}

func Test_ParseSignature(t *testing.T) {
	assert := assert.New(t)

	key, err := easysig.NewPrivateKey()
	assert.NoError(err)
	sig, err := key.Sign([]byte("message"))
	assert.NoError(err)

	parsed, err := parseSignature(sig.Hex())
	assert.NoError(err)
	assert.True(sig.Equal(parsed))

	parsed, err = parseSignature(sig.String())
	assert.NoError(err)
	assert.True(sig.Equal(parsed))

	_, err = parseSignature("")
	assert.Error(err)
	_, err = parseSignature("SIG_K1_abc")
	assert.ErrorIs(err, easysig.ErrInvalidFormat)
}
