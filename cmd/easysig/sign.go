package main

import (
	"fmt"

	"github.com/regnull/easysig"
	"github.com/urfave/cli"
)

// SignCommand contains the definition of the sign command-line subcommand.
var SignCommand cli.Command

const signDescription = `The sign command signs the message argument with the
   given private key and prints the compact recoverable signature. Without a
   key, a random one is generated.`

func init() {
	SignCommand = cli.Command{
		Name:        "sign",
		Usage:       "Calculates a signature",
		Description: signDescription,
		ArgsUsage:   "<message>",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "key,k",
				Usage: "hex-encoded 32-byte private key",
			},
			hexFlag,
		},
		Action: Sign,
	}
}

// Sign signs the message argument and prints the signature in hex and string
// form.
func Sign(c *cli.Context) error {
	msg, err := messageArg(c)
	if err != nil {
		return err
	}

	var key *easysig.PrivateKey
	if keyHex := c.String("key"); keyHex != "" {
		key, err = easysig.NewPrivateKeyFromHex(keyHex)
	} else {
		key, err = easysig.NewPrivateKey()
	}
	if err != nil {
		return fmt.Errorf("failed to load key: [%v]", err)
	}

	logger.Debugf("signing with public key [%s]", key.PublicKey().Hex())

	var sig *easysig.Signature
	if msg.isHex {
		sig, err = codec.SignHex(msg.arg, key)
	} else {
		sig, err = codec.SignBuffer([]byte(msg.arg), key)
	}
	if err != nil {
		return fmt.Errorf("failed to calculate signature: [%v]", err)
	}

	fmt.Printf("public key: %s\n", key.PublicKey().Hex())
	fmt.Printf("signature:  %s\n", sig.Hex())
	fmt.Printf("string:     %s\n", sig.String())
	return nil
}
