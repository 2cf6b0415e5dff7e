package main

import (
	"fmt"

	"github.com/regnull/easysig"
	"github.com/urfave/cli"
)

// VerifyCommand contains the definition of the verify command-line subcommand.
var VerifyCommand cli.Command

func init() {
	VerifyCommand = cli.Command{
		Name:      "verify",
		Usage:     "Verifies a signature against a public key",
		ArgsUsage: "<message>",
		Flags: []cli.Flag{
			signatureFlag,
			cli.StringFlag{
				Name:  "pubkey,p",
				Usage: "hex-encoded public key, compressed or not",
			},
			hexFlag,
		},
		Action: Verify,
	}
}

// Verify checks the signature of the message argument and fails unless it was
// made by the given public key.
func Verify(c *cli.Context) error {
	msg, err := messageArg(c)
	if err != nil {
		return err
	}
	sig, err := parseSignature(c.String("signature"))
	if err != nil {
		return fmt.Errorf("failed to parse signature: [%v]", err)
	}
	key, err := easysig.NewPublicKeyFromHex(c.String("pubkey"))
	if err != nil {
		return fmt.Errorf("failed to parse public key: [%v]", err)
	}

	var valid bool
	if msg.isHex {
		valid, err = codec.VerifyHex(msg.arg, sig, key)
		if err != nil {
			return err
		}
	} else {
		valid = codec.VerifyBuffer([]byte(msg.arg), sig, key)
	}

	if !valid {
		return fmt.Errorf("signature is not valid for public key [%s]", key.Hex())
	}
	fmt.Println("signature verified")
	return nil
}
