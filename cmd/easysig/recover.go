package main

import (
	"fmt"

	"github.com/regnull/easysig"
	"github.com/urfave/cli"
)

// RecoverCommand contains the definition of the recover command-line
// subcommand.
var RecoverCommand cli.Command

const recoverDescription = `The recover command prints the public key a
   signature of the message argument recovers to, along with its addresses.
   Any well-formed signature recovers to some key; compare it with the
   expected one.`

func init() {
	RecoverCommand = cli.Command{
		Name:        "recover",
		Usage:       "Recovers the signer's public key",
		Description: recoverDescription,
		ArgsUsage:   "<message>",
		Flags: []cli.Flag{
			signatureFlag,
			hexFlag,
		},
		Action: Recover,
	}
}

// Recover recovers the public key from the signature of the message argument.
func Recover(c *cli.Context) error {
	msg, err := messageArg(c)
	if err != nil {
		return err
	}
	sig, err := parseSignature(c.String("signature"))
	if err != nil {
		return fmt.Errorf("failed to parse signature: [%v]", err)
	}

	var key *easysig.PublicKey
	if msg.isHex {
		key, err = codec.RecoverPublicKeyFromHex(sig, msg.arg)
	} else {
		key, err = codec.RecoverPublicKeyFromBuffer(sig, []byte(msg.arg))
	}
	if err != nil {
		return fmt.Errorf("failed to recover public key: [%v]", err)
	}

	fmt.Printf("public key:       %s\n", key.Hex())
	fmt.Printf("bitcoin address:  %s\n", key.BitcoinAddress())
	fmt.Printf("ethereum address: %s\n", key.EthereumAddress())
	return nil
}
