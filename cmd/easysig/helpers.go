package main

import (
	"fmt"
	"strings"

	"github.com/regnull/easysig"
	"github.com/urfave/cli"
)

var (
	hexFlag = cli.BoolFlag{
		Name:  "hex,x",
		Usage: "treat the message argument as hex-encoded bytes",
	}
	signatureFlag = cli.StringFlag{
		Name:  "signature,s",
		Usage: "signature as hex or in SIG_K1_ string form",
	}
)

// message is the first command argument, either text or hex-encoded bytes.
type message struct {
	arg   string
	isHex bool
}

func messageArg(c *cli.Context) (*message, error) {
	if c.NArg() < 1 {
		return nil, fmt.Errorf("message argument is required")
	}
	return &message{arg: c.Args().First(), isHex: c.Bool("hex")}, nil
}

func parseSignature(s string) (*easysig.Signature, error) {
	if s == "" {
		return nil, fmt.Errorf("signature is required")
	}
	if strings.HasPrefix(s, "SIG_") {
		return easysig.NewSignatureFromString(s)
	}
	return easysig.NewSignatureFromHex(s)
}
