package easysig

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

// RawSignature is a plain ECDSA signature, as produced by an Engine.
type RawSignature struct {
	R *big.Int
	S *big.Int
}

// DER returns the signature in DER encoding.
func (sig *RawSignature) DER() []byte {
	return (&btcec.Signature{R: sig.R, S: sig.S}).Serialize()
}

// derIntegerLengths returns the lengths of the R and S integers of a DER
// signature laid out as 0x30 <len> 0x02 <lenR> <R> 0x02 <lenS> <S>.
// A truncated input yields zero lengths.
func derIntegerLengths(der []byte) (lenR, lenS int) {
	if len(der) < 4 {
		return 0, 0
	}
	lenR = int(der[3])
	if len(der) < 6+lenR {
		return lenR, 0
	}
	return lenR, int(der[5+lenR])
}

// Verifier checks a 64-byte r || s signature over hash against a public key
// given in SEC compressed or uncompressed form.
type Verifier interface {
	Verify(hash, sig, pubKey []byte) bool
}

// Engine provides the elliptic curve operations the Codec is built on.
//
// Sign must produce a different signature for every nonce, since the Codec
// searches over nonces for a canonical one.
type Engine interface {
	Verifier

	// Sign signs hash with key, using nonce to perturb the per-signature
	// randomness.
	Sign(hash []byte, key *PrivateKey, nonce uint32) (*RawSignature, error)

	// RecoverPoint returns the public key point that the signature over hash
	// recovers to for the given recovery index.
	RecoverPoint(hash []byte, sig *RawSignature, recoveryIndex int) (x, y *big.Int, err error)

	// CalcRecoveryParam returns the recovery index under which sig over hash
	// recovers to key.
	CalcRecoveryParam(hash []byte, sig *RawSignature, key *PublicKey) (int, error)
}
