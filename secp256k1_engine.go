package easysig

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/crypto"
)

// Ensure the engine implements the interface at compile time.
var _ Engine = (*Secp256k1Engine)(nil)

// Secp256k1Engine is the default Engine. It signs with RFC6979 deterministic
// nonces, verifies through go-ethereum and recovers keys as described in
// section 4.1.6 of [SEC 1].
//
// [SEC 1]: Standards for Efficient Cryptography, SEC 1: Elliptic Curve
// Cryptography, Certicom Research, https://www.secg.org/sec1-v2.pdf
type Secp256k1Engine struct {
	curve     *btcec.KoblitzCurve
	halfOrder *big.Int
}

// NewSecp256k1Engine creates the default engine.
func NewSecp256k1Engine() *Secp256k1Engine {
	curve := btcec.S256()
	return &Secp256k1Engine{
		curve:     curve,
		halfOrder: new(big.Int).Rsh(curve.N, 1),
	}
}

// Sign produces a low-S ECDSA signature over hash. The nonce is generated
// according to RFC6979; a non-zero nonce argument is fed to it as additional
// data, so every nonce value yields a different signature.
func (se *Secp256k1Engine) Sign(hash []byte, key *PrivateKey, nonce uint32) (*RawSignature, error) {
	if len(hash) != HashLength {
		return nil, fmt.Errorf("%w: hash must be %d bytes, got %d", ErrInvalidInput, HashLength, len(hash))
	}
	n := se.curve.N

	var extra []byte
	if nonce > 0 {
		extra = make([]byte, 32)
		binary.BigEndian.PutUint32(extra[28:], nonce)
	}

	privKey := key.secretBytes()
	e := hashToInt(se.curve, hash)
	for iteration := uint32(0); ; iteration++ {
		k := secp256k1.NonceRFC6979(privKey, hash, extra, nil, iteration)
		kBytes := k.Bytes()

		// r = (k * G).x mod n
		kGx, _ := se.curve.ScalarBaseMult(kBytes[:])
		r := new(big.Int).Mod(kGx, n)
		if r.Sign() == 0 {
			continue
		}

		// s = k^-1 * (e + r * d) mod n
		kInverse := new(big.Int).ModInverse(new(big.Int).SetBytes(kBytes[:]), n)
		s := new(big.Int).Mul(r, key.Secret())
		s.Add(s, e)
		s.Mul(s, kInverse)
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		if s.Cmp(se.halfOrder) > 0 {
			s.Sub(n, s)
		}
		return &RawSignature{R: r, S: s}, nil
	}
}

// Verify checks a 64-byte r || s signature with go-ethereum. Signatures with
// s above half the curve order are rejected.
func (se *Secp256k1Engine) Verify(hash, sig, pubKey []byte) bool {
	return crypto.VerifySignature(pubKey, hash, sig)
}

// RecoverPoint recovers a public key point from the signature's R and S
// values for the given message hash.
//
// Bit 1 of the recovery index selects whether the x coordinate of the nonce
// point is r or r + n, bit 0 selects the parity of its y coordinate. This
// matches the btcd solution.
func (se *Secp256k1Engine) RecoverPoint(
	hash []byte,
	sig *RawSignature,
	recoveryIndex int,
) (*big.Int, *big.Int, error) {
	if recoveryIndex < 0 || recoveryIndex > 3 {
		return nil, nil, fmt.Errorf("invalid recovery index [%d]", recoveryIndex)
	}
	params := se.curve.Params()
	if sig.R.Sign() <= 0 || sig.R.Cmp(params.N) >= 0 ||
		sig.S.Sign() <= 0 || sig.S.Cmp(params.N) >= 0 {
		return nil, nil, fmt.Errorf("signature values are out of range")
	}

	j := recoveryIndex / 2

	// 1.1 Calculate x coordinate of the R point.
	// x = r + (j * n)
	Rx := new(big.Int).Add(
		sig.R,
		new(big.Int).Mul(big.NewInt(int64(j)), params.N),
	)
	if Rx.Cmp(params.P) != -1 {
		return nil, nil, fmt.Errorf("calculated Rx is larger than curve P")
	}

	// 1.3 For each x coordinate there are two points on the curve, `R` and
	// `-R`. calculateY returns one of them.
	Ry := calculateY(se.curve, Rx)
	if Ry == nil {
		return nil, nil, fmt.Errorf("failed to calculate y")
	}
	oddIndex := recoveryIndex%2 == 1
	if oddIndex != isOdd(Ry) {
		Ry = new(big.Int).Sub(params.P, Ry)
	}

	if !se.curve.IsOnCurve(Rx, Ry) {
		return nil, nil, fmt.Errorf("point is not on curve")
	}

	e := hashToInt(se.curve, hash)

	// 1.6.1 Q = (r^-1) * ((s * R) - (e * G))
	rInverse := new(big.Int).ModInverse(sig.R, params.N)

	sRx, sRy := se.curve.ScalarMult(Rx, Ry, sig.S.Bytes())

	minusE := new(big.Int).Mod(new(big.Int).Neg(e), params.N)
	minusEGx, minusEGy := se.curve.ScalarBaseMult(minusE.Bytes())

	addedX, addedY := se.curve.Add(sRx, sRy, minusEGx, minusEGy)

	Qx, Qy := se.curve.ScalarMult(addedX, addedY, rInverse.Bytes())
	if Qx.Sign() == 0 && Qy.Sign() == 0 {
		return nil, nil, fmt.Errorf("recovered point at infinity")
	}

	return Qx, Qy, nil
}

// CalcRecoveryParam finds the recovery index for the signature. The curve
// has up to 4 points that a given (r, s) is valid for; the index tells which
// one is the signer's public key.
func (se *Secp256k1Engine) CalcRecoveryParam(
	hash []byte,
	sig *RawSignature,
	key *PublicKey,
) (int, error) {
	for i := 0; i < 4; i++ {
		x, y, err := se.RecoverPoint(hash, sig, i)
		if err != nil {
			logger.Debugf("failed to recover public key for index [%d]: [%v]", i, err)
			continue
		}

		if x.Cmp(key.X()) == 0 && y.Cmp(key.Y()) == 0 {
			return i, nil
		}
	}

	return -1, fmt.Errorf("failed to find recovery index")
}

// calculateY calculates a `y` coordinate for the `x` coordinate on a curve
// defined by `y² = x³ + b`. It returns nil if there is no such point.
func calculateY(curve *btcec.KoblitzCurve, x *big.Int) *big.Int {
	// x³ + b
	y2 := new(big.Int).Exp(x, big.NewInt(3), curve.P)
	y2.Add(y2, curve.B)
	y2.Mod(y2, curve.P)

	return new(big.Int).ModSqrt(y2, curve.P)
}

// hashToInt converts a hash value to an integer, truncating it to the bit
// length of the curve order the same way crypto/ecdsa does.
func hashToInt(curve *btcec.KoblitzCurve, hash []byte) *big.Int {
	orderBits := curve.N.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hash) > orderBytes {
		hash = hash[:orderBytes]
	}

	ret := new(big.Int).SetBytes(hash)
	excess := len(hash)*8 - orderBits
	if excess > 0 {
		ret.Rsh(ret, uint(excess))
	}
	return ret
}

func isOdd(a *big.Int) bool {
	return a.Bit(0) == 1
}
