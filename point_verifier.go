package easysig

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

var _ Verifier = (*PointVerifier)(nil)

// PointVerifier verifies signatures with plain curve point arithmetic on the
// decoded (r, s, Q) triple. It accepts and rejects exactly what the default
// engine does, high-S signatures included.
type PointVerifier struct {
	curve     *btcec.KoblitzCurve
	halfOrder *big.Int
}

// NewPointVerifier creates a PointVerifier.
func NewPointVerifier() *PointVerifier {
	curve := btcec.S256()
	return &PointVerifier{
		curve:     curve,
		halfOrder: new(big.Int).Rsh(curve.N, 1),
	}
}

// Verify checks a 64-byte r || s signature over hash against pubKey.
func (pv *PointVerifier) Verify(hash, sig, pubKey []byte) bool {
	if len(sig) != 64 {
		return false
	}
	key, err := btcec.ParsePubKey(pubKey, pv.curve)
	if err != nil {
		return false
	}

	n := pv.curve.N
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	if r.Sign() == 0 || s.Sign() == 0 || r.Cmp(n) >= 0 || s.Cmp(n) >= 0 {
		return false
	}
	if s.Cmp(pv.halfOrder) > 0 {
		return false
	}

	// u1 = e * s^-1 mod n, u2 = r * s^-1 mod n
	e := hashToInt(pv.curve, hash)
	w := new(big.Int).ModInverse(s, n)
	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, n)

	// X = u1 * G + u2 * Q
	x1, y1 := pv.curve.ScalarBaseMult(u1.Bytes())
	x2, y2 := pv.curve.ScalarMult(key.X, key.Y, u2.Bytes())
	x, y := pv.curve.Add(x1, y1, x2, y2)
	if x.Sign() == 0 && y.Sign() == 0 {
		return false
	}

	x.Mod(x, n)
	return x.Cmp(r) == 0
}
