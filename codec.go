package easysig

import (
	"fmt"

	log "github.com/ipfs/go-log/v2"
)

var logger = log.Logger("easysig")

const (
	// DefaultMaxAttempts is the default ceiling on signing attempts.
	DefaultMaxAttempts = 1000

	// DefaultWarnInterval is the default number of attempts between
	// warnings about a slow search for a canonical signature.
	DefaultWarnInterval = 10
)

// Config holds the signing parameters of a Codec.
type Config struct {
	// MaxAttempts bounds both the search for a length-canonical signature
	// and the number of candidates checked for canonicality. Zero means no
	// bound.
	MaxAttempts int `toml:"max_attempts"`

	// WarnInterval is the number of attempts between warnings.
	WarnInterval int `toml:"warn_interval"`
}

// DefaultConfig returns the default Codec configuration.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  DefaultMaxAttempts,
		WarnInterval: DefaultWarnInterval,
	}
}

// Codec signs, verifies and recovers compact recoverable signatures. It is
// immutable and safe for concurrent use as long as its engine is.
type Codec struct {
	engine   Engine
	verifier Verifier
	config   Config
}

// NewCodec creates a Codec on top of the given engine.
func NewCodec(engine Engine, config Config) *Codec {
	if config.MaxAttempts < 0 {
		config.MaxAttempts = 0
	}
	if config.WarnInterval <= 0 {
		config.WarnInterval = DefaultWarnInterval
	}
	return &Codec{
		engine:   engine,
		verifier: engine,
		config:   config,
	}
}

// NewDefaultCodec creates a Codec with the secp256k1 engine and the default
// configuration.
func NewDefaultCodec() *Codec {
	return NewCodec(NewSecp256k1Engine(), DefaultConfig())
}

// WithVerifier returns a copy of the Codec which verifies signatures with v
// instead of the engine.
func (c *Codec) WithVerifier(v Verifier) *Codec {
	codec := *c
	codec.verifier = v
	return &codec
}

// Config returns the Codec configuration.
func (c *Codec) Config() Config {
	return c.config
}

func (c *Codec) exhausted(attempt int) bool {
	return c.config.MaxAttempts > 0 && attempt > c.config.MaxAttempts
}

// SignBuffer hashes data and signs the hash with key. The returned signature
// is canonical and lets the public key be recovered from it.
func (c *Codec) SignBuffer(data []byte, key *PrivateKey) (*Signature, error) {
	hash := Hash256(data)

	nonce := uint32(0)
	for attempt := 1; ; attempt++ {
		if c.exhausted(attempt) {
			return nil, fmt.Errorf("%w: no canonical signature after %d candidates",
				ErrRetriesExhausted, c.config.MaxAttempts)
		}

		sig, accepted, err := c.signHash(hash, key, nonce)
		if err != nil {
			return nil, err
		}
		if sig.IsCanonical() {
			if attempt > 1 {
				logger.Debugf("found canonical signature after [%d] candidates", attempt)
			}
			return sig, nil
		}

		if attempt > c.config.WarnInterval {
			logger.Warnf("signature is not canonical after [%d] candidates, retrying", attempt)
		}
		// Continue past the rejected nonce rather than restarting at zero,
		// a deterministic engine would produce the same candidate again.
		nonce = accepted + 1
	}
}

// SignHash signs a 32-byte hash with key. The signature is length-canonical
// but not necessarily canonical, see SignBuffer.
func (c *Codec) SignHash(hash []byte, key *PrivateKey) (*Signature, error) {
	sig, _, err := c.signHash(hash, key, 0)
	return sig, err
}

// signHash searches nonces, starting at nonce, for a signature whose R and S
// take exactly 32 bytes each in DER encoding. It returns the signature and
// the nonce it was produced with.
func (c *Codec) signHash(hash []byte, key *PrivateKey, nonce uint32) (*Signature, uint32, error) {
	if len(hash) != HashLength {
		return nil, nonce, fmt.Errorf("%w: hash must be %d bytes, got %d",
			ErrInvalidInput, HashLength, len(hash))
	}

	var raw *RawSignature
	for attempt := 1; raw == nil; attempt++ {
		if c.exhausted(attempt) {
			return nil, nonce, fmt.Errorf("%w: no length-canonical signature after %d attempts",
				ErrRetriesExhausted, c.config.MaxAttempts)
		}

		candidate, err := c.engine.Sign(hash, key, nonce)
		if err != nil {
			return nil, nonce, fmt.Errorf("failed to sign hash: %w", err)
		}

		lenR, lenS := derIntegerLengths(candidate.DER())
		if lenR == 32 && lenS == 32 {
			raw = candidate
			continue
		}

		if attempt%c.config.WarnInterval == 0 {
			logger.Warnf("no length-canonical signature after [%d] attempts, retrying", attempt)
		}
		nonce++
	}

	recoveryIndex, err := c.engine.CalcRecoveryParam(hash, raw, key.PublicKey())
	if err != nil {
		return nil, nonce, fmt.Errorf("failed to calculate recovery index: %w", err)
	}

	header := byte(recoveryIndex + compactSigCompPubKey + compactSigMagicOffset)
	return NewSignature(raw.R, raw.S, header), nonce, nil
}

// VerifyBuffer returns true if sig is a valid signature of data by key.
func (c *Codec) VerifyBuffer(data []byte, sig *Signature, key *PublicKey) bool {
	// Hash256 output always has the right length.
	valid, _ := c.VerifyHash(Hash256(data), sig, key)
	return valid
}

// VerifyHash returns true if sig is a valid signature of the 32-byte hash by
// key.
func (c *Codec) VerifyHash(hash []byte, sig *Signature, key *PublicKey) (bool, error) {
	if len(hash) != HashLength {
		return false, fmt.Errorf("%w: hash must be %d bytes, got %d",
			ErrInvalidInput, HashLength, len(hash))
	}
	return c.verifier.Verify(hash, sig.Bytes()[1:], key.CompressedBytes()), nil
}

// RecoverPublicKey returns the public key that sig over the 32-byte hash
// recovers to. A signature by a different key, or one carrying the wrong
// recovery index, recovers to some other valid key: callers must compare the
// result with the key they expect.
func (c *Codec) RecoverPublicKey(sig *Signature, hash []byte) (*PublicKey, error) {
	if len(hash) != HashLength {
		return nil, fmt.Errorf("%w: hash must be %d bytes, got %d",
			ErrInvalidInput, HashLength, len(hash))
	}
	raw := &RawSignature{R: sig.R(), S: sig.S()}
	x, y, err := c.engine.RecoverPoint(hash, raw, sig.RecoveryIndex())
	if err != nil {
		return nil, fmt.Errorf("failed to recover public key: %w", err)
	}
	return NewPublicKeyFromPoint(x, y), nil
}

// RecoverPublicKeyFromBuffer hashes data and recovers the public key from sig.
func (c *Codec) RecoverPublicKeyFromBuffer(sig *Signature, data []byte) (*PublicKey, error) {
	return c.RecoverPublicKey(sig, Hash256(data))
}

// SignHex signs the data given as a hex string.
func (c *Codec) SignHex(dataHex string, key *PrivateKey) (*Signature, error) {
	data, err := decodeHex(dataHex)
	if err != nil {
		return nil, err
	}
	return c.SignBuffer(data, key)
}

// VerifyHex verifies sig over the data given as a hex string.
func (c *Codec) VerifyHex(dataHex string, sig *Signature, key *PublicKey) (bool, error) {
	data, err := decodeHex(dataHex)
	if err != nil {
		return false, err
	}
	return c.VerifyBuffer(data, sig, key), nil
}

// RecoverPublicKeyFromHex recovers the public key from sig over the data given
// as a hex string.
func (c *Codec) RecoverPublicKeyFromHex(sig *Signature, dataHex string) (*PublicKey, error) {
	data, err := decodeHex(dataHex)
	if err != nil {
		return nil, err
	}
	return c.RecoverPublicKeyFromBuffer(sig, data)
}

// Sign signs data with the private key using the default Codec.
func (pk *PrivateKey) Sign(data []byte) (*Signature, error) {
	return NewDefaultCodec().SignBuffer(data, pk)
}

// Verify verifies the signature of data with the public key using the default
// Codec.
func (sig *Signature) Verify(key *PublicKey, data []byte) bool {
	return NewDefaultCodec().VerifyBuffer(data, sig, key)
}

// RecoverPublicKey recovers the signer's public key from the signature of data
// using the default Codec.
func (sig *Signature) RecoverPublicKey(data []byte) (*PublicKey, error) {
	return NewDefaultCodec().RecoverPublicKeyFromBuffer(sig, data)
}
