package easysig

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a buffer or a hash has the wrong length or
// cannot be decoded.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidFormat is returned when a serialized signature is structurally
// invalid, e.g. its header byte is out of range.
var ErrInvalidFormat = errors.New("invalid signature format")

// ErrChecksumMismatch is returned when the checksum of a signature string
// does not match its payload. It wraps ErrInvalidFormat.
var ErrChecksumMismatch = fmt.Errorf("%w: checksum mismatch", ErrInvalidFormat)

// ErrRetriesExhausted is returned when no canonical signature was found within
// the configured number of attempts.
var ErrRetriesExhausted = errors.New("signing attempts exhausted")
