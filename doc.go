/*
Package easysig makes it easy to produce and check recoverable ECDSA
signatures on the secp256k1 curve (used by Bitcoin and many other chains).

A signature is serialized as 65 bytes:

	<1-byte header><32-byte R><32-byte S>

The header is 27 + 4 + recovery index, which lets anyone recover the
signer's public key from the signature and the message alone.

Signing only ever returns canonical signatures: R and S are both exactly
32 bytes in DER encoding, with no sign padding, and S is in the lower half
of the curve order. Candidates that do not qualify are discarded and the
nonce is perturbed until one does.

Operations include:

-- Signing buffers, hashes and hex strings with a private key

-- Verifying signatures with a public key

-- Recovering the public key from a signature

-- Converting signatures to and from bytes, hex and checksummed strings

See the examples for more information.
*/
package easysig
