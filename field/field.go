// Package field provides the canonical fixed-width encoding of the scalar
// field elements used throughout the shielded ledger protocol: amounts,
// owner addresses, UTXO ids, and transaction hashes are all elements of the
// BN254 scalar field, serialized as 32-byte big-endian strings zero-padded
// on the left.
//
// All hex-text interfaces (CLI arguments, RPC payloads) are this encoding
// rendered as lowercase hex.
package field

import (
	"encoding/hex"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is a BN254 scalar-field element.
type Element = fr.Element

// Size is the canonical encoded length of an Element in bytes.
const Size = fr.Bytes

// Encode returns the canonical 32-byte big-endian encoding of e.
func Encode(e *Element) []byte {
	b := e.Bytes()
	return b[:]
}

// EncodeHex returns the canonical encoding of e as lowercase hex.
func EncodeHex(e *Element) string {
	return hex.EncodeToString(Encode(e))
}

// Decode parses a canonical 32-byte encoding. It returns ErrMalformedScalar
// if b has the wrong length or encodes a value at or above the field modulus.
func Decode(b []byte) (Element, error) {
	var e Element
	if len(b) != Size {
		return e, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedScalar, Size, len(b))
	}
	if err := e.SetBytesCanonical(b); err != nil {
		return e, fmt.Errorf("%w: %w", ErrMalformedScalar, err)
	}
	return e, nil
}

// DecodeHex parses a hex-rendered canonical encoding.
func DecodeHex(s string) (Element, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Element{}, fmt.Errorf("%w: invalid hex: %w", ErrMalformedScalar, err)
	}
	return Decode(b)
}

// FromUint64 returns the element representing v.
func FromUint64(v uint64) Element {
	var e Element
	e.SetUint64(v)
	return e
}

// Zero returns the zero element.
func Zero() Element {
	var e Element
	return e
}

// Rand returns a uniformly random element from crypto/rand.
func Rand() (Element, error) {
	var e Element
	if _, err := e.SetRandom(); err != nil {
		return e, fmt.Errorf("field: random scalar: %w", err)
	}
	return e, nil
}
