// Package tx defines the shielded ledger's transaction records and their
// canonical binary encoding, the transaction content hash, and the
// two-input/two-output transfer assembler.
//
// Wire encoding (all integers big-endian, all scalars canonical 32-byte):
//
//	Out: amount(32) || owner(32) || count(u32) || data scalars (32 each)
//	Tx:  ix(32) || iy(32) || Out(ox) || Out(oy)
//	Wp:  vkLen(u32) || vk || proofLen(u32) || proof || Tx
//
// The remote verifier parses this encoding byte-for-byte; changing it is a
// protocol break.
package tx

import "github.com/shieldorg/libshield-go/field"

// ReservedMetadataSlots is the number of zero scalars carried in a payment
// output's data payload. The slots are reserved by the protocol; their
// semantics are unspecified beyond the wire shape.
const ReservedMetadataSlots = 3

// Out is a spendable output: a value locked to an owner address, with an
// auxiliary scalar payload. Outs are immutable once constructed and are
// identified externally by a ledger-assigned UTXO id.
type Out struct {
	Amount field.Element
	Owner  field.Element
	Data   []field.Element
}

// Tx is a transfer record consuming two UTXO ids and creating two outputs.
// An unused second input is the zero scalar and contributes no value.
type Tx struct {
	IX field.Element // first consumed UTXO id
	IY field.Element // second consumed UTXO id, zero if unused
	OX Out           // payment output
	OY Out           // change output
}

// Wp is a proved transaction: the transfer record together with the opaque
// proof and verifying key produced by the external prover. The proof and key
// are carried as binary blobs; their internal structure is not interpreted
// here.
type Wp struct {
	VK    []byte
	Proof []byte
	Val   Tx
}
