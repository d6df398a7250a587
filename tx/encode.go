package tx

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/shieldorg/libshield-go/field"
)

// Encode returns the canonical binary encoding of the output.
func (o *Out) Encode() []byte {
	buf := make([]byte, 0, 2*field.Size+4+len(o.Data)*field.Size)
	buf = append(buf, field.Encode(&o.Amount)...)
	buf = append(buf, field.Encode(&o.Owner)...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(o.Data)))
	for i := range o.Data {
		buf = append(buf, field.Encode(&o.Data[i])...)
	}
	return buf
}

// decodeOut parses one Out from the front of b and returns the number of
// bytes consumed.
func decodeOut(b []byte) (Out, int, error) {
	var o Out
	if len(b) < 2*field.Size+4 {
		return o, 0, fmt.Errorf("%w: output header", ErrTruncated)
	}
	var err error
	if o.Amount, err = field.Decode(b[:field.Size]); err != nil {
		return o, 0, fmt.Errorf("tx: output amount: %w", err)
	}
	if o.Owner, err = field.Decode(b[field.Size : 2*field.Size]); err != nil {
		return o, 0, fmt.Errorf("tx: output owner: %w", err)
	}
	n := 2 * field.Size
	count := binary.BigEndian.Uint32(b[n : n+4])
	n += 4
	if uint64(len(b)-n) < uint64(count)*field.Size {
		return o, 0, fmt.Errorf("%w: output data (%d scalars declared)", ErrTruncated, count)
	}
	if count > 0 {
		o.Data = make([]field.Element, count)
		for i := uint32(0); i < count; i++ {
			if o.Data[i], err = field.Decode(b[n : n+field.Size]); err != nil {
				return o, 0, fmt.Errorf("tx: output data[%d]: %w", i, err)
			}
			n += field.Size
		}
	}
	return o, n, nil
}

// DecodeOut parses a canonical output encoding.
func DecodeOut(b []byte) (Out, error) {
	o, n, err := decodeOut(b)
	if err != nil {
		return o, err
	}
	if n != len(b) {
		return o, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, len(b)-n)
	}
	return o, nil
}

// DecodeOutHex parses a hex-rendered output encoding.
func DecodeOutHex(s string) (Out, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Out{}, fmt.Errorf("%w: invalid hex: %w", field.ErrMalformedScalar, err)
	}
	return DecodeOut(b)
}

// Encode returns the canonical binary encoding of the transaction.
func (t *Tx) Encode() []byte {
	buf := make([]byte, 0, 2*field.Size)
	buf = append(buf, field.Encode(&t.IX)...)
	buf = append(buf, field.Encode(&t.IY)...)
	buf = append(buf, t.OX.Encode()...)
	buf = append(buf, t.OY.Encode()...)
	return buf
}

// EncodeHex returns the transaction encoding rendered as lowercase hex.
func (t *Tx) EncodeHex() string {
	return hex.EncodeToString(t.Encode())
}

// decodeTx parses one Tx from the front of b and returns the bytes consumed.
func decodeTx(b []byte) (Tx, int, error) {
	var t Tx
	if len(b) < 2*field.Size {
		return t, 0, fmt.Errorf("%w: transaction inputs", ErrTruncated)
	}
	var err error
	if t.IX, err = field.Decode(b[:field.Size]); err != nil {
		return t, 0, fmt.Errorf("tx: input id ix: %w", err)
	}
	if t.IY, err = field.Decode(b[field.Size : 2*field.Size]); err != nil {
		return t, 0, fmt.Errorf("tx: input id iy: %w", err)
	}
	n := 2 * field.Size
	ox, consumed, err := decodeOut(b[n:])
	if err != nil {
		return t, 0, err
	}
	t.OX = ox
	n += consumed
	oy, consumed, err := decodeOut(b[n:])
	if err != nil {
		return t, 0, err
	}
	t.OY = oy
	n += consumed
	return t, n, nil
}

// DecodeTx parses a canonical transaction encoding.
func DecodeTx(b []byte) (Tx, error) {
	t, n, err := decodeTx(b)
	if err != nil {
		return t, err
	}
	if n != len(b) {
		return t, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, len(b)-n)
	}
	return t, nil
}

// Encode returns the canonical binary encoding of the proved transaction.
func (w *Wp) Encode() []byte {
	buf := make([]byte, 0, 8+len(w.VK)+len(w.Proof))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(w.VK)))
	buf = append(buf, w.VK...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(w.Proof)))
	buf = append(buf, w.Proof...)
	buf = append(buf, w.Val.Encode()...)
	return buf
}

// EncodeHex returns the proved transaction encoding rendered as lowercase hex.
func (w *Wp) EncodeHex() string {
	return hex.EncodeToString(w.Encode())
}

// DecodeWp parses a canonical proved-transaction encoding.
func DecodeWp(b []byte) (Wp, error) {
	var w Wp
	if len(b) < 4 {
		return w, fmt.Errorf("%w: vk length", ErrTruncated)
	}
	vkLen := binary.BigEndian.Uint32(b)
	b = b[4:]
	if uint64(len(b)) < uint64(vkLen) {
		return w, fmt.Errorf("%w: vk (%d bytes declared)", ErrTruncated, vkLen)
	}
	w.VK = append([]byte(nil), b[:vkLen]...)
	b = b[vkLen:]
	if len(b) < 4 {
		return w, fmt.Errorf("%w: proof length", ErrTruncated)
	}
	proofLen := binary.BigEndian.Uint32(b)
	b = b[4:]
	if uint64(len(b)) < uint64(proofLen) {
		return w, fmt.Errorf("%w: proof (%d bytes declared)", ErrTruncated, proofLen)
	}
	w.Proof = append([]byte(nil), b[:proofLen]...)
	b = b[proofLen:]
	val, n, err := decodeTx(b)
	if err != nil {
		return w, err
	}
	if n != len(b) {
		return w, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, len(b)-n)
	}
	w.Val = val
	return w, nil
}
