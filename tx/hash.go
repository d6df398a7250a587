package tx

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"

	"github.com/shieldorg/libshield-go/field"
)

// hashScalars absorbs the given elements into a fresh MiMC instance and
// returns the digest as a field element. Every absorbed chunk is a canonical
// scalar encoding, which is exactly what the MiMC sponge accepts.
func hashScalars(elems ...field.Element) (field.Element, error) {
	h := mimc.NewMiMC()
	for i := range elems {
		if _, err := h.Write(field.Encode(&elems[i])); err != nil {
			return field.Element{}, fmt.Errorf("tx: mimc absorb: %w", err)
		}
	}
	return field.Decode(h.Sum(nil))
}

// outScalars returns the output's scalars in encoding order.
func (o *Out) outScalars() []field.Element {
	s := make([]field.Element, 0, 2+len(o.Data))
	s = append(s, o.Amount, o.Owner)
	s = append(s, o.Data...)
	return s
}

// HashOut returns the MiMC digest of an output's scalars in encoding order.
func HashOut(o *Out) (field.Element, error) {
	return hashScalars(o.outScalars()...)
}

// Hash returns the transaction's content hash: the MiMC digest of its
// scalars in encoding order. The hash covers only the transfer record, never
// the proof or verifying key, so it is stable across re-proving and serves
// as the durable identifier reported after submission.
func (t *Tx) Hash() (field.Element, error) {
	s := make([]field.Element, 0, 6+len(t.OX.Data)+len(t.OY.Data))
	s = append(s, t.IX, t.IY)
	s = append(s, t.OX.outScalars()...)
	s = append(s, t.OY.outScalars()...)
	return hashScalars(s...)
}

// PublicInputs derives the four public scalars the external prover binds a
// proof to. The mapping is fixed protocol-wide:
//
//	[0] ix          — first consumed UTXO id
//	[1] iy          — second consumed UTXO id (zero if unused)
//	[2] MiMC(ox)    — digest of the payment output's scalars
//	[3] MiMC(oy)    — digest of the change output's scalars
func (t *Tx) PublicInputs() ([4]field.Element, error) {
	var inputs [4]field.Element
	ox, err := HashOut(&t.OX)
	if err != nil {
		return inputs, err
	}
	oy, err := HashOut(&t.OY)
	if err != nil {
		return inputs, err
	}
	inputs[0] = t.IX
	inputs[1] = t.IY
	inputs[2] = ox
	inputs[3] = oy
	return inputs, nil
}
