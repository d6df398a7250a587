package tx

import (
	"fmt"

	"github.com/shieldorg/libshield-go/field"
)

// Input pairs a ledger-assigned UTXO id with the output it refers to.
// A placeholder second input has a zero id and a zero-value output.
type Input struct {
	ID  field.Element
	Out Out
}

// addChecked returns a+b, failing if the sum wrapped around the field
// modulus. Protocol amounts are tiny relative to the modulus, so a wrap can
// only come from corrupt or adversarial data.
func addChecked(a, b *field.Element) (field.Element, error) {
	var sum field.Element
	sum.Add(a, b)
	if sum.Cmp(a) < 0 {
		return sum, ErrAmountOverflow
	}
	return sum, nil
}

// ConstructTransfer assembles the two-input/two-output transfer record:
// a payment of amount to the destination owner, and the remaining change
// back to changeTo (normally the payer's own address).
//
// The change is total input minus amount minus fee, validated to be
// non-negative before any subtraction happens; a shortfall returns
// ErrInsufficientInput rather than wrapping around the field. The payment
// output carries ReservedMetadataSlots zero scalars; the change output
// carries an empty payload.
func ConstructTransfer(in1, in2 Input, to, amount, changeTo, fee field.Element) (Tx, error) {
	total, err := addChecked(&in1.Out.Amount, &in2.Out.Amount)
	if err != nil {
		return Tx{}, fmt.Errorf("%w: input total", err)
	}
	required, err := addChecked(&amount, &fee)
	if err != nil {
		return Tx{}, fmt.Errorf("%w: amount plus fee", err)
	}
	if total.Cmp(&required) < 0 {
		return Tx{}, fmt.Errorf("%w: have %s, need %s",
			ErrInsufficientInput, total.String(), required.String())
	}

	var change field.Element
	change.Sub(&total, &required)

	return Tx{
		IX: in1.ID,
		IY: in2.ID,
		OX: Out{
			Amount: amount,
			Owner:  to,
			Data:   make([]field.Element, ReservedMetadataSlots),
		},
		OY: Out{
			Amount: change,
			Owner:  changeTo,
		},
	}, nil
}

// CheckConservation verifies that the transaction's outputs plus the fee
// exactly equal inputTotal. Assembled transfers always satisfy this; the
// check exists so callers can validate records decoded from elsewhere.
func (t *Tx) CheckConservation(inputTotal, fee field.Element) error {
	outs, err := addChecked(&t.OX.Amount, &t.OY.Amount)
	if err != nil {
		return err
	}
	spent, err := addChecked(&outs, &fee)
	if err != nil {
		return err
	}
	if !spent.Equal(&inputTotal) {
		return fmt.Errorf("%w: outputs+fee %s, inputs %s",
			ErrNotConserved, spent.String(), inputTotal.String())
	}
	return nil
}
