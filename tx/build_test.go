package tx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shieldorg/libshield-go/field"
)

func TestConstructTransferChangeAndConservation(t *testing.T) {
	in1 := Input{ID: field.FromUint64(100), Out: Out{Amount: field.FromUint64(10), Owner: field.FromUint64(5)}}
	in2 := Input{ID: field.FromUint64(101), Out: Out{Amount: field.FromUint64(20), Owner: field.FromUint64(5)}}
	fee := field.FromUint64(3)

	built, err := ConstructTransfer(in1, in2, field.FromUint64(9), field.FromUint64(18), field.FromUint64(5), fee)
	require.NoError(t, err)

	// change = 30 - 18 - 3 = 9
	nine := field.FromUint64(9)
	assert.True(t, built.OY.Amount.Equal(&nine))

	total := field.FromUint64(30)
	assert.NoError(t, built.CheckConservation(total, fee))
}

func TestConstructTransferExactCover(t *testing.T) {
	in1 := Input{ID: field.FromUint64(1), Out: Out{Amount: field.FromUint64(13)}}
	fee := field.FromUint64(3)

	built, err := ConstructTransfer(in1, Input{}, field.FromUint64(2), field.FromUint64(10), field.FromUint64(4), fee)
	require.NoError(t, err)
	assert.True(t, built.OY.Amount.IsZero())
	assert.NoError(t, built.CheckConservation(field.FromUint64(13), fee))
}

func TestConstructTransferShortfallFailsLoudly(t *testing.T) {
	in1 := Input{ID: field.FromUint64(1), Out: Out{Amount: field.FromUint64(5)}}
	in2 := Input{ID: field.FromUint64(2), Out: Out{Amount: field.FromUint64(5)}}

	_, err := ConstructTransfer(in1, in2, field.FromUint64(2), field.FromUint64(10), field.FromUint64(4), field.FromUint64(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientInput)
}

func TestConstructTransferPayloadShapes(t *testing.T) {
	in1 := Input{ID: field.FromUint64(1), Out: Out{Amount: field.FromUint64(50)}}
	built, err := ConstructTransfer(in1, Input{}, field.FromUint64(2), field.FromUint64(10), field.FromUint64(4), field.FromUint64(3))
	require.NoError(t, err)

	require.Len(t, built.OX.Data, ReservedMetadataSlots)
	for i := range built.OX.Data {
		assert.True(t, built.OX.Data[i].IsZero())
	}
	assert.Empty(t, built.OY.Data)
	assert.True(t, built.IY.IsZero())
}

func TestConstructTransferOverflowGuard(t *testing.T) {
	// -1 in the field: adding any positive fee wraps past the modulus.
	var nearModulus field.Element
	one := field.FromUint64(1)
	nearModulus.Sub(&nearModulus, &one)

	in1 := Input{ID: field.FromUint64(1), Out: Out{Amount: nearModulus}}
	_, err := ConstructTransfer(in1, Input{}, field.FromUint64(2), nearModulus, field.FromUint64(4), field.FromUint64(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmountOverflow)
}

func TestCheckConservationRejectsTampering(t *testing.T) {
	built := sampleTx(t)
	built.OY.Amount = field.FromUint64(999)
	err := built.CheckConservation(field.FromUint64(25), field.FromUint64(3))
	assert.ErrorIs(t, err, ErrNotConserved)
}
