package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shieldorg/libshield-go/field"
	"github.com/shieldorg/libshield-go/prover"
)

// echoAddressProver derives a fixed transformation of the secret so tests
// can verify which secret was presented.
func echoAddressProver() *prover.MockProver {
	return &prover.MockProver{
		DeriveAddressFn: func(ctx context.Context, secretHex string) (string, error) {
			return secretHex, nil
		},
	}
}

func TestNewAccount(t *testing.T) {
	acc, err := NewAccount(context.Background(), echoAddressProver())
	require.NoError(t, err)
	assert.False(t, acc.Secret.IsZero())
	assert.True(t, acc.Address.Equal(&acc.Secret))
}

func TestNewAccountsAreDistinct(t *testing.T) {
	a, err := NewAccount(context.Background(), echoAddressProver())
	require.NoError(t, err)
	b, err := NewAccount(context.Background(), echoAddressProver())
	require.NoError(t, err)
	assert.False(t, a.Secret.Equal(&b.Secret))
}

func TestAccountFromPassphraseDeterministic(t *testing.T) {
	a, err := AccountFromPassphrase(context.Background(), echoAddressProver(), "correct horse", "salt1")
	require.NoError(t, err)
	b, err := AccountFromPassphrase(context.Background(), echoAddressProver(), "correct horse", "salt1")
	require.NoError(t, err)
	assert.True(t, a.Secret.Equal(&b.Secret))

	c, err := AccountFromPassphrase(context.Background(), echoAddressProver(), "correct horse", "salt2")
	require.NoError(t, err)
	assert.False(t, a.Secret.Equal(&c.Secret))
}

func TestAccountFromPassphraseEmpty(t *testing.T) {
	_, err := AccountFromPassphrase(context.Background(), echoAddressProver(), "", "salt")
	require.Error(t, err)
}

func TestAccountDecodesProverAddress(t *testing.T) {
	want := field.FromUint64(321)
	prv := &prover.MockProver{
		DeriveAddressFn: func(ctx context.Context, secretHex string) (string, error) {
			return field.EncodeHex(&want), nil
		},
	}
	acc, err := NewAccount(context.Background(), prv)
	require.NoError(t, err)
	assert.True(t, acc.Address.Equal(&want))
}
