package wallet

import (
	"context"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/shieldorg/libshield-go/field"
	"github.com/shieldorg/libshield-go/prover"
)

// Argon2id parameters for passphrase-derived spending secrets.
const (
	argon2Time        = 3
	argon2Memory      = 64 * 1024 // 64 MB
	argon2Parallelism = 4
)

// Account is a spending secret together with the address the prover derives
// from it. Secrets are supplied per invocation and never persisted by this
// library.
type Account struct {
	Secret  field.Element
	Address field.Element
}

// NewAccount creates an account from a fresh random secret and asks the
// prover for the matching address.
func NewAccount(ctx context.Context, prv prover.Prover) (*Account, error) {
	secret, err := field.Rand()
	if err != nil {
		return nil, err
	}
	return accountFromSecret(ctx, prv, secret)
}

// AccountFromPassphrase derives a deterministic account from a passphrase
// and salt using Argon2id, so an account can be recreated without storing
// its secret. The derived 32 bytes are reduced into the scalar field.
func AccountFromPassphrase(ctx context.Context, prv prover.Prover, passphrase, salt string) (*Account, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("wallet: passphrase must not be empty")
	}
	key := argon2.IDKey([]byte(passphrase), []byte(salt), argon2Time, argon2Memory, argon2Parallelism, field.Size)

	var secret field.Element
	secret.SetBytes(key)
	return accountFromSecret(ctx, prv, secret)
}

func accountFromSecret(ctx context.Context, prv prover.Prover, secret field.Element) (*Account, error) {
	addrHex, err := prv.DeriveAddress(ctx, field.EncodeHex(&secret))
	if err != nil {
		return nil, err
	}
	addr, err := field.DecodeHex(addrHex)
	if err != nil {
		return nil, fmt.Errorf("wallet: decode derived address: %w", err)
	}
	return &Account{Secret: secret, Address: addr}, nil
}
