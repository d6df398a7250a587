// Package wallet implements the transfer pipeline for the shielded ledger:
// UTXO discovery over the ledger's per-owner linked chain, greedy UTXO
// selection, transaction assembly, proof coordination with the external
// prover, and submission.
//
// The pipeline is single-flow per transfer: each stage's input is the
// previous stage's output, and a failed stage aborts the remainder. No state
// is shared across invocations; a retried transfer rebuilds from fresh
// ledger state.
package wallet

import (
	"github.com/shieldorg/libshield-go/history"
	"github.com/shieldorg/libshield-go/ledger"
	"github.com/shieldorg/libshield-go/prover"
)

// Params are the protocol constants the pipeline depends on. They are
// configuration, not literals: the ledger operator fixes them network-wide.
type Params struct {
	// Fee is the flat fee charged per transaction.
	Fee uint64

	// SeedID is the well-known entry point of every per-owner UTXO chain.
	SeedID uint64

	// MaxHops bounds chain traversal against cyclic or adversarial
	// server responses.
	MaxHops int
}

// DefaultParams returns the protocol parameters of the public network.
func DefaultParams() Params {
	return Params{Fee: 3, SeedID: 8, MaxHops: 100}
}

// Wallet drives the transfer pipeline against a ledger and a prover.
// History is optional; when set, submitted transfers are recorded. Logf is
// optional; when set, the pipeline reports per-stage progress through it.
type Wallet struct {
	Ledger  ledger.LedgerService
	Prover  prover.Prover
	Params  Params
	History *history.Store
	Logf    func(format string, args ...any)
}

// New returns a Wallet with the default protocol parameters.
func New(svc ledger.LedgerService, prv prover.Prover) *Wallet {
	return &Wallet{Ledger: svc, Prover: prv, Params: DefaultParams()}
}

// logf reports pipeline progress when a sink is configured.
func (w *Wallet) logf(format string, args ...any) {
	if w.Logf != nil {
		w.Logf(format, args...)
	}
}
