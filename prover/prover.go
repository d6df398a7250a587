// Package prover defines the boundary to the external proving collaborator.
//
// The prover is untrusted-but-authoritative: this package validates the
// shape of its responses and hands the attested address back to the caller
// for reconciliation, but never attempts to reconstruct or second-guess the
// proof itself — that is the ledger verifier's job downstream.
package prover

import (
	"context"
	"fmt"
	"strings"
)

// Result is a successful proving response: the proof and verifying key as
// hex-encoded blobs, and the hex-encoded address the proof attests to.
type Result struct {
	ProofHex   string
	VKHex      string
	AddressHex string
}

// Prover obtains validity proofs for a fixed public statement shape of four
// scalar inputs. Implementations may cross any process boundary: a helper
// binary, a proving service, or a linked library.
type Prover interface {
	// DeriveAddress returns the hex-encoded address for a spending secret.
	DeriveAddress(ctx context.Context, secretHex string) (string, error)

	// Prove produces a proof binding the spending secret to the four
	// public inputs (authenticated mode).
	Prove(ctx context.Context, secretHex string, inputs [4]string) (*Result, error)

	// ProvePermissionless produces a proof for the four public inputs
	// without a spending secret; the returned address is whatever the
	// proof attests to.
	ProvePermissionless(ctx context.Context, inputs [4]string) (*Result, error)
}

// ParseOutput parses a prover response of the form
// "<proof_hex>,<vk_hex>,<address_hex>". Anything other than exactly three
// comma-joined fields fails with ErrMalformedResponse.
func ParseOutput(s string) (*Result, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty output", ErrMalformedResponse)
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected proof,vk,address, got %d fields",
			ErrMalformedResponse, len(parts))
	}
	return &Result{ProofHex: parts[0], VKHex: parts[1], AddressHex: parts[2]}, nil
}
