package prover

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecProver invokes an external proving binary once per call. The binary's
// contract:
//
//	<bin> address <secret_hex>
//	<bin> prove <secret_hex> <x> <y> <z> <w>
//	<bin> prove-permissionless <x> <y> <z> <w>
//
// It writes its result to stdout: a bare hex address for the address
// subcommand, "<proof_hex>,<vk_hex>,<address_hex>" for the proving
// subcommands. A non-zero exit or empty output is a proving failure; stderr
// is included in the returned error.
type ExecProver struct {
	// Path is the proving binary to run.
	Path string
}

// Compile-time interface check.
var _ Prover = (*ExecProver)(nil)

// NewExecProver returns an ExecProver running the binary at path.
func NewExecProver(path string) *ExecProver {
	return &ExecProver{Path: path}
}

// run executes one prover subcommand and returns trimmed stdout.
func (p *ExecProver) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, p.Path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s %s: %w: %s",
			ErrProvingFailed, p.Path, args[0], err, strings.TrimSpace(stderr.String()))
	}
	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", fmt.Errorf("%w: %s %s: empty output", ErrProvingFailed, p.Path, args[0])
	}
	return out, nil
}

// DeriveAddress implements Prover.
func (p *ExecProver) DeriveAddress(ctx context.Context, secretHex string) (string, error) {
	return p.run(ctx, "address", secretHex)
}

// Prove implements Prover.
func (p *ExecProver) Prove(ctx context.Context, secretHex string, inputs [4]string) (*Result, error) {
	out, err := p.run(ctx, "prove", secretHex, inputs[0], inputs[1], inputs[2], inputs[3])
	if err != nil {
		return nil, err
	}
	return ParseOutput(out)
}

// ProvePermissionless implements Prover.
func (p *ExecProver) ProvePermissionless(ctx context.Context, inputs [4]string) (*Result, error) {
	out, err := p.run(ctx, "prove-permissionless", inputs[0], inputs[1], inputs[2], inputs[3])
	if err != nil {
		return nil, err
	}
	return ParseOutput(out)
}
