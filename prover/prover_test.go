package prover

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutput(t *testing.T) {
	res, err := ParseOutput("a,b,c")
	require.NoError(t, err)
	assert.Equal(t, "a", res.ProofHex)
	assert.Equal(t, "b", res.VKHex)
	assert.Equal(t, "c", res.AddressHex)
}

func TestParseOutputMalformed(t *testing.T) {
	for _, in := range []string{"", "a,b", "a,b,c,d"} {
		_, err := ParseOutput(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, ErrMalformedResponse, "input %q", in)
	}
}

// writeScript drops an executable shell script to act as the prover binary.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script prover stub is unix-only")
	}
	path := filepath.Join(t.TempDir(), "prover.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestExecProverProve(t *testing.T) {
	bin := writeScript(t, `echo "proof$2,vk$3,addr$4"`)
	p := NewExecProver(bin)

	res, err := p.Prove(context.Background(), "sec", [4]string{"x", "y", "z", "w"})
	require.NoError(t, err)
	assert.Equal(t, "proofsec", res.ProofHex)
	assert.Equal(t, "vkx", res.VKHex)
	assert.Equal(t, "addry", res.AddressHex)
}

func TestExecProverDeriveAddress(t *testing.T) {
	bin := writeScript(t, `echo "addr-$2"`)
	p := NewExecProver(bin)

	addr, err := p.DeriveAddress(context.Background(), "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "addr-s3cret", addr)
}

func TestExecProverFailurePropagates(t *testing.T) {
	bin := writeScript(t, `echo "circuit constraint unsatisfied" >&2; exit 1`)
	p := NewExecProver(bin)

	_, err := p.ProvePermissionless(context.Background(), [4]string{"x", "y", "z", "w"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvingFailed)
	assert.Contains(t, err.Error(), "circuit constraint unsatisfied")
}

func TestExecProverEmptyOutput(t *testing.T) {
	bin := writeScript(t, `exit 0`)
	p := NewExecProver(bin)

	_, err := p.DeriveAddress(context.Background(), "s")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvingFailed)
}

func TestExecProverMalformedTriple(t *testing.T) {
	bin := writeScript(t, `echo "only,two"`)
	p := NewExecProver(bin)

	_, err := p.Prove(context.Background(), "s", [4]string{"x", "y", "z", "w"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
