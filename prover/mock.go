package prover

import "context"

// MockProver is a test double for Prover. All function fields must be set
// before the corresponding method is called.
type MockProver struct {
	DeriveAddressFn       func(ctx context.Context, secretHex string) (string, error)
	ProveFn               func(ctx context.Context, secretHex string, inputs [4]string) (*Result, error)
	ProvePermissionlessFn func(ctx context.Context, inputs [4]string) (*Result, error)
}

func (m *MockProver) DeriveAddress(ctx context.Context, secretHex string) (string, error) {
	return m.DeriveAddressFn(ctx, secretHex)
}
func (m *MockProver) Prove(ctx context.Context, secretHex string, inputs [4]string) (*Result, error) {
	return m.ProveFn(ctx, secretHex, inputs)
}
func (m *MockProver) ProvePermissionless(ctx context.Context, inputs [4]string) (*Result, error) {
	return m.ProvePermissionlessFn(ctx, inputs)
}
