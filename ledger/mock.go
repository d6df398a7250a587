package ledger

import "context"

// MockLedgerService is a test double for LedgerService. All function fields
// must be set before the corresponding method is called.
type MockLedgerService struct {
	GetBalanceFn        func(ctx context.Context, owner string) (string, error)
	GetUTXOsPaginatedFn func(ctx context.Context, lastUTXOID, owner string) ([]string, string, error)
	GetNextUTXOIDFn     func(ctx context.Context, id, owner string) (string, error)
	GetUTXOFn           func(ctx context.Context, id string) (string, error)
	GetTailFn           func(ctx context.Context) (string, error)
	SubmitTransactionFn func(ctx context.Context, txHex string) error
}

func (m *MockLedgerService) GetBalance(ctx context.Context, owner string) (string, error) {
	return m.GetBalanceFn(ctx, owner)
}
func (m *MockLedgerService) GetUTXOsPaginated(ctx context.Context, lastUTXOID, owner string) ([]string, string, error) {
	return m.GetUTXOsPaginatedFn(ctx, lastUTXOID, owner)
}
func (m *MockLedgerService) GetNextUTXOID(ctx context.Context, id, owner string) (string, error) {
	return m.GetNextUTXOIDFn(ctx, id, owner)
}
func (m *MockLedgerService) GetUTXO(ctx context.Context, id string) (string, error) {
	return m.GetUTXOFn(ctx, id)
}
func (m *MockLedgerService) GetTail(ctx context.Context) (string, error) {
	return m.GetTailFn(ctx)
}
func (m *MockLedgerService) SubmitTransaction(ctx context.Context, txHex string) error {
	return m.SubmitTransactionFn(ctx, txHex)
}
