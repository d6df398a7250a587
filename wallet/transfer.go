package wallet

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/shieldorg/libshield-go/field"
	"github.com/shieldorg/libshield-go/history"
	"github.com/shieldorg/libshield-go/prover"
	"github.com/shieldorg/libshield-go/tx"
)

// TransferOpts describes one transfer request. Secret selects the mode:
// when set, the prover binds the proof to it (authenticated mode); when
// nil, the prover attests the sender some other way (permissionless mode).
type TransferOpts struct {
	From   field.Element
	To     field.Element
	Amount field.Element
	Secret *field.Element
}

// TransferResult reports a submitted transfer. TxHash is the content hash
// of the transfer record, independent of proof bytes, and is the durable
// identifier for tracking the transaction.
type TransferResult struct {
	TxHash field.Element
	Tx     tx.Tx
}

// Transfer runs the full pipeline: discover the sender's UTXOs, select a
// covering set, assemble the two-input/two-output record, obtain a proof,
// reconcile the attested address, and submit.
//
// Every failure aborts the remaining stages; nothing is partially
// submitted, and no retry is attempted — resubmission with stale UTXO
// references may be invalid after ledger state changes, so retrying is the
// caller's decision, starting from fresh discovery.
func (w *Wallet) Transfer(ctx context.Context, opts TransferOpts) (*TransferResult, error) {
	w.logf("[1/5] Discovering UTXOs...")
	entries, err := w.DiscoverUTXOs(ctx, opts.From)
	if err != nil {
		return nil, err
	}

	w.logf("[2/5] Selecting inputs...")
	in1, in2, err := w.SelectUTXOs(entries, opts.Amount)
	if err != nil {
		return nil, err
	}
	w.logf("Selected UTXO 1: amount=%s", in1.Out.Amount.String())
	if !in2.ID.IsZero() {
		w.logf("Selected UTXO 2: amount=%s", in2.Out.Amount.String())
	}

	w.logf("[3/5] Assembling transaction...")
	changeTo, err := w.changeAddress(ctx, opts)
	if err != nil {
		return nil, err
	}
	built, err := tx.ConstructTransfer(in1, in2, opts.To, opts.Amount, changeTo, field.FromUint64(w.Params.Fee))
	if err != nil {
		return nil, err
	}

	w.logf("[4/5] Proving...")
	proved, err := w.prove(ctx, &built, opts)
	if err != nil {
		return nil, err
	}

	w.logf("[5/5] Submitting...")
	if err := w.Ledger.SubmitTransaction(ctx, proved.EncodeHex()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	txHash, err := built.Hash()
	if err != nil {
		return nil, err
	}
	w.logf("Transaction hash: %s", field.EncodeHex(&txHash))
	w.record(&txHash, &opts)

	return &TransferResult{TxHash: txHash, Tx: built}, nil
}

// changeAddress returns the owner of the change output. In authenticated
// mode it is derived from the spending secret, which also pins down the
// address the prover must later attest; in permissionless mode the change
// returns to the declared sender.
func (w *Wallet) changeAddress(ctx context.Context, opts TransferOpts) (field.Element, error) {
	if opts.Secret == nil {
		return opts.From, nil
	}
	addrHex, err := w.Prover.DeriveAddress(ctx, field.EncodeHex(opts.Secret))
	if err != nil {
		return field.Element{}, err
	}
	addr, err := field.DecodeHex(addrHex)
	if err != nil {
		return field.Element{}, fmt.Errorf("wallet: decode derived address: %w", err)
	}
	return addr, nil
}

// prove derives the public inputs, invokes the prover in the requested
// mode, reconciles the attested address against the expected one, and
// assembles the proved record. An address mismatch is fatal and must reach
// the caller as ErrAddressMismatch, never downgraded.
func (w *Wallet) prove(ctx context.Context, built *tx.Tx, opts TransferOpts) (*tx.Wp, error) {
	inputs, err := built.PublicInputs()
	if err != nil {
		return nil, err
	}
	var inputsHex [4]string
	for i := range inputs {
		inputsHex[i] = field.EncodeHex(&inputs[i])
	}

	var (
		res      *prover.Result
		expected field.Element
	)
	if opts.Secret != nil {
		// The expected signer address is derived from the secret
		// independently of the proving call.
		expected = built.OY.Owner
		res, err = w.Prover.Prove(ctx, field.EncodeHex(opts.Secret), inputsHex)
	} else {
		expected = opts.From
		res, err = w.Prover.ProvePermissionless(ctx, inputsHex)
	}
	if err != nil {
		return nil, err
	}

	attested, err := field.DecodeHex(res.AddressHex)
	if err != nil {
		return nil, fmt.Errorf("wallet: decode attested address: %w", err)
	}
	if !attested.Equal(&expected) {
		return nil, fmt.Errorf("%w: expected %s, attested %s",
			ErrAddressMismatch, field.EncodeHex(&expected), res.AddressHex)
	}

	proof, err := hex.DecodeString(res.ProofHex)
	if err != nil {
		return nil, fmt.Errorf("wallet: decode proof: %w", err)
	}
	vk, err := hex.DecodeString(res.VKHex)
	if err != nil {
		return nil, fmt.Errorf("wallet: decode verifying key: %w", err)
	}
	return &tx.Wp{VK: vk, Proof: proof, Val: *built}, nil
}

// record appends the submitted transfer to the history store, if one is
// configured. History is advisory; a write failure is reported through Logf
// but does not fail a transfer the ledger already accepted.
func (w *Wallet) record(txHash *field.Element, opts *TransferOpts) {
	if w.History == nil {
		return
	}
	err := w.History.Put(&history.Record{
		TxHash:      field.Encode(txHash),
		From:        field.EncodeHex(&opts.From),
		To:          field.EncodeHex(&opts.To),
		Amount:      field.EncodeHex(&opts.Amount),
		SubmittedAt: time.Now().UTC(),
	})
	if err != nil {
		w.logf("History write failed: %v", err)
	}
}
