package minter

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/logger"
	"github.com/attendrop/minter/internal/providers/ethereum"
	"github.com/attendrop/minter/internal/store"
	"github.com/attendrop/minter/internal/store/schema"
)

// SubmitOptions tunes a single submission. Zero values mean "decide for me":
// signer from the pool, gas price from policy, nonce from the credential's
// own sequencing.
type SubmitOptions struct {
	// Await blocks until the ledger reports inclusion
	Await bool
	// Signer forces a specific signing credential
	Signer string
	// GasPrice overrides the gas-price policy
	GasPrice *big.Int
	// Nonce reuses an exact sequence slot; only the replacement path sets it
	Nonce *uint64
}

// Orchestrator drives the submission lifecycle: pick a signer, price the
// transaction, broadcast it, and leave an audit record behind.
type Orchestrator struct {
	store    store.Store
	ledger   ethereum.Ledger
	selector *Selector
	gas      *GasPolicy
}

// NewOrchestrator creates a transaction orchestrator
func NewOrchestrator(s store.Store, l ethereum.Ledger, selector *Selector, gas *GasPolicy) *Orchestrator {
	return &Orchestrator{store: s, ledger: l, selector: selector, gas: gas}
}

// requiresAdmin reports whether the operation is pinned to the administrative
// credential. Batch mints and burns need strict nonce ordering under one
// credential; spreading them over the helper pool risks nonce races.
func requiresAdmin(opType domain.OperationType) bool {
	switch opType {
	case domain.OperationMintEventToManyUsers, domain.OperationMintUserToManyEvents, domain.OperationBurnToken:
		return true
	default:
		return false
	}
}

// Submit broadcasts the operation and records it. The returned handle is the
// caller's authoritative receipt: once the ledger hands back a hash, a
// failure to persist the audit record is logged, never surfaced.
func (o *Orchestrator) Submit(ctx context.Context, op domain.Operation, opts SubmitOptions) (*ethereum.TxHandle, error) {
	signer, err := o.selector.SelectSigner(ctx, requiresAdmin(op.Type), opts.Signer)
	if err != nil {
		return nil, err
	}

	gasPrice, err := o.gas.ResolveGasPrice(ctx, signer, opts.GasPrice)
	if err != nil {
		return nil, err
	}

	params := ethereum.TxParams{
		GasPrice: gasPrice,
		GasLimit: EstimateMintingGas(op.RecipientCount()),
		Nonce:    opts.Nonce,
	}

	handle, err := o.ledger.Submit(ctx, signer, op, params)
	if err != nil {
		return nil, err
	}

	o.recordSubmission(ctx, op, handle, gasPrice)

	if opts.Await {
		status, err := o.ledger.WaitMined(ctx, handle.Hash)
		if err != nil {
			return handle, fmt.Errorf("%w: waiting for inclusion of %s: %v", domain.ErrLedger, handle.Hash, err)
		}
		if status == domain.TransactionStatusFailed {
			return handle, fmt.Errorf("%w: transaction %s reverted", domain.ErrLedger, handle.Hash)
		}
	}

	return handle, nil
}

// recordSubmission writes the audit record for a broadcast transaction.
// Best-effort: a serialization failure stores the placeholder payload, a
// write failure is logged and swallowed.
func (o *Orchestrator) recordSubmission(ctx context.Context, op domain.Operation, handle *ethereum.TxHandle, gasPrice *big.Int) {
	args, err := op.EncodeArguments()
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("tx_hash", handle.Hash))
		args = domain.ArgumentsPlaceholder
	}

	record := &schema.Transaction{
		TxHash:    handle.Hash,
		Nonce:     handle.Nonce,
		Operation: op.Type,
		Arguments: args,
		Signer:    handle.From,
		Status:    domain.TransactionStatusPending,
		GasPrice:  gasPrice.String(),
	}
	if err := o.store.InsertTransaction(ctx, record); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("tx_hash", handle.Hash),
			zap.String("operation", string(op.Type)),
		)
	}
}

// Bump supersedes a stuck transaction: same operation, same signer, same
// nonce, new gas price. The ledger's replace-by-fee rule decides which of the
// two is ultimately included. Exactly one resubmission per call.
func (o *Orchestrator) Bump(ctx context.Context, txHash string, newGasPrice *big.Int) (*ethereum.TxHandle, error) {
	record, err := o.store.GetTransactionByHash(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, txHash)
	}

	op, err := domain.DecodeOperation(record.Operation, record.Arguments)
	if err != nil {
		return nil, err
	}

	// Single-recipient operations are awaited so the caller learns whether
	// the replacement landed; batch replacements return immediately and are
	// observed through the reconciler.
	var await bool
	switch op.Type {
	case domain.OperationMintToken, domain.OperationBurnToken:
		await = true
	case domain.OperationMintEventToManyUsers, domain.OperationMintUserToManyEvents:
		await = false
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrOperationNotSupported, op.Type)
	}

	nonce := record.Nonce
	logger.InfoCtx(ctx, "bumping transaction",
		zap.String("tx_hash", txHash),
		zap.String("signer", record.Signer),
		zap.Uint64("nonce", nonce),
		zap.String("new_gas_price", newGasPrice.String()),
	)

	return o.Submit(ctx, op, SubmitOptions{
		Await:    await,
		Signer:   record.Signer,
		GasPrice: newGasPrice,
		Nonce:    &nonce,
	})
}
