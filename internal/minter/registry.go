package minter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/logger"
	"github.com/attendrop/minter/internal/providers/ethereum"
	"github.com/attendrop/minter/internal/store"
	"github.com/attendrop/minter/internal/store/schema"
)

// Registry exposes the signer pool: persisted records enriched with the live
// values that are computed, never stored (pending load, wei balance).
type Registry struct {
	store  store.Store
	ledger ethereum.Ledger
}

// NewRegistry creates a signer registry
func NewRegistry(s store.Store, l ethereum.Ledger) *Registry {
	return &Registry{store: s, ledger: l}
}

// HelperSigners returns the non-administrator pool ordered by ascending
// pending-transaction load, each enriched with its live balance. A balance
// fetch failure marks the signer with balance "0" so selection skips it.
func (r *Registry) HelperSigners(ctx context.Context) ([]store.SignerRecord, error) {
	records, err := r.store.ListHelperSigners(ctx)
	if err != nil {
		return nil, err
	}
	r.attachBalances(ctx, records)
	return records, nil
}

// AllSigners returns every registered signer with live balances
func (r *Registry) AllSigners(ctx context.Context) ([]store.SignerRecord, error) {
	records, err := r.store.ListSigners(ctx)
	if err != nil {
		return nil, err
	}
	r.attachBalances(ctx, records)
	return records, nil
}

// Lookup resolves a signer by address
func (r *Registry) Lookup(ctx context.Context, address string) (*schema.Signer, error) {
	signer, err := r.store.GetSigner(ctx, address)
	if err != nil {
		return nil, err
	}
	if signer == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSignerNotFound, address)
	}
	return signer, nil
}

// SetGasPriceOverride persists a per-signer gas-price override
func (r *Registry) SetGasPriceOverride(ctx context.Context, address, gasPrice string) error {
	return r.store.UpdateSignerGasPrice(ctx, address, gasPrice)
}

func (r *Registry) attachBalances(ctx context.Context, records []store.SignerRecord) {
	for i := range records {
		balance, err := r.ledger.BalanceAt(ctx, records[i].Signer)
		if err != nil {
			logger.WarnCtx(ctx, "failed to fetch signer balance",
				zap.String("signer", records[i].Signer),
				zap.Error(err),
			)
			records[i].Balance = "0"
			continue
		}
		records[i].Balance = balance.String()
	}
}
