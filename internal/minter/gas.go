package minter

import (
	"context"
	"math/big"

	"go.uber.org/zap"

	"github.com/attendrop/minter/internal/logger"
	"github.com/attendrop/minter/internal/store"
)

// Gas cost constants calibrated empirically against the attendance-token
// contract. The node's own estimator undershoots the batch entry points, so
// the estimate carries a 1.5x safety margin and is used instead.
const (
	gasEstimateBase         = 35_708
	gasEstimatePerRecipient = 1_369_070
)

// DefaultGasPriceWei is the hard fallback when neither the request, the
// signer, nor the settings table carries a gas price.
const DefaultGasPriceWei = 5_000_000_000

// gasPriceSettingName is the settings row holding the global default
const gasPriceSettingName = "gas-price"

// EstimateMintingGas returns the gas limit for a mint or burn touching
// recipientCount token slots. Pure: same input, same output.
func EstimateMintingGas(recipientCount int) uint64 {
	if recipientCount < 1 {
		recipientCount = 1
	}
	// (base + n*perRecipient) * 1.5, kept in integer arithmetic
	return (gasEstimateBase + uint64(recipientCount)*gasEstimatePerRecipient) * 3 / 2
}

// GasPolicy resolves the gas price for a submission
type GasPolicy struct {
	store store.Store
}

// NewGasPolicy creates a gas policy backed by the given store
func NewGasPolicy(s store.Store) *GasPolicy {
	return &GasPolicy{store: s}
}

// ResolveGasPrice returns the gas price in wei for a submission from the
// given signer. Precedence, highest first: the explicit request override, the
// signer's persisted override, the global settings row, the hard default.
// Unparsable persisted values are skipped, not fatal.
func (g *GasPolicy) ResolveGasPrice(ctx context.Context, signerAddress string, explicit *big.Int) (*big.Int, error) {
	if explicit != nil {
		return explicit, nil
	}

	signer, err := g.store.GetSigner(ctx, signerAddress)
	if err != nil {
		return nil, err
	}
	if signer != nil && signer.GasPrice != nil {
		if price, ok := new(big.Int).SetString(*signer.GasPrice, 10); ok {
			return price, nil
		}
		logger.WarnCtx(ctx, "ignoring unparsable signer gas-price override",
			zap.String("signer", signerAddress),
			zap.String("value", *signer.GasPrice),
		)
	}

	setting, err := g.store.GetSetting(ctx, gasPriceSettingName)
	if err != nil {
		return nil, err
	}
	if setting != nil {
		if price, ok := new(big.Int).SetString(setting.Value, 10); ok {
			return price, nil
		}
		logger.WarnCtx(ctx, "ignoring unparsable gas-price setting",
			zap.String("value", setting.Value),
		)
	}

	return big.NewInt(DefaultGasPriceWei), nil
}
