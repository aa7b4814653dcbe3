package minter

import (
	"context"

	"go.uber.org/zap"

	"github.com/attendrop/minter/internal/logger"
)

// Selector picks the signing credential for a submission. Selection is a
// read-only decision: two concurrent requests may pick the same least-loaded
// helper, which only skews load, never correctness.
type Selector struct {
	registry *Registry
	admin    string
}

// NewSelector creates a selector. admin is the administrative credential's
// address.
func NewSelector(registry *Registry, admin string) *Selector {
	return &Selector{registry: registry, admin: admin}
}

// SelectSigner returns the address to sign with. An explicit signer wins and
// must be registered. Operations that need atomic nonce ordering pass
// requireAdmin and are pinned to the administrator. Everything else takes the
// least-loaded funded helper, with the administrator as last resort.
func (s *Selector) SelectSigner(ctx context.Context, requireAdmin bool, explicit string) (string, error) {
	if explicit != "" {
		signer, err := s.registry.Lookup(ctx, explicit)
		if err != nil {
			return "", err
		}
		return signer.Signer, nil
	}

	if requireAdmin {
		return s.admin, nil
	}

	helpers, err := s.registry.HelperSigners(ctx)
	if err != nil {
		return "", err
	}
	for _, helper := range helpers {
		if helper.Balance != "" && helper.Balance != "0" {
			return helper.Signer, nil
		}
	}

	logger.WarnCtx(ctx, "no funded helper signer available, falling back to administrator",
		zap.Int("helpers", len(helpers)),
	)
	return s.admin, nil
}
