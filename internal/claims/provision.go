package claims

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/store/schema"
)

// maxCouponBatch caps a single provisioning request. Larger drops are split
// into multiple requests by the caller.
const maxCouponBatch = 1000

// ProvisionCoupons creates a batch of unclaimed coupons for an event. The
// identifiers are random UUIDs; the caller receives them together with their
// derived secrets for printing into QR codes.
func (c *CouponService) ProvisionCoupons(ctx context.Context, eventID uint64, count int) ([]Coupon, error) {
	if count < 1 || count > maxCouponBatch {
		return nil, fmt.Errorf("coupon count must be between 1 and %d, got %d", maxCouponBatch, count)
	}

	event, err := c.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrEventNotFound, eventID)
	}

	records := make([]schema.QRClaim, count)
	for i := range records {
		records[i] = schema.QRClaim{
			QRHash:  uuid.New().String(),
			EventID: eventID,
		}
	}
	if err := c.store.InsertQRClaims(ctx, records); err != nil {
		return nil, err
	}

	coupons := make([]Coupon, count)
	for i, record := range records {
		coupons[i] = Coupon{
			QRHash:  record.QRHash,
			EventID: record.EventID,
			Event:   event,
			Secret:  c.Secret(record.QRHash),
		}
	}
	return coupons, nil
}
