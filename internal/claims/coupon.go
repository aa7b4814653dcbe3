package claims

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/attendrop/minter/internal/adapter"
	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/logger"
	"github.com/attendrop/minter/internal/minter"
	"github.com/attendrop/minter/internal/providers/ethereum"
	"github.com/attendrop/minter/internal/store"
	"github.com/attendrop/minter/internal/store/schema"
)

// Submitter is the orchestrator capability the coupon flow consumes
//
//go:generate mockgen -source=coupon.go -destination=../mocks/submitter.go -package=mocks -mock_names=Submitter=MockSubmitter
type Submitter interface {
	Submit(ctx context.Context, op domain.Operation, opts minter.SubmitOptions) (*ethereum.TxHandle, error)
}

// Coupon is the external view of a claim coupon: the stored record enriched
// with its capability secret, its event, and the state of the mint
// transaction if one is attached.
type Coupon struct {
	QRHash      string                   `json:"qrHash"`
	EventID     uint64                   `json:"eventId"`
	Event       *schema.Event            `json:"event,omitempty"`
	Claimed     bool                     `json:"claimed"`
	ClaimedDate *time.Time               `json:"claimedDate,omitempty"`
	Beneficiary *string                  `json:"beneficiary,omitempty"`
	TxHash      *string                  `json:"txHash,omitempty"`
	Signer      *string                  `json:"signer,omitempty"`
	Secret      string                   `json:"secret"`
	TxStatus    domain.TransactionStatus `json:"txStatus,omitempty"`
}

// CouponService implements the capability-token claim flow. The secret of a
// coupon is a keyed digest of its identifier: holding a valid (identifier,
// secret) pair is the authorization.
type CouponService struct {
	store         store.Store
	ledger        ethereum.Ledger
	submitter     Submitter
	clock         adapter.Clock
	secretKey     []byte
	notFoundDelay time.Duration
	rejectDelay   time.Duration
}

// NewCouponService creates the coupon claim service. notFoundDelay stalls
// unknown-coupon reads, rejectDelay stalls failed redemptions; both blunt
// enumeration attempts.
func NewCouponService(
	s store.Store,
	ledger ethereum.Ledger,
	submitter Submitter,
	clock adapter.Clock,
	secretKey string,
	notFoundDelay, rejectDelay time.Duration,
) *CouponService {
	return &CouponService{
		store:         s,
		ledger:        ledger,
		submitter:     submitter,
		clock:         clock,
		secretKey:     []byte(secretKey),
		notFoundDelay: notFoundDelay,
		rejectDelay:   rejectDelay,
	}
}

// Secret derives the capability secret of a coupon identifier
func (c *CouponService) Secret(qrHash string) string {
	mac := hmac.New(sha256.New, c.secretKey)
	mac.Write([]byte(qrHash))
	return hex.EncodeToString(mac.Sum(nil))
}

// Get returns the coupon state without mutating anything. An unknown
// identifier is answered after a delay so probing for valid coupons is slow.
func (c *CouponService) Get(ctx context.Context, qrHash string) (*Coupon, error) {
	record, err := c.store.GetQRClaim(ctx, qrHash)
	if err != nil {
		return nil, err
	}
	if record == nil {
		c.clock.Sleep(c.notFoundDelay)
		return nil, fmt.Errorf("%w: %s", domain.ErrCouponNotFound, qrHash)
	}

	return c.buildCoupon(ctx, record)
}

// Redeem spends the coupon and mints its token to the beneficiary. The
// claimed-flag transition is a single atomic compare-and-set done strictly
// before the mint: among concurrent redemptions exactly one proceeds.
func (c *CouponService) Redeem(ctx context.Context, qrHash, secret, beneficiary string) (*Coupon, error) {
	if !hmac.Equal([]byte(secret), []byte(c.Secret(qrHash))) {
		c.clock.Sleep(c.rejectDelay)
		return nil, domain.ErrInvalidSecret
	}

	record, err := c.store.GetQRClaim(ctx, qrHash)
	if err != nil {
		return nil, err
	}
	if record == nil {
		c.clock.Sleep(c.rejectDelay)
		return nil, fmt.Errorf("%w: %s", domain.ErrCouponNotFound, qrHash)
	}
	if record.Claimed {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyClaimed, qrHash)
	}

	resolved, err := c.ledger.CheckAddress(ctx, beneficiary)
	if err != nil {
		return nil, err
	}

	dual, err := c.store.HasDualQRClaim(ctx, record.EventID, resolved)
	if err != nil {
		return nil, err
	}
	if dual {
		return nil, fmt.Errorf("%w: %s already claimed event %d", domain.ErrDuplicateClaim, resolved, record.EventID)
	}

	if err := c.store.ClaimQRClaim(ctx, qrHash); err != nil {
		return nil, err
	}

	handle, err := c.submitter.Submit(ctx, domain.MintToken(record.EventID, resolved), minter.SubmitOptions{})
	if err != nil {
		// The coupon is spent but no transaction exists; operators recover
		// these from the claimed-without-hash state.
		logger.ErrorCtx(ctx, err,
			zap.String("qr_hash", qrHash),
			zap.String("beneficiary", resolved),
		)
		return nil, err
	}

	if err := c.store.UpdateQRClaimMint(ctx, qrHash, resolved, handle.Hash, handle.From); err != nil {
		return nil, err
	}

	updated, err := c.store.GetQRClaim(ctx, qrHash)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCouponNotFound, qrHash)
	}
	return c.buildCoupon(ctx, updated)
}

func (c *CouponService) buildCoupon(ctx context.Context, record *schema.QRClaim) (*Coupon, error) {
	coupon := &Coupon{
		QRHash:      record.QRHash,
		EventID:     record.EventID,
		Claimed:     record.Claimed,
		ClaimedDate: record.ClaimedDate,
		Beneficiary: record.Beneficiary,
		TxHash:      record.TxHash,
		Signer:      record.Signer,
		Secret:      c.Secret(record.QRHash),
	}

	event, err := c.store.GetEvent(ctx, record.EventID)
	if err != nil {
		return nil, err
	}
	coupon.Event = event

	if record.TxHash != nil {
		tx, err := c.store.GetTransactionByHash(ctx, *record.TxHash)
		if err != nil {
			return nil, err
		}
		if tx != nil {
			coupon.TxStatus = tx.Status
		} else {
			coupon.TxStatus = domain.TransactionStatusPending
		}
	}

	return coupon, nil
}
