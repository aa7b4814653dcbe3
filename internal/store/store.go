package store

import (
	"context"
	"time"

	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/store/schema"
)

// SignerRecord is a signer enriched with its live pending-transaction load.
// Balance is filled by the signer registry from the ledger, never persisted.
type SignerRecord struct {
	ID          uint64
	Signer      string
	Role        domain.SignerRole
	GasPrice    *string
	CreatedDate time.Time
	PendingTxs  int64
	Balance     string `gorm:"-"`
}

// EventChanges is the set of mutable event fields
type EventChanges struct {
	Signer   *string
	SignerIP *string
	EventURL string
	ImageURL string
}

// Store defines the storage operations consumed by the minting core
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetSigner retrieves a signer by address (case-insensitive). Returns
	// (nil, nil) when no signer is registered under the address.
	GetSigner(ctx context.Context, address string) (*schema.Signer, error)

	// ListHelperSigners returns all non-administrator signers ordered by
	// ascending pending-transaction count, then ascending id.
	ListHelperSigners(ctx context.Context) ([]SignerRecord, error)

	// ListSigners returns all signers with their pending-transaction load
	ListSigners(ctx context.Context) ([]SignerRecord, error)

	// UpdateSignerGasPrice persists a per-signer gas-price override. Returns
	// domain.ErrSignerNotFound when the address is unknown.
	UpdateSignerGasPrice(ctx context.Context, address string, gasPrice string) error

	// InsertTransaction persists a transaction record. The argument payload
	// is capped; on a write failure the insert is retried once with
	// domain.ArgumentsPlaceholder as payload.
	InsertTransaction(ctx context.Context, tx *schema.Transaction) error

	// GetTransactionByHash retrieves a transaction record by hash
	// (case-insensitive). Returns (nil, nil) when absent.
	GetTransactionByHash(ctx context.Context, hash string) (*schema.Transaction, error)

	// ListTransactions returns transaction records filtered by status, newest
	// first, together with the total count for the filter.
	ListTransactions(ctx context.Context, statuses []domain.TransactionStatus, limit, offset int) ([]schema.Transaction, int64, error)

	// ListPendingTransactions returns all records still in pending state,
	// oldest first.
	ListPendingTransactions(ctx context.Context) ([]schema.Transaction, error)

	// UpdateTransactionStatus applies a status transition to a transaction
	// record. Returns domain.ErrTransactionNotFound when the hash is unknown.
	UpdateTransactionStatus(ctx context.Context, hash string, status domain.TransactionStatus) error

	// GetEvent retrieves an event by id. Returns (nil, nil) when absent.
	GetEvent(ctx context.Context, id uint64) (*schema.Event, error)

	// GetEventByFancyID retrieves an event by its slug. Returns (nil, nil)
	// when absent.
	GetEventByFancyID(ctx context.Context, fancyID string) (*schema.Event, error)

	// ListEvents returns all events, most recent first
	ListEvents(ctx context.Context) ([]schema.Event, error)

	// CreateEvent inserts a new event and backfills its id
	CreateEvent(ctx context.Context, event *schema.Event) error

	// UpdateEvent applies the mutable fields to an event identified by slug.
	// Returns domain.ErrEventNotFound when the slug is unknown.
	UpdateEvent(ctx context.Context, fancyID string, changes EventChanges) error

	// GetQRClaim retrieves a coupon by its identifier. Returns (nil, nil)
	// when absent.
	GetQRClaim(ctx context.Context, qrHash string) (*schema.QRClaim, error)

	// ClaimQRClaim atomically flips the coupon's claimed flag from false to
	// true. Returns domain.ErrClaimConflict when the update affected zero
	// rows, i.e. the coupon was already claimed.
	ClaimQRClaim(ctx context.Context, qrHash string) error

	// UpdateQRClaimMint attaches beneficiary, transaction hash, and signer to
	// a claimed coupon.
	UpdateQRClaimMint(ctx context.Context, qrHash, beneficiary, txHash, signer string) error

	// HasDualQRClaim reports whether another coupon for the event has already
	// been satisfied by the beneficiary.
	HasDualQRClaim(ctx context.Context, eventID uint64, beneficiary string) (bool, error)

	// InsertQRClaims provisions a batch of coupons
	InsertQRClaims(ctx context.Context, claims []schema.QRClaim) error

	// GetSetting retrieves a named setting. Returns (nil, nil) when absent.
	GetSetting(ctx context.Context, name string) (*schema.Setting, error)

	// ListSettings returns all settings
	ListSettings(ctx context.Context) ([]schema.Setting, error)

	// UpdateSetting overwrites a setting's value. Returns
	// domain.ErrSettingNotFound when the name is unknown.
	UpdateSetting(ctx context.Context, name, value string) error
}
