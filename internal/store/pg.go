package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/logger"
	"github.com/attendrop/minter/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

const signerLoadQuery = `
SELECT s.id, s.signer, s.role, s.gas_price, s.created_date,
       COALESCE(SUM(CASE WHEN st.status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_txs
FROM signers s
LEFT JOIN server_transactions st ON st.signer = s.signer
%s
GROUP BY s.id, s.signer, s.role, s.gas_price, s.created_date
ORDER BY pending_txs ASC, s.id ASC`

// GetSigner retrieves a signer by address (case-insensitive)
func (s *pgStore) GetSigner(ctx context.Context, address string) (*schema.Signer, error) {
	var signer schema.Signer
	err := s.db.WithContext(ctx).Where("signer ILIKE ?", address).First(&signer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get signer: %w", err)
	}
	return &signer, nil
}

// ListHelperSigners returns all non-administrator signers ordered by pending
// load, then id
func (s *pgStore) ListHelperSigners(ctx context.Context) ([]SignerRecord, error) {
	var records []SignerRecord
	query := fmt.Sprintf(signerLoadQuery, "WHERE s.role != 'administrator'")
	if err := s.db.WithContext(ctx).Raw(query).Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list helper signers: %w", err)
	}
	return records, nil
}

// ListSigners returns all signers with their pending-transaction load
func (s *pgStore) ListSigners(ctx context.Context) ([]SignerRecord, error) {
	var records []SignerRecord
	query := fmt.Sprintf(signerLoadQuery, "")
	if err := s.db.WithContext(ctx).Raw(query).Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list signers: %w", err)
	}
	return records, nil
}

// UpdateSignerGasPrice persists a per-signer gas-price override
func (s *pgStore) UpdateSignerGasPrice(ctx context.Context, address string, gasPrice string) error {
	res := s.db.WithContext(ctx).
		Model(&schema.Signer{}).
		Where("signer ILIKE ?", address).
		Update("gas_price", gasPrice)
	if res.Error != nil {
		return fmt.Errorf("failed to update signer gas price: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrSignerNotFound
	}
	return nil
}

// InsertTransaction persists a transaction record. The write is a logging
// path: the argument payload is capped, and a failed insert is retried once
// with the placeholder payload so that the record never goes missing solely
// because of its arguments.
func (s *pgStore) InsertTransaction(ctx context.Context, tx *schema.Transaction) error {
	if len(tx.Arguments) > domain.ArgumentsSizeCap {
		tx.Arguments = tx.Arguments[:domain.ArgumentsSizeCap]
	}

	err := s.db.WithContext(ctx).Create(tx).Error
	if err == nil {
		return nil
	}

	logger.WarnCtx(ctx, "transaction insert failed, retrying with placeholder payload",
		zap.String("tx_hash", tx.TxHash),
		zap.Error(err),
	)

	retry := *tx
	retry.Arguments = domain.ArgumentsPlaceholder
	if err := s.db.WithContext(ctx).Create(&retry).Error; err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	tx.Arguments = retry.Arguments
	tx.ID = retry.ID
	return nil
}

// GetTransactionByHash retrieves a transaction record by hash
func (s *pgStore) GetTransactionByHash(ctx context.Context, hash string) (*schema.Transaction, error) {
	var tx schema.Transaction
	err := s.db.WithContext(ctx).Where("tx_hash ILIKE ?", hash).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

// ListTransactions returns transaction records filtered by status, newest first
func (s *pgStore) ListTransactions(ctx context.Context, statuses []domain.TransactionStatus, limit, offset int) ([]schema.Transaction, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Transaction{})
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var txs []schema.Transaction
	err := query.
		Order("created_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, total, nil
}

// ListPendingTransactions returns all records still in pending state, oldest first
func (s *pgStore) ListPendingTransactions(ctx context.Context) ([]schema.Transaction, error) {
	var txs []schema.Transaction
	err := s.db.WithContext(ctx).
		Where("status = ?", domain.TransactionStatusPending).
		Order("id ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transactions: %w", err)
	}
	return txs, nil
}

// UpdateTransactionStatus applies a status transition to a transaction record
func (s *pgStore) UpdateTransactionStatus(ctx context.Context, hash string, status domain.TransactionStatus) error {
	res := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("tx_hash ILIKE ?", hash).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update transaction status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// GetEvent retrieves an event by id
func (s *pgStore) GetEvent(ctx context.Context, id uint64) (*schema.Event, error) {
	var event schema.Event
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// GetEventByFancyID retrieves an event by its slug
func (s *pgStore) GetEventByFancyID(ctx context.Context, fancyID string) (*schema.Event, error) {
	var event schema.Event
	err := s.db.WithContext(ctx).Where("fancy_id = ?", fancyID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// ListEvents returns all events, most recent first
func (s *pgStore) ListEvents(ctx context.Context) ([]schema.Event, error) {
	var events []schema.Event
	if err := s.db.WithContext(ctx).Order("start_date DESC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// CreateEvent inserts a new event and backfills its id
func (s *pgStore) CreateEvent(ctx context.Context, event *schema.Event) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// UpdateEvent applies the mutable fields to an event identified by slug
func (s *pgStore) UpdateEvent(ctx context.Context, fancyID string, changes EventChanges) error {
	res := s.db.WithContext(ctx).
		Model(&schema.Event{}).
		Where("fancy_id = ?", fancyID).
		Updates(map[string]any{
			"signer":    changes.Signer,
			"signer_ip": changes.SignerIP,
			"event_url": changes.EventURL,
			"image_url": changes.ImageURL,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// GetQRClaim retrieves a coupon by its identifier
func (s *pgStore) GetQRClaim(ctx context.Context, qrHash string) (*schema.QRClaim, error) {
	var claim schema.QRClaim
	err := s.db.WithContext(ctx).Where("qr_hash = ?", qrHash).First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get qr claim: %w", err)
	}
	return &claim, nil
}

// ClaimQRClaim atomically flips the coupon's claimed flag from false to true.
// The conditional update is the race guard: among concurrent claims of the
// same coupon, exactly one observes RowsAffected == 1.
func (s *pgStore) ClaimQRClaim(ctx context.Context, qrHash string) error {
	res := s.db.WithContext(ctx).
		Model(&schema.QRClaim{}).
		Where("qr_hash = ? AND claimed = ?", qrHash, false).
		Updates(map[string]any{
			"claimed":      true,
			"claimed_date": time.Now().UTC(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to claim coupon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrClaimConflict
	}
	return nil
}

// UpdateQRClaimMint attaches beneficiary, transaction hash, and signer to a
// claimed coupon
func (s *pgStore) UpdateQRClaimMint(ctx context.Context, qrHash, beneficiary, txHash, signer string) error {
	res := s.db.WithContext(ctx).
		Model(&schema.QRClaim{}).
		Where("qr_hash = ?", qrHash).
		Updates(map[string]any{
			"beneficiary": beneficiary,
			"tx_hash":     txHash,
			"signer":      signer,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update claimed coupon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCouponNotFound
	}
	return nil
}

// HasDualQRClaim reports whether another coupon for the event has already
// been satisfied by the beneficiary
func (s *pgStore) HasDualQRClaim(ctx context.Context, eventID uint64, beneficiary string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.QRClaim{}).
		Where("event_id = ? AND beneficiary ILIKE ? AND claimed = ?", eventID, beneficiary, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check dual claim: %w", err)
	}
	return count > 0, nil
}

// InsertQRClaims provisions a batch of coupons
func (s *pgStore) InsertQRClaims(ctx context.Context, claims []schema.QRClaim) error {
	if len(claims) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).CreateInBatches(claims, 500).Error; err != nil {
		return fmt.Errorf("failed to insert coupons: %w", err)
	}
	return nil
}

// GetSetting retrieves a named setting
func (s *pgStore) GetSetting(ctx context.Context, name string) (*schema.Setting, error) {
	var setting schema.Setting
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return &setting, nil
}

// ListSettings returns all settings
func (s *pgStore) ListSettings(ctx context.Context) ([]schema.Setting, error) {
	var settings []schema.Setting
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

// UpdateSetting overwrites a setting's value
func (s *pgStore) UpdateSetting(ctx context.Context, name, value string) error {
	res := s.db.WithContext(ctx).
		Model(&schema.Setting{}).
		Where("name = ?", name).
		Update("value", value)
	if res.Error != nil {
		return fmt.Errorf("failed to update setting: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrSettingNotFound
	}
	return nil
}
