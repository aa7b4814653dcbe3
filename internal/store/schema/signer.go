package schema

import (
	"time"

	"github.com/attendrop/minter/internal/domain"
)

// Signer represents the signers table - server-held signing credentials.
// Balance and pending-transaction count are live values, never persisted.
type Signer struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Signer is the credential's ledger address (stored lowercase)
	Signer string `gorm:"column:signer;not null;unique;type:varchar(42)"`
	// Role distinguishes the administrative credential from pool helpers
	Role domain.SignerRole `gorm:"column:role;not null;type:varchar(20)"`
	// GasPrice is the configured per-signer gas-price override in wei (decimal string)
	GasPrice *string `gorm:"column:gas_price;type:varchar(78)"`
	// CreatedDate is the timestamp when the signer was registered
	CreatedDate time.Time `gorm:"column:created_date;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Signer model
func (Signer) TableName() string {
	return "signers"
}
