package schema

import (
	"time"

	"github.com/attendrop/minter/internal/domain"
)

// Transaction represents the server_transactions table - the audit trail of
// every transaction the server submitted to the ledger. Records are never
// deleted; only the reconciler mutates their status.
type Transaction struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	// TxHash is the ledger transaction hash, unique once assigned
	TxHash string `json:"txHash" gorm:"column:tx_hash;not null;unique;type:varchar(66)"`
	// Nonce is the signer sequence number the transaction was sent with
	Nonce uint64 `json:"nonce" gorm:"column:nonce;not null"`
	// Operation is the tag of the operation the transaction carries
	Operation domain.OperationType `json:"operation" gorm:"column:operation;not null;type:varchar(40)"`
	// Arguments is the serialized operation payload, capped at
	// domain.ArgumentsSizeCap; holds domain.ArgumentsPlaceholder when
	// serialization failed
	Arguments string `json:"arguments" gorm:"column:arguments;not null;type:varchar(950)"`
	// Signer is the address of the credential that signed the transaction
	Signer string `json:"signer" gorm:"column:signer;not null;type:varchar(42)"`
	// Status is pending until the reconciler observes a receipt
	Status domain.TransactionStatus `json:"status" gorm:"column:status;not null;type:varchar(10)"`
	// GasPrice is the gas price in wei the transaction was sent with (decimal string)
	GasPrice string `json:"gasPrice" gorm:"column:gas_price;not null;type:varchar(78)"`
	// CreatedDate is the timestamp of submission
	CreatedDate time.Time `json:"createdDate" gorm:"column:created_date;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "server_transactions"
}
