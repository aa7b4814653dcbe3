package schema

import "time"

// QRClaim represents the qr_claims table - pre-issued single-use claim
// coupons. The claimed flag flips false to true exactly once; beneficiary,
// signer, and tx hash are attached at successful mint time.
type QRClaim struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// QRHash is the coupon identifier printed into the physical QR code
	QRHash string `gorm:"column:qr_hash;not null;unique;type:text"`
	// EventID is the event this coupon is valid for
	EventID uint64 `gorm:"column:event_id;not null;index"`
	// Beneficiary is the address the token was minted to, set at claim time
	Beneficiary *string `gorm:"column:beneficiary;type:varchar(42)"`
	// Claimed marks the coupon as spent
	Claimed bool `gorm:"column:claimed;not null;default:false"`
	// ClaimedDate is the timestamp of the successful claim
	ClaimedDate *time.Time `gorm:"column:claimed_date;type:timestamptz"`
	// TxHash is the hash of the mint transaction issued for this coupon
	TxHash *string `gorm:"column:tx_hash;type:varchar(66)"`
	// Signer is the credential that signed the mint transaction
	Signer *string `gorm:"column:signer;type:varchar(42)"`
	// CreatedDate is the timestamp the coupon was provisioned
	CreatedDate time.Time `gorm:"column:created_date;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the QRClaim model
func (QRClaim) TableName() string {
	return "qr_claims"
}
