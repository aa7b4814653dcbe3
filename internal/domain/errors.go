package domain

import "errors"

var (
	// ErrSignerNotFound is returned when a signer address is not registered
	ErrSignerNotFound = errors.New("signer was not found")

	// ErrTransactionNotFound is returned when no transaction record exists for a hash
	ErrTransactionNotFound = errors.New("transaction was not found")

	// ErrEventNotFound is returned when an event does not exist
	ErrEventNotFound = errors.New("event was not found")

	// ErrCouponNotFound is returned when a claim coupon does not exist
	ErrCouponNotFound = errors.New("claim coupon was not found")

	// ErrSettingNotFound is returned when a named setting does not exist
	ErrSettingNotFound = errors.New("setting was not found")

	// ErrOperationNotSupported is returned when a stored operation tag cannot
	// be decoded for replay
	ErrOperationNotSupported = errors.New("operation not supported")

	// ErrInvalidAddress is returned when a beneficiary address is neither a
	// valid hex address nor a resolvable name
	ErrInvalidAddress = errors.New("address is not valid")

	// ErrInvalidClaimerSignature is returned when the attendee signature of a
	// direct claim does not recover to the claimer address
	ErrInvalidClaimerSignature = errors.New("invalid claimer signature")

	// ErrInvalidAuthoritySignature is returned when the authority proof of a
	// direct claim does not recover to the event authority address
	ErrInvalidAuthoritySignature = errors.New("invalid authority signature")

	// ErrInvalidSecret is returned when a coupon secret does not match
	ErrInvalidSecret = errors.New("invalid secret")

	// ErrAlreadyClaimed is returned when a coupon has already been redeemed
	ErrAlreadyClaimed = errors.New("coupon is already claimed")

	// ErrDuplicateClaim is returned when another coupon for the same event has
	// already been satisfied by the same beneficiary
	ErrDuplicateClaim = errors.New("address already claimed this event")

	// ErrClaimConflict is returned when the atomic claimed-flag transition
	// affected zero rows, i.e. a concurrent request won the race
	ErrClaimConflict = errors.New("coupon was claimed concurrently")

	// ErrLedger is returned when the ledger rejects a submission or a
	// confirmation wait fails
	ErrLedger = errors.New("ledger request failed")

	// ErrPersistence is returned on storage write failures
	ErrPersistence = errors.New("storage write failed")
)
