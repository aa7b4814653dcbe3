package domain

// SignerRole distinguishes the administrative credential from the helper pool
type SignerRole string

const (
	SignerRoleAdministrator SignerRole = "administrator"
	SignerRoleHelper        SignerRole = "helper"
)

// TransactionStatus is the lifecycle state of a submitted transaction.
// Records are created as pending; only the reconciler moves them to a
// terminal state.
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusPassed  TransactionStatus = "passed"
	TransactionStatusFailed  TransactionStatus = "failed"
)

// Claim is a request-scoped direct-claim assertion. It is validated and
// discarded, never persisted.
type Claim struct {
	ClaimID          string `json:"claimId" binding:"required"`
	EventID          uint64 `json:"eventId" binding:"required"`
	Claimer          string `json:"claimer" binding:"required"`
	Proof            string `json:"proof" binding:"required"`
	ClaimerSignature string `json:"claimerSignature" binding:"required"`
}
