package rest

import (
	"time"

	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/providers/ethereum"
	"github.com/attendrop/minter/internal/store"
	"github.com/attendrop/minter/internal/store/schema"
)

// redeemCouponRequest spends a claim coupon
type redeemCouponRequest struct {
	QRHash      string `json:"qrHash" binding:"required"`
	Secret      string `json:"secret" binding:"required"`
	Beneficiary string `json:"beneficiary" binding:"required"`
}

// provisionCouponsRequest creates a batch of unclaimed coupons for an event
type provisionCouponsRequest struct {
	EventID uint64 `json:"eventId" binding:"required"`
	Count   int    `json:"count" binding:"required,min=1,max=1000"`
}

// bumpRequest resubmits a stuck transaction with a new gas price
type bumpRequest struct {
	TxHash string `json:"txHash" binding:"required"`
	// GasPrice is the replacement gas price in wei, decimal string
	GasPrice string `json:"gasPrice" binding:"required"`
}

// mintEventToManyUsersRequest mints one event's token to many recipients
type mintEventToManyUsersRequest struct {
	EventID    uint64   `json:"eventId" binding:"required"`
	Recipients []string `json:"recipients" binding:"required,min=1"`
}

// mintUserToManyEventsRequest mints many events' tokens to one recipient
type mintUserToManyEventsRequest struct {
	EventIDs []uint64 `json:"eventIds" binding:"required,min=1"`
	To       string   `json:"to" binding:"required"`
}

// createEventRequest registers a new attendance event
type createEventRequest struct {
	FancyID     string  `json:"fancyId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Year        int     `json:"year"`
	EventURL    string  `json:"eventUrl"`
	ImageURL    string  `json:"imageUrl"`
	Signer      *string `json:"signer"`
	SignerIP    *string `json:"signerIp"`
}

// updateEventRequest carries the mutable event fields
type updateEventRequest struct {
	Signer   *string `json:"signer"`
	SignerIP *string `json:"signerIp"`
	EventURL string  `json:"eventUrl"`
	ImageURL string  `json:"imageUrl"`
}

// updateSettingRequest overwrites a named setting value
type updateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// updateSignerRequest sets a per-signer gas-price override in wei
type updateSignerRequest struct {
	GasPrice string `json:"gasPrice" binding:"required"`
}

// transactionResponse is the submission receipt returned to callers
type transactionResponse struct {
	TxHash string                   `json:"txHash"`
	Nonce  uint64                   `json:"nonce"`
	Signer string                   `json:"signer"`
	Status domain.TransactionStatus `json:"status,omitempty"`
}

func newTransactionResponse(handle *ethereum.TxHandle, status domain.TransactionStatus) transactionResponse {
	return transactionResponse{
		TxHash: handle.Hash,
		Nonce:  handle.Nonce,
		Signer: handle.From,
		Status: status,
	}
}

// listTransactionsResponse is a page of the transaction audit trail
type listTransactionsResponse struct {
	Transactions []schema.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Limit        int                  `json:"limit"`
	Offset       int                  `json:"offset"`
}

// signerResponse is a registered signer with its live load and balance
type signerResponse struct {
	Signer      string            `json:"signer"`
	Role        domain.SignerRole `json:"role"`
	GasPrice    *string           `json:"gasPrice,omitempty"`
	PendingTxs  int64             `json:"pendingTxs"`
	Balance     string            `json:"balance"`
	CreatedDate time.Time         `json:"createdDate"`
}

func newSignerResponses(records []store.SignerRecord) []signerResponse {
	out := make([]signerResponse, len(records))
	for i, r := range records {
		out[i] = signerResponse{
			Signer:      r.Signer,
			Role:        r.Role,
			GasPrice:    r.GasPrice,
			PendingTxs:  r.PendingTxs,
			Balance:     r.Balance,
			CreatedDate: r.CreatedDate,
		}
	}
	return out
}

// ensResolveResponse is the result of a forward or reverse name resolution
type ensResolveResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// tokenMetadataResponse is the ERC-721 style metadata document served for a
// minted token.
type tokenMetadataResponse struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	ExternalURL string              `json:"external_url"`
	HomeURL     string              `json:"home_url"`
	ImageURL    string              `json:"image_url"`
	Year        int                 `json:"year"`
	Tags        []string            `json:"tags"`
	Attributes  []metadataAttribute `json:"attributes"`
}

type metadataAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}
