package ethereum

import (
	"context"
	"math/big"

	"github.com/attendrop/minter/internal/domain"
)

// TxParams carries the resolved submission parameters for a ledger write.
// Nonce is optional: nil means "next pending nonce of the signer", a value
// means "reuse this exact slot" (the replacement path).
type TxParams struct {
	GasPrice *big.Int
	GasLimit uint64
	Nonce    *uint64
}

// TxHandle identifies a broadcast transaction
type TxHandle struct {
	Hash  string
	Nonce uint64
	From  string
}

// Token is an attendance token as read back from the contract
type Token struct {
	TokenID string `json:"tokenId"`
	EventID uint64 `json:"eventId"`
	Owner   string `json:"owner"`
}

// Ledger defines the on-chain operations consumed by the minting core
//
//go:generate mockgen -source=ledger.go -destination=../../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// MintToken issues a single token of eventID to the recipient
	MintToken(ctx context.Context, signer string, eventID uint64, to string, params TxParams) (*TxHandle, error)

	// MintEventToManyUsers issues one token of eventID to each recipient
	MintEventToManyUsers(ctx context.Context, signer string, eventID uint64, recipients []string, params TxParams) (*TxHandle, error)

	// MintUserToManyEvents issues one token of each event to the recipient
	MintUserToManyEvents(ctx context.Context, signer string, eventIDs []uint64, to string, params TxParams) (*TxHandle, error)

	// BurnToken destroys a token
	BurnToken(ctx context.Context, signer string, tokenID string, params TxParams) (*TxHandle, error)

	// Submit dispatches a decoded operation to the matching contract call
	Submit(ctx context.Context, signer string, op domain.Operation, params TxParams) (*TxHandle, error)

	// BalanceAt returns the current wei balance of an address
	BalanceAt(ctx context.Context, address string) (*big.Int, error)

	// ReceiptStatus reports the mined outcome of a transaction. A transaction
	// without a receipt yet is still pending.
	ReceiptStatus(ctx context.Context, txHash string) (domain.TransactionStatus, error)

	// WaitMined blocks until the transaction is mined or ctx is done
	WaitMined(ctx context.Context, txHash string) (domain.TransactionStatus, error)

	// TokensOfOwner returns all attendance tokens held by an address
	TokensOfOwner(ctx context.Context, owner string) ([]Token, error)

	// TokenInfo returns the event and current owner of a token
	TokenInfo(ctx context.Context, tokenID string) (*Token, error)

	// ResolveName resolves an ENS name to an address
	ResolveName(ctx context.Context, name string) (string, error)

	// LookupAddress reverse-resolves an address to its ENS name
	LookupAddress(ctx context.Context, address string) (string, error)

	// CheckAddress normalizes a recipient: a hex address is validated, any
	// other input is treated as an ENS name and resolved.
	CheckAddress(ctx context.Context, input string) (string, error)

	// Close closes the underlying connections
	Close()
}
