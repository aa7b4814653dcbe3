package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/attendrop/minter/internal/adapter"
	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/logger"
)

// attendanceTokenABI covers the contract surface the service touches: the
// four write entry points plus the read methods backing the scan and token
// endpoints.
const attendanceTokenABI = `[
	{"inputs":[{"name":"eventId","type":"uint256"},{"name":"to","type":"address"}],"name":"mintToken","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"eventId","type":"uint256"},{"name":"to","type":"address[]"}],"name":"mintEventToManyUsers","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"eventIds","type":"uint256[]"},{"name":"to","type":"address"}],"name":"mintUserToManyEvents","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"burn","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"owner","type":"address"},{"name":"index","type":"uint256"}],"name":"tokenDetailsOfOwnerByIndex","outputs":[{"name":"tokenId","type":"uint256"},{"name":"eventId","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenEvent","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`

const minedPollInterval = 5 * time.Second

type ledger struct {
	chainID  *big.Int
	contract common.Address
	client   adapter.EthClient
	ens      *ensResolver
	wallets  *WalletSet
	clock    adapter.Clock
	abi      abi.ABI
}

// NewLedger creates a Ledger bound to the attendance-token contract.
// ensClient points at mainnet for name resolution; it may be the same client
// when the service already runs against mainnet.
func NewLedger(chainID *big.Int, contractAddress string, client, ensClient adapter.EthClient, wallets *WalletSet, clock adapter.Clock) (Ledger, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, contractAddress)
	}

	contractABI, err := abi.JSON(strings.NewReader(attendanceTokenABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	return &ledger{
		chainID:  chainID,
		contract: common.HexToAddress(contractAddress),
		client:   client,
		ens:      newENSResolver(ensClient),
		wallets:  wallets,
		clock:    clock,
		abi:      contractABI,
	}, nil
}

// MintToken issues a single token of eventID to the recipient
func (l *ledger) MintToken(ctx context.Context, signer string, eventID uint64, to string, params TxParams) (*TxHandle, error) {
	if !common.IsHexAddress(to) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, to)
	}

	data, err := l.abi.Pack("mintToken", new(big.Int).SetUint64(eventID), common.HexToAddress(to))
	if err != nil {
		return nil, fmt.Errorf("failed to pack mintToken call: %w", err)
	}
	return l.sendContractTx(ctx, signer, data, params)
}

// MintEventToManyUsers issues one token of eventID to each recipient
func (l *ledger) MintEventToManyUsers(ctx context.Context, signer string, eventID uint64, recipients []string, params TxParams) (*TxHandle, error) {
	addresses := make([]common.Address, 0, len(recipients))
	for _, recipient := range recipients {
		if !common.IsHexAddress(recipient) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, recipient)
		}
		addresses = append(addresses, common.HexToAddress(recipient))
	}

	data, err := l.abi.Pack("mintEventToManyUsers", new(big.Int).SetUint64(eventID), addresses)
	if err != nil {
		return nil, fmt.Errorf("failed to pack mintEventToManyUsers call: %w", err)
	}
	return l.sendContractTx(ctx, signer, data, params)
}

// MintUserToManyEvents issues one token of each event to the recipient
func (l *ledger) MintUserToManyEvents(ctx context.Context, signer string, eventIDs []uint64, to string, params TxParams) (*TxHandle, error) {
	if !common.IsHexAddress(to) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, to)
	}

	ids := make([]*big.Int, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		ids = append(ids, new(big.Int).SetUint64(eventID))
	}

	data, err := l.abi.Pack("mintUserToManyEvents", ids, common.HexToAddress(to))
	if err != nil {
		return nil, fmt.Errorf("failed to pack mintUserToManyEvents call: %w", err)
	}
	return l.sendContractTx(ctx, signer, data, params)
}

// BurnToken destroys a token
func (l *ledger) BurnToken(ctx context.Context, signer string, tokenID string, params TxParams) (*TxHandle, error) {
	id, ok := new(big.Int).SetString(tokenID, 10)
	if !ok {
		return nil, fmt.Errorf("invalid token id: %s", tokenID)
	}

	data, err := l.abi.Pack("burn", id)
	if err != nil {
		return nil, fmt.Errorf("failed to pack burn call: %w", err)
	}
	return l.sendContractTx(ctx, signer, data, params)
}

// Submit dispatches a decoded operation to the matching contract call
func (l *ledger) Submit(ctx context.Context, signer string, op domain.Operation, params TxParams) (*TxHandle, error) {
	switch op.Type {
	case domain.OperationMintToken:
		return l.MintToken(ctx, signer, op.EventID, op.To, params)
	case domain.OperationMintEventToManyUsers:
		return l.MintEventToManyUsers(ctx, signer, op.EventID, op.Recipients, params)
	case domain.OperationMintUserToManyEvents:
		return l.MintUserToManyEvents(ctx, signer, op.EventIDs, op.To, params)
	case domain.OperationBurnToken:
		return l.BurnToken(ctx, signer, op.TokenID, params)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrOperationNotSupported, op.Type)
	}
}

// sendContractTx signs and broadcasts a contract call from the given signer.
// When params.Nonce is nil the signer's next pending nonce is used; an
// explicit nonce reuses that slot, which is how replacements displace the
// stuck original.
func (l *ledger) sendContractTx(ctx context.Context, signer string, data []byte, params TxParams) (*TxHandle, error) {
	key, err := l.wallets.Key(signer)
	if err != nil {
		return nil, err
	}
	from := common.HexToAddress(signer)

	var nonce uint64
	if params.Nonce != nil {
		nonce = *params.Nonce
	} else {
		nonce, err = l.client.PendingNonceAt(ctx, from)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get pending nonce: %v", domain.ErrLedger, err)
		}
	}

	tx := types.NewTransaction(nonce, l.contract, big.NewInt(0), params.GasLimit, params.GasPrice, data)
	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(l.chainID), key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := l.client.SendTransaction(ctx, signedTx); err != nil {
		return nil, fmt.Errorf("%w: failed to broadcast transaction: %v", domain.ErrLedger, err)
	}

	logger.InfoCtx(ctx, "transaction broadcast",
		zap.String("tx_hash", signedTx.Hash().Hex()),
		zap.String("signer", from.Hex()),
		zap.Uint64("nonce", nonce),
		zap.String("gas_price", params.GasPrice.String()),
	)

	return &TxHandle{
		Hash:  signedTx.Hash().Hex(),
		Nonce: nonce,
		From:  from.Hex(),
	}, nil
}

// BalanceAt returns the current wei balance of an address
func (l *ledger) BalanceAt(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, address)
	}
	balance, err := l.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get balance: %v", domain.ErrLedger, err)
	}
	return balance, nil
}

// ReceiptStatus reports the mined outcome of a transaction
func (l *ledger) ReceiptStatus(ctx context.Context, txHash string) (domain.TransactionStatus, error) {
	receipt, err := l.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return domain.TransactionStatusPending, nil
		}
		return "", fmt.Errorf("%w: failed to get receipt: %v", domain.ErrLedger, err)
	}
	if receipt.Status == types.ReceiptStatusSuccessful {
		return domain.TransactionStatusPassed, nil
	}
	return domain.TransactionStatusFailed, nil
}

// WaitMined blocks until the transaction is mined or ctx is done
func (l *ledger) WaitMined(ctx context.Context, txHash string) (domain.TransactionStatus, error) {
	for {
		status, err := l.ReceiptStatus(ctx, txHash)
		if err != nil {
			return "", err
		}
		if status != domain.TransactionStatusPending {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-l.clock.After(minedPollInterval):
		}
	}
}

// TokensOfOwner returns all attendance tokens held by an address
func (l *ledger) TokensOfOwner(ctx context.Context, owner string) ([]Token, error) {
	if !common.IsHexAddress(owner) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, owner)
	}
	ownerAddr := common.HexToAddress(owner)

	data, err := l.abi.Pack("balanceOf", ownerAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to pack balanceOf call: %w", err)
	}
	result, err := l.callContract(ctx, data)
	if err != nil {
		return nil, err
	}

	var balance *big.Int
	if err := l.abi.UnpackIntoInterface(&balance, "balanceOf", result); err != nil {
		return nil, fmt.Errorf("failed to unpack balanceOf result: %w", err)
	}

	count := balance.Int64()
	tokens := make([]Token, 0, count)
	for i := int64(0); i < count; i++ {
		data, err := l.abi.Pack("tokenDetailsOfOwnerByIndex", ownerAddr, big.NewInt(i))
		if err != nil {
			return nil, fmt.Errorf("failed to pack tokenDetailsOfOwnerByIndex call: %w", err)
		}
		result, err := l.callContract(ctx, data)
		if err != nil {
			return nil, err
		}

		values, err := l.abi.Unpack("tokenDetailsOfOwnerByIndex", result)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack tokenDetailsOfOwnerByIndex result: %w", err)
		}
		tokenID, ok := values[0].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("unexpected tokenId type in tokenDetailsOfOwnerByIndex result")
		}
		eventID, ok := values[1].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("unexpected eventId type in tokenDetailsOfOwnerByIndex result")
		}

		tokens = append(tokens, Token{
			TokenID: tokenID.String(),
			EventID: eventID.Uint64(),
			Owner:   ownerAddr.Hex(),
		})
	}

	return tokens, nil
}

// TokenInfo returns the event and current owner of a token
func (l *ledger) TokenInfo(ctx context.Context, tokenID string) (*Token, error) {
	id, ok := new(big.Int).SetString(tokenID, 10)
	if !ok {
		return nil, fmt.Errorf("invalid token id: %s", tokenID)
	}

	data, err := l.abi.Pack("tokenEvent", id)
	if err != nil {
		return nil, fmt.Errorf("failed to pack tokenEvent call: %w", err)
	}
	result, err := l.callContract(ctx, data)
	if err != nil {
		return nil, err
	}
	var eventID *big.Int
	if err := l.abi.UnpackIntoInterface(&eventID, "tokenEvent", result); err != nil {
		return nil, fmt.Errorf("failed to unpack tokenEvent result: %w", err)
	}

	data, err = l.abi.Pack("ownerOf", id)
	if err != nil {
		return nil, fmt.Errorf("failed to pack ownerOf call: %w", err)
	}
	result, err = l.callContract(ctx, data)
	if err != nil {
		return nil, err
	}
	var owner common.Address
	if err := l.abi.UnpackIntoInterface(&owner, "ownerOf", result); err != nil {
		return nil, fmt.Errorf("failed to unpack ownerOf result: %w", err)
	}

	return &Token{
		TokenID: id.String(),
		EventID: eventID.Uint64(),
		Owner:   owner.Hex(),
	}, nil
}

// ResolveName resolves an ENS name to an address
func (l *ledger) ResolveName(ctx context.Context, name string) (string, error) {
	return l.ens.Resolve(ctx, name)
}

// LookupAddress reverse-resolves an address to its ENS name
func (l *ledger) LookupAddress(ctx context.Context, address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidAddress, address)
	}
	return l.ens.Lookup(ctx, common.HexToAddress(address))
}

// CheckAddress normalizes a recipient address, falling back to ENS resolution
// for non-hex inputs.
func (l *ledger) CheckAddress(ctx context.Context, input string) (string, error) {
	if common.IsHexAddress(input) {
		return common.HexToAddress(input).Hex(), nil
	}
	resolved, err := l.ens.Resolve(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidAddress, input)
	}
	return resolved, nil
}

func (l *ledger) callContract(ctx context.Context, data []byte) ([]byte, error) {
	result, err := l.client.CallContract(ctx, ethereum.CallMsg{
		To:   &l.contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to call contract: %v", domain.ErrLedger, err)
	}
	return result, nil
}

// Close closes the underlying connections
func (l *ledger) Close() {
	l.client.Close()
	if l.ens.client != l.client {
		l.ens.Close()
	}
}
