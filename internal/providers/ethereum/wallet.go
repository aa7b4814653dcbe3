package ethereum

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/attendrop/minter/internal/domain"
)

// WalletSet holds the signing keys the service controls, keyed by lowercase
// address.
type WalletSet struct {
	keys map[string]*ecdsa.PrivateKey
}

// NewWalletSet loads signing keys from hex-encoded private keys. Keys may
// carry a 0x prefix.
func NewWalletSet(hexKeys []string) (*WalletSet, error) {
	ws := &WalletSet{keys: make(map[string]*ecdsa.PrivateKey, len(hexKeys))}
	for _, hexKey := range hexKeys {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse signing key: %w", err)
		}
		address := crypto.PubkeyToAddress(key.PublicKey)
		ws.keys[strings.ToLower(address.Hex())] = key
	}
	return ws, nil
}

// Key returns the private key for an address the set controls
func (w *WalletSet) Key(address string) (*ecdsa.PrivateKey, error) {
	key, ok := w.keys[strings.ToLower(address)]
	if !ok {
		return nil, fmt.Errorf("%w: no key loaded for %s", domain.ErrSignerNotFound, address)
	}
	return key, nil
}

// Has reports whether the set controls a key for the address
func (w *WalletSet) Has(address string) bool {
	_, ok := w.keys[strings.ToLower(address)]
	return ok
}

// Addresses returns the checksummed addresses of all loaded keys
func (w *WalletSet) Addresses() []string {
	addresses := make([]string, 0, len(w.keys))
	for addr := range w.keys {
		addresses = append(addresses, common.HexToAddress(addr).Hex())
	}
	return addresses
}
