package ethereum

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/attendrop/minter/internal/adapter"
)

// ensRegistryAddress is the canonical ENS registry on mainnet
const ensRegistryAddress = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"

const ensRegistryABI = `[
	{"inputs":[{"name":"node","type":"bytes32"}],"name":"resolver","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`

const ensResolverABI = `[
	{"inputs":[{"name":"node","type":"bytes32"}],"name":"addr","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"node","type":"bytes32"}],"name":"name","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}
]`

// ensResolver resolves ENS names against the mainnet registry
type ensResolver struct {
	client      adapter.EthClient
	registry    common.Address
	registryABI abi.ABI
	resolverABI abi.ABI
}

func newENSResolver(client adapter.EthClient) *ensResolver {
	// The ABI literals are constants; a parse failure is a programming error.
	registryABI, err := abi.JSON(strings.NewReader(ensRegistryABI))
	if err != nil {
		panic(fmt.Sprintf("invalid ENS registry ABI: %v", err))
	}
	resolverABI, err := abi.JSON(strings.NewReader(ensResolverABI))
	if err != nil {
		panic(fmt.Sprintf("invalid ENS resolver ABI: %v", err))
	}

	return &ensResolver{
		client:      client,
		registry:    common.HexToAddress(ensRegistryAddress),
		registryABI: registryABI,
		resolverABI: resolverABI,
	}
}

// namehash implements the EIP-137 recursive name hash
func namehash(name string) common.Hash {
	node := common.Hash{}
	if name == "" {
		return node
	}
	labels := strings.Split(strings.ToLower(name), ".")
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := crypto.Keccak256([]byte(labels[i]))
		node = crypto.Keccak256Hash(node.Bytes(), labelHash)
	}
	return node
}

// Resolve resolves an ENS name to its registered address
func (e *ensResolver) Resolve(ctx context.Context, name string) (string, error) {
	node := namehash(name)

	resolverAddr, err := e.resolverFor(ctx, node)
	if err != nil {
		return "", err
	}

	data, err := e.resolverABI.Pack("addr", node)
	if err != nil {
		return "", fmt.Errorf("failed to pack addr call: %w", err)
	}
	result, err := e.client.CallContract(ctx, ethereum.CallMsg{To: &resolverAddr, Data: data}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to call resolver: %w", err)
	}

	var resolved common.Address
	if err := e.resolverABI.UnpackIntoInterface(&resolved, "addr", result); err != nil {
		return "", fmt.Errorf("failed to unpack addr result: %w", err)
	}
	if resolved == (common.Address{}) {
		return "", fmt.Errorf("name has no address record: %s", name)
	}
	return resolved.Hex(), nil
}

// Lookup reverse-resolves an address via its <addr>.addr.reverse node
func (e *ensResolver) Lookup(ctx context.Context, address common.Address) (string, error) {
	reverseName := strings.ToLower(strings.TrimPrefix(address.Hex(), "0x")) + ".addr.reverse"
	node := namehash(reverseName)

	resolverAddr, err := e.resolverFor(ctx, node)
	if err != nil {
		return "", err
	}

	data, err := e.resolverABI.Pack("name", node)
	if err != nil {
		return "", fmt.Errorf("failed to pack name call: %w", err)
	}
	result, err := e.client.CallContract(ctx, ethereum.CallMsg{To: &resolverAddr, Data: data}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to call resolver: %w", err)
	}

	var name string
	if err := e.resolverABI.UnpackIntoInterface(&name, "name", result); err != nil {
		return "", fmt.Errorf("failed to unpack name result: %w", err)
	}
	if name == "" {
		return "", fmt.Errorf("address has no reverse record: %s", address.Hex())
	}
	return name, nil
}

func (e *ensResolver) resolverFor(ctx context.Context, node common.Hash) (common.Address, error) {
	data, err := e.registryABI.Pack("resolver", node)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to pack resolver call: %w", err)
	}
	result, err := e.client.CallContract(ctx, ethereum.CallMsg{To: &e.registry, Data: data}, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to call registry: %w", err)
	}

	var resolverAddr common.Address
	if err := e.registryABI.UnpackIntoInterface(&resolverAddr, "resolver", result); err != nil {
		return common.Address{}, fmt.Errorf("failed to unpack resolver result: %w", err)
	}
	if resolverAddr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("no resolver configured for node %s", node.Hex())
	}
	return resolverAddr, nil
}

// Close releases the resolver's connection
func (e *ensResolver) Close() {
	e.client.Close()
}
