package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/rsvg-deploy/internal/adapters/forge"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

// AnvilDevKey is the first of anvil's well-known dev accounts, only used on the local chain
const AnvilDevKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// Backend is the part of ethclient.Client the adapter uses
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client implements ChainClient and ContractDeployer on top of ethclient
type Client struct {
	rpcURL     string
	privateKey string
	loader     *forge.ContractLoader
	log        *slog.Logger

	mu      sync.Mutex
	backend Backend
	closeFn func()
	chainID *big.Int
	key     *ecdsa.PrivateKey
}

// NewClient creates a new client for the configured network. The connection is opened lazily.
func NewClient(cfg *config.RuntimeConfig, loader *forge.ContractLoader, log *slog.Logger) (*Client, error) {
	if cfg.Network == nil || cfg.Network.RPCURL == "" {
		return nil, fmt.Errorf("no RPC URL configured for network")
	}
	return &Client{
		rpcURL:     cfg.Network.RPCURL,
		privateKey: cfg.PrivateKey,
		loader:     loader,
		log:        log,
	}, nil
}

// NewClientWithBackend creates a client on an already connected backend
func NewClientWithBackend(backend Backend, privateKey string, loader *forge.ContractLoader, log *slog.Logger) *Client {
	return &Client{
		privateKey: privateKey,
		loader:     loader,
		log:        log,
		backend:    backend,
	}
}

// connect dials the RPC once and caches the chain ID
func (c *Client) connect(ctx context.Context) (Backend, *big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.backend != nil && c.chainID != nil {
		return c.backend, c.chainID, nil
	}

	if c.backend == nil {
		client, err := ethclient.DialContext(ctx, c.rpcURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to RPC: %w", err)
		}
		c.backend = client
		c.closeFn = client.Close
	}

	chainID, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	c.chainID = chainID
	c.log.Debug("connected to RPC", "url", c.rpcURL, "chainId", chainID.Uint64())

	return c.backend, c.chainID, nil
}

// ChainID returns the chain ID reported by the RPC
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	_, chainID, err := c.connect(ctx)
	if err != nil {
		return 0, err
	}
	return chainID.Uint64(), nil
}

// HasCode reports whether a contract exists at address
func (c *Client) HasCode(ctx context.Context, address common.Address) (bool, error) {
	client, _, err := c.connect(ctx)
	if err != nil {
		return false, err
	}

	code, err := client.CodeAt(ctx, address, nil)
	if err != nil {
		return false, fmt.Errorf("failed to check code: %w", err)
	}
	return len(code) > 0, nil
}

// DeployerAddress returns the account deployments are sent from
func (c *Client) DeployerAddress(ctx context.Context) (common.Address, error) {
	key, err := c.signer(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// signer parses the configured key, falling back to the anvil dev key on the local chain
func (c *Client) signer(ctx context.Context) (*ecdsa.PrivateKey, error) {
	_, chainID, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.key != nil {
		return c.key, nil
	}

	hexKey := c.privateKey
	if hexKey == "" {
		if !domain.ClassifyNetwork(chainID.Uint64()).IsLocal() {
			return nil, fmt.Errorf("no private key configured for chain %d (set RSVG_PRIVATE_KEY)", chainID.Uint64())
		}
		hexKey = AnvilDevKey
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	c.key = key
	return key, nil
}

// Deploy sends the creation transaction and blocks until it is mined
func (c *Client) Deploy(ctx context.Context, req usecase.DeployRequest) (*usecase.DeployReceipt, error) {
	compiled, err := c.loader.Load(req.ContractName)
	if err != nil {
		return nil, err
	}

	client, chainID, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	key, err := c.signer(ctx)
	if err != nil {
		return nil, err
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx

	address, tx, _, err := bind.DeployContract(auth, compiled.ABI, compiled.Bytecode, client, req.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to send deployment: %w", err)
	}

	c.log.Debug("contract deployment transaction sent",
		"contract", req.ContractName,
		"address", address.Hex(),
		"tx", tx.Hash().Hex(),
	)

	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("deployment transaction %s reverted", tx.Hash().Hex())
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return &usecase.DeployReceipt{
		Address:         address,
		TransactionHash: tx.Hash(),
		BlockNumber:     blockNumber,
		ABI:             compiled.RawABI,
	}, nil
}

// Close releases the RPC connection if the client dialled it
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closeFn != nil {
		c.closeFn()
		c.closeFn = nil
		c.backend = nil
		c.chainID = nil
	}
}

// Ensure the client implements the interfaces
var (
	_ usecase.ChainClient      = (*Client)(nil)
	_ usecase.ContractDeployer = (*Client)(nil)
)
