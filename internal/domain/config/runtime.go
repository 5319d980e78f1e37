package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot    string
	DeploymentsDir string // Named artifacts, one directory per chain ID
	OutDir         string // Foundry build output with contract ABIs and bytecode

	// Context settings
	Network         *Network
	PrivateKey      string // Deployer key, empty falls back to the anvil dev key on the local chain
	AddressBookPath string // Live network address table

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Resolved configurations
	FoundryConfig *FoundryConfig
}

// Network represents network configuration
type Network struct {
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
	ChainID uint64 `json:"chainId"` // Expected chain ID, 0 when it should be read from the RPC
}

// FoundryConfig is the subset of foundry.toml this tool reads
type FoundryConfig struct {
	Profile      map[string]ProfileConfig `toml:"profile"`
	RpcEndpoints map[string]string        `toml:"rpc_endpoints"`
}

// ProfileConfig represents a foundry profile
type ProfileConfig struct {
	SrcPath string `toml:"src,omitempty"`
	OutPath string `toml:"out,omitempty"`
}
