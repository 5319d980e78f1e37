package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
)

const (
	// DefaultNetwork is a local anvil or hardhat node
	DefaultNetwork = "localhost"
	// DefaultLocalRPC is the RPC URL anvil listens on by default
	DefaultLocalRPC = "http://127.0.0.1:8545"
)

// ResolveNetwork builds the network configuration from a network name, an optional RPC URL
// override and an optional expected chain ID
func ResolveNetwork(name, rpcURL string, chainID uint64, foundry *config.FoundryConfig) (*config.Network, error) {
	if name == "" {
		name = DefaultNetwork
	}

	network := &config.Network{
		Name:    name,
		RPCURL:  rpcURL,
		ChainID: chainID,
	}
	if network.RPCURL != "" {
		return network, nil
	}

	if foundry != nil {
		if url, ok := foundry.RpcEndpoints[name]; ok && url != "" {
			network.RPCURL = url
			return network, nil
		}
	}

	switch name {
	case DefaultNetwork, "anvil", "hardhat":
		network.RPCURL = DefaultLocalRPC
		if network.ChainID == 0 {
			network.ChainID = domain.LocalChainID
		}
		return network, nil
	}

	return nil, fmt.Errorf("network '%s' not found in foundry.toml [rpc_endpoints] (available: %s)",
		name, strings.Join(knownNetworks(foundry), ", "))
}

func knownNetworks(foundry *config.FoundryConfig) []string {
	names := []string{DefaultNetwork}
	if foundry != nil {
		for name := range foundry.RpcEndpoints {
			if name != DefaultNetwork {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names[1:])
	return names
}
