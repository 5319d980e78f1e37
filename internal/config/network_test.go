package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
)

func TestResolveNetwork(t *testing.T) {
	foundry := &config.FoundryConfig{
		RpcEndpoints: map[string]string{
			"sepolia":   "https://sepolia.example.org",
			"localhost": "http://127.0.0.1:9545",
		},
	}

	tests := []struct {
		name        string
		network     string
		rpcURL      string
		chainID     uint64
		foundry     *config.FoundryConfig
		wantURL     string
		wantChainID uint64
		wantErr     string
	}{
		{
			name:        "empty name is localhost",
			wantURL:     DefaultLocalRPC,
			wantChainID: domain.LocalChainID,
		},
		{
			name:        "anvil",
			network:     "anvil",
			wantURL:     DefaultLocalRPC,
			wantChainID: domain.LocalChainID,
		},
		{
			name:    "explicit rpc url wins",
			network: "sepolia",
			rpcURL:  "http://10.0.0.1:8545",
			foundry: foundry,
			wantURL: "http://10.0.0.1:8545",
		},
		{
			name:    "foundry endpoint",
			network: "sepolia",
			foundry: foundry,
			wantURL: "https://sepolia.example.org",
		},
		{
			name:    "foundry endpoint overrides local default",
			network: "localhost",
			foundry: foundry,
			wantURL: "http://127.0.0.1:9545",
		},
		{
			name:        "expected chain id is kept",
			network:     "sepolia",
			chainID:     11155111,
			foundry:     foundry,
			wantURL:     "https://sepolia.example.org",
			wantChainID: 11155111,
		},
		{
			name:    "unknown network",
			network: "rinkeby",
			foundry: foundry,
			wantErr: "available: localhost, sepolia",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network, err := ResolveNetwork(tt.network, tt.rpcURL, tt.chainID, tt.foundry)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, network.RPCURL)
			assert.Equal(t, tt.wantChainID, network.ChainID)
		})
	}
}
