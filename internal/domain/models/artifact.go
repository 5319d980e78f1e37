package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Artifact is the persisted record of a named contract deployment on one chain
type Artifact struct {
	// Core identification
	Name         string `json:"name"`         // e.g., "LinkToken"
	ChainID      uint64 `json:"chainId"`      // e.g., 31337
	ContractName string `json:"contractName"` // compiled contract, usually equal to Name

	// Deployment result
	Address         common.Address  `json:"address"`
	TransactionHash common.Hash     `json:"transactionHash"`
	BlockNumber     uint64          `json:"blockNumber,omitempty"`
	Deployer        common.Address  `json:"deployer"`
	Args            []string        `json:"args"` // Constructor arguments, stringified
	ABI             json.RawMessage `json:"abi,omitempty"`

	DeployedAt time.Time `json:"deployedAt"`

	// Runtime fields (not persisted)
	Reused bool `json:"-"` // Returned from the store instead of being deployed in this run
}

// ArgsEqual reports whether the recorded constructor args match args
func (a *Artifact) ArgsEqual(args []string) bool {
	if len(a.Args) != len(args) {
		return false
	}
	for i := range args {
		if !strings.EqualFold(a.Args[i], args[i]) {
			return false
		}
	}
	return true
}
