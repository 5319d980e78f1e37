package models

import "github.com/ethereum/go-ethereum/common"

// DependencyAddresses are the constructor dependencies of the RandomSVG contract
type DependencyAddresses struct {
	Token       common.Address `json:"linkToken"`
	Coordinator common.Address `json:"vrfCoordinator"`
}

// ConstructorArgs returns the addresses in RandomSVG constructor order
func (d DependencyAddresses) ConstructorArgs() []any {
	return []any{d.Token, d.Coordinator}
}
