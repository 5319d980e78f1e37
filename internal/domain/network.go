package domain

// LocalChainID is the chain ID anvil and hardhat use for their in-process dev networks
const LocalChainID uint64 = 31337

// NetworkClass tells whether a chain runs mocks or real infrastructure
type NetworkClass string

const (
	NetworkLocal NetworkClass = "local"
	NetworkLive  NetworkClass = "live"
)

// ClassifyNetwork returns NetworkLocal for the dev chain ID and NetworkLive for anything else
func ClassifyNetwork(chainID uint64) NetworkClass {
	if chainID == LocalChainID {
		return NetworkLocal
	}
	return NetworkLive
}

// IsLocal reports whether the class is the local dev network
func (c NetworkClass) IsLocal() bool {
	return c == NetworkLocal
}

func (c NetworkClass) String() string {
	return string(c)
}
