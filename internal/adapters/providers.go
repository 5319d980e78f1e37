package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/rsvg-deploy/internal/adapters/blockchain"
	"github.com/trebuchet-org/rsvg-deploy/internal/adapters/forge"
	"github.com/trebuchet-org/rsvg-deploy/internal/adapters/interactive"
	"github.com/trebuchet-org/rsvg-deploy/internal/adapters/liveaddr"
	"github.com/trebuchet-org/rsvg-deploy/internal/adapters/repository/artifacts"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	artifacts.NewFileRepository,
	wire.Bind(new(usecase.ArtifactStore), new(*artifacts.FileRepository)),

	liveaddr.NewBook,
	wire.Bind(new(usecase.LiveAddressBook), new(*liveaddr.Book)),
)

// BlockchainSet provides go-ethereum based implementations
var BlockchainSet = wire.NewSet(
	forge.NewContractLoader,
	blockchain.NewClient,
	wire.Bind(new(usecase.ChainClient), new(*blockchain.Client)),
	wire.Bind(new(usecase.ContractDeployer), new(*blockchain.Client)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	BlockchainSet,
	InteractiveSet,
)
