package usecase

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
)

// ArtifactStore handles persistence of named artifacts, keyed by chain ID and name
type ArtifactStore interface {
	GetArtifact(ctx context.Context, chainID uint64, name string) (*models.Artifact, error)
	// ListArtifacts returns the artifacts of a chain sorted by name
	ListArtifacts(ctx context.Context, chainID uint64) ([]*models.Artifact, error)
	SaveArtifact(ctx context.Context, artifact *models.Artifact) error
	DeleteArtifact(ctx context.Context, chainID uint64, name string) error
}

// ChainClient reads chain state
type ChainClient interface {
	ChainID(ctx context.Context) (uint64, error)
	HasCode(ctx context.Context, address common.Address) (bool, error)
}

// DeployRequest describes a single contract creation
type DeployRequest struct {
	ContractName string
	Args         []any
}

// DeployReceipt is the mined result of a contract creation
type DeployReceipt struct {
	Address         common.Address
	TransactionHash common.Hash
	BlockNumber     uint64
	ABI             json.RawMessage
}

// ContractDeployer submits contract creations and waits for them to be mined
type ContractDeployer interface {
	DeployerAddress(ctx context.Context) (common.Address, error)
	Deploy(ctx context.Context, req DeployRequest) (*DeployReceipt, error)
}

// LiveAddressBook holds the externally managed dependency addresses of live networks
type LiveAddressBook interface {
	Lookup(chainID uint64) (*models.DependencyAddresses, bool)
}

// Confirmer asks the user to approve a risky action
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Message  string
	Spinner  bool
	Metadata any
}

// Progress stages emitted during a run
const (
	StageStepStarting  = "step_starting"
	StageStepCompleted = "step_completed"
	StageStepSkipped   = "step_skipped"
	StageDeploying     = "deploying"
	StageDeployed      = "deployed"
	StageReused        = "reused"
)

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
