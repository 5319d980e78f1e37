package usecase

import (
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
)

// Environment is the execution context handed to every deployment step
type Environment struct {
	ChainID     uint64
	Class       domain.NetworkClass
	Deployer    common.Address
	Deployments *Deployments
	AddressBook LiveAddressBook
	Progress    ProgressSink
	Logger      *slog.Logger
	Result      *RunResult
}

// RunResult contains the outcome of a deployment run
type RunResult struct {
	ChainID       uint64
	Class         domain.NetworkClass
	State         domain.RunState
	Transitions   []domain.RunState
	ExecutedSteps []string
	FailedStep    string

	Mocks        *MockSet
	Dependencies *models.DependencyAddresses
	Dependent    *models.Artifact
}

// NewRunResult creates a result in the start state
func NewRunResult(chainID uint64) *RunResult {
	return &RunResult{
		ChainID:     chainID,
		State:       domain.StateStart,
		Transitions: []domain.RunState{domain.StateStart},
	}
}

// Advance moves the run to state
func (r *RunResult) Advance(state domain.RunState) {
	r.State = state
	r.Transitions = append(r.Transitions, state)
}

// Success reports whether the run reached Done
func (r *RunResult) Success() bool {
	return r.State == domain.StateDone
}
