package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
)

// MockSet holds the artifacts of the local stand-ins for LINK and the VRF coordinator
type MockSet struct {
	Token       *models.Artifact
	Coordinator *models.Artifact
}

// ProvisionMocks deploys LinkToken and VRFCoordinatorMock on the local network
type ProvisionMocks struct{}

// NewProvisionMocks creates a new ProvisionMocks use case
func NewProvisionMocks() *ProvisionMocks {
	return &ProvisionMocks{}
}

// Run deploys the token first and feeds its address to the coordinator mock.
// Artifacts already on the chain are reused, so a run interrupted between the two
// deployments only deploys the coordinator on the next attempt.
func (uc *ProvisionMocks) Run(ctx context.Context, env *Environment) (*MockSet, error) {
	if !env.Class.IsLocal() {
		return nil, fmt.Errorf("mocks can only be provisioned on the local network, chain %d is %s", env.ChainID, env.Class)
	}

	env.Progress.Info("Deploying mocks to local network...")

	token, err := env.Deployments.Deploy(ctx, domain.LinkTokenName, DeployOptions{})
	if err != nil {
		return nil, err
	}

	coordinator, err := env.Deployments.Deploy(ctx, domain.VRFCoordinatorMockName, DeployOptions{
		Args: []any{token.Address},
	})
	if err != nil {
		return nil, err
	}

	env.Progress.Info("... mocks deployed")

	return &MockSet{
		Token:       token,
		Coordinator: coordinator,
	}, nil
}
