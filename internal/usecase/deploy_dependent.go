package usecase

import (
	"context"

	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
)

// DeployDependent deploys RandomSVG against resolved dependencies
type DeployDependent struct{}

// NewDeployDependent creates a new DeployDependent use case
func NewDeployDependent() *DeployDependent {
	return &DeployDependent{}
}

// Run deploys RandomSVG(token, coordinator)
func (uc *DeployDependent) Run(ctx context.Context, deps models.DependencyAddresses, env *Environment) (*models.Artifact, error) {
	return env.Deployments.Deploy(ctx, domain.RandomSVGName, DeployOptions{
		Args: deps.ConstructorArgs(),
	})
}
