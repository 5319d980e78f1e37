package usecase

import (
	"context"

	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
)

// ResolveDependencies picks the token and coordinator addresses for the dependent contract
type ResolveDependencies struct{}

// NewResolveDependencies creates a new ResolveDependencies use case
func NewResolveDependencies() *ResolveDependencies {
	return &ResolveDependencies{}
}

// Run reads the mock artifacts on the local network and the live address book elsewhere
func (uc *ResolveDependencies) Run(ctx context.Context, class domain.NetworkClass, env *Environment) (*models.DependencyAddresses, error) {
	if !class.IsLocal() {
		if env.AddressBook == nil {
			return nil, &domain.LiveAddressNotFoundError{ChainID: env.ChainID}
		}
		addrs, ok := env.AddressBook.Lookup(env.ChainID)
		if !ok {
			return nil, &domain.LiveAddressNotFoundError{ChainID: env.ChainID}
		}
		return addrs, nil
	}

	token, err := env.Deployments.Get(ctx, domain.LinkTokenName)
	if err != nil {
		return nil, err
	}
	coordinator, err := env.Deployments.Get(ctx, domain.VRFCoordinatorMockName)
	if err != nil {
		return nil, err
	}

	return &models.DependencyAddresses{
		Token:       token.Address,
		Coordinator: coordinator.Address,
	}, nil
}
