package app

import (
	"github.com/trebuchet-org/rsvg-deploy/internal/adapters/blockchain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	RunDeployment  *usecase.RunDeployment
	ListArtifacts  *usecase.ListArtifacts
	ShowArtifact   *usecase.ShowArtifact
	ResetArtifacts *usecase.ResetArtifacts

	// Adapters (needed for cleanup)
	Chain *blockchain.Client
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	runDeployment *usecase.RunDeployment,
	listArtifacts *usecase.ListArtifacts,
	showArtifact *usecase.ShowArtifact,
	resetArtifacts *usecase.ResetArtifacts,
	chain *blockchain.Client,
) (*App, error) {
	return &App{
		Config:         cfg,
		RunDeployment:  runDeployment,
		ListArtifacts:  listArtifacts,
		ShowArtifact:   showArtifact,
		ResetArtifacts: resetArtifacts,
		Chain:          chain,
	}, nil
}

// Close releases the RPC connection
func (a *App) Close() {
	if a.Chain != nil {
		a.Chain.Close()
	}
}
