//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/rsvg-deploy/internal/adapters"
	"github.com/trebuchet-org/rsvg-deploy/internal/config"
	"github.com/trebuchet-org/rsvg-deploy/internal/logging"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Deployment steps
		usecase.NewProvisionMocks,
		usecase.NewResolveDependencies,
		usecase.NewDeployDependent,
		usecase.NewDefaultSteps,

		// Use cases
		usecase.NewRunDeployment,
		usecase.NewListArtifacts,
		usecase.NewShowArtifact,
		usecase.NewResetArtifacts,

		// App
		NewApp,
	)
	return nil, nil
}
