package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
)

// RunDeploymentParams contains parameters for a deployment run
type RunDeploymentParams struct {
	Tags  []string
	Force bool // Redeploy even when a reusable artifact exists
}

// RunDeployment classifies the target chain and executes the selected steps in order
type RunDeployment struct {
	config    *config.RuntimeConfig
	steps     Steps
	store     ArtifactStore
	deployer  ContractDeployer
	chain     ChainClient
	book      LiveAddressBook
	confirmer Confirmer
	progress  ProgressSink
	log       *slog.Logger
}

// NewRunDeployment creates a new RunDeployment use case
func NewRunDeployment(
	cfg *config.RuntimeConfig,
	steps Steps,
	store ArtifactStore,
	deployer ContractDeployer,
	chain ChainClient,
	book LiveAddressBook,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *RunDeployment {
	return &RunDeployment{
		config:    cfg,
		steps:     steps,
		store:     store,
		deployer:  deployer,
		chain:     chain,
		book:      book,
		confirmer: confirmer,
		progress:  progress,
		log:       log,
	}
}

// Run executes the deployment. Nothing is retried; the first failing step halts the run
// in the failed state and its error is returned alongside the partial result.
func (uc *RunDeployment) Run(ctx context.Context, params RunDeploymentParams) (*RunResult, error) {
	selected, err := uc.steps.Select(params.Tags)
	if err != nil {
		return nil, err
	}

	chainID, err := resolveChainID(ctx, uc.config, uc.chain)
	if err != nil {
		return nil, err
	}

	result := NewRunResult(chainID)
	result.Class = domain.ClassifyNetwork(chainID)
	result.Advance(domain.StateClassified)
	uc.log.Debug("network classified", "chainId", chainID, "class", result.Class)

	if params.Force && !result.Class.IsLocal() && uc.confirmer != nil {
		ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Force redeploy on live chain %d", chainID))
		if err != nil {
			result.Advance(domain.StateFailed)
			return result, fmt.Errorf("failed to confirm forced deployment: %w", err)
		}
		if !ok {
			result.Advance(domain.StateFailed)
			return result, fmt.Errorf("forced deployment on chain %d cancelled", chainID)
		}
	}

	from, err := uc.deployer.DeployerAddress(ctx)
	if err != nil {
		result.Advance(domain.StateFailed)
		return result, fmt.Errorf("failed to resolve deployer account: %w", err)
	}

	env := &Environment{
		ChainID:     chainID,
		Class:       result.Class,
		Deployer:    from,
		Deployments: NewDeployments(chainID, from, params.Force, uc.store, uc.deployer, uc.chain, uc.progress, uc.log),
		AddressBook: uc.book,
		Progress:    uc.progress,
		Logger:      uc.log,
		Result:      result,
	}

	for i, step := range selected {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageStepStarting,
			Message: step.Name,
			Metadata: map[string]any{
				"name":    step.Name,
				"current": i + 1,
				"total":   len(selected),
			},
		})

		if err := step.Run(ctx, env); err != nil {
			result.FailedStep = step.Name
			result.Advance(domain.StateFailed)
			uc.progress.Error(fmt.Sprintf("%s failed: %v", step.Name, err))
			return result, fmt.Errorf("step %s failed: %w", step.Name, err)
		}

		result.ExecutedSteps = append(result.ExecutedSteps, step.Name)
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageStepCompleted,
			Message: step.Name,
		})
	}

	result.Advance(domain.StateDone)
	return result, nil
}

// resolveChainID reads the chain ID from the RPC and checks it against the configured one
func resolveChainID(ctx context.Context, cfg *config.RuntimeConfig, chain ChainClient) (uint64, error) {
	chainID, err := chain.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch chain ID: %w", err)
	}
	if cfg != nil && cfg.Network != nil && cfg.Network.ChainID != 0 && cfg.Network.ChainID != chainID {
		return 0, fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, cfg.Network.ChainID, chainID)
	}
	return chainID, nil
}
