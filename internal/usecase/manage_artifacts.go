package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
)

// ArtifactListResult contains the artifacts of one chain
type ArtifactListResult struct {
	ChainID   uint64
	Class     domain.NetworkClass
	Artifacts []*models.Artifact
}

// ListArtifacts lists the named artifacts of the configured chain
type ListArtifacts struct {
	config *config.RuntimeConfig
	store  ArtifactStore
	chain  ChainClient
}

// NewListArtifacts creates a new ListArtifacts use case
func NewListArtifacts(cfg *config.RuntimeConfig, store ArtifactStore, chain ChainClient) *ListArtifacts {
	return &ListArtifacts{config: cfg, store: store, chain: chain}
}

// Run returns the artifacts in store order, which is by name
func (uc *ListArtifacts) Run(ctx context.Context) (*ArtifactListResult, error) {
	chainID, err := resolveChainID(ctx, uc.config, uc.chain)
	if err != nil {
		return nil, err
	}

	artifacts, err := uc.store.ListArtifacts(ctx, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}

	return &ArtifactListResult{
		ChainID:   chainID,
		Class:     domain.ClassifyNetwork(chainID),
		Artifacts: artifacts,
	}, nil
}

// ShowArtifact returns a single named artifact of the configured chain
type ShowArtifact struct {
	config *config.RuntimeConfig
	store  ArtifactStore
	chain  ChainClient
}

// NewShowArtifact creates a new ShowArtifact use case
func NewShowArtifact(cfg *config.RuntimeConfig, store ArtifactStore, chain ChainClient) *ShowArtifact {
	return &ShowArtifact{config: cfg, store: store, chain: chain}
}

// Run looks the artifact up by name
func (uc *ShowArtifact) Run(ctx context.Context, name string) (*models.Artifact, error) {
	chainID, err := resolveChainID(ctx, uc.config, uc.chain)
	if err != nil {
		return nil, err
	}
	return uc.store.GetArtifact(ctx, chainID, name)
}

// ResetArtifactsParams contains parameters for resetting artifacts
type ResetArtifactsParams struct {
	Force bool // Required for live chains
}

// ResetArtifactsResult contains the removed artifacts
type ResetArtifactsResult struct {
	ChainID uint64
	Removed []*models.Artifact
}

// ResetArtifacts deletes every artifact of the configured chain
type ResetArtifacts struct {
	config *config.RuntimeConfig
	store  ArtifactStore
	chain  ChainClient
}

// NewResetArtifacts creates a new ResetArtifacts use case
func NewResetArtifacts(cfg *config.RuntimeConfig, store ArtifactStore, chain ChainClient) *ResetArtifacts {
	return &ResetArtifacts{config: cfg, store: store, chain: chain}
}

// Run removes the artifacts. Live chains require Force since their artifacts can't be recreated for free.
func (uc *ResetArtifacts) Run(ctx context.Context, params ResetArtifactsParams) (*ResetArtifactsResult, error) {
	chainID, err := resolveChainID(ctx, uc.config, uc.chain)
	if err != nil {
		return nil, err
	}
	if !domain.ClassifyNetwork(chainID).IsLocal() && !params.Force {
		return nil, fmt.Errorf("refusing to reset artifacts of live chain %d without --force", chainID)
	}

	artifacts, err := uc.store.ListArtifacts(ctx, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}

	result := &ResetArtifactsResult{ChainID: chainID}
	for _, artifact := range artifacts {
		if err := uc.store.DeleteArtifact(ctx, chainID, artifact.Name); err != nil {
			return result, fmt.Errorf("failed to delete artifact %s: %w", artifact.Name, err)
		}
		result.Removed = append(result.Removed, artifact)
	}
	return result, nil
}
