package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
)

// DeployOptions configures a named deployment
type DeployOptions struct {
	// ContractName is the compiled contract, defaults to the artifact name
	ContractName string
	Args         []any
}

// Deployments provides idempotent deploy and get primitives over the artifacts of one chain.
// An existing artifact is reused unless force is set, its constructor args changed, or the
// chain no longer has code at its address.
type Deployments struct {
	chainID  uint64
	from     common.Address
	force    bool
	store    ArtifactStore
	deployer ContractDeployer
	chain    ChainClient
	progress ProgressSink
	log      *slog.Logger
}

// NewDeployments creates the deploy/get primitives for a chain
func NewDeployments(
	chainID uint64,
	from common.Address,
	force bool,
	store ArtifactStore,
	deployer ContractDeployer,
	chain ChainClient,
	progress ProgressSink,
	log *slog.Logger,
) *Deployments {
	if progress == nil {
		progress = NopProgress{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Deployments{
		chainID:  chainID,
		from:     from,
		force:    force,
		store:    store,
		deployer: deployer,
		chain:    chain,
		progress: progress,
		log:      log,
	}
}

// Get returns the artifact recorded under name on this chain
func (d *Deployments) Get(ctx context.Context, name string) (*models.Artifact, error) {
	return d.store.GetArtifact(ctx, d.chainID, name)
}

// Deploy deploys the contract under name, or returns the reusable existing artifact
func (d *Deployments) Deploy(ctx context.Context, name string, opts DeployOptions) (*models.Artifact, error) {
	contractName := opts.ContractName
	if contractName == "" {
		contractName = name
	}
	args := FormatArgs(opts.Args)

	existing, err := d.store.GetArtifact(ctx, d.chainID, name)
	if err != nil && !errors.Is(err, domain.ErrArtifactNotFound) {
		return nil, fmt.Errorf("failed to read artifact %s: %w", name, err)
	}

	if existing != nil {
		reason, err := d.staleReason(ctx, existing, args)
		if err != nil {
			return nil, err
		}
		if reason == "" && !d.force {
			d.log.Debug("reusing artifact", "name", name, "address", existing.Address.Hex())
			d.progress.OnProgress(ctx, ProgressEvent{
				Stage:    StageReused,
				Message:  fmt.Sprintf("reusing %s at %s", name, existing.Address.Hex()),
				Metadata: existing,
			})
			existing.Reused = true
			return existing, nil
		}
		if reason == "" {
			reason = "forced"
		}
		d.log.Info("redeploying artifact", "name", name, "previous", existing.Address.Hex(), "reason", reason)
	}

	d.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageDeploying,
		Message: fmt.Sprintf("deploying %s", name),
		Spinner: true,
	})

	receipt, err := d.deployer.Deploy(ctx, DeployRequest{
		ContractName: contractName,
		Args:         opts.Args,
	})
	if err != nil {
		return nil, &domain.DeploymentFailedError{Name: name, Err: err}
	}

	artifact := &models.Artifact{
		Name:            name,
		ChainID:         d.chainID,
		ContractName:    contractName,
		Address:         receipt.Address,
		TransactionHash: receipt.TransactionHash,
		BlockNumber:     receipt.BlockNumber,
		Deployer:        d.from,
		Args:            args,
		ABI:             receipt.ABI,
		DeployedAt:      time.Now().UTC(),
	}

	if err := d.store.SaveArtifact(ctx, artifact); err != nil {
		return nil, fmt.Errorf("failed to save artifact %s: %w", name, err)
	}

	d.log.Info("deployed", "name", name, "address", artifact.Address.Hex(), "tx", artifact.TransactionHash.Hex())
	d.progress.OnProgress(ctx, ProgressEvent{
		Stage:    StageDeployed,
		Message:  fmt.Sprintf("deployed %s at %s", name, artifact.Address.Hex()),
		Metadata: artifact,
	})

	return artifact, nil
}

// staleReason explains why an existing artifact can't be reused, or returns ""
func (d *Deployments) staleReason(ctx context.Context, existing *models.Artifact, args []string) (string, error) {
	if !existing.ArgsEqual(args) {
		return "constructor arguments changed", nil
	}
	if d.chain == nil {
		return "", nil
	}
	hasCode, err := d.chain.HasCode(ctx, existing.Address)
	if err != nil {
		return "", fmt.Errorf("failed to check code of %s: %w", existing.Name, err)
	}
	if !hasCode {
		return "no code at address", nil
	}
	return "", nil
}

// FormatArgs renders constructor args the way they are recorded in artifacts
func FormatArgs(args []any) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case common.Address:
			out = append(out, v.Hex())
		case fmt.Stringer:
			out = append(out, v.String())
		default:
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}
