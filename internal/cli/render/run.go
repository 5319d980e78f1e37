package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

// RunRenderer renders the outcome of a deployment run
type RunRenderer struct {
	out  io.Writer
	json bool
}

// NewRunRenderer creates a new run renderer
func NewRunRenderer(out io.Writer, jsonOutput bool) *RunRenderer {
	return &RunRenderer{out: out, json: jsonOutput}
}

type runJSON struct {
	ChainID       uint64                      `json:"chainId"`
	Network       domain.NetworkClass         `json:"network"`
	State         domain.RunState             `json:"state"`
	Transitions   []domain.RunState           `json:"transitions"`
	ExecutedSteps []string                    `json:"executedSteps"`
	FailedStep    string                      `json:"failedStep,omitempty"`
	Artifacts     []*models.Artifact          `json:"artifacts"`
	Dependencies  *models.DependencyAddresses `json:"dependencies,omitempty"`
}

// Render writes the run summary
func (r *RunRenderer) Render(result *usecase.RunResult) error {
	if result == nil {
		return nil
	}

	artifacts := runArtifacts(result)

	if r.json {
		return writeJSON(r.out, runJSON{
			ChainID:       result.ChainID,
			Network:       result.Class,
			State:         result.State,
			Transitions:   result.Transitions,
			ExecutedSteps: result.ExecutedSteps,
			FailedStep:    result.FailedStep,
			Artifacts:     artifacts,
			Dependencies:  result.Dependencies,
		})
	}

	fmt.Fprintln(r.out)
	headerColor.Fprintln(r.out, "Deployment Summary")
	fmt.Fprintf(r.out, "  Network: %s\n", networkLabel(result.Class, result.ChainID))
	fmt.Fprintf(r.out, "  State:   %s\n", stateLabel(result.State))
	if len(result.ExecutedSteps) > 0 {
		fmt.Fprintf(r.out, "  Steps:   %s\n", strings.Join(result.ExecutedSteps, ", "))
	}
	if result.FailedStep != "" {
		fmt.Fprintf(r.out, "  Failed:  %s\n", result.FailedStep)
	}

	if result.Dependencies != nil {
		fmt.Fprintln(r.out)
		headerColor.Fprintln(r.out, "Dependencies")
		fmt.Fprintf(r.out, "  %s %s\n", labelColor.Sprint("LINK token:     "), formatAddress(result.Dependencies.Token))
		fmt.Fprintf(r.out, "  %s %s\n", labelColor.Sprint("VRF coordinator:"), formatAddress(result.Dependencies.Coordinator))
	}

	if len(artifacts) > 0 {
		fmt.Fprintln(r.out)
		headerColor.Fprintln(r.out, "Artifacts")
		for _, artifact := range artifacts {
			status := "deployed"
			if artifact.Reused {
				status = "reused"
			}
			fmt.Fprintf(r.out, "  %-20s %s  %s\n", nameColor.Sprint(artifact.Name), artifact.Address.Hex(), labelColor.Sprint(status))
		}
	}

	return nil
}

// runArtifacts lists the artifacts touched by the run in deployment order
func runArtifacts(result *usecase.RunResult) []*models.Artifact {
	var artifacts []*models.Artifact
	if result.Mocks != nil {
		if result.Mocks.Token != nil {
			artifacts = append(artifacts, result.Mocks.Token)
		}
		if result.Mocks.Coordinator != nil {
			artifacts = append(artifacts, result.Mocks.Coordinator)
		}
	}
	if result.Dependent != nil {
		artifacts = append(artifacts, result.Dependent)
	}
	return artifacts
}

var _ Renderer[*usecase.RunResult] = (*RunRenderer)(nil)
