package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrArtifactNotFound is returned when a named artifact or live address entry doesn't exist
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrDeploymentFailed is returned when the chain rejects or fails a deployment
	ErrDeploymentFailed = errors.New("deployment failed")

	// ErrClassificationAmbiguous is never returned since classification is total
	ErrClassificationAmbiguous = errors.New("network classification ambiguous")

	// ErrChainIDMismatch is returned when the RPC reports a different chain than configured
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrInvalidAddressBook is returned when the live address table fails validation
	ErrInvalidAddressBook = errors.New("invalid live address book")

	// ErrNoStepsSelected is returned when no deployment step matches the requested tags
	ErrNoStepsSelected = errors.New("no deployment steps match tags")
)

// ArtifactNotFoundError carries the missing name and close matches on the same chain
type ArtifactNotFoundError struct {
	Name        string
	ChainID     uint64
	Suggestions []string
}

func (e *ArtifactNotFoundError) Error() string {
	msg := fmt.Sprintf("no artifact named %q on chain %d", e.Name, e.ChainID)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *ArtifactNotFoundError) Unwrap() error {
	return ErrArtifactNotFound
}

// LiveAddressNotFoundError is returned when the live address table has no entry for a chain
type LiveAddressNotFoundError struct {
	ChainID uint64
}

func (e *LiveAddressNotFoundError) Error() string {
	return fmt.Sprintf("no live addresses configured for chain %d", e.ChainID)
}

func (e *LiveAddressNotFoundError) Unwrap() error {
	return ErrArtifactNotFound
}

// DeploymentFailedError wraps the underlying failure of deploying a named artifact
type DeploymentFailedError struct {
	Name string
	Err  error
}

func (e *DeploymentFailedError) Error() string {
	return fmt.Sprintf("failed to deploy %s: %v", e.Name, e.Err)
}

func (e *DeploymentFailedError) Is(target error) bool {
	return target == ErrDeploymentFailed
}

func (e *DeploymentFailedError) Unwrap() error {
	return e.Err
}
