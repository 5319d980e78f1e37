package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactNotFoundError(t *testing.T) {
	err := &ArtifactNotFoundError{Name: "LinkTokn", ChainID: 31337, Suggestions: []string{"LinkToken"}}
	assert.Equal(t, `no artifact named "LinkTokn" on chain 31337 (did you mean LinkToken?)`, err.Error())
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), ErrArtifactNotFound))

	bare := &ArtifactNotFoundError{Name: "RandomSVG", ChainID: 4}
	assert.Equal(t, `no artifact named "RandomSVG" on chain 4`, bare.Error())
}

func TestLiveAddressNotFoundError(t *testing.T) {
	err := &LiveAddressNotFoundError{ChainID: 4}
	assert.ErrorIs(t, err, ErrArtifactNotFound)
	assert.Contains(t, err.Error(), "chain 4")
}

func TestDeploymentFailedError(t *testing.T) {
	cause := errors.New("execution reverted")
	err := fmt.Errorf("step failed: %w", &DeploymentFailedError{Name: "RandomSVG", Err: cause})

	assert.ErrorIs(t, err, ErrDeploymentFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrArtifactNotFound)
	assert.Contains(t, err.Error(), "failed to deploy RandomSVG: execution reverted")
}
