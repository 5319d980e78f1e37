package interactive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
)

func TestConfirmerAdapter_NonInteractive(t *testing.T) {
	c := NewConfirmerAdapter(&config.RuntimeConfig{NonInteractive: true})

	ok, err := c.Confirm(context.Background(), "Force redeploy on live chain 1")
	require.NoError(t, err)
	assert.True(t, ok)
}
