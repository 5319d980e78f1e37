package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

// ConfirmerAdapter asks for yes/no confirmation on the terminal
type ConfirmerAdapter struct {
	config *config.RuntimeConfig
}

// NewConfirmerAdapter creates a new confirmer adapter
func NewConfirmerAdapter(cfg *config.RuntimeConfig) *ConfirmerAdapter {
	return &ConfirmerAdapter{config: cfg}
}

// Confirm returns true when the user accepts. Non-interactive mode accepts without asking.
func (c *ConfirmerAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.config.NonInteractive {
		return true, nil
	}

	confirm := promptui.Prompt{
		Label:     color.New(color.FgYellow, color.Bold).Sprint(prompt),
		IsConfirm: true,
	}

	_, err := confirm.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return true, nil
}

// Ensure the adapter implements the interface
var _ usecase.Confirmer = (*ConfirmerAdapter)(nil)
