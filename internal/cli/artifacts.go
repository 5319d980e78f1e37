package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/rsvg-deploy/internal/cli/render"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

// NewArtifactsCmd creates the artifacts command group
func NewArtifactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artifacts",
		Short: "Inspect the named artifacts of the selected network",
	}

	cmd.AddCommand(newArtifactsListCmd())
	cmd.AddCommand(newArtifactsShowCmd())
	cmd.AddCommand(newArtifactsResetCmd())

	return cmd
}

func newArtifactsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the artifacts of the selected network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListArtifacts.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewArtifactsRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result)
		},
	}
}

func newArtifactsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a single artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			artifact, err := app.ShowArtifact.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return render.NewArtifactRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(artifact)
		},
	}
}

func newArtifactsResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every artifact of the selected network",
		Long: `Delete every artifact of the selected network so the next deploy starts fresh.
Live networks require --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ResetArtifacts.Run(cmd.Context(), usecase.ResetArtifactsParams{Force: force})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d artifact(s) from chain %d\n", len(result.Removed), result.ChainID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Allow resetting a live network")

	return cmd
}
