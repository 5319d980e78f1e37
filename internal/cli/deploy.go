package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/rsvg-deploy/internal/cli/render"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

// deployFlags holds command-specific flags
type deployFlags struct {
	tags  []string
	force bool
}

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	flags := &deployFlags{}

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Run the deployment steps",
		Long: `Run the deployment steps selected by tags, in order:

  00_deploy_mocks        [all mocks rsvg svg]  LinkToken, VRFCoordinatorMock (local network only)
  01_deploy_random_svg   [all rsvg svg]        RandomSVG(linkToken, vrfCoordinator)

Examples:
  rsvg-deploy deploy                       # Run every step tagged "all"
  rsvg-deploy deploy --tags mocks          # Only provision the mocks
  rsvg-deploy deploy -n sepolia --tags rsvg
  rsvg-deploy deploy --force               # Redeploy even if artifacts exist`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, flags)
		},
	}

	cmd.Flags().StringSliceVar(&flags.tags, "tags", nil, "Only run steps with one of these tags (default: all)")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Redeploy even when a reusable artifact exists")

	return cmd
}

// runDeploy executes the deploy command
func runDeploy(cmd *cobra.Command, flags *deployFlags) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, runErr := app.RunDeployment.Run(cmd.Context(), usecase.RunDeploymentParams{
		Tags:  flags.tags,
		Force: flags.force,
	})

	renderer := render.NewRunRenderer(cmd.OutOrStdout(), app.Config.JSON)
	if err := renderer.Render(result); err != nil {
		return err
	}

	return runErr
}
