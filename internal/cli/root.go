package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/rsvg-deploy/internal/adapters/progress"
	"github.com/trebuchet-org/rsvg-deploy/internal/app"
	"github.com/trebuchet-org/rsvg-deploy/internal/config"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// session holds what PersistentPreRunE acquires for a single command execution
type session struct {
	cancel context.CancelFunc
	app    *app.App
}

// release cancels the command context and closes the app. Safe to call more than once.
func (s *session) release() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.app != nil {
		s.app.Close()
		s.app = nil
	}
}

// Execute runs the root command and releases the app whether or not the command failed
func Execute() error {
	rootCmd, s := newRootCmd()
	defer s.release()
	return rootCmd.Execute()
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

func newRootCmd() (*cobra.Command, *session) {
	s := &session{}
	rootCmd := &cobra.Command{
		Use:   "rsvg-deploy",
		Short: "Deploy RandomSVG and its VRF dependencies",
		Long: `rsvg-deploy deploys the RandomSVG NFT contract. On the local network (chain 31337)
it first deploys LinkToken and VRFCoordinatorMock and wires them in; on live networks it
reads the LINK token and VRF coordinator addresses from live-addresses.yaml.

Deployments are recorded as named artifacts under deployments/<chainId>/ and reused on
later runs unless --force is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				projectRoot = "."
			}

			v := config.SetupViper(projectRoot, cmd)

			var sink usecase.ProgressSink = progress.NewSpinnerSink()
			if v.GetBool("json") {
				sink = progress.NewNopSink()
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			s.app = appInstance

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				ctx, s.cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., localhost, sepolia)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC URL, overrides the network's endpoint")
	rootCmd.PersistentFlags().Uint64("chain-id", 0, "Expected chain ID, the run aborts on mismatch")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	artifactsCmd := NewArtifactsCmd()
	artifactsCmd.GroupID = "management"
	rootCmd.AddCommand(artifactsCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd, s
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
