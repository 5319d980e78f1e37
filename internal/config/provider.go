package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
)

const (
	// DataDir holds local, uncommitted settings
	DataDir = ".rsvg"
	// DefaultDeploymentsDir holds the named artifacts, committed with the project
	DefaultDeploymentsDir = "deployments"
	// DefaultAddressBook is the live network address table
	DefaultAddressBook = "live-addresses.yaml"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:     projectRoot,
		DeploymentsDir:  resolvePath(projectRoot, v.GetString("deployments_dir")),
		AddressBookPath: resolvePath(projectRoot, v.GetString("address_book")),
		PrivateKey:      v.GetString("private_key"),
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		JSON:            v.GetBool("json"),
		Timeout:         v.GetDuration("timeout"),
	}

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	cfg.FoundryConfig = foundryConfig

	// RSVG_PRIVATE_KEY may come from the .env files loaded above
	if cfg.PrivateKey == "" {
		cfg.PrivateKey = os.Getenv("RSVG_PRIVATE_KEY")
	}

	outDir := "out"
	if profile, ok := foundryConfig.Profile["default"]; ok && profile.OutPath != "" {
		outDir = profile.OutPath
	}
	cfg.OutDir = resolvePath(projectRoot, outDir)

	network, err := ResolveNetwork(
		v.GetString("network"),
		v.GetString("rpc_url"),
		v.GetUint64("chain_id"),
		foundryConfig,
	)
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find foundry.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Foundry project (foundry.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDir))

	// Set up environment variables
	v.SetEnvPrefix("RSVG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("network", DefaultNetwork)
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("deployments_dir", DefaultDeploymentsDir)
	v.SetDefault("address_book", DefaultAddressBook)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(flagKey(f.Name), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// flagKey maps a flag name to its viper key, e.g. rpc-url -> rpc_url
func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func resolvePath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
