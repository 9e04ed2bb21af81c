package cmd

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/pictorialkey/internal/config"
	"github.com/arcanaland/pictorialkey/internal/logging"
)

var (
	configPath string
	verbose    bool
	logger     *log.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pictorialkey",
	Short: "Scrape tarot card meanings from The Pictorial Key to the Tarot",
	Long: `Pictorialkey fetches A. E. Waite's Pictorial Key to the Tarot from sacred-texts.com,
extracts the name, value and upright/reversed divinatory meanings of all 78 cards,
and writes them to JSON files.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(cmd.ErrOrStderr(), verbose)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/pictorialkey/config.toml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// loadConfig loads the config file selected by --config
func loadConfig() (*config.Config, error) {
	return config.LoadConfig(configPath)
}

// dataPath returns the card data file named by the flag, or the configured one
func dataPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.CardDataPath(), nil
}
