package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marshallshelly/catalog/internal/config"
	"github.com/marshallshelly/catalog/internal/logging"
)

// Commands annotated as interactive own the terminal, so logs go to a file or nowhere.
const annotationInteractive = "interactive"

var (
	// Global flags
	sourceDSN  string
	configPath string
	verbose    bool
	jsonOutput bool

	cfg    config.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog - browse products by owner, name and category",
	Long: `Catalog joins users, categories and products and lets you narrow the
product list by category owner, product name and category.

Data sources (--source):
  builtin                     bundled sample catalog (default)
  catalog.yaml / catalog.json dataset file
  sqlite:path, *.db           SQLite database written by "catalog seed"
  postgres://...              PostgreSQL database written by "catalog seed"

Run without a subcommand to start the interactive browser.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	Annotations:   map[string]string{annotationInteractive: "true"},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&sourceDSN, "source", "", "Data source (builtin, file, sqlite or postgres DSN)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// setup loads configuration and builds the logger. Flags take precedence over
// the config file and environment.
func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("source") {
		cfg.Source = sourceDSN
	}

	interactive := cmd.Annotations[annotationInteractive] == "true"
	logger, err = logging.New(cfg.Logging, verbose, interactive)
	if err != nil {
		return err
	}

	logger.Debug("Configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", configPath))
	return nil
}
