package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marshallshelly/catalog/cmd/catalog/output"
	"github.com/marshallshelly/catalog/pkg/source"
)

var (
	// Seed flags
	seedFrom string
)

// seedCmd writes a dataset into a database source
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a catalog dataset into a database",
	Long: `Create the users, categories and products tables in the database named by
--source and upsert every row of the dataset named by --from.

Examples:
  catalog seed --source sqlite:catalog.db
  catalog seed --source postgres://localhost/catalog --from catalog.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return seedDatabase(ctx, cfg.Source, seedFrom)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVar(&seedFrom, "from", "builtin", "Dataset to copy (builtin or a YAML/JSON file)")
}

func seedDatabase(ctx context.Context, target, from string) error {
	kind, _, err := source.Detect(target)
	if err != nil {
		return err
	}
	if kind != source.KindSQLite && kind != source.KindPostgres {
		return fmt.Errorf("%w: %s (use --source with a sqlite or postgres DSN)", source.ErrNotSeedable, kind)
	}

	fromKind, _, err := source.Detect(from)
	if err != nil {
		return err
	}
	output.Info("Loading %s dataset", fromKind)
	ds, err := source.LoadDataset(ctx, from, logger)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	src, err := source.Open(ctx, target, logger)
	if err != nil {
		return fmt.Errorf("failed to open target: %w", err)
	}
	defer func() { _ = src.Close() }()

	seeder, ok := src.(source.Seeder)
	if !ok {
		return fmt.Errorf("%w: %s", source.ErrNotSeedable, src.Kind())
	}

	if err := seeder.Seed(ctx, ds); err != nil {
		return err
	}

	logger.Debug("Seed finished", zap.String("kind", string(kind)))
	output.Success("Seeded %d users, %d categories and %d products (%s)",
		len(ds.Users), len(ds.Categories), len(ds.Products), kind)
	return nil
}
