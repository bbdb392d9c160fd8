package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/marshallshelly/catalog/cmd/catalog/output"
	"github.com/marshallshelly/catalog/pkg/source"
)

var (
	// Export flags
	exportOut string
)

// exportCmd dumps the raw dataset of a source
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the raw dataset of a source as YAML or JSON",
	Long: `Load the dataset named by --source and write it as YAML (or JSON with --json).
The result can be used as a --source or as "catalog seed --from" input.

Examples:
  catalog export > catalog.yaml
  catalog export --source sqlite:catalog.db --json --out catalog.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if exportOut == "" {
			return exportDataset(ctx, cfg.Source, output.Out, jsonOutput)
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := exportDataset(ctx, cfg.Source, f, jsonOutput); err != nil {
			return err
		}
		output.Success("Exported catalog to %s", exportOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
}

func exportDataset(ctx context.Context, dsn string, w io.Writer, asJSON bool) error {
	ds, err := source.LoadDataset(ctx, dsn, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ds)
	}

	data, err := source.EncodeDataset(ds)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
