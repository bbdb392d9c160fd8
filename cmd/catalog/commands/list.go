package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/marshallshelly/catalog/cmd/catalog/output"
	"github.com/marshallshelly/catalog/pkg/catalog"
	"github.com/marshallshelly/catalog/pkg/source"
	"github.com/marshallshelly/catalog/pkg/view"
)

var (
	// List flags
	listOwner      int
	listQuery      string
	listCategories []string
)

// listCmd prints the filtered catalog
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered product list",
	Long: `Print the products that match the given filters, in catalog order.

Each --category narrows the result further, the same way clicking several
category tabs does in the browser.

Examples:
  catalog list                              # All products
  catalog list --owner 2                    # Products in categories owned by user 2
  catalog list --query mi                   # Products whose name contains "mi"
  catalog list --category Fruits --json     # Fruits as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listOwner, "owner", catalog.AllOwners, "Only products whose category is owned by this user id (0 = all)")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Case-insensitive product name filter")
	listCmd.Flags().StringArrayVar(&listCategories, "category", nil, "Category title to narrow by (repeatable)")
}

func runList(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ds, err := source.LoadDataset(ctx, cfg.Source, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if listOwner != catalog.AllOwners && catalog.FindUser(ds.Users, listOwner) == nil && !jsonOutput {
		output.Warning("No user with id %d", listOwner)
	}

	state := view.Dispatch(view.FromDataset(ds), listIntents(listOwner, listQuery, listCategories)...)
	if jsonOutput {
		return writeProducts(output.Out, state, true)
	}

	output.Section("Product Categories")
	if err := writeProducts(output.Out, state, false); err != nil {
		return err
	}
	output.Muted("\n%d of %d products", len(state.Visible()), len(ds.Products))
	return nil
}

// listIntents translates list flags into view intents. Categories are applied in
// flag order before the owner and query filters.
func listIntents(owner int, query string, categories []string) []view.Intent {
	intents := make([]view.Intent, 0, len(categories)+2)
	for _, title := range categories {
		intents = append(intents, view.PickCategory{Title: title})
	}
	intents = append(intents, view.SelectOwner{ID: owner}, view.Search{Query: query})
	return intents
}

// writeProducts prints the visible rows of state as a table or a JSON array.
func writeProducts(w io.Writer, state view.State, asJSON bool) error {
	products := state.Visible()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(products)
	}

	if state.Empty() {
		_, err := fmt.Fprintln(w, catalog.NoMatchesMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tPRODUCT\tCATEGORY\tUSER")
	for _, p := range products {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, catalog.CategoryLabel(p), catalog.OwnerName(p))
	}
	return tw.Flush()
}
