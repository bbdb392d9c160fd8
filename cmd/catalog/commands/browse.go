package commands

import (
	"github.com/spf13/cobra"

	"github.com/marshallshelly/catalog/cmd/catalog/tui"
)

// browseCmd starts the interactive browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Open the full-screen catalog browser.

Keys:
  tab / shift+tab  switch between owners, search, categories and table
  ←/→, enter       move between tabs and apply the highlighted one
  /                search product names (esc clears the search)
  r                reset all filters
  q                quit

Category tabs narrow the list cumulatively; only "reset all filters" widens it again.`,
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse() error {
	return tui.RunBrowseUI(tui.BrowseOptions{
		Source:      cfg.Source,
		TableHeight: cfg.UI.TableHeight,
		Logger:      logger,
	})
}
