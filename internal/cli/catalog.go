package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/internal/catalog"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the media catalog",
		Long: `Catalog commands read the media catalog seeded from the "catalog" list in
config.yaml. Without that key the sample catalog is used.`,
	}

	cmd.AddCommand(newCatalogListCmd(a))
	cmd.AddCommand(newCatalogGetCmd(a))
	cmd.AddCommand(newCatalogShowCmd(a))
	return cmd
}

func newCatalogListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every catalog entry in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.seedCatalog()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				records := make([]catalog.EntryRecord, 0, c.Len())
				for i := range c.Len() {
					e, _ := c.Entry(i)
					records = append(records, catalog.RecordOfEntry(i, e))
				}
				return writeJSON(out, records)
			}

			for i := range c.Len() {
				e, _ := c.Entry(i)
				fmt.Fprintf(out, "%d  %s  %s\n", i, e.ID, e.Media.Describe())
			}
			return nil
		},
	}
}

func newCatalogGetCmd(a *app) *cobra.Command {
	var fallback bool

	cmd := &cobra.Command{
		Use:   "get <index>",
		Short: "Describe the catalog entry at an index",
		Long: `Get describes the entry at a zero-based index. An index outside the
catalog is reported as an error unless --fallback is given, in which case the
placeholder description is printed instead. In JSON mode the substituted
item is marked "fallback": true and carries the requested index but no id.

Example:
  pantry catalog get 0
  pantry catalog get 100 --fallback`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return userError(fmt.Errorf("invalid index %q: must be an integer", args[0]))
			}

			c, err := a.seedCatalog()
			if err != nil {
				return err
			}

			e, ok := c.Entry(index)
			if !ok {
				if !fallback {
					return userError(fmt.Errorf("no item at index %d (catalog holds %d)", index, c.Len()))
				}
				a.logger.Debug("index out of range, using placeholder", "index", index)
				m := c.GetOr(index, types.Placeholder{})
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), catalog.RecordOfFallback(index, m))
				}
				fmt.Fprintln(cmd.OutOrStdout(), m.Describe())
				return nil
			}
			return printEntry(cmd, a, index, e)
		},
	}

	cmd.Flags().BoolVar(&fallback, "fallback", false, "print the placeholder instead of failing on a missing index")
	return cmd
}

func newCatalogShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Describe the catalog entry with an ID",
		Long: `Show finds an entry by the ID printed by "pantry catalog list". IDs are
minted each time the catalog is seeded, so they are only meaningful within
a single listing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.seedCatalog()
			if err != nil {
				return err
			}

			e, index, ok := c.Find(args[0])
			if !ok {
				return userError(fmt.Errorf("no item with id %q", args[0]))
			}
			return printEntry(cmd, a, index, e)
		},
	}
}

// printEntry writes e as JSON or as its description.
func printEntry(cmd *cobra.Command, a *app, index int, e catalog.Entry) error {
	if a.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), catalog.RecordOfEntry(index, e))
	}
	fmt.Fprintln(cmd.OutOrStdout(), e.Media.Describe())
	return nil
}
