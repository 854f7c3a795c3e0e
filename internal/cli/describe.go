package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/internal/catalog"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

func newDescribeCmd(a *app) *cobra.Command {
	var fields types.MediaFields

	kinds := make([]string, 0, len(types.Kinds))
	for _, k := range types.Kinds {
		kinds = append(kinds, k.String())
	}

	cmd := &cobra.Command{
		Use:   "describe <kind>",
		Short: "Describe a media item built from flags",
		Long: fmt.Sprintf(`Describe builds one media item and prints its description.

Valid kinds: %s

Example:
  pantry describe book --title "Bad Book" --author "Bad Author"
  pantry describe podcast --episode 10
  pantry describe placeholder`, strings.Join(kinds, ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := types.ParseKind(args[0])
			if err != nil {
				return userError(fmt.Errorf("%w (valid: %s)", err, strings.Join(kinds, ", ")))
			}

			m, err := types.NewMedia(kind, fields)
			if err != nil {
				return userError(err)
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), struct {
					Description string `json:"description"`
					catalog.MediaRecord
				}{m.Describe(), catalog.RecordOf(m)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Describe())
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Title, "title", "", "title (book, movie, audiobook)")
	cmd.Flags().StringVar(&fields.Author, "author", "", "author (book)")
	cmd.Flags().StringVar(&fields.Director, "director", "", "director (movie)")
	cmd.Flags().Uint32Var(&fields.EpisodeNumber, "episode", 0, "episode number (podcast)")
	return cmd
}
