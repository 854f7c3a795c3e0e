package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/internal/container"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// containerResult is the JSON output of the container command.
type containerResult struct {
	Shape     string   `json:"shape"`
	Retrieved []string `json:"retrieved"`
}

func newContainerCmd(a *app) *cobra.Command {
	var (
		shape   string
		initial []string
	)

	cmd := &cobra.Command{
		Use:   "container [item...]",
		Short: "Put strings into a container and print the order they come back",
		Long: fmt.Sprintf(`Container builds a string container of the chosen shape, puts each
argument into it, then gets items until it is empty and prints them in
retrieval order.

Valid shapes: %s. The default comes from container.shape in config.yaml.

Example:
  pantry container --initial hello,world there
  pantry container --shape basket hello hi`, strings.Join(types.ShapeNames, ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			if shape == "" {
				shape = a.cfg.Shape
			}

			c, err := container.New(shape, initial)
			if err != nil {
				return userError(fmt.Errorf("%w (valid: %s)", err, strings.Join(types.ShapeNames, ", ")))
			}

			for _, item := range args {
				container.AddString(c, item)
				a.logger.Debug("put", "shape", shape, "item", item)
			}

			retrieved := container.Drain(c)
			if a.flags.jsonMode {
				if retrieved == nil {
					retrieved = []string{}
				}
				return writeJSON(cmd.OutOrStdout(), containerResult{Shape: shape, Retrieved: retrieved})
			}

			out := cmd.OutOrStdout()
			for _, item := range retrieved {
				fmt.Fprintln(out, item)
			}
			if len(retrieved) == 0 {
				fmt.Fprintln(out, "(empty)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shape, "shape", "", "container shape (basket or stack)")
	cmd.Flags().StringSliceVar(&initial, "initial", nil, "items the container starts with, comma-separated")
	return cmd
}
