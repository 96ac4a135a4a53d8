package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/squaresum/cycle"
)

func (c *CLI) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the 32-vertex seed cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			canon, err := cycle.Seed().Canonical()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.out, canon)
			return err
		},
	}
}
