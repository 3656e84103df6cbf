package commands

import (
	"github.com/spf13/cobra"
	"weave/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [snippet-ids...]",
		Short: "Remove cached snippet outputs",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			doc, _ := cmd.Flags().GetString("doc")
			return c.app.Clean(cmd.Context(), app.CleanOptions{
				All: all,
				Doc: doc,
				IDs: args,
			})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Purge every cached namespace")
	cmd.Flags().StringP("doc", "d", "", "Document whose cache entries to remove")
	return cmd
}
