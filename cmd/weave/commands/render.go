package commands

import (
	"github.com/spf13/cobra"
	"weave/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Compile a document, executing or reusing its snippets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			noCache, _ := cmd.Flags().GetBool("no-cache")
			output, _ := cmd.Flags().GetString("output")
			return c.app.Render(cmd.Context(), args[0], app.RenderOptions{
				NoCache: noCache,
				Output:  output,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Re-execute every snippet, bypassing the cache")
	cmd.Flags().StringP("output", "o", "", "Write the artifact to this path instead of the default")
	return cmd
}
