package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [path]",
		Short: "List source files and pending change counts",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := ensureWorkflow(); err != nil {
				return err
			}

			return workflow.Estimate(context.Background(), resolveRoot(args))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
