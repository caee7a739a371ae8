package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// auditCmd represents the audit command.
var auditCmd = newAuditCmd()

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Verify that no unmigrated references remain",
		Long:  auditLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := ensureWorkflow(); err != nil {
				return err
			}

			return workflow.Audit(context.Background(), resolveRoot(args))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
