package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"nsshift.dev/pkg/nsshift/internal/domain"
)

var runDryRunFlag bool
var runVerboseFlag bool
var runDiffFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [path]",
		Short: "Rewrite headers and namespace references",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := ensureWorkflow(); err != nil {
				return err
			}

			return workflow.Run(context.Background(), domain.RunArgs{
				Root:     resolveRoot(args),
				DryRun:   runDryRunFlag,
				Verbose:  runVerboseFlag,
				ShowDiff: runDiffFlag,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&runDryRunFlag, "dry-run", "n", false, "report intended changes without modifying any file")
	cmd.Flags().BoolVarP(&runVerboseFlag, "verbose", "v", false, "also print files with no changes")
	cmd.Flags().BoolVar(&runDiffFlag, "diff", false, "print unified diffs of intended changes")
}
