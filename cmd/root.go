// Package cmd provides the root command and CLI setup for nsshift.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"nsshift.dev/pkg/nsshift/internal/adapter"
	"nsshift.dev/pkg/nsshift/internal/controller"
	"nsshift.dev/pkg/nsshift/internal/domain"
	m "nsshift.dev/pkg/nsshift/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
}

const rootLongDescription = `Nsshift is a batch source-tree migrator. It walks a directory of text
source files, normalizes the Location field in each file's header comment,
and rewrites internal namespace references that were renamed during a
package restructuring, while preserving references to external dependency
namespaces. After every run an audit pass verifies that no unmigrated
references remain.`

const runLongDescription = `Rewrite headers and namespace references for every matching file under
the given path (default: the configured source root). The audit pass runs
afterwards; the command exits nonzero if unmigrated references remain.`

const listLongDescription = `List source files and the number of changes a run would apply to each.
Nothing is written.`

const auditLongDescription = `Re-scan the tree for leftover unmigrated references and preserved
external dependency references without applying any transforms.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "nsshift",
		Short:        "Batch namespace migration tool",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// ensureWorkflow builds the workflow from the active configuration on
// first use. The rule table is validated here, before any file is touched;
// a colliding table aborts the run. Tests pre-seed the package-level
// workflow with a fake to bypass construction.
func ensureWorkflow() error {
	if workflow != nil {
		return nil
	}

	table, err := ruleTableFromConfig()
	if err != nil {
		return err
	}

	if err := domain.ValidateRules(table); err != nil {
		return fmt.Errorf("invalid rule table: %w", err)
	}

	locator, err := domain.NewLocator(
		fsAdapter,
		viper.GetStringSlice(extensionsKey),
		viper.GetStringSlice(excludeConfigKey),
	)
	if err != nil {
		return err
	}

	workflow = domain.NewWorkflow(
		fsAdapter,
		locator,
		domain.NewAuditor(fsAdapter, table),
		domain.CompileRules(table.Rules),
		ui,
	)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func resolveRoot(args []string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	return m.Path(viper.GetString(sourceKey))
}
