package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	m "nsshift.dev/pkg/nsshift/internal/model"
)

// configFile mirrors the nsshift.yaml layout. The rule table is emitted
// explicitly so nested rule lists round-trip through viper.
type configFile struct {
	Version int `yaml:"version"`
	Paths   struct {
		Source     string   `yaml:"source"`
		Extensions []string `yaml:"extensions"`
		Exclude    []string `yaml:"exclude"`
	} `yaml:"paths"`
	Migration m.RuleTable `yaml:"migration"`
}

func defaultConfig() configFile {
	cfg := configFile{
		Version:   currentConfigVersion,
		Migration: m.DefaultRuleTable(),
	}
	cfg.Paths.Source = viper.GetString(sourceKey)
	cfg.Paths.Extensions = defaultExtensions
	cfg.Paths.Exclude = []string{}

	return cfg
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default nsshift.yaml configuration file",
		Long: `Create a nsshift.yaml in the current working directory populated with the
compiled-in defaults so it can be edited manually.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if _, err := os.Stat(targetPath); err == nil {
				return fmt.Errorf("config file %s already exists", targetPath)
			}

			data, err := yaml.Marshal(defaultConfig())
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			if err := os.WriteFile(targetPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
