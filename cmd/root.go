// Package cmd provides the command-line interface for curricula with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --format, etc.) - highest priority
//	2. CURRICULA_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (CURRICULA_CONTENT_DIR, etc.)
//	4. Configuration files (.curricula.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "curricula",
	Short: "Registry and validation engine for interview-prep curriculum content",
	Long: `Curricula aggregates independently authored curriculum phase modules
into one validated, queryable knowledge base, and catches authoring
errors before they reach learners.

Key Features:
  • Corpus-wide validation with a structured report (CI-friendly exit codes)
  • Phase and topic listing in table, JSON, and YAML formats
  • Case-insensitive topic search
  • Question banks filtered by interview question type
  • Content-authoring preview mode with rebuild-and-swap hot reload

Quick Start:
  curricula validate              Validate the content corpus
  curricula list                  List all phases
  curricula search closures       Search topics
  curricula questions -t coding   Build a question bank
  curricula preview --dir content Watch a content directory

Command Aliases (for faster typing):
  validate (v), list (l), search (s), questions (q), preview (p)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .curricula.yml, can also use CURRICULA_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("dir", "", "content directory (overrides the embedded corpus)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("content.dir", rootCmd.PersistentFlags().Lookup("dir"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. CURRICULA_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .curricula.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("CURRICULA_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".curricula")
	}

	// Enable automatic environment variable binding with CURRICULA_ prefix
	// Examples: CURRICULA_CONTENT_DIR, CURRICULA_OUTPUT_FORMAT
	viper.SetEnvPrefix("CURRICULA")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing or malformed config files degrade gracefully to defaults.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
