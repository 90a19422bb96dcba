// =============================================================================
// CSV to JSON Transformer - Root Command
// =============================================================================
//
// The root command carries the flags shared by every subcommand and prepares
// the configuration and the logger before any of them runs.
//
//   transformer
//   ├── transform (transformer transform INPUT OUTPUT)
//   └── version   (transformer version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twocentdev/csv-to-json-transformer/internal/config"
	"github.com/twocentdev/csv-to-json-transformer/pkg/logger"
)

// cfgFile is the path to an optional configuration file. Empty means run on
// defaults.
var cfgFile string

// verbose enables debug-level logging.
var verbose bool

// cfg and log are prepared by the root command before subcommands run.
var (
	cfg *config.Config
	log logger.Logger
)

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "transformer",
	Short: "Transform delimited text files into JSON documents",
	Long: `transformer converts delimited text files (CSV, with a configurable
delimiter) into JSON documents, either for a single file pair or in batch
over a directory.

Example Usage:
  transformer transform data.csv data.json
  transformer transform data.csv data.json -d ";"
  transformer transform ./in ./out -b json -o`,

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}
		log = logger.Setup(cfg.LogLevel, verbose)
		return nil
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the CLI. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to an optional configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable detailed logs",
	)
}
