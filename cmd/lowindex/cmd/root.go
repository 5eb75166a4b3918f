// Package cmd wires the lowindex Cobra command tree: persistent flags for
// verbosity and an optional preset-config file, subcommands covers, parse,
// and cpuinfo.
package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose    bool
	configPath string
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lowindex",
	Short: "Enumerate permutation representations of a finitely presented group",
	Long: `lowindex runs the Sims low-index-subgroups search: it enumerates, up to
conjugacy, every transitive permutation representation of a finitely
presented group of bounded degree.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		if configPath != "" {
			viper.SetConfigFile(configPath)
			if err := viper.ReadInConfig(); err != nil {
				return err
			}
		}
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML file of named group presets")

	binName := BinName()
	rootCmd.Example = `  # Enumerate degree <=25 permutation reps of the modular group
  ` + binName + ` covers --rank 2 --short aa,bbb --degree 25

  # Same, from a named preset in a config file
  ` + binName + ` covers --config groups.yaml --preset modular-group

  # Parse and reduce a single word for debugging
  ` + binName + ` parse --rank 3 aaBcbbcAc

  # Report the worker count a num-threads=0 run would use
  ` + binName + ` cpuinfo`
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
