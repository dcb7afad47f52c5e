// Package main provides the ndim CLI, which builds filled nested containers
// from extents given on the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "v0.1.0-dev"

var (
	// Global flags
	verbose bool

	// Build flags
	opts buildOptions

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ndim",
	Short: "Build zero-filled multidimensional containers",
	Long: `ndim builds nested containers of rank 1 to 4 and prints them.

The rank is the number of extents given to the build command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// buildCmd builds and prints a container
var buildCmd = &cobra.Command{
	Use:   "build EXTENT...",
	Short: "Build a container with the given extents",
	Long: `Builds a container whose rank is the number of extents (1 to 4).

Examples:
  ndim build 3 2                 # [[0,0],[0,0],[0,0]]
  ndim build 1 1 2 --ones        # [[[1,1]]]
  ndim build 2 2 --type float64 --fill 0.5 --format yaml

Extents starting with "-" are read as flags; put them after "--":
  ndim build -- 2 -1             # error: negative extent at axis 1`,
	Args: cobra.RangeArgs(1, 4),
	RunE: runBuild,
}

// versionCmd prints the version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ndim %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	buildCmd.Flags().StringVarP(&opts.elemType, "type", "t", "int", "Element type: int, int64, float32, float64")
	buildCmd.Flags().StringVar(&opts.fill, "fill", "", "Fill every element with this value instead of zero")
	buildCmd.Flags().BoolVar(&opts.ones, "ones", false, "Fill every element with one")
	buildCmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: json, yaml")
	buildCmd.MarkFlagsMutuallyExclusive("fill", "ones")

	rootCmd.AddCommand(buildCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
