// Package main provides the jifdict CLI entry point.
package main

import (
	"fmt"
	"os"

	"jifdict/internal"
	"jifdict/internal/config"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	appConfig *config.Config
	logger    *internal.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jifdict [input]",
	Short: "Build a journal impact-factor lookup from a JCR export",
	Long: `jifdict reads a JCR impact-factor export (.xlsx or .csv) and writes a
lookup dictionary keyed by upper-cased journal name and abbreviation to
data.json, the file consumed by the scholar impact-factor extension.

Running jifdict without a subcommand is the same as "jifdict convert".`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runConvertCmd,
}

func init() {
	rootCmd.Version = Version
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default from JIF_OUTPUT_FILE or data.json)")
	rootCmd.AddCommand(newConvertCmd(), newLookupCmd(), newServeCmd())
}

func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	appConfig = cfg
	logger = internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}
