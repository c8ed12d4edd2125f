// Command vivid renders procedural artwork from the command line and serves
// the artwork HTTP API.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/artgrid/vivid"
)

var rootCmd = &cobra.Command{
	Use:           "vivid",
	Short:         "Deterministic procedural artwork generator",
	Long:          `vivid synthesizes raster artwork from a prompt, a named style, a named palette, and a resolution preset. Output is fully determined by arithmetic over the seed — no model, no network.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var logFormat string

func init() {
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format (text or json)")
}

// newLogger builds the process logger from the --log-format flag and points
// the library's logger at it as well.
func newLogger() *slog.Logger {
	var l *slog.Logger
	if logFormat == "json" {
		l = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	} else {
		l = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	vivid.SetLogger(l)
	return l
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
