// Command rut parses, verifies, formats and generates Chilean RUT
// identifiers from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit"
)

// version is set via -ldflags at build time.
var version = "dev"

type config struct {
	OutputFormat string `env:"RUT_OUTPUT_FORMAT" envDefault:"dash"`
	Verbose      bool   `env:"RUT_VERBOSE" envDefault:"false"`
}

var (
	flagFormat  string
	flagVerbose bool

	// outputFormat is the rendering resolved from the --format flag or the
	// RUT_OUTPUT_FORMAT environment variable.
	outputFormat = rutkit.FormatDash

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	rootCmd = &cobra.Command{
		Use:     "rut",
		Short:   "Work with Chilean RUT identifiers",
		Version: version,
		Long: `rut parses, verifies, formats and generates Chilean RUT identifiers.

A RUT pairs a number between 1.000.000 and 99.999.999 with a check digit
(0-9 or K) derived from a modulo 11 checksum. Every command verifies the
checksum before printing anything.

Examples:
  rut parse 17.951.585-7        Parse and verify a RUT
  rut number 12621806           Compute the check digit for a number
  rut random --count 5          Generate five random valid RUTs
  rut format 5665328-7          Show every rendering of a RUT

The output format defaults to the RUT_OUTPUT_FORMAT environment variable
(dots, dash or none); the --format flag overrides it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "output format: dots, dash or none (default from RUT_OUTPUT_FORMAT)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// setup resolves configuration before any subcommand runs. Flags win over
// environment variables; a .env file in the working directory is optional.
func setup() error {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if !flagVerbose {
		flagVerbose = cfg.Verbose
	}
	if flagVerbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	raw := flagFormat
	if raw == "" {
		raw = cfg.OutputFormat
	}
	format, err := rutkit.ParseFormat(raw)
	if err != nil {
		return err
	}
	outputFormat = format

	logger.Debug("configured", "format", string(outputFormat), "verbose", flagVerbose)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
