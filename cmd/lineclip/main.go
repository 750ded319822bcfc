package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexxxkny/lineclip/internal/logging"
	"github.com/alexxxkny/lineclip/version"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "lineclip",
	Short: "Classify and clip line segments against a selection rectangle",
	Long: `lineclip is the command-line front end of the line clipping engine.
It classifies segments against a rectangle, converts points between the
viewer's coordinate spaces and renders whole frames to PNG files.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := logging.DefaultConfig().WithEnv()
		if logLevel != "" {
			cfg.Level = logLevel
		} else if os.Getenv(logging.EnvLogLevel) == "" {
			cfg.Level = "warn"
		}
		_, err := logging.Init(cfg, logging.InitOptions{App: "lineclip", Version: version.GetVersion()})
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
