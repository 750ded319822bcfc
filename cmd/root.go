package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexxxkny/lineclip/internal/app"
	"github.com/alexxxkny/lineclip/internal/config"
	"github.com/alexxxkny/lineclip/internal/logging"
	"github.com/alexxxkny/lineclip/version"
)

var (
	configPath string
	lineCount  int
	lineSeed   int64
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:     "lineclip",
	Short:   "Interactive rectangle selection and line clipping viewer",
	Long:    `lineclip draws random line segments and colors them by how they relate to a rectangle dragged with the mouse.`,
	Args:    cobra.NoArgs,
	Version: version.GetFullVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		closeLog, err := logging.Init(cfg.Log, logging.InitOptions{App: "lineclip", Version: version.GetVersion()})
		if err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		defer closeLog()

		return app.Run(app.Options{ConfigPath: configPath, Config: cfg})
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file (reloaded on change)")
	rootCmd.Flags().IntVarP(&lineCount, "lines", "n", 0, "Initial number of segments")
	rootCmd.Flags().Int64Var(&lineSeed, "seed", 0, "Seed for segment generation")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// loadConfig reads the config file if given and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.Log = cfg.Log.WithEnv()
	if cmd.Flags().Changed("lines") {
		cfg.Lines.Count = lineCount
	}
	if cmd.Flags().Changed("seed") {
		cfg.Lines.Seed = lineSeed
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
