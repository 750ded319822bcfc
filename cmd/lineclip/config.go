package main

import (
	"github.com/spf13/cobra"

	"github.com/alexxxkny/lineclip/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [file]",
	Short: "Print the effective configuration as YAML",
	Long:  "Print the built-in defaults, or the given file merged over them, after validation.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
