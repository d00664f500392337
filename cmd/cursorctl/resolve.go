package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/cursor/theme"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [icon]",
	Short: "Print the theme and file that provide a cursor icon",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		icon := theme.DefaultIcon
		if len(args) == 1 {
			icon = args[0]
		}

		res, err := newResolver(cfg).Resolve(cfg.Theme, icon)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", res.Theme, res.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
