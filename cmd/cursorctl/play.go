package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gogpu/cursor"
	"github.com/gogpu/cursor/internal/tui"
	"github.com/gogpu/cursor/render"
	"github.com/gogpu/cursor/theme"
)

var playWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the default cursor animation in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p, err := cursor.New(render.NewSoftwareImporter(), cfg)
		if err != nil {
			return err
		}
		defer p.Close()

		var opts []tui.Option
		if playWatch {
			w, err := theme.NewWatcher(cfg.SearchPath(), theme.DefaultDebounce, cursor.Logger())
			if err != nil {
				return err
			}
			defer w.Close()
			opts = append(opts, tui.WithChanges(w.Changes()))
		}

		program := tea.NewProgram(tui.NewPlayer(p, opts...), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("play: %w", err)
		}
		return nil
	},
}

func init() {
	playCmd.Flags().BoolVarP(&playWatch, "watch", "w", false, "reload when theme directories change")
	rootCmd.AddCommand(playCmd)
}
