package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/gogpu/cursor"
	"github.com/gogpu/cursor/theme"
)

const defaultConfigPath = "~/.config/cursorctl/config.yaml"

var (
	configPath string
	themeFlag  string
	sizeFlag   int
	pathFlag   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "cursorctl",
	Short: "Inspect, render and play Xcursor cursor themes",
	Long: `cursorctl resolves the default pointer cursor the way a compositor does:
the requested theme, then Adwaita, then DMZ-White, falling back to a
built-in arrow.

Settings come from the config file, then XCURSOR_THEME, XCURSOR_SIZE and
XCURSOR_PATH, then flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		cursor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "config file")
	rootCmd.PersistentFlags().StringVarP(&themeFlag, "theme", "t", "", "cursor theme (overrides XCURSOR_THEME)")
	rootCmd.PersistentFlags().IntVarP(&sizeFlag, "size", "s", 0, "nominal cursor size (overrides XCURSOR_SIZE)")
	rootCmd.PersistentFlags().StringVar(&pathFlag, "path", "", "colon separated theme directories (overrides XCURSOR_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// loadConfig layers the config file, the environment and flags.
func loadConfig() (cursor.Config, error) {
	p, err := homedir.Expand(configPath)
	if err != nil {
		return cursor.Config{}, err
	}
	cfg, err := cursor.LoadConfig(p)
	if err != nil {
		return cfg, err
	}
	env, err := cursor.ReadEnv()
	if err != nil {
		return cfg, err
	}
	cfg = cfg.Override(env).Override(cursor.Config{
		Theme: themeFlag,
		Size:  sizeFlag,
		Path:  pathFlag,
	})
	return cfg.Normalize(), nil
}

func newResolver(cfg cursor.Config) *theme.Resolver {
	return theme.NewResolver(cfg.SearchPath(), theme.WithLogger(cursor.Logger()))
}
