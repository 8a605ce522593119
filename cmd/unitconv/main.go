package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jcarver/unitconv/internal/config"
	"github.com/jcarver/unitconv/internal/history"
	"github.com/jcarver/unitconv/internal/logging"
	"github.com/jcarver/unitconv/internal/tui"
)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:     "unitconv",
		Short:   "Convert between measurement units with a session history",
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Example: "  unitconv\n  unitconv --config ~/.config/unitconv/config.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				if err := os.Setenv("UNITCONV_CONFIG", cfgPath); err != nil {
					return err
				}
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, closeLog, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer closeLog()

			logger.Info().
				Int("precision", cfg.UI.Precision).
				Int("history_limit", cfg.History.Limit).
				Msg("starting")

			store := history.NewStore(cfg.History.Limit)
			p := tea.NewProgram(tui.New(cfg, store, logger), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}
			logger.Info().Int("session_records", store.Len()).Msg("exiting")
			return nil
		},
	}
	root.Flags().StringVar(&cfgPath, "config", "", "path to the config file")
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
