package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/puruvats57/google-calender/internal/config"
	"github.com/puruvats57/google-calender/internal/storage"
	"github.com/puruvats57/google-calender/internal/task"
	"github.com/puruvats57/google-calender/internal/ui"
)

var (
	flagConfig string
	flagMonth  string
)

func main() {
	root := &cobra.Command{
		Use:           "plancal",
		Short:         "Month-calendar task planner for the terminal",
		Long:          "plancal renders a month grid in the terminal. Drag across days with the mouse to create a task, drag a bar to move it, drag its edges to resize, and double-click to edit.",
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVarP(&flagConfig, "config", "c", "", "path to config.toml (default: auto-resolved)")
	root.Flags().StringVarP(&flagMonth, "month", "m", "", "month to open, as yyyy-MM (default: current month)")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "plancal: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	configPath := flagConfig
	if configPath == "" {
		configPath = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	blobs, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer blobs.Close()

	store := task.NewStore(blobs)
	store.Load()

	var opts []ui.Option
	if flagMonth != "" {
		month, err := time.Parse("2006-01", flagMonth)
		if err != nil {
			return fmt.Errorf("invalid --month %q, expected yyyy-MM", flagMonth)
		}
		opts = append(opts, ui.WithMonth(month.Year(), int(month.Month())-1))
	}

	return ui.Run(store, cfg, opts...)
}
