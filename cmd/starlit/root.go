package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/starlit/app"
	"github.com/lixenwraith/starlit/config"
	"github.com/lixenwraith/starlit/core"
)

var rootCmd = &cobra.Command{
	Use:   "starlit",
	Short: "A night sky landing page for the terminal",
	Long: `Starlit shows a title card over a sky of sparkles and meteors.
Press Enter, Space or click to begin: music fades in and a short poem is revealed line by line.
Keys: m toggles mute, q or Esc quits.`,
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/starlit/config.*)")
	flags.String("content", "", "YAML file with title, subtitle, prompt and poem")
	flags.String("music", "", "WAV or MP3 file to play (default: synthesized pad)")
	flags.String("color", "auto", "Color mode: auto, truecolor, 256")
	flags.Uint64("seed", 0, "Random seed for effects (0 seeds from the clock)")
	flags.Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	flags.Bool("mute", false, "Start with music muted")
}

func runRoot(cmd *cobra.Command, args []string) error {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath, cmd.Flags())
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, slog.Default()); err != nil {
		slog.Error("exit", "error", err)
		return err
	}
	return nil
}
