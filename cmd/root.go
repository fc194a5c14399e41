package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ramanasai/keytimer/internal/config"
	"github.com/ramanasai/keytimer/internal/logging"
)

var (
	cfg      config.Config
	cfgFile  string
	logLevel string
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:          "keytimer",
	Short:        "Keypad kitchen timer",
	Long:         "Type MM:SS on the keypad, watch it count down, and hear the buzzer at zero.",
	SilenceUsage: true,
	RunE:         runBoard,
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/keytimer/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&headless, "headless", false, "Read keys from stdin and print display frames instead of the TUI")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadFile(cfgFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		// The TUI owns the terminal, so only errors reach stderr unless a
		// log file is configured.
		tui := (cmd == rootCmd || cmd == runCmd) && !headless
		closeLog, err = logging.Setup(logging.Options{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
			Quiet: tui,
		})
		return err
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return closeLog()
	}

	// Add commands; other files define these vars
	rootCmd.AddCommand(runCmd, simulateCmd, historyCmd, versionCmd)
}
