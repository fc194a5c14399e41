package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ramanasai/keytimer/internal/board"
	"github.com/ramanasai/keytimer/internal/ui"
)

var headless bool

// runCmd starts the emulated board, in the TUI by default.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the timer board",
	RunE:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	b, err := board.Build(cfg, board.Options{})
	if err != nil {
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			log.Warn().Err(err).Msg("board close")
		}
	}()

	if headless {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		log.Info().Dur("tick", cfg.TickInterval).Msg("headless board running; type keys and press enter")
		b.RunHeadless(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.TickInterval)
		return nil
	}
	return ui.Run(b, cfg.TickInterval, ui.ThemeByName(cfg.Theme))
}

func init() {
	runCmd.Flags().BoolVar(&headless, "headless", false, "Read keys from stdin and print display frames instead of the TUI")
}
