package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/keytimer/internal/board"
	"github.com/ramanasai/keytimer/internal/buzzer"
	"github.com/ramanasai/keytimer/internal/lcd"
	"github.com/ramanasai/keytimer/internal/timer"
)

var (
	simStep    time.Duration
	simAdvance time.Duration
	simTrace   bool
	simJournal bool
)

// simulateCmd replays a key script against a board whose clock only moves
// with the script, so long countdowns finish instantly.
var simulateCmd = &cobra.Command{
	Use:   "simulate KEYS",
	Short: "Replay keys on a virtual clock and print the display",
	Long: `Each character of KEYS is pressed on its own poll; '.' is a poll with no key.
After the keys, polling continues until --advance has elapsed.

  keytimer simulate 0130 --advance 91s`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clock := &timer.ManualClock{}
		b, err := board.Build(cfg, board.Options{
			Clock:     clock,
			Buzzer:    buzzer.Silent{},
			NoJournal: !simJournal,
			NoNotify:  true,
		})
		if err != nil {
			return err
		}
		defer b.Close()

		frames := b.Script(clock, args[0], simStep, simAdvance)
		out := cmd.OutOrStdout()
		if simTrace {
			for _, f := range frames {
				fmt.Fprintf(out, "t=%-8s [%s]\n%s\n", f.At, f.Mode, lcd.PlainLines(f.Lines))
			}
		} else {
			fmt.Fprintln(out, lcd.Plain(b.Display))
		}

		snap := b.Controller.Snapshot()
		fmt.Fprintf(out, "mode=%s buzzing=%t", snap.Mode, snap.Buzzing)
		if snap.Mode == timer.ModeCounting {
			fmt.Fprintf(out, " remaining=%02d:%02d", snap.Remaining/60, snap.Remaining%60)
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	simulateCmd.Flags().DurationVar(&simStep, "step", 100*time.Millisecond, "Virtual time between polls")
	simulateCmd.Flags().DurationVar(&simAdvance, "advance", 0, "Total virtual time to run")
	simulateCmd.Flags().BoolVar(&simTrace, "trace", false, "Print every display change")
	simulateCmd.Flags().BoolVar(&simJournal, "journal", false, "Record the run in the journal")
}
