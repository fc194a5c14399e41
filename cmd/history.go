package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/keytimer/internal/db"
	"github.com/ramanasai/keytimer/internal/utils"
)

var (
	historyLimit  int
	historyFormat string
	historyKinds  string
	historyPlain  bool
)

// historyCmd prints the most recent journal events.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent timer events",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := utils.ParseFormat(historyFormat)
		if err != nil {
			return err
		}
		path, err := cfg.JournalPath()
		if err != nil {
			return err
		}
		dbh, err := db.Open(path)
		if err != nil {
			return err
		}
		defer dbh.Close()

		var kinds []string
		for _, k := range strings.Split(historyKinds, ",") {
			if k = strings.TrimSpace(k); k != "" {
				kinds = append(kinds, k)
			}
		}
		events, err := db.Recent(dbh, historyLimit, kinds...)
		if err != nil {
			return err
		}

		rc := utils.DefaultRenderConfig()
		rc.Format = format
		rc.Color = !historyPlain
		out, err := utils.NewRenderer(rc).Render(events)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "Number of events to show")
	historyCmd.Flags().StringVarP(&historyFormat, "format", "f", "default", "Output format: default, table, json, csv, compact")
	historyCmd.Flags().StringVarP(&historyKinds, "kind", "k", "", "Comma separated event kinds (key, start, expire, dismiss, clear)")
	historyCmd.Flags().BoolVar(&historyPlain, "no-color", false, "Disable colours")
}
