package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/rpmview/internal/application/usecase"
)

var (
	historyJSON  bool
	historyLimit int
	pruneDays    int
)

const defaultHistoryLimit = 20

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List exported avatars",
	Long:  `List the avatars exported from the avatar creator, newest first.`,
	RunE:  runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old history entries",
	Long: `Delete exported avatar entries older than the retention period.

Defaults to history.retention_days. A value of 0 keeps everything.`,
	RunE: runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyLimit, "limit", defaultHistoryLimit, "maximum entries to show")
	historyPruneCmd.Flags().IntVar(&pruneDays, "days", -1, "retention in days (default: history.retention_days)")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	repo, err := app.Exports()
	if err != nil {
		return err
	}

	exports, err := usecase.NewListExportsUseCase(repo).Execute(app.Ctx(), historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(exports)
	}
	_, err = fmt.Fprintln(out, app.Theme.RenderExports(exports))
	return err
}

func runHistoryPrune(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	repo, err := app.Exports()
	if err != nil {
		return err
	}

	days := pruneDays
	if days < 0 {
		days = app.Config.History.RetentionDays
	}

	deleted, err := usecase.NewPruneExportsUseCase(repo).Execute(app.Ctx(), days)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderSuccess(fmt.Sprintf("deleted %d entries", deleted)))
	return err
}
