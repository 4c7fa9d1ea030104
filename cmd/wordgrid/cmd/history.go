package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "Show recorded search runs",
	Long:  "Lists recent runs, newest first. With an id, shows that run and its results.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum runs to list (0 = all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if len(args) == 1 {
		run, err := a.Run(args[0])
		if err != nil {
			return err
		}
		if run == nil {
			return usageError(fmt.Errorf("no run with id %q", args[0]))
		}
		if historyJSON {
			return enc.Encode(run)
		}
		fmt.Fprint(out, formatRun(run))
		return nil
	}

	runs, err := a.Runs(historyLimit)
	if err != nil {
		return err
	}
	if historyJSON {
		return enc.Encode(runs)
	}
	fmt.Fprint(out, formatRuns(runs))
	return nil
}
