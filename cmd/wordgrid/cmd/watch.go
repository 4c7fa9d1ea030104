package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corey/wordgrid/internal/app"
	"github.com/spf13/cobra"
)

var (
	watchFlags    engineFlags
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <words> <grid> <output> [directions]",
	Short: "Re-run a search whenever the word or grid file changes",
	Long:  "Runs search once, then again on every save of either input. Stop with Ctrl-C.",
	Args:  argRange(3, 4),
	RunE:  runWatch,
}

func init() {
	watchFlags.register(watchCmd.Flags(), true)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Quiet period before a rerun (default from config, 100ms)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, func(cfg *app.Config) {
		watchFlags.apply(cmd.Flags(), cfg)
		if cmd.Flags().Changed("debounce") {
			cfg.Debounce = watchDebounce
		}
	})
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stderr := cmd.ErrOrStderr()
	return a.Watch(ctx, requestFromArgs(args, true), func(rep *app.Report, err error) {
		if err != nil {
			fmt.Fprintln(stderr, formatWatchError(err))
			return
		}
		fmt.Fprintln(stderr, formatSummary(rep))
	})
}
