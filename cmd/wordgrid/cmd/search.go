package cmd

import (
	"fmt"

	"github.com/corey/wordgrid/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// engineFlags are the matching options shared by search, locate and watch.
type engineFlags struct {
	ignoreCase bool
	engine     string
	workers    int
	noCache    bool
}

func (f *engineFlags) register(fs *pflag.FlagSet, withCache bool) {
	fs.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "Case-insensitive matching (Unicode case folding)")
	fs.StringVar(&f.engine, "engine", "", "Matching engine: stride, automaton, auto")
	fs.IntVar(&f.workers, "workers", 0, "Parallel workers for the stride engine (0/1 = sequential)")
	if withCache {
		fs.BoolVar(&f.noCache, "no-cache", false, "Ignore and do not update the result cache")
	}
}

// apply overlays explicitly set flags onto cfg.
func (f *engineFlags) apply(fs *pflag.FlagSet, cfg *app.Config) {
	if fs.Changed("ignore-case") {
		cfg.IgnoreCase = f.ignoreCase
	}
	if fs.Changed("engine") {
		cfg.Engine = f.engine
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if f.noCache {
		cfg.Cache = false
	}
}

var (
	searchFlags      engineFlags
	searchExitStatus bool
	searchQuiet      bool
)

var searchCmd = &cobra.Command{
	Use:   "search <words> <grid> <output> [directions]",
	Short: "Count word occurrences in a grid",
	Long: "Reads a word list (one word per line) and a grid (comma-separated cells, one row\n" +
		"per line) and writes one \"word,count\" line per found word to <output>.\n" +
		"Use - as <output> to write to stdout. [directions] is a string of direction codes\n" +
		"(u,d,l,r,w,x,y,z); when omitted the configured default is used.",
	Args: argRange(3, 4),
	RunE: runSearch,
}

func init() {
	searchFlags.register(searchCmd.Flags(), true)
	searchCmd.Flags().BoolVar(&searchExitStatus, "exit-status", false, "Exit 1 when no word is found")
	searchCmd.Flags().BoolVarP(&searchQuiet, "quiet", "q", false, "No summary line")
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, func(cfg *app.Config) { searchFlags.apply(cmd.Flags(), cfg) })
	if err != nil {
		return err
	}
	defer a.Close()

	rep, err := a.Search(cmd.Context(), requestFromArgs(args, true))
	if err != nil {
		return err
	}

	if !searchQuiet {
		fmt.Fprintln(cmd.ErrOrStderr(), formatSummary(rep))
	}
	if searchExitStatus && len(rep.Results) == 0 {
		return exitError{code: exitNoResults}
	}
	return nil
}
