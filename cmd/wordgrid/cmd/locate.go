package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/corey/wordgrid/internal/app"
	"github.com/spf13/cobra"
)

var (
	locateFlags engineFlags
	locateJSON  bool
)

var locateCmd = &cobra.Command{
	Use:   "locate <words> <grid> [directions]",
	Short: "List every occurrence with its start cell and direction",
	Long:  "Like search, but reports each occurrence individually. Nothing is cached or recorded.",
	Args:  argRange(2, 3),
	RunE:  runLocate,
}

func init() {
	locateCmd.Flags().BoolVarP(&locateFlags.ignoreCase, "ignore-case", "i", false, "Case-insensitive matching (Unicode case folding)")
	locateCmd.Flags().BoolVar(&locateJSON, "json", false, "Output JSON")
}

func runLocate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, func(cfg *app.Config) {
		locateFlags.apply(cmd.Flags(), cfg)
		// Locate never reads or writes the store.
		cfg.DBPath = ""
	})
	if err != nil {
		return err
	}
	defer a.Close()

	occ, err := a.Locate(cmd.Context(), requestFromArgs(args, false))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if locateJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if occ == nil {
			return enc.Encode([]struct{}{})
		}
		return enc.Encode(occ)
	}
	fmt.Fprint(out, formatOccurrences(occ))
	return nil
}
