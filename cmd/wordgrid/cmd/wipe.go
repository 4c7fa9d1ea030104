package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Clear the result cache and run history",
	Long:  "Deletes every cached result and recorded run from the database.",
	Args:  cobra.NoArgs,
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeForce, "force", false, "Skip confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if cfg.DBPath == "" {
		fmt.Fprintln(out, "⚡ no database configured")
		return nil
	}
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "⚡ no data to wipe")
		return nil
	}

	if !wipeForce {
		fmt.Fprintf(out, "⚠ This will delete all cached results and history in %s. Continue? [y/N] ", cfg.DBPath)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "cancelled")
			return nil
		}
	}

	a, err := newApp(cmd, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Wipe(); err != nil {
		return err
	}
	fmt.Fprintln(out, "⚡ cache and history wiped")
	return nil
}
