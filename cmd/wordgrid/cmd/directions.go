package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var directionsCmd = &cobra.Command{
	Use:   "directions",
	Short: "List direction codes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), formatDirections())
	},
}
