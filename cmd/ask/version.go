package main

import (
	"fmt"

	"github.com/nao1215/ask"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ask",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ask version %s\n", ask.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
