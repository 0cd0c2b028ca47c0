package main

import (
	"fmt"

	"github.com/aretw0/firstrun"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of firstrun",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "firstrun version %s\n", firstrun.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
