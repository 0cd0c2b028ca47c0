package main

import (
	"github.com/aretw0/firstrun/internal/cli"
	"github.com/spf13/cobra"
)

var promotionCmd = &cobra.Command{
	Use:   "promotion",
	Short: "Inspect or update the default browser promotion counter",
}

var promotionShownCmd = &cobra.Command{
	Use:   "shown",
	Short: "Record that the promotion dialog was shown",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunPromotionShown(cmd.Context(), globalOptions(cmd))
	},
}

var promotionCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print how many times the promotion dialog was shown",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunPromotionCount(cmd.Context(), globalOptions(cmd))
	},
}

func init() {
	promotionCmd.AddCommand(promotionShownCmd)
	promotionCmd.AddCommand(promotionCountCmd)
	rootCmd.AddCommand(promotionCmd)
}
