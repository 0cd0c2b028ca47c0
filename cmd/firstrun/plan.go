package main

import (
	"github.com/aretw0/firstrun/internal/cli"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the onboarding plan for the current facts",
	Long:  `Reads the detector answers and the promotion dialog counter, then prints the pages that would be shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return cli.RunPlan(cmd.Context(), cli.PlanOptions{
			Options: globalOptions(cmd),
			JSON:    asJSON,
		})
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the onboarding pages in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunPreview(cmd.Context(), globalOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(previewCmd)
	planCmd.Flags().Bool("json", false, "Print the plan as JSON")
}
