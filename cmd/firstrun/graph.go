package main

import (
	"github.com/aretw0/firstrun/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the onboarding decision as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph TD) of the page selection decision.
With --overlay, the path taken by the current facts is highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		overlay, _ := cmd.Flags().GetBool("overlay")
		return cli.RunGraph(cmd.Context(), globalOptions(cmd), overlay)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("overlay", false, "Highlight the decision path for the current facts")
}
