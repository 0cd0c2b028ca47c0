package main

import (
	"context"
	"fmt"

	"github.com/aretw0/firstrun/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP plan API",
	Long:  `Exposes the onboarding plan, the promotion counter and Prometheus metrics over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		err := cli.RunServe(ctx, cli.ServeOptions{
			Options: globalOptions(cmd),
			Port:    port,
		})
		if sig := ctx.Signal(); sig != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "stopped by %v\n", sig)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides server.port)")
}
