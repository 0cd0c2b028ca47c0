package main

import (
	"fmt"
	"os"

	"github.com/aretw0/firstrun/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "firstrun",
	Short: "firstrun decides which onboarding pages to show on first launch",
	Long: `firstrun reads the platform facts and the install metadata of an application
and selects the onboarding pages to present: Welcome, plus the default browser
promotion when it has never been shown and the app is not already the default.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the firstrun config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging of facts and plans")
}

// globalOptions reads the persistent flags shared by every command.
func globalOptions(cmd *cobra.Command) cli.Options {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.Options{
		ConfigPath: configPath,
		Debug:      debug,
		Out:        cmd.OutOrStdout(),
	}
}
