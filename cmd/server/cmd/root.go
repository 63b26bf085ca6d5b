package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "carelink-server",
	Short: "CareLink backend server",
	Long: `CareLink is the backend for the wearable monitoring companion app.
It serves the caregiver API: accounts, child profiles, wristband
readings and alerts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Running the binary without a subcommand starts the server.
	RunE: serveCmd.RunE,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
