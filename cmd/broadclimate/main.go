// Broadclimate is a command line utility for Broadlink-family climate
// devices: Hysen heating controllers and Tornado air conditioning units.
//
// It offers offline protocol tooling (decoding captured payloads, building
// command frames, checksum helpers) plus a local device registry for keeping
// nicknames and profiles of known units.
//
// Usage:
//
//	broadclimate [command] [flags]
//
// See 'broadclimate --help' for available commands. Set the
// BROADCLIMATE_LOG_LEVEL environment variable to enable protocol logging.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kajell/broadclimate/internal/logging"
	"github.com/kajell/broadclimate/internal/version"
)

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "broadclimate",
	Short: "Broadlink climate device utility",
	Long: `A utility for Broadlink-family climate devices.

Decodes captured device payloads, builds command frames, verifies
checksums, and keeps a local registry of known devices. Supports the
Hysen heating controller and Tornado air conditioner protocols.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("broadclimate %s\n", version.Full())
	},
}
