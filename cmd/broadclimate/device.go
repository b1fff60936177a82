package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kajell/broadclimate/internal/config"
)

var (
	deviceProfile  string
	deviceNickname string
	deviceHost     string
	deviceReload   bool
)

func init() {
	deviceCmd.AddCommand(deviceAddCmd)
	deviceCmd.AddCommand(deviceListCmd)
	deviceCmd.AddCommand(deviceRemoveCmd)

	deviceAddCmd.Flags().StringVar(&deviceProfile, "profile", "", "Device profile: hysen or aircon (required)")
	deviceAddCmd.Flags().StringVar(&deviceNickname, "nickname", "", "User-friendly name")
	deviceAddCmd.Flags().StringVar(&deviceHost, "host", "", "IP address or hostname")
	_ = deviceAddCmd.MarkFlagRequired("profile")

	deviceListCmd.Flags().BoolVar(&deviceReload, "reload", false, "Re-read the registry from disk, picking up edits by other processes")

	rootCmd.AddCommand(deviceCmd)
}

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Manage the local device registry",
}

var deviceAddCmd = &cobra.Command{
	Use:   "add <mac>",
	Short: "Register a device",
	Example: `  broadclimate device add 78:0f:77:00:12:34 --profile hysen --nickname "hallway thermostat"
  broadclimate device add 780f77005678 --profile aircon --host 192.168.1.50`,
	Args: cobra.ExactArgs(1),
	RunE: runDeviceAdd,
}

func runDeviceAdd(cmd *cobra.Command, args []string) error {
	mac, err := config.NormalizeMAC(args[0])
	if err != nil {
		return err
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	if err := registry.SetDeviceProfile(mac, deviceProfile); err != nil {
		return err
	}
	if deviceNickname != "" {
		registry.SetDeviceNickname(mac, deviceNickname)
	}
	if deviceHost != "" {
		registry.GetDevice(mac).LastHost = deviceHost
	}

	if err := registry.Save(); err != nil {
		return err
	}
	fmt.Printf("Registered %s (%s)\n", mac, deviceProfile)
	return nil
}

var deviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		load := config.LoadRegistry
		if deviceReload {
			load = config.ReloadRegistry
		}
		registry, err := load()
		if err != nil {
			return err
		}

		if len(registry.Devices) == 0 {
			fmt.Println("No devices registered.")
			fmt.Println("Use 'broadclimate device add <mac> --profile <hysen|aircon>' to add one.")
			return nil
		}

		macs := make([]string, 0, len(registry.Devices))
		for mac := range registry.Devices {
			macs = append(macs, mac)
		}
		sort.Strings(macs)

		for _, mac := range macs {
			d := registry.Devices[mac]
			fmt.Printf("%s  %-7s", mac, d.Profile)
			if d.Nickname != "" {
				fmt.Printf("  %q", d.Nickname)
			}
			if d.LastHost != "" {
				fmt.Printf("  %s", d.LastHost)
			}
			if !d.LastSeen.IsZero() {
				fmt.Printf("  last seen %s", d.LastSeen.Format("2006-01-02 15:04"))
			}
			fmt.Println()
		}
		return nil
	},
}

var deviceRemoveCmd = &cobra.Command{
	Use:   "remove <mac-or-nickname>",
	Short: "Remove a device from the registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return err
		}

		mac, _, err := registry.ResolveDevice(args[0])
		if err != nil {
			return err
		}
		delete(registry.Devices, mac)

		if err := registry.Save(); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", mac)
		return nil
	},
}
