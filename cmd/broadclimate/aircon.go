package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kajell/broadclimate/internal/aircon"
	"github.com/kajell/broadclimate/internal/protocol"
)

var (
	acFromEnvelope bool
	acBaseState    string
	acPower        bool
	acTemp         float64
	acMode         string
	acFan          string
	acSwingH       string
	acSwingV       string
	acSleep        bool
	acDisplay      bool
	acHealth       bool
)

func init() {
	acCmd.AddCommand(acDecodeCmd)
	acCmd.AddCommand(acBuildSetCmd)

	acDecodeCmd.Flags().BoolVar(&acFromEnvelope, "envelope", false, "Input is a full decrypted response envelope")

	acBuildSetCmd.Flags().StringVar(&acBaseState, "state", "", "Captured 32-byte state payload to use as the base (hex, required)")
	acBuildSetCmd.Flags().BoolVar(&acPower, "power", false, "Power on or off")
	acBuildSetCmd.Flags().Float64Var(&acTemp, "temp", 0, "Target temperature (16-32, 0.5 steps)")
	acBuildSetCmd.Flags().StringVar(&acMode, "mode", "", "Operating mode (auto, cool, dry, heat, fan)")
	acBuildSetCmd.Flags().StringVar(&acFan, "fan", "", "Fan speed (low, mid, high, auto, turbo, mute)")
	acBuildSetCmd.Flags().StringVar(&acSwingH, "swing-h", "", "Horizontal swing (on, off)")
	acBuildSetCmd.Flags().StringVar(&acSwingV, "swing-v", "", "Vertical swing (on, off, 1-5)")
	acBuildSetCmd.Flags().BoolVar(&acSleep, "sleep", false, "Sleep mode")
	acBuildSetCmd.Flags().BoolVar(&acDisplay, "display", false, "Front panel display")
	acBuildSetCmd.Flags().BoolVar(&acHealth, "health", false, "Health (ionizer) mode")
	_ = acBuildSetCmd.MarkFlagRequired("state")

	rootCmd.AddCommand(acCmd)
}

var acCmd = &cobra.Command{
	Use:   "ac",
	Short: "Air conditioner protocol tools",
}

var acDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a captured state payload",
	Long: `Decode a 32-byte air conditioner state payload into its fields.

A checksum mismatch is reported but does not abort the decode; these
units emit stale trailers on some reads.`,
	Args: cobra.ExactArgs(1),
	RunE: runACDecode,
}

func runACDecode(cmd *cobra.Command, args []string) error {
	payload, err := parseHexArg(args[0])
	if err != nil {
		return err
	}
	if acFromEnvelope {
		if payload, err = protocol.UnpackEnvelope(payload); err != nil {
			return err
		}
	}

	state, err := aircon.DecodeState(payload)
	if err != nil {
		return err
	}

	fmt.Printf("Power:       %v\n", state.Power)
	fmt.Printf("Target temp: %.1f C\n", state.TargetTemp)
	fmt.Printf("Mode:        %s\n", state.Mode)
	fmt.Printf("Fan speed:   %s\n", state.FanSpeed)
	fmt.Printf("Swing H:     %s\n", state.SwingH)
	fmt.Printf("Swing V:     %s\n", state.SwingV)
	fmt.Printf("Sleep:       %v\n", state.Sleep)
	fmt.Printf("Display:     %v\n", state.Display)
	fmt.Printf("Health:      %v\n", state.Health)
	if !state.ChecksumOK {
		fmt.Println("Warning: checksum trailer does not match the payload")
	}
	return nil
}

var acBuildSetCmd = &cobra.Command{
	Use:   "build-set",
	Short: "Build a set command from a captured state",
	Long: `Build a complete set command payload. The unit rejects partial
writes, so the command starts from a captured state payload and applies
only the flags given on the command line; everything else keeps the
captured value.`,
	Example: `  # Raise the set point, leave everything else alone
  broadclimate ac build-set --state <hex> --temp 24.5

  # Switch to fan mode at mute speed
  broadclimate ac build-set --state <hex> --mode fan --fan mute`,
	RunE: runACBuildSet,
}

func runACBuildSet(cmd *cobra.Command, args []string) error {
	base, err := parseHexArg(acBaseState)
	if err != nil {
		return err
	}
	current, err := aircon.DecodeState(base)
	if err != nil {
		return fmt.Errorf("base state: %w", err)
	}

	overlay, err := settingsFromFlags(cmd)
	if err != nil {
		return err
	}

	packet, err := aircon.EncodeAdvanced(overlay.ApplyTo(*current))
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(packet))
	return nil
}

// settingsFromFlags builds an overlay holding only the flags the user
// actually set.
func settingsFromFlags(cmd *cobra.Command) (aircon.Settings, error) {
	var s aircon.Settings

	if cmd.Flags().Changed("power") {
		s.Power = &acPower
	}
	if cmd.Flags().Changed("temp") {
		s.TargetTemp = &acTemp
	}
	if cmd.Flags().Changed("sleep") {
		s.Sleep = &acSleep
	}
	if cmd.Flags().Changed("display") {
		s.Display = &acDisplay
	}
	if cmd.Flags().Changed("health") {
		s.Health = &acHealth
	}

	if cmd.Flags().Changed("mode") {
		m, err := parseMode(acMode)
		if err != nil {
			return s, err
		}
		s.Mode = &m
	}
	if cmd.Flags().Changed("fan") {
		f, err := parseFanSpeed(acFan)
		if err != nil {
			return s, err
		}
		s.FanSpeed = &f
	}
	if cmd.Flags().Changed("swing-h") {
		sh, err := parseSwingH(acSwingH)
		if err != nil {
			return s, err
		}
		s.SwingH = &sh
	}
	if cmd.Flags().Changed("swing-v") {
		sv, err := parseSwingV(acSwingV)
		if err != nil {
			return s, err
		}
		s.SwingV = &sv
	}

	return s, nil
}

func parseMode(s string) (aircon.Mode, error) {
	switch s {
	case "auto":
		return aircon.ModeAuto, nil
	case "cool":
		return aircon.ModeCool, nil
	case "dry":
		return aircon.ModeDry, nil
	case "heat":
		return aircon.ModeHeat, nil
	case "fan":
		return aircon.ModeFan, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want auto, cool, dry, heat, or fan)", s)
}

func parseFanSpeed(s string) (aircon.FanSpeed, error) {
	switch s {
	case "low":
		return aircon.FanLow, nil
	case "mid":
		return aircon.FanMid, nil
	case "high":
		return aircon.FanHigh, nil
	case "auto":
		return aircon.FanAuto, nil
	case "turbo":
		return aircon.FanTurbo, nil
	case "mute":
		return aircon.FanMute, nil
	}
	return 0, fmt.Errorf("unknown fan speed %q (want low, mid, high, auto, turbo, or mute)", s)
}

func parseSwingH(s string) (aircon.SwingH, error) {
	switch s {
	case "on":
		return aircon.SwingHOn, nil
	case "off":
		return aircon.SwingHOff, nil
	}
	return 0, fmt.Errorf("unknown horizontal swing %q (want on or off)", s)
}

func parseSwingV(s string) (aircon.SwingV, error) {
	switch s {
	case "on":
		return aircon.SwingVOn, nil
	case "off":
		return aircon.SwingVOff, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 5 {
		return aircon.SwingV(n), nil
	}
	return 0, fmt.Errorf("unknown vertical swing %q (want on, off, or 1-5)", s)
}
