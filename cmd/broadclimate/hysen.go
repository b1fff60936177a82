package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kajell/broadclimate/internal/hysen"
	"github.com/kajell/broadclimate/internal/protocol"
)

var (
	hysenFromEnvelope bool
	hysenLogical      bool
)

func init() {
	hysenCmd.AddCommand(hysenDecodeCmd)
	hysenCmd.AddCommand(hysenFrameCmd)
	hysenCmd.AddCommand(hysenUnwrapCmd)

	hysenDecodeCmd.Flags().BoolVar(&hysenFromEnvelope, "envelope", false, "Input is a full decrypted response envelope")
	hysenDecodeCmd.Flags().BoolVar(&hysenLogical, "logical", false, "Input is an already unframed logical payload")
	hysenUnwrapCmd.Flags().BoolVar(&hysenFromEnvelope, "envelope", false, "Input is a full decrypted response envelope")

	rootCmd.AddCommand(hysenCmd)
}

var hysenCmd = &cobra.Command{
	Use:   "hysen",
	Short: "Heating controller protocol tools",
}

var hysenDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a captured status payload",
	Long: `Decode a heating controller status payload into its fields.

By default the input is the framed response payload (length byte, body,
CRC trailer). Use --envelope for a full decrypted response envelope, or
--logical when the framing has already been stripped.`,
	Example: `  # Framed response payload
  broadclimate hysen decode 3100...

  # Full decrypted envelope capture
  broadclimate hysen decode --envelope 5aa5...`,
	Args: cobra.ExactArgs(1),
	RunE: runHysenDecode,
}

func runHysenDecode(cmd *cobra.Command, args []string) error {
	payload, err := parseHexArg(args[0])
	if err != nil {
		return err
	}

	if hysenFromEnvelope {
		if payload, err = protocol.UnpackEnvelope(payload); err != nil {
			return err
		}
	}
	if !hysenLogical {
		if payload, err = protocol.ParseHysenResponse(payload); err != nil {
			return err
		}
	}

	status, err := hysen.DecodeStatus(payload)
	if err != nil {
		return err
	}
	printHysenStatus(status)
	return nil
}

func printHysenStatus(s *hysen.Status) {
	fmt.Printf("Power:          %v\n", s.Power)
	fmt.Printf("Heating:        %v\n", s.Active)
	fmt.Printf("Remote lock:    %v\n", s.RemoteLock)
	fmt.Printf("Room temp:      %.1f C\n", s.RoomTemp)
	fmt.Printf("Target temp:    %.1f C (manual override: %v)\n", s.TargetTemp, s.ManualTarget)
	fmt.Printf("External temp:  %.1f C\n", s.ExternalTemp)
	fmt.Printf("Mode:           auto=%d loop=%d sensor=%d\n", s.AutoMode, s.LoopMode, s.Sensor)
	fmt.Printf("Limits:         external=%d deadzone=%d upper=%d lower=%d\n",
		s.ExternalLimit, s.FloorDeadzone, s.UpperLimit, s.LowerLimit)
	fmt.Printf("Calibration:    %+.1f C\n", s.Calibration)
	fmt.Printf("Anti-freeze:    %v\n", s.AntiFreeze)
	fmt.Printf("Power-on mem:   %v\n", s.PowerOnMemory)
	fmt.Printf("Clock:          %02d:%02d:%02d day %d\n", s.Hour, s.Minute, s.Second, s.DayOfWeek)

	fmt.Println("Weekday schedule:")
	for i, e := range s.Weekday {
		fmt.Printf("  %d. %02d:%02d  %.1f C\n", i+1, e.StartHour, e.StartMinute, e.Temperature)
	}
	fmt.Println("Weekend schedule:")
	for i, e := range s.Weekend {
		fmt.Printf("  %d. %02d:%02d  %.1f C\n", i+1, e.StartHour, e.StartMinute, e.Temperature)
	}
}

var hysenFrameCmd = &cobra.Command{
	Use:   "frame <hex>",
	Short: "Frame a logical command payload for transmission",
	Long: `Wrap a logical command payload in request framing: the length
prefix and the CRC-16 trailer the controller expects.`,
	Example: `  # Frame the full status read command
  broadclimate hysen frame 010300000016`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := parseHexArg(args[0])
		if err != nil {
			return err
		}
		frame, err := protocol.BuildHysenRequest(payload)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(frame))
		return nil
	},
}

var hysenUnwrapCmd = &cobra.Command{
	Use:   "unwrap <hex>",
	Short: "Strip response framing and verify the CRC",
	Long: `Validate the framing of a captured response payload and print the
logical payload it carries. Fails on length or CRC mismatches.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := parseHexArg(args[0])
		if err != nil {
			return err
		}
		if hysenFromEnvelope {
			if payload, err = protocol.UnpackEnvelope(payload); err != nil {
				return err
			}
		}
		logical, err := protocol.ParseHysenResponse(payload)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(logical))
		return nil
	},
}

// parseHexArg decodes hex input, tolerating the separators capture tools
// tend to add.
func parseHexArg(s string) ([]byte, error) {
	cleaned := strings.NewReplacer(" ", "", ":", "", "\n", "", "\t", "").Replace(s)
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}
