package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kajell/broadclimate/internal/protocol"
)

func init() {
	checksumCmd.AddCommand(checksumCRC16Cmd)
	checksumCmd.AddCommand(checksumTargetCmd)

	rootCmd.AddCommand(checksumCmd)
}

var checksumCmd = &cobra.Command{
	Use:   "checksum",
	Short: "Checksum helpers for captured payloads",
}

var checksumCRC16Cmd = &cobra.Command{
	Use:   "crc16 <hex>",
	Short: "CRC-16 over the input (heating controller trailer)",
	Long: `Compute the CRC-16 the heating controller uses as a frame trailer.
The controller transmits it least significant byte first.`,
	Example: `  broadclimate checksum crc16 010300000016`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := parseHexArg(args[0])
		if err != nil {
			return err
		}
		crc := protocol.CRC16(data)
		fmt.Printf("crc16: 0x%04x (wire order: %02x %02x)\n", crc, byte(crc), byte(crc>>8))
		return nil
	},
}

var checksumTargetCmd = &cobra.Command{
	Use:   "target <hex>",
	Short: "Target-sum trailer over the input (air conditioner)",
	Long: `Compute the air conditioner's target-sum trailer bytes over the
input. For a full set command, pass the packet bytes before the trailer
offset.`,
	Example: `  broadclimate checksum target 1900bb0006800000 0f000101`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		for _, arg := range args {
			part, err := parseHexArg(arg)
			if err != nil {
				return err
			}
			data = append(data, part...)
		}
		lo, hi := protocol.TargetSum(data)
		fmt.Printf("trailer: %02x %02x\n", lo, hi)
		return nil
	},
}
