package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitfifo/layout"
)

var outFile string

// packCmd represents the pack command.
var packCmd = &cobra.Command{
	Use:   "pack [values...]",
	Short: "Pack values into bytes following a layout",
	Long: `pack takes unsigned values (decimal, 0x hex, 0b binary or 0o octal) in
layout field order and packs them back to back. Several records can be packed
at once by passing a multiple of the layout's field count.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := loadLayout()
		if err != nil {
			return err
		}

		records, err := parseRecords(l, args)
		if err != nil {
			return err
		}

		data, err := layout.PackRecords(l, records, cfg.PadBit())
		if err != nil {
			return err
		}
		logger.Info("bitpack: packed records",
			zap.String("layout", l.Name),
			zap.Int("records", len(records)),
			zap.Uint("bits", uint(len(records))*l.BitCount()),
			zap.String("size", bytefmt.ByteSize(uint64(len(data)))),
		)

		if outFile != "" {
			if err := atomic.WriteFile(outFile, bytes.NewReader(data)); err != nil {
				return fmt.Errorf("failed to write %v: %w", outFile, err)
			}
			logger.Info("bitpack: output written", zap.String("path", outFile))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), formatBytes(data, cfg.Format))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().StringVarP(&outFile, "out", "o", "", "write raw bytes to this file instead of printing them")
}

func parseRecords(l *layout.Layout, args []string) ([][]uint64, error) {
	if len(args)%len(l.Fields) != 0 {
		return nil, fmt.Errorf("%w; expected: a multiple of %d, given: %d", layout.ErrValueCount, len(l.Fields), len(args))
	}

	records := make([][]uint64, 0, len(args)/len(l.Fields))
	for start := 0; start < len(args); start += len(l.Fields) {
		rec := make([]uint64, len(l.Fields))
		for i, arg := range args[start : start+len(l.Fields)] {
			v, err := strconv.ParseUint(arg, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q for field `%v`: %w", arg, l.Fields[i].Name, err)
			}
			rec[i] = v
		}
		records = append(records, rec)
	}
	return records, nil
}
