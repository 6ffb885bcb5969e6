package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitfifo/layout"
)

var inFile string

// unpackCmd represents the unpack command.
var unpackCmd = &cobra.Command{
	Use:   "unpack [bytes]",
	Short: "Unpack bytes into the values of a layout",
	Long: `unpack decodes every whole record held in the input and prints a table of
field values. The input is either an argument in the configured format or the
raw content of the file given with --in.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := loadLayout()
		if err != nil {
			return err
		}

		data, err := readInput(args)
		if err != nil {
			return err
		}

		records, err := layout.UnpackRecords(l, data)
		if err != nil {
			return err
		}
		logger.Info("bitpack: unpacked records",
			zap.String("layout", l.Name),
			zap.Int("records", len(records)),
			zap.String("size", bytefmt.ByteSize(uint64(len(data)))),
		)

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Record", "Field", "Kind", "Width", "Value"})
		for i, rec := range records {
			for _, v := range rec {
				table.Append([]string{
					strconv.Itoa(i),
					v.Name,
					string(v.Kind),
					strconv.FormatUint(uint64(v.BitCount()), 10),
					fmt.Sprintf("%#x", v.Value),
				})
			}
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unpackCmd)

	unpackCmd.Flags().StringVarP(&inFile, "in", "i", "", "read raw bytes from this file")
}

func readInput(args []string) ([]byte, error) {
	switch {
	case inFile != "" && len(args) > 0:
		return nil, errors.New("either an argument or --in is allowed, not both")
	case inFile != "":
		data, err := os.ReadFile(inFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read %v: %w", inFile, err)
		}
		return data, nil
	case len(args) == 1:
		return parseBytes(args[0], cfg.Format)
	default:
		return nil, errors.New("no input; pass bytes as an argument or use --in")
	}
}
