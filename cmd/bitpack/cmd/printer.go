package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spacemeshos/bitfifo/config"
)

func formatBytes(data []byte, format string) string {
	if format == config.FormatBinary {
		parts := make([]string, len(data))
		for i, b := range data {
			parts[i] = printByte(b)
		}
		return strings.Join(parts, " ")
	}
	return hex.EncodeToString(data)
}

// printByte renders b most-significant bit first.
func printByte(b byte) string {
	var sb strings.Builder
	for bit := 7; bit >= 0; bit-- {
		mask := byte(1 << bit)
		if b&mask == mask {
			sb.WriteString("1")
		} else {
			sb.WriteString("0")
		}
	}
	return sb.String()
}

// parseBytes reads back the output of formatBytes.
func parseBytes(s string, format string) ([]byte, error) {
	if format != config.FormatBinary {
		data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return data, nil
	}

	fields := strings.Fields(s)
	data := make([]byte, len(fields))
	for i, field := range fields {
		b, err := strconv.ParseUint(field, 2, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid binary byte #%d: %w", i, err)
		}
		data[i] = byte(b)
	}
	return data, nil
}
