package config

import (
	"fmt"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitfifo/bitstream"
)

const (
	DefaultConfigDirName  = ".bitpack"
	DefaultConfigFileName = "config.yaml"

	DefaultLogLevel    = "info"
	DefaultLogEncoding = "console"
	DefaultPad         = 0
	DefaultFormat      = FormatHex
)

const (
	FormatHex    = "hex"
	FormatBinary = "binary"
)

var DefaultConfigFile = filepath.Join(smutil.GetUserHomeDirectory(), DefaultConfigDirName, DefaultConfigFileName)

type Config struct {
	LogLevel    string `mapstructure:"log-level"`
	LogEncoding string `mapstructure:"log-encoding"`

	// Layout is the path of the YAML record layout.
	Layout string `mapstructure:"layout"`
	// Pad is the bit (0 or 1) filling the last byte of packed output.
	Pad uint `mapstructure:"pad"`
	// Format is how packed bytes are printed: hex or binary.
	Format string `mapstructure:"format"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:    DefaultLogLevel,
		LogEncoding: DefaultLogEncoding,
		Pad:         DefaultPad,
		Format:      DefaultFormat,
	}
}

func (cfg *Config) Validate() error {
	if _, err := cfg.Level(); err != nil {
		return fmt.Errorf("invalid `LogLevel`; expected: debug, info, warn, error, dpanic, panic or fatal, given: %v", cfg.LogLevel)
	}

	if cfg.LogEncoding != "console" && cfg.LogEncoding != "json" {
		return fmt.Errorf("invalid `LogEncoding`; expected: console or json, given: %v", cfg.LogEncoding)
	}

	if cfg.Pad > 1 {
		return fmt.Errorf("invalid `Pad`; expected: 0 or 1, given: %d", cfg.Pad)
	}

	if cfg.Format != FormatHex && cfg.Format != FormatBinary {
		return fmt.Errorf("invalid `Format`; expected: %v or %v, given: %v", FormatHex, FormatBinary, cfg.Format)
	}

	return nil
}

// Level returns the parsed log level.
func (cfg *Config) Level() (zapcore.Level, error) {
	var lvl zapcore.Level
	err := lvl.UnmarshalText([]byte(cfg.LogLevel))
	return lvl, err
}

func (cfg *Config) PadBit() bitstream.Bit {
	return cfg.Pad == 1
}

// CanonicalLayout returns the layout path with ~ and relative parts resolved.
func (cfg *Config) CanonicalLayout() string {
	return smutil.GetCanonicalPath(cfg.Layout)
}
