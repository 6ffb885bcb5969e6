package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitfifo/config"
)

var (
	// Version is the version of the binary.
	Version string

	// Commit is the commit hash of the binary.
	Commit string

	cfgFile     string
	printConfig bool

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bitpack",
	Short: "Pack and unpack bit-granular records",
	Long: `bitpack packs unsigned values into bit fields described by a YAML layout,
with no byte alignment between fields, and unpacks them again.
For more details take a look at the subcommands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = loaded

		if printConfig {
			spew.Fdump(cmd.ErrOrStderr(), cfg)
		}

		logger, err = newLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize zap logger: %w", err)
		}
		logger.Debug("bitpack: starting",
			zap.String("version", Version),
			zap.String("commit", Commit),
			zap.String("command", cmd.Name()),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaults := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&cfgFile, "config", "",
		fmt.Sprintf("path to configuration file (default %v)", config.DefaultConfigFile))

	flags.BoolVar(&printConfig, "print-config", false,
		"print the effective configuration to stderr")

	flags.String("log-level", defaults.LogLevel,
		"log level (debug, info, warn, error, dpanic, panic, fatal)")

	flags.String("log-encoding", defaults.LogEncoding,
		"log encoding (console, json)")

	flags.String("layout", defaults.Layout,
		"path to the YAML record layout (required)")

	flags.Uint("pad", defaults.Pad,
		"bit (0 or 1) filling the last byte of packed output")

	flags.String("format", defaults.Format,
		"how packed bytes are printed (hex, binary)")
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: cfg.LogEncoding,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		// stdout carries packed data.
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapCfg.Build()
}
