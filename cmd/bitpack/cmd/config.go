package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spacemeshos/bitfifo/config"
	"github.com/spacemeshos/bitfifo/layout"
)

const envPrefix = "BITPACK"

// loadConfig merges, by increasing priority, the defaults, the config file,
// BITPACK_* environment variables and the flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	vip := viper.New()
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	if err := loadConfigFile(vip); err != nil {
		return config.Config{}, err
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := vip.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return config.Config{}, fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	loaded := config.DefaultConfig()
	if err := vip.Unmarshal(&loaded); err != nil {
		return config.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	return loaded, nil
}

// loadConfigFile reads the file given by --config. Without the flag the
// default file is read if it exists.
func loadConfigFile(vip *viper.Viper) error {
	fileLocation := cfgFile
	if fileLocation == "" {
		fileLocation = config.DefaultConfigFile
	}

	vip.SetConfigFile(smutil.GetCanonicalPath(fileLocation))
	err := vip.ReadInConfig()
	switch {
	case err == nil:
		return nil
	case cfgFile == "" && errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("failed to read config file: %w", err)
	}
}

func loadLayout() (*layout.Layout, error) {
	if cfg.Layout == "" {
		return nil, errors.New("--layout flag is required")
	}
	return layout.Load(cfg.CanonicalLayout())
}
