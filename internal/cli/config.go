package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	envPrefix  = "FP"
	configName = ".fpctl"
)

func (a *app) initConfig(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	if a.cfgFile == "" {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("locating home directory: %w", err)
		}
		a.v.AddConfigPath(".")
		a.v.AddConfigPath(home)
		a.v.SetConfigName(configName)
	} else {
		a.v.SetConfigFile(a.cfgFile)
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	logger, err := newLogger(a.v.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("config loaded",
		zap.String("file", a.v.ConfigFileUsed()),
		zap.String("backend", a.v.GetString("backend")))

	if timeout := a.v.GetDuration("timeout"); timeout > 0 {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		cobra.OnFinalize(cancel)
		cmd.SetContext(ctx)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
