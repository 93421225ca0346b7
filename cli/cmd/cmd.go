package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:     "ecb-rates",
		Short:   "ECB exchange rate report generator",
		Version: "v1.0.0",
	}
	debug      bool
	configFile string
)

type (
	Config struct {
		Ctx   context.Context
		debug *bool
	}
)

func Execute(config *Config) error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yml", "Path to config file")
	cobra.OnInitialize()

	absolutePath, _ := filepath.Abs(configFile)

	viper.SetConfigFile(absolutePath)
	viper.SetEnvPrefix("ECB_RATES")
	viper.AutomaticEnv()

	config.debug = &debug

	rootCmd.AddCommand(generate(config))

	return rootCmd.Execute()
}
