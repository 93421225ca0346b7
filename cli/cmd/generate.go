package cmd

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/malusev998/ecb-rates/exporter"
	"github.com/malusev998/ecb-rates/fetchers"
	"github.com/malusev998/ecb-rates/services"
)

func setDefaults() {
	viper.SetDefault("urls.daily", fetchers.DailyZipURL)
	viper.SetDefault("urls.history", fetchers.HistoryZipURL)
	viper.SetDefault("currencies", []string{"USD", "SEK", "GBP", "JPY"})
	viper.SetDefault("output", "exchange_rates.md")
	viper.SetDefault("timeout", fetchers.DefaultTimeout)
}

func readConfig() error {
	err := viper.ReadInConfig()

	if err == nil {
		return nil
	}

	// The defaults cover every key, so a missing config file is not an error.
	var notFound viper.ConfigFileNotFoundError
	var pathError *os.PathError

	if errors.As(err, &notFound) || errors.As(err, &pathError) {
		return nil
	}

	return err
}

func reportConfig(output string) services.ReportConfig {
	config := services.ReportConfig{
		DailyURL:   viper.GetString("urls.daily"),
		HistoryURL: viper.GetString("urls.history"),
		Currencies: viper.GetStringSlice("currencies"),
		OutputFile: viper.GetString("output"),
	}

	if output != "" {
		config.OutputFile = output
	}

	return config
}

func generate(config *Config) *cobra.Command {
	var output string
	var timeout time.Duration

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Download the ECB rate archives and write the report",
	}

	logger := log.New(generateCmd.OutOrStdout(), "generate ", 0)

	generateCmd.RunE = func(cmd *cobra.Command, args []string) error {
		setDefaults()

		if err := readConfig(); err != nil {
			return err
		}

		runConfig := reportConfig(output)

		if timeout == 0 {
			timeout = viper.GetDuration("timeout")
		}

		service := services.ReportService{
			Fetcher: fetchers.ZipFetcher{Ctx: config.Ctx, Timeout: timeout},
			Writer:  exporter.MarkdownWriter{},
		}

		runID := uuid.NewString()

		if *config.debug {
			logger.Printf("run %s: fetching %s and %s", runID, runConfig.DailyURL, runConfig.HistoryURL)
		}

		rows, err := service.Generate(runConfig)

		if err != nil {
			return err
		}

		if *config.debug {
			for i, row := range rows {
				logger.Printf("%d\trun %s: %s rate %f, historical mean %f", i, runID, row.CurrencyCode, row.Rate, row.MeanHistoricalRate)
			}
		}

		logger.Printf("done wrote %s", runConfig.OutputFile)

		return nil
	}

	generateCmd.Flags().StringVarP(&output, "output", "o", "", "Path of the report file, overrides the config")
	generateCmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "Timeout for the archive downloads, overrides the config")

	return generateCmd
}
