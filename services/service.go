package services

import (
	"fmt"

	ecbrates "github.com/malusev998/ecb-rates"
	"github.com/malusev998/ecb-rates/archive"
	"github.com/malusev998/ecb-rates/table"
)

type (
	ReportConfig struct {
		DailyURL   string
		HistoryURL string
		Currencies []string
		OutputFile string
	}

	// ReportService runs the whole pipeline: download both archives, parse
	// their tabular members, extract the latest and mean rates and write the
	// report. Steps run sequentially and the first failure aborts the run
	// before anything is written.
	ReportService struct {
		Fetcher ecbrates.Fetcher
		Writer  ecbrates.ReportWriter
	}
)

func (s ReportService) tableFromArchive(url string) (*table.Table, error) {
	zipBytes, err := s.Fetcher.Fetch(url)

	if err != nil {
		return nil, err
	}

	csvBytes, err := archive.FirstTabularMember(zipBytes)

	if err != nil {
		return nil, fmt.Errorf("extracting from %s: %w", url, err)
	}

	return table.Parse(csvBytes)
}

func (s ReportService) Generate(config ReportConfig) ([]ecbrates.ExchangeRow, error) {
	daily, err := s.tableFromArchive(config.DailyURL)

	if err != nil {
		return nil, err
	}

	history, err := s.tableFromArchive(config.HistoryURL)

	if err != nil {
		return nil, err
	}

	latest, err := LatestRates(daily, config.Currencies)

	if err != nil {
		return nil, err
	}

	means, err := MeanRates(history, config.Currencies)

	if err != nil {
		return nil, err
	}

	rows, err := BuildRows(latest, means, config.Currencies)

	if err != nil {
		return nil, err
	}

	if err := s.Writer.Write(rows, config.OutputFile); err != nil {
		return nil, err
	}

	return rows, nil
}
