package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/malusev998/ecb-rates/table"
)

var ErrMissingColumn = errors.New("currency is not a column of the table")

func missingColumn(currency string, t *table.Table) error {
	return fmt.Errorf("%w: %s, available columns: %v", ErrMissingColumn, currency, t.Labels())
}

func parseRate(cell string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(cell), 64)
}

// LatestRates reads the daily table's last row and returns the rate for
// every requested currency. Only the last row is ever consulted.
func LatestRates(daily *table.Table, currencies []string) (map[string]float64, error) {
	if _, err := daily.LastRow(); err != nil {
		return nil, err
	}

	rates := make(map[string]float64, len(currencies))

	for _, currency := range currencies {
		cell, ok := daily.Cell(daily.Len()-1, currency)

		if !ok {
			return nil, missingColumn(currency, daily)
		}

		rate, err := parseRate(cell)

		if err != nil {
			return nil, fmt.Errorf("parsing latest %s rate %q: %w", currency, cell, err)
		}

		rates[currency] = rate
	}

	return rates, nil
}
