package services

import (
	"errors"
	"fmt"

	ecbrates "github.com/malusev998/ecb-rates"
)

var ErrIncompleteRates = errors.New("currency missing from computed rates")

// BuildRows joins the latest rates with the historical means into one row
// per currency, preserving the caller-supplied currency order exactly.
func BuildRows(latest, means map[string]float64, currencies []string) ([]ecbrates.ExchangeRow, error) {
	rows := make([]ecbrates.ExchangeRow, 0, len(currencies))

	for _, currency := range currencies {
		rate, ok := latest[currency]

		if !ok {
			return nil, fmt.Errorf("%w: %s has no latest rate", ErrIncompleteRates, currency)
		}

		mean, ok := means[currency]

		if !ok {
			return nil, fmt.Errorf("%w: %s has no historical mean", ErrIncompleteRates, currency)
		}

		rows = append(rows, ecbrates.ExchangeRow{
			CurrencyCode:       currency,
			Rate:               rate,
			MeanHistoricalRate: mean,
		})
	}

	return rows, nil
}
