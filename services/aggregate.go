package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/malusev998/ecb-rates/table"
)

var ErrNoObservations = errors.New("currency column has no numeric observations")

// MeanRates computes the arithmetic mean of every requested currency's
// column. Cells that are empty or non-numeric (the source marks gaps with
// "N/A") carry no observation: they are excluded from the mean, not counted
// as zero. A column with no observations at all is an error rather than a
// NaN in the report.
func MeanRates(history *table.Table, currencies []string) (map[string]float64, error) {
	means := make(map[string]float64, len(currencies))

	for _, currency := range currencies {
		column, ok := history.Column(currency)

		if !ok {
			return nil, missingColumn(currency, history)
		}

		sum := decimal.Zero
		var observations int64

		for _, cell := range column {
			value, err := decimal.NewFromString(strings.TrimSpace(cell))

			if err != nil {
				continue
			}

			sum = sum.Add(value)
			observations++
		}

		if observations == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoObservations, currency)
		}

		mean, _ := sum.Div(decimal.NewFromInt(observations)).Float64()
		means[currency] = mean
	}

	return means, nil
}
