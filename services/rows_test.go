package services_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/require"

	"github.com/malusev998/ecb-rates/services"
)

func TestBuildRows(t *testing.T) {
	t.Parallel()

	t.Run("preserves the caller-supplied currency order", func(t *testing.T) {
		asserts := require.New(t)
		currencies := []string{"USD", "SEK", "GBP", "JPY"}
		latest := map[string]float64{"JPY": 120.0, "GBP": 0.8, "SEK": 10.0, "USD": 1.1}
		means := map[string]float64{"GBP": 0.85, "USD": 1.2, "JPY": 110.0, "SEK": 9.5}

		rows, err := services.BuildRows(latest, means, currencies)

		asserts.NoError(err)
		asserts.Len(rows, 4)

		for i, row := range rows {
			asserts.Equal(currencies[i], row.CurrencyCode)
			asserts.Equal(latest[currencies[i]], row.Rate)
			asserts.Equal(means[currencies[i]], row.MeanHistoricalRate)
		}
	})

	t.Run("pairs generated currencies regardless of map insertion order", func(t *testing.T) {
		asserts := require.New(t)

		currencies := make([]string, 0, 8)
		latest := make(map[string]float64, 8)
		means := make(map[string]float64, 8)

		for len(currencies) < 8 {
			code := faker.Currency()

			if _, exists := latest[code]; exists {
				continue
			}

			currencies = append(currencies, code)
			latest[code] = rand.Float64() * 100
			means[code] = rand.Float64() * 100
		}

		rows, err := services.BuildRows(latest, means, currencies)

		asserts.NoError(err)
		asserts.Len(rows, len(currencies))

		for i, row := range rows {
			asserts.Equal(currencies[i], row.CurrencyCode)
			asserts.Equal(latest[currencies[i]], row.Rate)
			asserts.Equal(means[currencies[i]], row.MeanHistoricalRate)
		}
	})

	t.Run("fails when the latest rate is missing", func(t *testing.T) {
		asserts := require.New(t)

		rows, err := services.BuildRows(
			map[string]float64{},
			map[string]float64{"USD": 1.2},
			[]string{"USD"},
		)

		asserts.Nil(rows)
		asserts.True(errors.Is(err, services.ErrIncompleteRates))
		asserts.Contains(err.Error(), "USD")
	})

	t.Run("fails when the historical mean is missing", func(t *testing.T) {
		asserts := require.New(t)

		rows, err := services.BuildRows(
			map[string]float64{"USD": 1.1},
			map[string]float64{},
			[]string{"USD"},
		)

		asserts.Nil(rows)
		asserts.True(errors.Is(err, services.ErrIncompleteRates))
	})
}
