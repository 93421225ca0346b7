package ecbrates

// ExchangeRow is one line of the final report. Built once per configured
// currency and never mutated afterwards.
type ExchangeRow struct {
	CurrencyCode       string
	Rate               float64
	MeanHistoricalRate float64
}
