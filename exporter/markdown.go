// Package exporter renders exchange rate rows into the markdown report.
package exporter

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	ecbrates "github.com/malusev998/ecb-rates"
)

var headers = [3]string{"Currency Code", "Rate", "Mean Historical Rate"}

type MarkdownWriter struct{}

func formatRate(rate float64) string {
	return decimal.NewFromFloat(rate).StringFixed(6)
}

// Render produces the full markdown table, padded to column width and
// terminated by a trailing newline.
func Render(rows []ecbrates.ExchangeRow) string {
	cells := make([][3]string, 0, len(rows))
	widths := [3]int{len(headers[0]), len(headers[1]), len(headers[2])}

	for _, row := range rows {
		line := [3]string{row.CurrencyCode, formatRate(row.Rate), formatRate(row.MeanHistoricalRate)}

		for i, cell := range line {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}

		cells = append(cells, line)
	}

	var builder strings.Builder

	writeLine := func(line [3]string) {
		fmt.Fprintf(
			&builder,
			"| %-*s | %-*s | %-*s |\n",
			widths[0], line[0],
			widths[1], line[1],
			widths[2], line[2],
		)
	}

	writeLine(headers)
	writeLine([3]string{
		strings.Repeat("-", widths[0]),
		strings.Repeat("-", widths[1]),
		strings.Repeat("-", widths[2]),
	})

	for _, line := range cells {
		writeLine(line)
	}

	return builder.String()
}

// Write renders the rows fully in memory and only then touches the output
// path, so a failed run never leaves a partial report behind.
func (MarkdownWriter) Write(rows []ecbrates.ExchangeRow, outputPath string) error {
	if err := os.WriteFile(outputPath, []byte(Render(rows)), 0644); err != nil {
		return fmt.Errorf("writing report to %s: %w", outputPath, err)
	}

	return nil
}
