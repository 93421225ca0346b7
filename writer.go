package ecbrates

type (
	ReportWriter interface {
		Write(rows []ExchangeRow, outputPath string) error
	}
)
