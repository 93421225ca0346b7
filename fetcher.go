package ecbrates

type (
	Fetcher interface {
		Fetch(url string) ([]byte, error)
	}
)
