package fetchers

import (
	"errors"
	"net/http"
	"time"
)

const (
	DailyZipURL   = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref.zip"
	HistoryZipURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist.zip"

	DefaultTimeout = 30 * time.Second
)

var (
	ErrClient  = errors.New("client error")
	ErrServer  = errors.New("server error")
	ErrUnknown = errors.New("unknown error")
)

func handleHTTPStatusCodeError(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	switch {
	case res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError:
		return ErrClient
	case res.StatusCode >= http.StatusInternalServerError:
		return ErrServer
	}

	return ErrUnknown
}
