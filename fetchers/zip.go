package fetchers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type (
	// ZipFetcher downloads a published archive with a single bounded GET.
	// There is no retry: a transport failure, an elapsed timeout or a non-2xx
	// status aborts the whole run.
	ZipFetcher struct {
		Ctx     context.Context
		Client  *http.Client
		Timeout time.Duration
	}
)

func (f ZipFetcher) Fetch(url string) ([]byte, error) {
	ctx := f.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	timeout := f.Timeout

	if timeout == 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	client := f.Client

	if client == nil {
		client = &http.Client{}
	}

	res, err := client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", url, err)
	}

	defer res.Body.Close()

	if err := handleHTTPStatusCodeError(res); err != nil {
		return nil, fmt.Errorf("downloading %s: status %d: %w", url, res.StatusCode, err)
	}

	body, err := io.ReadAll(res.Body)

	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}

	return body, nil
}
