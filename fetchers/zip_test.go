package fetchers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/ecb-rates/fetchers"
)

type (
	zipHandler     struct{}
	failingHandler struct{ status int }
	slowHandler    struct{ delay time.Duration }
)

func (zipHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte("zip-payload"))
}

func (h failingHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	writer.WriteHeader(h.status)
}

func (h slowHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	time.Sleep(h.delay)
	writer.WriteHeader(http.StatusOK)
}

func TestZipFetcher_Fetch(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	server := httptest.NewServer(zipHandler{})

	defer server.Close()

	fetcher := fetchers.ZipFetcher{}
	body, err := fetcher.Fetch(server.URL)

	asserts.NoError(err)
	asserts.Equal([]byte("zip-payload"), body)
}

func TestZipFetcher_FetchStatusErrors(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name     string
		status   int
		expected error
	}{
		{"not found", http.StatusNotFound, fetchers.ErrClient},
		{"server failure", http.StatusInternalServerError, fetchers.ErrServer},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			asserts := require.New(t)
			server := httptest.NewServer(failingHandler{status: test.status})

			defer server.Close()

			fetcher := fetchers.ZipFetcher{}
			body, err := fetcher.Fetch(server.URL)

			asserts.Nil(body)
			asserts.True(errors.Is(err, test.expected))
			asserts.Contains(err.Error(), server.URL)
		})
	}
}

func TestZipFetcher_FetchTimeout(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	server := httptest.NewServer(slowHandler{delay: 500 * time.Millisecond})

	defer server.Close()

	fetcher := fetchers.ZipFetcher{Timeout: 20 * time.Millisecond}
	body, err := fetcher.Fetch(server.URL)

	asserts.Nil(body)
	asserts.Error(err)
}
