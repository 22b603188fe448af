package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/temperature-heatmap/internal/heatmap"
)

const scenarioJSON = `{"baseTemperature":8.66,"monthlyVariance":[{"year":1753,"month":1,"variance":-1.366},{"year":1753,"month":2,"variance":-3.72}]}`

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestHTTPSourceFetch(t *testing.T) {
	srv, hits := newTestServer(t, http.StatusOK, scenarioJSON)
	src := NewHTTPSource(srv.Client(), srv.URL, 0)

	ds, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, 8.66, ds.BaseTemperature)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, heatmap.Record{Year: 1753, Month: 1, Variance: -1.366}, ds.Records[0])
}

func TestHTTPSourceDefaultsURL(t *testing.T) {
	src := NewHTTPSource(http.DefaultClient, "", 0)
	assert.Equal(t, DefaultDatasetURL, src.URL())
	assert.Equal(t, "http", src.Name())
}

func TestHTTPSourceNoRetryByDefault(t *testing.T) {
	srv, hits := newTestServer(t, http.StatusInternalServerError, "")
	src := NewHTTPSource(srv.Client(), srv.URL, 0)

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, errServerError)
	assert.Equal(t, int32(1), hits.Load())
}

func TestHTTPSourceRetriesWhenConfigured(t *testing.T) {
	srv, hits := newTestServer(t, http.StatusTooManyRequests, "")
	src := NewHTTPSource(srv.Client(), srv.URL, 1)

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, errRateLimited)
	assert.Equal(t, int32(2), hits.Load())
}

func TestHTTPSourceUnexpectedStatus(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNotFound, "")
	src := NewHTTPSource(srv.Client(), srv.URL, 0)

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, errUnexpected)
}

func TestHTTPSourceMalformedBody(t *testing.T) {
	for name, body := range map[string]string{
		"not json":    `<html>`,
		"no records":  `{"baseTemperature":8.66,"monthlyVariance":[]}`,
		"bad month":   `{"baseTemperature":8.66,"monthlyVariance":[{"year":1753,"month":13,"variance":0}]}`,
		"wrong shape": `{"baseTemperature":"warm"}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv, _ := newTestServer(t, http.StatusOK, body)
			src := NewHTTPSource(srv.Client(), srv.URL, 0)

			_, err := src.Fetch(context.Background())
			assert.ErrorIs(t, err, heatmap.ErrMalformedDataset)
		})
	}
}

func TestHTTPSourceHonoursContext(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, scenarioJSON)
	src := NewHTTPSource(srv.Client(), srv.URL, 0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := src.Fetch(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDoRequestWithResilienceRejectsBadConfig(t *testing.T) {
	_, err := doRequestWithResilience(context.Background(), HTTPClientConfig{}, nil, nil)
	assert.ErrorIs(t, err, errNoHTTPClient)

	_, err = doRequestWithResilience(context.Background(), HTTPClientConfig{
		Client:  http.DefaultClient,
		Backoff: BackoffConfig{MaxRetries: -1, InitialInterval: time.Second},
	}, nil, nil)
	assert.ErrorIs(t, err, errInvalidConfig)
}
