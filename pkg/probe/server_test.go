package probe_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"deal_feed/pkg/probe"
)

func TestServerHandler(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		endpoint   string
		ready      func() bool
		statusCode int
		body       []byte
	}{
		{
			name:       "Health handler",
			endpoint:   "/healthz",
			statusCode: http.StatusOK,
			body:       []byte(`{"name":"deal-feed","version":"v0.0.1"}`),
		},
		{
			name:       "Ready handler",
			endpoint:   "/ready",
			statusCode: http.StatusOK,
			body:       []byte(`{"name":"deal-feed","version":"v0.0.1"}`),
		},
		{
			name:       "Not ready yet",
			endpoint:   "/ready",
			ready:      func() bool { return false },
			statusCode: http.StatusServiceUnavailable,
			body:       []byte{},
		},
		{
			name:       "Health ignores readiness",
			endpoint:   "/healthz",
			ready:      func() bool { return false },
			statusCode: http.StatusOK,
			body:       []byte(`{"name":"deal-feed","version":"v0.0.1"}`),
		},
		{
			name:       "Invalid endpoint",
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
			body:       []byte("404 page not found\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			server := probe.NewServer(":0", probe.Options{Name: "deal-feed", Version: "v0.0.1"}).
				WithReadiness(tc.ready)

			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.endpoint, http.NoBody))

			rq.Equal(tc.statusCode, rec.Code)
			rq.Equal(tc.body, rec.Body.Bytes())
		})
	}
}

func TestServerRun(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	probeServer := probe.NewServer(":10001", probe.Options{Name: "deal-feed", Version: "v0.0.1"})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return probeServer.Run(ctx)
	})

	// Wait for server to start.
	time.Sleep(time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://:10001/healthz", http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)

	defer resp.Body.Close()

	rq.Equal(http.StatusOK, resp.StatusCode)

	bodyBytes, err := io.ReadAll(resp.Body)
	rq.NoError(err)
	rq.JSONEq(`{"name":"deal-feed","version":"v0.0.1"}`, string(bodyBytes))

	cancel()

	rq.NoError(g.Wait())
}
