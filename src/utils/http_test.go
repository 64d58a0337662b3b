package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastBackOff(t *testing.T) {
	t.Helper()

	saved := retryBackOff
	retryBackOff = []time.Duration{time.Millisecond, time.Millisecond}
	t.Cleanup(func() { retryBackOff = saved })
}

func TestDoRequestWithRetry(t *testing.T) {
	fastBackOff(t)

	t.Run("rate limited once then succeeds", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		res, err := DoRequestWithRetry(server.Client(), req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, 2, calls)
	})

	t.Run("server errors are retried", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		res, err := DoRequestWithRetry(server.Client(), req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, 2, calls)
	})

	t.Run("gives up once the backoff sequence is exhausted", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		_, err = DoRequestWithRetry(server.Client(), req)
		require.Error(t, err)
		assert.Equal(t, len(retryBackOff)+1, calls)
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		res, err := DoRequestWithRetry(server.Client(), req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, 1, calls)
	})
}
