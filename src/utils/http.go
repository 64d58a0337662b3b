package utils

import (
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

var retryBackOff = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}

// DoRequestWithRetry executes req, retrying rate-limited (429) and server
// (5xx) responses with a doubling backoff. Other statuses are returned to the
// caller untouched; the caller owns the response body on success.
func DoRequestWithRetry(client *http.Client, req *http.Request) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		res, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("DoRequestWithRetry: request failed: %w", err)
		}

		if res.StatusCode != http.StatusTooManyRequests && res.StatusCode < http.StatusInternalServerError {
			return res, nil
		}

		res.Body.Close()

		if attempt >= len(retryBackOff) {
			return nil, fmt.Errorf("DoRequestWithRetry: giving up after %d attempts, http code %v", attempt+1, res.Status)
		}

		log.Warnf("DoRequestWithRetry: http code %v, backoff %v", res.Status, retryBackOff[attempt])

		select {
		case <-time.After(retryBackOff[attempt]):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}
}
