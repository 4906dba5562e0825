// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP request helper shared by the
// UniProt and AlphaFold clients.
package httputil

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// RetryBaseDelay is the first backoff step. Tests override this to avoid
// real sleeps.
var RetryBaseDelay = 2 * time.Second

// MaxRetryAfter caps a server-supplied Retry-After value.
var MaxRetryAfter = 60 * time.Second

const defaultMaxRetries = 3

// Retryable reports whether a response status is worth retrying: 429 Too
// Many Requests and 503 Service Unavailable.
func Retryable(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

// DoWithRetry executes req and retries retryable statuses with exponential
// backoff starting at RetryBaseDelay. A Retry-After header given in
// seconds replaces the computed delay, capped at MaxRetryAfter.
//
// When maxRetries is 0 the default (3) is used. Retried response bodies are
// drained and closed. If ctx is cancelled while waiting, ctx.Err() is
// returned. After the last retry the final response is returned as-is so
// the caller can report its status.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int, logger *zap.Logger) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if !Retryable(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}

		wait := backoff(attempt, resp.Header.Get("Retry-After"))
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		logger.Debug("upstream busy, retrying",
			zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode),
			zap.Duration("wait", wait),
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", maxRetries))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func backoff(attempt int, retryAfter string) time.Duration {
	if secs, err := strconv.Atoi(retryAfter); err == nil && secs >= 0 {
		d := time.Duration(secs) * time.Second
		if d > MaxRetryAfter {
			d = MaxRetryAfter
		}
		return d
	}
	return RetryBaseDelay << attempt
}
