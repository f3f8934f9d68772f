package providers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/sony/gobreaker"

	"github.com/NishantDas0079/weather-dashboard/internal/common"
	"github.com/NishantDas0079/weather-dashboard/internal/weather"
)

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// HTTPClientConfig bundles HTTP client and resilience settings.
type HTTPClientConfig struct {
	Client  *http.Client
	Backoff BackoffConfig
}

var (
	errCircuitOpen   = errors.New("circuit breaker open")
	errNoHTTPClient  = errors.New("http client not configured")
	errInvalidConfig = errors.New("invalid backoff configuration")
)

// permanentError wraps a failure that must not be retried (bad credentials,
// unknown city). The wrapped sentinel stays visible to errors.Is.
type permanentError struct{ err error }

func (p permanentError) Error() string { return p.err.Error() }
func (p permanentError) Unwrap() error { return p.err }

// classifyStatus maps an HTTP status code onto the weather fetch-failure
// sentinels. 2xx codes never reach this function.
func classifyStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return permanentError{fmt.Errorf("%w (status %d)", weather.ErrUnauthorized, code)}
	case code == http.StatusNotFound:
		return permanentError{fmt.Errorf("%w (status %d)", weather.ErrNotFound, code)}
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w (status %d)", weather.ErrRateLimited, code)
	case code >= 500:
		return fmt.Errorf("%w: upstream status %d", weather.ErrNetwork, code)
	default:
		return fmt.Errorf("unexpected status code %d", code)
	}
}

// classifyTransport maps a transport-level error onto the sentinels.
// Plain cancellation passes through untouched.
func classifyTransport(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", weather.ErrTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) ||
		common.HasAny(err.Error(), "timeout", "deadline exceeded") {
		return fmt.Errorf("%w: %v", weather.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", weather.ErrNetwork, err)
}

// doRequestWithResilience executes the HTTP request with retries, exponential
// backoff, and a circuit breaker. Permanent failures (401/403/404) abort the
// retry loop immediately.
func doRequestWithResilience(
	ctx context.Context,
	cfg HTTPClientConfig,
	cb *gobreaker.CircuitBreaker,
	buildRequest func() (*http.Request, error),
) (*http.Response, error) {
	if cfg.Client == nil {
		return nil, errNoHTTPClient
	}
	if cfg.Backoff.MaxRetries < 0 || cfg.Backoff.InitialInterval <= 0 {
		return nil, errInvalidConfig
	}

	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, classifyTransport(ctx.Err())
		}

		req, err := buildRequest()
		if err != nil {
			return nil, err
		}

		// Ensure the request obeys context cancellation.
		req = req.WithContext(ctx)

		result, err := cb.Execute(func() (interface{}, error) {
			resp, execErr := cfg.Client.Do(req)
			if execErr != nil {
				return nil, classifyTransport(execErr)
			}

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				resp.Body.Close()
				return nil, classifyStatus(resp.StatusCode)
			}

			return resp, nil
		})

		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		// If circuit is open, propagate immediately.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		var perm permanentError
		if errors.As(err, &perm) {
			return nil, perm.err
		}

		lastErr = err
		if attempt >= cfg.Backoff.MaxRetries {
			return nil, lastErr
		}

		// Backoff with exponential delay.
		delay := cfg.Backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > cfg.Backoff.MaxInterval && cfg.Backoff.MaxInterval > 0 {
			delay = cfg.Backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, classifyTransport(ctx.Err())
		case <-timer.C:
			// continue to next attempt
		}

		attempt++
	}
}
