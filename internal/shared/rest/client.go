package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// Client wraps http.Client with base URL handling and a circuit breaker so
// adapters do not duplicate boilerplate. A backend that keeps failing trips
// the breaker and later calls fail fast until the probe window reopens.
type Client struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient(baseURL string, timeout time.Duration, client *http.Client) *Client {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = "http://localhost:3000/api"
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(timeout)}
	} else if timeout > 0 {
		client.Timeout = timeout
	}
	return &Client{baseURL: trimmed, client: client, breaker: newBreaker("bookingBackend")}
}

func (c *Client) NewRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	return http.NewRequestWithContext(ctx, method, url, body)
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.client.Do(req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*http.Response), nil
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		Interval:    0,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state change", slog.String("name", name), slog.String("from", from.String()), slog.String("to", to.String()))
		},
	})
}

func timeoutOrDefault(value time.Duration) time.Duration {
	if value <= 0 {
		return 10 * time.Second
	}
	return value
}
