package dictionary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// DefaultMaxRetryAttempts is the number of retries for word-list downloads.
const DefaultMaxRetryAttempts uint = 3

// Downloader fetches word-list files into a local dictionary directory.
type Downloader struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewDownloader creates a Downloader for the given word-list base URL.
func NewDownloader(baseURL string, retryAttempts uint) *Downloader {
	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(baseURL, "/"))

	return &Downloader{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (d *Downloader) Close() error {
	return d.httpClient.Close()
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// Download fetches the word list for lang into dir and returns the path of
// the written file.
func (d *Downloader) Download(ctx context.Context, lang, dir string) (string, error) {
	var body []byte
	if err := retry.Do(
		func() error {
			contents, err := d.fetch(ctx, lang)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			body = contents
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(d.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	path := filepath.Join(dir, lang+".txt")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

func (d *Downloader) fetch(ctx context.Context, lang string) ([]byte, error) {
	response, err := d.httpClient.R().
		SetContext(ctx).
		Get("/" + lang + ".txt")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return response.Bytes(), nil
}
