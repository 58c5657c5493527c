package downloader

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Client fetches remote data files into a local cache directory.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a downloader with strict connection timeouts.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		httpClient: &http.Client{Transport: transport},
		logger:     logger,
	}
}

// Fetch downloads url into dest and returns the local path.
//
// If dest already exists it is treated as cached and returned untouched; the
// cache is only invalidated by deleting the file. Any network error or
// non-success response is returned to the caller, which treats it as fatal.
func (c *Client) Fetch(ctx context.Context, url, dest string) (string, error) {
	if _, err := os.Stat(dest); err == nil {
		c.logger.Info("File already cached, skipping download", zap.String("path", dest))
		return dest, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to download %s: unexpected status %s", url, resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		// A partial file must not poison the cache on the next run.
		_ = os.Remove(dest)
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(dest)
		return "", fmt.Errorf("failed to close %s: %w", dest, err)
	}

	c.logger.Info("Downloaded data file", zap.String("url", url), zap.String("path", dest))
	return dest, nil
}

// EmojiTestPath returns the cache location for the emoji test file.
func (cfg Config) EmojiTestPath() string {
	return filepath.Join(cfg.CacheDir, "emoji-test.txt")
}

// UnicodeDataPath returns the cache location for the UnicodeData registry file.
func (cfg Config) UnicodeDataPath() string {
	return filepath.Join(cfg.CacheDir, "UnicodeData.txt")
}
