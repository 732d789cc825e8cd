package forge3d

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"forge3d/internal/logging"
)

// snippetLimit caps how much of an error body is read for diagnostics.
const snippetLimit = 4096

// HTTPDoer describes the HTTP client used by the Forge3D client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config describes Client construction parameters.
type Config struct {
	// BaseURL is the configured server address. It is normalized with
	// NormalizeBaseURL before use, so any of "http://host:3847",
	// "http://host:3847/" and "http://host:3847/api/forge3d" are equivalent.
	BaseURL string
	// HTTPClient overrides the transport, primarily for tests. The default
	// carries no timeout; callers wanting deadlines supply a context.
	HTTPClient HTTPDoer
	Logger     *slog.Logger
}

// Client wraps the Forge3D REST API. Construct one per session and hand it
// to whatever owns the session; there is no shared package-level instance.
type Client struct {
	baseURL string
	http    HTTPDoer
	logger  *slog.Logger
}

// New creates a Client from the supplied configuration.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Client{
		baseURL: NormalizeBaseURL(cfg.BaseURL),
		http:    httpClient,
		logger:  logging.NewComponentLogger(logger, "forge3d-client"),
	}
}

// BaseURL reports the normalized endpoint the client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// Get issues a GET against the API-relative path and returns the body text.
// Exactly HTTP 200 counts as success; a non-200 response becomes a
// *StatusError carrying the code and a body snippet, and a connection-level
// failure becomes a *TransportError. The client performs no retries.
func (c *Client) Get(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("forge3d: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", logging.String("path", path), logging.Error(err))
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, snippetLimit))
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
		c.logger.Warn("request failed",
			logging.String("path", path),
			logging.Int("status", resp.StatusCode),
		)
		return "", statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read response body: %w", err)}
	}
	return string(body), nil
}

// DownloadToFile streams the API-relative path into dest and returns dest on
// success. dest is created or truncated; its parent directory must already
// exist because destination naming belongs to the caller. A partial file left
// by a failed write is removed.
func (c *Client) DownloadToFile(ctx context.Context, path, dest string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("forge3d: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("download failed", logging.String("path", path), logging.Error(err))
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, snippetLimit))
		c.logger.Warn("download failed",
			logging.String("path", path),
			logging.Int("status", resp.StatusCode),
		)
		return "", &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", &FileWriteError{Path: dest, Err: err}
	}

	sink := &trackingWriter{file: out}
	written, err := io.Copy(sink, resp.Body)
	if err != nil {
		out.Close()
		os.Remove(dest)
		if sink.writeErr != nil {
			return "", &FileWriteError{Path: dest, Err: sink.writeErr}
		}
		// The write side was healthy, so the body stream broke mid-transfer.
		return "", &TransportError{Err: fmt.Errorf("read response body: %w", err)}
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return "", &FileWriteError{Path: dest, Err: err}
	}

	c.logger.Debug("download complete",
		logging.String("path", path),
		logging.String("dest", dest),
		logging.Int64("bytes", written),
	)
	return dest, nil
}

// trackingWriter remembers the first write failure so DownloadToFile can
// separate local persistence errors from body-stream errors.
type trackingWriter struct {
	file     *os.File
	writeErr error
}

func (w *trackingWriter) Write(p []byte) (int, error) {
	n, err := w.file.Write(p)
	if err != nil && w.writeErr == nil {
		w.writeErr = err
	}
	return n, err
}
