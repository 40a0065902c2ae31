package fsxhttp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxDocumentSize = 20 << 20 // 20MB

// HTTPReader implements fsx.FileReader for absolute http(s) URLs.
type HTTPReader struct {
	client *http.Client
}

// NewHTTPReader creates a reader with a bounded request timeout.
func NewHTTPReader(timeout time.Duration) *HTTPReader {
	return &HTTPReader{
		client: &http.Client{Timeout: timeout},
	}
}

// ReadFile fetches the URL and returns the response body.
func (r *HTTPReader) ReadFile(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", url, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read body %s: %w", url, err)
	}
	return data, nil
}
