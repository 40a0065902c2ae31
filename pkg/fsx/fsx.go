package fsx

import (
	"context"
	"strings"
)

// FileReader reads the raw bytes of a stored document.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileSystem adds write and delete on top of reading.
type FileSystem interface {
	FileReader
	WriteFile(ctx context.Context, path string, data []byte, contentType string) error
	DeleteFile(ctx context.Context, path string) error
}

// SchemeRouter dispatches reads to a reader per URL scheme. Paths without a
// scheme go to the default reader (typically object storage keys).
type SchemeRouter struct {
	readers  map[string]FileReader
	fallback FileReader
}

// NewSchemeRouter creates a router with the given default reader.
func NewSchemeRouter(fallback FileReader) *SchemeRouter {
	return &SchemeRouter{
		readers:  make(map[string]FileReader),
		fallback: fallback,
	}
}

// Route registers a reader for a scheme, e.g. "https".
func (r *SchemeRouter) Route(scheme string, reader FileReader) *SchemeRouter {
	r.readers[scheme] = reader
	return r
}

// ReadFile dispatches to the reader registered for the path's scheme.
func (r *SchemeRouter) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if i := strings.Index(path, "://"); i > 0 {
		if reader, ok := r.readers[strings.ToLower(path[:i])]; ok {
			return reader.ReadFile(ctx, path)
		}
	}
	return r.fallback.ReadFile(ctx, path)
}
