package bank

import (
	"context"
	"fmt"
	"os"
)

// Source yields a question catalog. The engine does not care whether the
// catalog is compiled in or fetched from a remote collection.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// StaticSource serves a catalog held in memory.
type StaticSource struct {
	Catalog *Catalog
}

func (s StaticSource) Load(_ context.Context) (*Catalog, error) {
	if s.Catalog == nil {
		return nil, fmt.Errorf("%w: empty static source", ErrInvalidCatalog)
	}
	return s.Catalog, nil
}

// FileSource reads a JSON catalog from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) (*Catalog, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := DecodeJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return c, nil
}

// ForMode returns the compiled-in catalog for a play mode ("cipher" or "trivia").
func ForMode(mode string) (*Catalog, error) {
	switch mode {
	case "", "cipher":
		return Ciphers(), nil
	case "trivia":
		return Trivia(), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}
