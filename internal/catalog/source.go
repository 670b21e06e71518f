package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
)

//go:embed data/teams.json
var embeddedTeams []byte

// Source loads a catalog snapshot.
type Source interface {
	Name() string
	Load(ctx context.Context) (*Catalog, error)
}

// EmbeddedSource serves the catalog compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource returns the built-in catalog source.
func NewEmbeddedSource() EmbeddedSource { return EmbeddedSource{} }

func (EmbeddedSource) Name() string { return "embedded" }

// Load parses the embedded catalog.
func (EmbeddedSource) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(embeddedTeams))
}

// FileSource reads the catalog from a JSON file on each Load.
type FileSource struct {
	Path string
}

// NewFileSource returns a source reading path.
func NewFileSource(path string) FileSource { return FileSource{Path: path} }

func (s FileSource) Name() string { return "file" }

// Load opens and parses the file.
func (s FileSource) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Path == "" {
		return nil, errors.New("catalog path required")
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return c, nil
}

// SourceFor returns a FileSource when path is set, otherwise the embedded catalog.
func SourceFor(path string) Source {
	if path != "" {
		return NewFileSource(path)
	}
	return NewEmbeddedSource()
}

// Holder publishes the current catalog snapshot to concurrent readers.
type Holder struct {
	current atomic.Pointer[Catalog]
}

// NewHolder returns a Holder seeded with c.
func NewHolder(c *Catalog) *Holder {
	h := &Holder{}
	h.current.Store(c)
	return h
}

// Current returns the latest snapshot (nil before the first Swap on an empty holder).
func (h *Holder) Current() *Catalog {
	if h == nil {
		return nil
	}
	return h.current.Load()
}

// Swap replaces the snapshot and returns the previous one.
func (h *Holder) Swap(c *Catalog) *Catalog {
	return h.current.Swap(c)
}
