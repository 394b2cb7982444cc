package rangedoc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/lox/rangekit/internal/fileutil"
)

// Encoding selects the serialisation of a range file.
type Encoding int

const (
	JSON Encoding = iota
	YAML
)

// EncodingFor picks the encoding from a file name: .yaml and .yml are YAML,
// everything else (including .range and .json) is JSON.
func EncodingFor(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Decode reads one document.
func Decode(r io.Reader, enc Encoding) (*Document, error) {
	var d Document
	switch enc {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&d); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}
	if d.Combos == nil {
		d.Combos = map[string][]float64{}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return &d, nil
}

// Encode writes one document.
func Encode(w io.Writer, d *Document, enc Encoding) error {
	switch enc {
	case YAML:
		e := yaml.NewEncoder(w)
		if err := e.Encode(d); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return e.Close()
	default:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		if err := e.Encode(d); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Decode(f, EncodingFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Save prunes the document and writes it to path atomically.
func Save(path string, d *Document) error {
	d.Prune()
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, d, EncodingFor(path))
	})
}

// IsRangeFile reports whether the file name has one of the extensions
// LoadDir picks up.
func IsRangeFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case FileExtension, ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// LoadResult is one file read by LoadDir.
type LoadResult struct {
	Path     string
	Document *Document
	Err      error
}

// LoadDir loads every range file directly inside dir, concurrency files at
// a time. A file that fails to load is reported in its result and does not
// stop the others. Results are sorted by path.
func LoadDir(ctx context.Context, dir string, concurrency int) ([]LoadResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && IsRangeFile(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(paths)

	results := make([]LoadResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := Load(path)
			results[i] = LoadResult{Path: path, Document: d, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
