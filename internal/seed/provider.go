// Package seed loads and caches the read-only corpora generators draw from.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
)

//go:embed data
var embedded embed.FS

// Corpus identifiers.
const (
	FirstNames = "person_names_first.json"
	LastNames  = "person_names_last.json"
	Suffixes   = "person_names_suffix.json"
	Occupation = "occupations.json"
	Companies  = "companies.json"
	Notes      = "person_notes.json"
	Things     = "things.json"
	Colors     = "colors.json"
	Streets    = "us_streets.json"
	Cities     = "us_cities.json"
	CitiesGeo  = "us_cities_geo.json"
	ZipGeo     = "us_zip_geo.json"
	PhotoDir   = "Photo"
)

// Epoch is the first instant NextDate advances from.
var Epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Provider reads corpora from a file system once and serves them from memory.
// It is not safe for concurrent use.
type Provider struct {
	fsys     fs.FS
	corpora  map[string]any
	assets   map[string][]byte
	lastDate time.Time
}

// New returns a Provider over fsys.
func New(fsys fs.FS) *Provider {
	return &Provider{
		fsys:     fsys,
		corpora:  make(map[string]any),
		assets:   make(map[string][]byte),
		lastDate: Epoch,
	}
}

// Default returns a Provider over the embedded corpus.
func Default() *Provider {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("embedded seed corpus: %v", err))
	}
	return New(sub)
}

// FromDir returns a Provider over dir, or the embedded corpus when dir is empty.
func FromDir(dir string) *Provider {
	if dir == "" {
		return Default()
	}
	return New(os.DirFS(dir))
}

// Load decodes the JSON corpus id into T on first use and returns the cached
// value afterwards. Asking for the same id with a different T is an error.
func Load[T any](p *Provider, id string) (T, error) {
	var zero T
	id = path.Clean(id)

	if cached, ok := p.corpora[id]; ok {
		v, ok := cached.(T)
		if !ok {
			return zero, apperrors.New(apperrors.CodeInvalidArgument, "seed %s already loaded as %T", id, cached)
		}
		return v, nil
	}

	data, err := fs.ReadFile(p.fsys, id)
	if err != nil {
		return zero, apperrors.Wrap(apperrors.CodeResourceUnavailable, "read seed "+id, err)
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, apperrors.Wrap(apperrors.CodeResourceUnavailable, "parse seed "+id, err)
	}

	p.corpora[id] = v
	return v, nil
}

// Strings loads a corpus that is a flat list of strings. Empty lists are rejected.
func (p *Provider) Strings(id string) ([]string, error) {
	list, err := Load[[]string](p, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.New(apperrors.CodeResourceUnavailable, "seed %s is empty", id)
	}
	return list, nil
}

// Asset returns the raw bytes of a binary resource, cached after first read.
func (p *Provider) Asset(id string) ([]byte, error) {
	id = path.Clean(id)
	if data, ok := p.assets[id]; ok {
		return data, nil
	}

	data, err := fs.ReadFile(p.fsys, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeResourceUnavailable, "read asset "+id, err)
	}
	p.assets[id] = data
	return data, nil
}

// Assets lists the resources in dir whose names end with ext, sorted.
func (p *Provider) Assets(dir, ext string) ([]string, error) {
	entries, err := fs.ReadDir(p.fsys, dir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeResourceUnavailable, "list assets "+dir, err)
	}

	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
			out = append(out, path.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

// NextDate advances the provider's date cursor by increment (one day when
// omitted) and returns the new value. The cursor starts at Epoch.
func (p *Provider) NextDate(increment ...time.Duration) time.Time {
	step := 24 * time.Hour
	if len(increment) > 0 {
		step = increment[0]
	}
	p.lastDate = p.lastDate.Add(step)
	return p.lastDate
}
