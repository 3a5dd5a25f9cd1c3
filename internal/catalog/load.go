package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/schemas"
)

// SchemaJSON is the JSON Schema that catalog files must satisfy.
//
//go:embed catalog.schema.json
var SchemaJSON string

// LoadError represents an error during catalog file I/O or parsing.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads a complete catalog from a JSON file. The file is validated
// against the catalog schema before being parsed, so malformed catalogs
// are rejected with field-level errors instead of partial data.
func Load(path string) (*Catalog, error) {
	data, err := loadData(path)
	if err != nil {
		return nil, err
	}
	return New(data)
}

// Overrides names optional catalog section files. A deployment can
// replace individual sections of the built-in catalog without shipping a
// complete catalog file; empty paths keep the defaults.
type Overrides struct {
	Careers      string // careers section
	Resources    string // resources, certifications, tools sections
	Dependencies string // dependency graph and related-skills sections
}

// LoadWithOverrides builds a catalog from the defaults with any sections
// present in the override files layered on top. Files load concurrently;
// the first failure aborts the load.
func LoadWithOverrides(ctx context.Context, ov Overrides) (*Catalog, error) {
	base := defaultData()

	var mu sync.Mutex
	g, _ := errgroup.WithContext(ctx)

	for _, path := range []string{ov.Careers, ov.Resources, ov.Dependencies} {
		if path == "" {
			continue
		}
		g.Go(func() error {
			data, err := loadData(path)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			merge(base, data)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(base)
}

func loadData(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read catalog file", Cause: err}
	}

	if err := schemas.ValidateString(SchemaJSON, string(raw)); err != nil {
		return nil, &LoadError{Path: path, Message: "catalog file rejected by schema", Cause: err}
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse catalog JSON", Cause: err}
	}

	return &data, nil
}

// merge overlays the non-empty sections of src onto dst.
func merge(dst, src *Data) {
	if len(src.Careers) > 0 {
		dst.Careers = src.Careers
	}
	if len(src.SkillGroups) > 0 {
		dst.SkillGroups = src.SkillGroups
	}
	if len(src.Resources) > 0 {
		dst.Resources = src.Resources
	}
	if len(src.Certifications) > 0 {
		dst.Certifications = src.Certifications
	}
	if len(src.Tools) > 0 {
		dst.Tools = src.Tools
	}
	if len(src.Dependencies) > 0 {
		dst.Dependencies = src.Dependencies
	}
	if len(src.RelatedSkills) > 0 {
		dst.RelatedSkills = src.RelatedSkills
	}
}
