package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/career-compass/internal/catalog"
)

// loadCatalog builds the career catalog, honoring the same CATALOG_* file
// overrides the server reads.
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	ov := catalog.Overrides{
		Careers:      os.Getenv("CATALOG_CAREERS_FILE"),
		Resources:    os.Getenv("CATALOG_RESOURCES_FILE"),
		Dependencies: os.Getenv("CATALOG_DEPENDENCIES_FILE"),
	}
	cat, err := catalog.LoadWithOverrides(ctx, ov)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}
