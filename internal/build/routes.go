package build

import (
	"bytes"
	"os"

	"github.com/vango-dev/vanext/internal/config"
	"github.com/vango-dev/vanext/internal/errors"
	"github.com/vango-dev/vanext/pkg/router"
)

// RoutesResult describes a route table generation.
type RoutesResult struct {
	File     string
	Pages    int
	Warnings []string

	// Changed is false when the file already had the generated content.
	Changed bool
}

// GenerateRoutes scans the pages directory and writes the route table
// file. An unchanged table leaves the file untouched, so watchers do not
// see a spurious write.
func GenerateRoutes(cfg *config.Config) (*RoutesResult, error) {
	routes, err := router.NewScanner(cfg.PagesPath()).Scan()
	if err != nil {
		return nil, errors.FromError(err, errors.CodeScanFailed)
	}

	res := &RoutesResult{File: cfg.RoutesFile()}
	warnings, _ := router.Validate(routes)
	for _, w := range warnings {
		res.Warnings = append(res.Warnings, router.FormatValidationError(w))
	}
	for _, r := range routes {
		if r.HasPage {
			res.Pages++
		}
	}

	pagesImport, err := cfg.PagesImport()
	if err != nil {
		return nil, err
	}
	src, err := router.NewGenerator(routes, pagesImport, cfg.AppPackage()).Generate()
	if err != nil {
		return nil, errors.New(errors.CodeBuildFailed).Wrap(err)
	}

	if old, err := os.ReadFile(res.File); err == nil && bytes.Equal(old, src) {
		return res, nil
	}
	if err := os.WriteFile(res.File, src, 0644); err != nil {
		return nil, errors.New(errors.CodeBuildFailed).Wrap(err)
	}
	res.Changed = true
	return res, nil
}
