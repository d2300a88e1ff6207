package dev

import (
	"path/filepath"
	"strings"

	"github.com/vango-dev/vanext/internal/config"
)

// CollectWatchPaths returns the directories the dev loop watches: the app
// directory (pages, layouts, providers and public files), the wasm client
// entry and any dev.watch entries. Paths are cleaned and deduplicated.
func CollectWatchPaths(cfg *config.Config) []string {
	paths := []string{
		cfg.AppPath(),
		cfg.PagesPath(),
		cfg.PublicPath(),
		cfg.ClientPath(),
	}
	for _, p := range cfg.Dev.Watch {
		paths = append(paths, resolvePath(cfg.Dir(), p))
	}

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		clean := filepath.Clean(p)
		if _, ok := seen[clean]; ok || coveredBy(clean, unique) {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}
	return unique
}

// coveredBy reports whether path lies inside one of roots; watching is
// recursive, so nested roots are redundant.
func coveredBy(path string, roots []string) bool {
	for _, root := range roots {
		if isWithinDir(path, root) {
			return true
		}
	}
	return false
}

func isWithinDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func resolvePath(projectDir, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, path)
}
