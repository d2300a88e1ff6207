package router

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	apperrors "github.com/vango-dev/vanext/internal/errors"
)

// PageFile is the file name declaring a directory's page.
const PageFile = "index.go"

// ScannedRoute is a pages directory holding a page, a layout or both.
type ScannedRoute struct {
	// Dir is the slash-separated directory relative to the pages root
	// ("" for the root itself).
	Dir string

	// Package is the Go package name declared in the directory.
	Package string

	// Pattern is the page id, e.g. "/dynamic/[id]/index".
	Pattern string

	// HasPage indicates index.go exports func Page.
	HasPage bool

	// HasLayout indicates layout.go exports func Layout.
	HasLayout bool

	// LayoutID is the id of the directory's layout, when HasLayout.
	LayoutID string

	// Layouts is the layout chain of the page, outermost first.
	Layouts []string

	// Params are the dynamic segments of the directory path.
	Params []ParamDef
}

// IsDynamic reports whether the route has params.
func (r ScannedRoute) IsDynamic() bool { return len(r.Params) > 0 }

// ParamDef is one dynamic segment.
type ParamDef struct {
	// Name is the param name (e.g., "id").
	Name string

	// Segment is the directory name as written (e.g., "_id_").
	Segment string

	// CatchAll marks [...name] and [[...name]] segments.
	CatchAll bool

	// Optional marks [[...name]] segments.
	Optional bool
}

// Scanner scans a pages directory.
type Scanner struct {
	fsys fs.FS

	// root prefixes file names in errors; empty for an fs.FS.
	root string
}

// NewScanner creates a scanner over rootDir on disk.
func NewScanner(rootDir string) *Scanner {
	return &Scanner{fsys: os.DirFS(rootDir), root: rootDir}
}

// NewScannerFS creates a scanner over fsys, rooted at the pages directory.
func NewScannerFS(fsys fs.FS) *Scanner {
	return &Scanner{fsys: fsys}
}

// Scan walks the pages directory in lexical order and returns every
// directory holding a page or a layout. Pages carry their resolved layout
// chain. The routes are validated; warnings are dropped, use Validate
// directly to see them.
func (s *Scanner) Scan() ([]ScannedRoute, error) {
	routes, err := s.scan()
	if err != nil {
		return nil, err
	}
	if _, err := Validate(routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func (s *Scanner) scan() ([]ScannedRoute, error) {
	var routes []ScannedRoute

	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if p != "." && (strings.HasPrefix(name, ".") || name == "testdata") {
			return fs.SkipDir
		}

		route, err := s.scanDir(p)
		if err != nil {
			return err
		}
		if route != nil {
			routes = append(routes, *route)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning pages: %w", err)
	}

	layouts := make(map[string]bool)
	for _, r := range routes {
		if r.HasLayout {
			layouts[r.LayoutID] = true
		}
	}
	for i := range routes {
		if !routes[i].HasPage {
			continue
		}
		chain, err := ResolveLayouts(s.fsys, routes[i].Dir)
		if err != nil {
			return nil, err
		}
		// layout.go files without an exported Layout do not count.
		for _, id := range chain {
			if layouts[id] {
				routes[i].Layouts = append(routes[i].Layouts, id)
			}
		}
	}

	return routes, nil
}

// scanDir parses index.go and layout.go in dir. It returns nil when the
// directory holds neither a page nor a layout.
func (s *Scanner) scanDir(dir string) (*ScannedRoute, error) {
	rel := dir
	if rel == "." {
		rel = ""
	}
	route := &ScannedRoute{
		Dir:     rel,
		Pattern: PageID(rel),
		Params:  extractParams(rel),
	}

	pkg, hasPage, err := s.exportsFunc(path.Join(dir, PageFile), "Page", 1)
	if err != nil {
		return nil, err
	}
	route.HasPage = hasPage
	route.Package = pkg

	pkg, hasLayout, err := s.exportsFunc(path.Join(dir, LayoutFile), "Layout", 2)
	if err != nil {
		return nil, err
	}
	route.HasLayout = hasLayout
	if hasLayout {
		route.LayoutID = LayoutID(rel)
		if route.Package == "" {
			route.Package = pkg
		}
	}

	if !route.HasPage && !route.HasLayout {
		return nil, nil
	}
	return route, nil
}

// exportsFunc parses file and reports whether it declares a top-level
// func name with nparams parameters. A missing file is not an error.
func (s *Scanner) exportsFunc(file, name string, nparams int) (pkg string, ok bool, err error) {
	src, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file, src, parser.SkipObjectResolution)
	if err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) > 0 {
			pos := list[0].Pos
			return "", false, apperrors.New(apperrors.CodeScanFailed).
				WithDetail(list[0].Msg).
				WithLocation(s.filename(file), pos.Line, pos.Column).
				Wrap(err)
		}
		return "", false, err
	}

	for _, decl := range f.Decls {
		fn, isFunc := decl.(*ast.FuncDecl)
		if !isFunc || fn.Recv != nil || fn.Name.Name != name {
			continue
		}
		var problem string
		if got := fn.Type.Params.NumFields(); got != nparams {
			problem = fmt.Sprintf("%s takes %d parameters, want %d", name, got, nparams)
		} else if fn.Type.Results.NumFields() != 1 {
			problem = fmt.Sprintf("%s must return a single *vdom.VNode", name)
		}
		if problem != "" {
			pos := fset.Position(fn.Name.Pos())
			return "", false, apperrors.New(apperrors.CodeBadSignature).
				WithDetail(problem).
				WithLocation(s.filename(file), pos.Line, pos.Column).
				WithSuggestion("Declare func Page(ctx *page.Context) *vdom.VNode or func Layout(ctx *page.Context, children *vdom.VNode) *vdom.VNode")
		}
		return f.Name.Name, true, nil
	}
	return f.Name.Name, false, nil
}

// filename returns the on-disk name of a file of the pages directory.
func (s *Scanner) filename(file string) string {
	if s.root == "" {
		return file
	}
	return filepath.Join(s.root, filepath.FromSlash(file))
}

// extractParams returns the dynamic segments of a relative directory.
func extractParams(dir string) []ParamDef {
	if dir == "" {
		return nil
	}
	var params []ParamDef
	for _, seg := range strings.Split(dir, "/") {
		pattern := SegmentPattern(seg)
		switch {
		case strings.HasPrefix(pattern, "[[...") && strings.HasSuffix(pattern, "]]"):
			params = append(params, ParamDef{Name: pattern[5 : len(pattern)-2], Segment: seg, CatchAll: true, Optional: true})
		case strings.HasPrefix(pattern, "[...") && strings.HasSuffix(pattern, "]"):
			params = append(params, ParamDef{Name: pattern[4 : len(pattern)-1], Segment: seg, CatchAll: true})
		case strings.HasPrefix(pattern, "[") && strings.HasSuffix(pattern, "]"):
			params = append(params, ParamDef{Name: pattern[1 : len(pattern)-1], Segment: seg})
		}
	}
	return params
}
