package router

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/vango-dev/vanext/internal/errors"
)

const (
	pageSrc   = "package %s\n\nfunc Page(ctx *page.Context) *vdom.VNode { return nil }\n"
	layoutSrc = "package %s\n\nfunc Layout(ctx *page.Context, children *vdom.VNode) *vdom.VNode { return children }\n"
)

func file(tpl, pkg string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(strings.Replace(tpl, "%s", pkg, 1))}
}

func demoPages() fstest.MapFS {
	return fstest.MapFS{
		"index.go":                  file(pageSrc, "pages"),
		"layout.go":                 file(layoutSrc, "pages"),
		"book/_id_/index.go":        file(pageSrc, "book"),
		"dynamic/_id_/index.go":     file(pageSrc, "dynamic"),
		"dynamic/_id_/layout.go":    file(layoutSrc, "dynamic"),
		"docs/__slug___/index.go":   file(pageSrc, "docs"),
		"users/index.go":            file(pageSrc, "users"),
		"users/helpers.go":          {Data: []byte("package users\n")},
		"components/button.go":      {Data: []byte("package components\n")},
		".hidden/index.go":          file(pageSrc, "hidden"),
		"testdata/fixture/index.go": file(pageSrc, "fixture"),
	}
}

func TestScanner_Scan(t *testing.T) {
	routes, err := NewScannerFS(demoPages()).Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	var got []string
	for _, r := range routes {
		got = append(got, r.Pattern)
	}
	want := []string{
		"/index",
		"/book/[id]/index",
		"/docs/[[...slug]]/index",
		"/dynamic/[id]/index",
		"/users/index",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("patterns mismatch (-want +got):\n%s", diff)
	}

	byPattern := map[string]ScannedRoute{}
	for _, r := range routes {
		byPattern[r.Pattern] = r
	}

	root := byPattern["/index"]
	if !root.HasPage || !root.HasLayout || root.LayoutID != "/layout" || root.Package != "pages" {
		t.Errorf("root = %+v", root)
	}
	if !reflect.DeepEqual(root.Layouts, []string{"/layout"}) {
		t.Errorf("root layouts = %v", root.Layouts)
	}

	dyn := byPattern["/dynamic/[id]/index"]
	if !reflect.DeepEqual(dyn.Layouts, []string{"/layout", "/dynamic/[id]/layout"}) {
		t.Errorf("dynamic layouts = %v", dyn.Layouts)
	}
	if !reflect.DeepEqual(dyn.Params, []ParamDef{{Name: "id", Segment: "_id_"}}) {
		t.Errorf("dynamic params = %+v", dyn.Params)
	}

	docs := byPattern["/docs/[[...slug]]/index"]
	if len(docs.Params) != 1 || !docs.Params[0].Optional || !docs.Params[0].CatchAll {
		t.Errorf("docs params = %+v", docs.Params)
	}
	if !reflect.DeepEqual(docs.Layouts, []string{"/layout"}) {
		t.Errorf("docs layouts = %v", docs.Layouts)
	}
}

func TestScanner_LayoutWithoutExportIsIgnored(t *testing.T) {
	fsys := fstest.MapFS{
		"index.go":        file(pageSrc, "pages"),
		"layout.go":       {Data: []byte("package pages\n\nfunc helper() {}\n")},
		"a/b/index.go":    file(pageSrc, "b"),
		"a/b/layout.go":   file(layoutSrc, "b"),
		"a/notes/doc.txt": {Data: []byte("hi")},
	}
	routes, err := NewScannerFS(fsys).Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	for _, r := range routes {
		if r.Pattern == "/a/b/index" && !reflect.DeepEqual(r.Layouts, []string{"/a/b/layout"}) {
			t.Errorf("layouts = %v, want only the deep layout", r.Layouts)
		}
		if r.Pattern == "/index" && len(r.Layouts) != 0 {
			t.Errorf("root layouts = %v, want none", r.Layouts)
		}
	}
}

func TestScanner_BadSignature(t *testing.T) {
	fsys := fstest.MapFS{
		"index.go": {Data: []byte("package pages\n\nfunc Page() *vdom.VNode { return nil }\n")},
	}
	if _, err := NewScannerFS(fsys).Scan(); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestScanner_ErrorLocation(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		code     string
		line     int
		contains string
	}{
		{
			name:     "bad signature",
			src:      "package pages\n\nfunc Page() *vdom.VNode { return nil }\n",
			code:     apperrors.CodeBadSignature,
			line:     3,
			contains: "func Page()",
		},
		{
			name:     "syntax error",
			src:      "package pages\n\nfunc Page(ctx *page.Context) *vdom.VNode {\n\treturn nil +\n}\n",
			code:     apperrors.CodeScanFailed,
			line:     5,
			contains: "return nil +",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			file := filepath.Join(root, "index.go")
			if err := os.WriteFile(file, []byte(tt.src), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := NewScanner(root).Scan()
			var appErr *apperrors.Error
			if !errors.As(err, &appErr) {
				t.Fatalf("Scan error = %v, want *errors.Error", err)
			}
			if appErr.Code != tt.code {
				t.Errorf("code = %s, want %s", appErr.Code, tt.code)
			}
			if appErr.Location == nil || appErr.Location.File != file || appErr.Location.Line != tt.line {
				t.Fatalf("location = %v, want %s:%d", appErr.Location, file, tt.line)
			}
			if !strings.Contains(strings.Join(appErr.Context, "\n"), tt.contains) {
				t.Errorf("context %q should show %q", appErr.Context, tt.contains)
			}
		})
	}
}

func TestScanner_DuplicateRoute(t *testing.T) {
	fsys := fstest.MapFS{
		"book/_id_/index.go": file(pageSrc, "a"),
		"book/[id]/index.go": file(pageSrc, "b"),
	}
	_, err := NewScannerFS(fsys).Scan()
	var multi *MultiValidationError
	if !errors.As(err, &multi) {
		t.Fatalf("err = %v, want *MultiValidationError", err)
	}
	if len(multi.Errors) != 1 || multi.Errors[0].Type != ErrorDuplicateRoute {
		t.Errorf("errors = %+v", multi.Errors)
	}
	out := FormatValidationError(multi.Errors[0])
	if !strings.HasPrefix(out, "ERROR: Duplicate route detected at /book/[id]/index") {
		t.Errorf("formatted = %q", out)
	}
}

func TestResolveLayouts(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.go":            {Data: []byte("package pages")},
		"a/layout.go":          {Data: []byte("package a")},
		"a/b/c/layout.go":      {Data: []byte("package c")},
		"a/b/c/d/index.go":     {Data: []byte("package d")},
		"other/_id_/layout.go": {Data: []byte("package other")},
	}

	tests := []struct {
		dir  string
		want []string
	}{
		{"", []string{"/layout"}},
		{"a", []string{"/layout", "/a/layout"}},
		{"a/b", []string{"/layout", "/a/layout"}},
		{"a/b/c/d", []string{"/layout", "/a/layout", "/a/b/c/layout"}},
		{"other/_id_", []string{"/layout", "/other/[id]/layout"}},
		{"missing/dir", []string{"/layout"}},
	}
	for _, tt := range tests {
		got, err := ResolveLayouts(fsys, tt.dir)
		if err != nil {
			t.Fatalf("ResolveLayouts(%q): %v", tt.dir, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ResolveLayouts(%q) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	routes := []ScannedRoute{
		{Dir: "docs/_slug___", Pattern: "/docs/[...slug]/index", HasPage: true, Params: []ParamDef{{Name: "slug", CatchAll: true}}},
		{Dir: "docs/_page_", Pattern: "/docs/[page]/index", HasPage: true, Params: []ParamDef{{Name: "page"}}},
		{Dir: "book/_id_", Pattern: "/book/[id]/index", HasPage: true, Params: []ParamDef{{Name: "id"}}},
		{Dir: "bad/[my-id]", Pattern: "/bad/[my-id]/index", HasPage: true, Params: []ParamDef{{Name: "my-id", Segment: "[my-id]"}}},
	}

	warnings, err := Validate(routes)

	var multi *MultiValidationError
	if !errors.As(err, &multi) || len(multi.Errors) != 1 || multi.Errors[0].Type != ErrorInvalidParam {
		t.Errorf("err = %v, want one invalid param error", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %+v, want one overlap", warnings)
	}
	if warnings[0].Type != WarningOverlap || warnings[0].Pattern != "/docs/[...slug]/index" {
		t.Errorf("warning = %+v", warnings[0])
	}
	if !strings.HasPrefix(FormatValidationError(warnings[0]), "WARNING: ") {
		t.Error("overlap should format as a warning")
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"/book/[id]/index", "/book/[slug]/index", true},
		{"/book/[id]/index", "/film/[id]/index", false},
		{"/docs/[...slug]/index", "/docs/[page]/index", true},
		{"/docs/[...slug]/index", "/docs/index", false},
		{"/docs/[[...slug]]/index", "/docs/index", true},
		{"/[a]/x/index", "/y/[b]/index", true},
		{"/[a]/index", "/[a]/[b]/index", false},
		{"/[...all]/index", "/a/[b]/c/index", true},
	}
	for _, tt := range tests {
		if got := Overlaps(tt.a, tt.b); got != tt.want {
			t.Errorf("Overlaps(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := Overlaps(tt.b, tt.a); got != tt.want {
			t.Errorf("Overlaps(%q, %q) = %v, want %v (reversed)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestGenerator_Generate(t *testing.T) {
	routes, err := NewScannerFS(demoPages()).Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	src, err := NewGenerator(routes, "example.com/shop/app/pages/", "app").Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	code := string(src)

	for _, want := range []string{
		"// Code generated by vanext gen routes. DO NOT EDIT.",
		"package app",
		`pages "example.com/shop/app/pages"`,
		`dynamic_id "example.com/shop/app/pages/dynamic/_id_"`,
		`docs_slug "example.com/shop/app/pages/docs/__slug___"`,
		`router.Entry{Pattern: "/index", Layouts: []string{"/layout"}},`,
		`router.Entry{Pattern: "/dynamic/[id]/index", Layouts: []string{"/layout", "/dynamic/[id]/layout"}},`,
		`reg.Page("/book/[id]/index", book_id.Page)`,
		`reg.Layout("/layout", pages.Layout)`,
		`reg.Layout("/dynamic/[id]/layout", dynamic_id.Layout)`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q\n%s", want, code)
		}
	}

	again, err := NewGenerator(routes, "example.com/shop/app/pages", "app").Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(again) != code {
		t.Error("output is not deterministic")
	}
}

func TestImportAlias(t *testing.T) {
	used := map[string]int{}
	tests := []struct{ dir, want string }{
		{"", "pages"},
		{"dynamic/_id_", "dynamic_id"},
		{"dynamic/[id]", "dynamic_id2"},
		{"2024/_slug___", "p_2024_slug"},
	}
	for _, tt := range tests {
		if got := uniqueAlias(importAlias(tt.dir), used); got != tt.want {
			t.Errorf("alias(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}
