package router

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"regexp"
	"strings"
	"text/template"
)

// Generator renders the route table of scanned pages as Go source, so the
// server and the wasm client compile the same table and never touch the
// file system at runtime.
type Generator struct {
	routes      []ScannedRoute
	pagesImport string
	pkg         string
}

// NewGenerator creates a generator. pagesImport is the import path of the
// pages root directory; the output file belongs to package pkg.
func NewGenerator(routes []ScannedRoute, pagesImport, pkg string) *Generator {
	return &Generator{
		routes:      routes,
		pagesImport: strings.TrimSuffix(pagesImport, "/"),
		pkg:         pkg,
	}
}

type genImport struct {
	Alias string
	Path  string
}

type genRoute struct {
	Alias    string
	Pattern  string
	LayoutID string
	Layouts  []string
}

type genData struct {
	Package string
	Imports []genImport
	Pages   []genRoute
	Layouts []genRoute
}

// Generate returns the gofmt-formatted source. Output only depends on the
// scanned routes, so regenerating an unchanged tree is a no-op.
func (g *Generator) Generate() ([]byte, error) {
	data := genData{Package: g.pkg}
	used := make(map[string]int)

	for _, r := range g.routes {
		alias := uniqueAlias(importAlias(r.Dir), used)
		importPath := g.pagesImport
		if r.Dir != "" {
			importPath = path.Join(g.pagesImport, r.Dir)
		}
		data.Imports = append(data.Imports, genImport{Alias: alias, Path: importPath})

		gr := genRoute{Alias: alias, Pattern: r.Pattern, LayoutID: r.LayoutID, Layouts: r.Layouts}
		if r.HasPage {
			data.Pages = append(data.Pages, gr)
		}
		if r.HasLayout {
			data.Layouts = append(data.Layouts, gr)
		}
	}

	var buf bytes.Buffer
	if err := routesTpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering routes: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting routes: %w", err)
	}
	return src, nil
}

var nonIdentRe = regexp.MustCompile(`[^A-Za-z0-9]+`)

// importAlias derives a package alias from a page directory:
// "dynamic/_id_" → "dynamic_id", "" → "pages".
func importAlias(dir string) string {
	if dir == "" {
		return "pages"
	}
	alias := strings.Trim(nonIdentRe.ReplaceAllString(dir, "_"), "_")
	alias = strings.ToLower(alias)
	if alias == "" || (alias[0] >= '0' && alias[0] <= '9') {
		alias = "p_" + alias
	}
	return alias
}

func uniqueAlias(alias string, used map[string]int) string {
	n := used[alias]
	used[alias] = n + 1
	if n == 0 {
		return alias
	}
	return fmt.Sprintf("%s%d", alias, n+1)
}

func goStrings(ss []string) string {
	if len(ss) == 0 {
		return "nil"
	}
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

var routesTpl = template.Must(template.New("routes").
	Funcs(template.FuncMap{"strings": goStrings}).
	Parse(`// Code generated by vanext gen routes. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/vango-dev/vanext/pkg/page"
	"github.com/vango-dev/vanext/pkg/router"
{{range .Imports}}
	{{.Alias}} "{{.Path}}"
{{- end}}
)

// Routes is the route table in scan order. Exact keys win; dynamic
// patterns are tried in this order.
var Routes = router.MustTable(
{{- range .Pages}}
	router.Entry{Pattern: {{printf "%q" .Pattern}}, Layouts: {{strings .Layouts}}},
{{- end}}
)

// Register adds every page and layout to reg.
func Register(reg *page.Registry) {
{{- range .Pages}}
	reg.Page({{printf "%q" .Pattern}}, {{.Alias}}.Page)
{{- end}}
{{- range .Layouts}}
	reg.Layout({{printf "%q" .LayoutID}}, {{.Alias}}.Layout)
{{- end}}
}
`))
