// Package router implements file-system routing for vanext pages.
//
// The router provides:
//   - route key normalization and the ordered route table
//   - bracket pattern compilation to anchored regexps
//   - layout chain resolution over an fs.FS
//   - a scanner and a code generator producing the table as Go source
//
// # File Structure Convention
//
// Pages are Go packages below app/pages. Each directory may hold a page
// (index.go exporting Page) and a layout (layout.go exporting Layout):
//
//	app/pages/
//	├── index.go           → /index
//	├── layout.go          → /layout, wraps every page
//	├── book/_id_/
//	│   └── index.go       → /book/[id]/index
//	├── dynamic/_id_/
//	│   ├── index.go       → /dynamic/[id]/index
//	│   └── layout.go      → /dynamic/[id]/layout
//	└── docs/__slug___/
//	    └── index.go       → /docs/[[...slug]]/index
//
// # Parameters
//
// Go import paths cannot hold brackets, so directories use underscores:
//
//	_id_        → [id]          exactly one segment
//	_slug___    → [...slug]     one or more segments
//	__slug___   → [[...slug]]   zero or more segments
//
// # Matching
//
// A request path is normalized to a route key ("/" → "/index",
// "/dynamic/42" → "/dynamic/42/index"). The key is looked up exactly
// first, then every dynamic pattern is tried in table order and the first
// match wins:
//
//	table := router.MustTable(
//	    router.Entry{Pattern: "/index", Layouts: []string{"/layout"}},
//	    router.Entry{Pattern: "/dynamic/[id]/index", Layouts: []string{"/layout", "/dynamic/[id]/layout"}},
//	)
//	m, ok := table.Match("/dynamic/42/", "")
//	// m.Params["id"] == "42", m.Route == "/dynamic/42/index"
//
// # Code Generation
//
//	routes, err := router.NewScanner("app/pages").Scan()
//	src, err := router.NewGenerator(routes, "example.com/app/pages", "app").Generate()
package router
