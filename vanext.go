// Package vanext is the frontend server of a vanext application: file
// system routes, per-directory layouts, server-side rendering and the
// assets the wasm client needs to hydrate.
//
// Pages live under app/pages. `vanext gen routes` turns the directory tree
// into app/routes_gen.go, a route table and a Register function compiled
// into both this server and the wasm client:
//
//	reg := page.NewRegistry()
//	app.Register(reg)
//
//	srv := vanext.New(vanext.Options{
//	    Routes:   app.Routes,
//	    Registry: reg,
//	    Public:   static.NewDir("app/public"),
//	})
//	http.ListenAndServe(":3000", srv)
//
// A request is served from the public directory when a file matches,
// otherwise it is matched against the route table, the page and its
// layouts are composed and the document is rendered with the route key,
// router snapshot and layout ids the client hydrates from.
package vanext

// Version is the framework version, printed by `vanext version`.
const Version = "0.1.0"
