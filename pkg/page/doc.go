// Package page defines what pages, layouts and providers see while
// rendering, and the registry the generated route table fills.
//
// A page is a function of a *Context:
//
//	func Page(ctx *page.Context) *vdom.VNode {
//	    return Div(Textf("ID: %s", ctx.Param("id")))
//	}
//
// The Context carries the RouterData snapshot (pathname, params, query,
// search, route, pattern), the global Store and a Navigator. On the server
// the navigator is a no-op; the wasm client maps it to the browser.
package page
