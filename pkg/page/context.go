package page

import (
	"context"

	"github.com/vango-dev/vanext/pkg/routepath"
	"github.com/vango-dev/vanext/pkg/vdom"
)

// PageFunc renders a page.
type PageFunc func(ctx *Context) *vdom.VNode

// LayoutFunc wraps the content of every page below its directory.
type LayoutFunc func(ctx *Context, children *vdom.VNode) *vdom.VNode

// Context is passed to pages, layouts and providers. It carries the
// routing snapshot, the global store and the navigator.
type Context struct {
	Router RouterData
	Global *Store
	Nav    Navigator

	ctx context.Context
}

// NewContext creates a page context. A nil store or navigator is replaced
// by a fresh store and the server navigator.
func NewContext(ctx context.Context, data RouterData, global *Store, nav Navigator) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if global == nil {
		global = NewStore()
	}
	if nav == nil {
		nav = ServerNavigator{}
	}
	return &Context{Router: data.Normalize(), Global: global, Nav: nav, ctx: ctx}
}

// Context returns the request (or client) context.
func (c *Context) Context() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

// Params returns all path params.
func (c *Context) Params() map[string]string { return c.Router.Params }

// Param returns a path param, or "" when absent.
func (c *Context) Param(name string) string { return c.Router.Params[name] }

// SearchParam returns the first value of a query param.
func (c *Context) SearchParam(name string) string { return c.Router.Query.Get(name) }

// SearchParams returns every value of a query param.
func (c *Context) SearchParams(name string) []string { return c.Router.Query.Values(name) }

// Pathname returns the request pathname as received.
func (c *Context) Pathname() string { return c.Router.Pathname }

// Route returns the route key ("/dynamic/42/index").
func (c *Context) Route() string { return c.Router.Route }

// Push navigates to url. Only local paths are followed; anything else is
// ignored.
func (c *Context) Push(url string, opts ...NavigateOption) {
	if target, err := routepath.NavPath(url); err == nil {
		c.Nav.Push(target, opts...)
	}
}

// Replace navigates to url without adding a history entry.
func (c *Context) Replace(url string, opts ...NavigateOption) {
	if target, err := routepath.NavPath(url); err == nil {
		c.Nav.Replace(target, opts...)
	}
}

// Back goes back in history.
func (c *Context) Back() { c.Nav.Back() }

// Forward goes forward in history.
func (c *Context) Forward() { c.Nav.Forward() }

// Refresh reloads the page.
func (c *Context) Refresh() { c.Nav.Refresh() }
