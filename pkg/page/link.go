package page

import (
	"strings"

	"github.com/vango-dev/vanext/pkg/vdom"
)

// Link creates an anchor to another page. Navigations are full page loads
// served by the frontend server.
func Link(href string, children ...any) *vdom.VNode {
	return vdom.A(vdom.Href(href), DataLink(), children)
}

// ActiveLink creates a link that carries activeClass when the current
// pathname matches href. Without exact, any pathname below href matches.
func ActiveLink(ctx *Context, href, activeClass string, exact bool, children ...any) *vdom.VNode {
	return vdom.A(
		vdom.Href(href),
		DataLink(),
		vdom.ClassIf(isActive(ctx.Pathname(), href, exact), activeClass),
		children,
	)
}

// NavLink is ActiveLink with the "active" class and exact matching.
func NavLink(ctx *Context, href string, children ...any) *vdom.VNode {
	return ActiveLink(ctx, href, "active", true, children...)
}

// DataLink marks an anchor as an in-app link.
func DataLink() vdom.Attr {
	return vdom.Attr{Key: "data-link", Value: "true"}
}

func isActive(pathname, href string, exact bool) bool {
	current := strings.TrimSuffix(pathname, "/")
	target := strings.TrimSuffix(href, "/")
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		target = target[:i]
	}
	if current == target {
		return true
	}
	if exact || target == "" {
		return false
	}
	return strings.HasPrefix(current, target+"/")
}
