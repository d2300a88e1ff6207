package pages

import (
	. "github.com/vango-dev/vanext/el"
	"github.com/vango-dev/vanext/pkg/page"
)

func Layout(ctx *page.Context, children *VNode) *VNode {
	return Div(Class("app"),
		Header(Class("border-b bg-white"),
			Nav(Class("flex gap-4 px-4 py-3"),
				page.NavLink(ctx, "/", "Home"),
				page.ActiveLink(ctx, "/book/1", "active", false, "Book"),
				page.ActiveLink(ctx, "/dynamic/123", "active", false, "Dynamic"),
				page.ActiveLink(ctx, "/docs", "active", false, "Docs"),
				page.NavLink(ctx, "/users", "Users"),
			),
		),
		children,
	)
}
