package dynamic

import (
	"encoding/json"

	. "github.com/vango-dev/vanext/el"
	"github.com/vango-dev/vanext/pkg/page"
)

const card = "mt-4 p-4 border rounded-lg bg-white"

func Page(ctx *page.Context) *VNode {
	id := ctx.Param("id")
	params, _ := json.Marshal(ctx.Params())
	search := ctx.Router.Search
	if search == "" {
		search = "(none)"
	}

	return Main(Class("flex min-h-screen flex-col items-center justify-center bg-gray-100 text-2xl"),
		H1(Class("text-4xl font-bold text-blue-600"), "Dynamic Page"),
		P(Class("mt-2"), "This is a dynamic page"),

		Div(Class(card),
			H2(Class("text-xl font-bold mb-2"), "Route Params:"),
			P(Class("text-lg"), "ID: ", Span(Class("font-mono text-green-600"), id)),
			P(Class("text-sm mt-2"), "All params: ", string(params)),
		),

		Div(Class(card),
			H2(Class("text-xl font-bold mb-2"), "Router Info:"),
			P("Pathname: ", ctx.Pathname()),
			P("Route: ", ctx.Route()),
			P("Search: ", search),
		),

		Div(Class(card),
			H2(Class("text-xl font-bold mb-2"), "Navigation:"),
			Div(Class("flex flex-wrap gap-2"),
				navButton("bg-blue-500", "Go to Home", func() { ctx.Push("/") }),
				navButton("bg-green-500", "Go to /456", func() { ctx.Push("/dynamic/456") }),
				navButton("bg-purple-500", "Add Query Params", func() {
					ctx.Push("/dynamic/" + id + "?tab=settings&view=grid")
				}),
				navButton("bg-gray-500", "Back", ctx.Back),
			),
		),
	)
}

func navButton(color, label string, onClick func()) *VNode {
	return Button(Class("px-4 py-2 text-white text-sm rounded "+color), OnClick(onClick), label)
}
