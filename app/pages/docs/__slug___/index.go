package docs

import (
	"strings"

	. "github.com/vango-dev/vanext/el"
	"github.com/vango-dev/vanext/pkg/page"
)

func Page(ctx *page.Context) *VNode {
	slug := ctx.Param("slug")
	var parts []string
	if slug != "" {
		parts = strings.Split(slug, "/")
	}

	return Main(Class("mx-auto max-w-3xl p-6"),
		H1(Class("text-3xl font-bold"), "Docs"),
		IfElse(len(parts) == 0,
			P("Pick a section: ", page.Link("/docs/getting-started", "Getting started")),
			Div(
				P("Section: ", Code(slug)),
				Ol(Range(parts, func(part string, i int) *VNode {
					return Li(part)
				})),
			),
		),
	)
}
