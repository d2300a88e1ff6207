package book

import (
	. "github.com/vango-dev/vanext/el"
	"github.com/vango-dev/vanext/pkg/page"
)

func Page(ctx *page.Context) *VNode {
	return Main(Class("flex min-h-screen flex-col items-center justify-center bg-gray-100 text-2xl"),
		H1(Class("text-4xl font-bold text-blue-600"), "dynamic page"),
		P(Class("mt-2"), "This is a dynamic page"),
		P(Class("text-sm"), Textf("Book %s", ctx.Param("id"))),
	)
}
