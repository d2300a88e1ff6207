package pages

import (
	"github.com/vango-dev/vanext/app/providers"
	. "github.com/vango-dev/vanext/el"
	"github.com/vango-dev/vanext/pkg/page"
)

func Page(ctx *page.Context) *VNode {
	return Main(Class("flex min-h-screen flex-col items-center justify-center bg-gray-100 text-2xl"),
		H1(Class("text-4xl font-bold text-blue-600"), "Hello from Go + wasm!"),
		P(Class("mt-2"), "This is the index route"),
		P(providers.Test(ctx)),
		Button(Class("p-2 border rounded-lg"),
			OnClick(func() { providers.SetTest(ctx, "Hello from context!") }),
			"Set test",
		),
	)
}
