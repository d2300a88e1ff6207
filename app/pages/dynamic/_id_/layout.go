package dynamic

import (
	. "github.com/vango-dev/vanext/el"
	"github.com/vango-dev/vanext/pkg/page"
)

// Layout wraps every page below /dynamic/[id].
func Layout(ctx *page.Context, children *VNode) *VNode {
	return Div(Class("min-h-screen bg-gradient-to-br from-purple-50 to-blue-50"),
		Nav(Class("bg-white shadow-sm border-b"),
			Div(Class("max-w-7xl mx-auto px-4 py-3 flex items-center justify-between"),
				H2(Class("text-lg font-semibold text-purple-600"), "Protected Section Layout"),
				Div(Class("text-sm text-gray-600"), "This layout wraps all /dynamic/[id] routes"),
			),
		),
		Div(Class("max-w-7xl mx-auto px-4 py-6"), children),
		Footer(Class("mt-auto py-4 text-center text-sm text-gray-500"), "Dynamic Route Layout Footer"),
	)
}
