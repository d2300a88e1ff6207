// Package el provides the UI DSL for vanext pages.
//
// It re-exports the element constructors, attribute helpers, event helpers
// and conditional helpers of github.com/vango-dev/vanext/pkg/vdom so page
// files can dot-import a single package:
//
//	import (
//	    "github.com/vango-dev/vanext/pkg/page"
//	    . "github.com/vango-dev/vanext/el"
//	)
//
//	func Page(ctx *page.Context) *VNode {
//	    return Div(H1(Textf("Book %s", ctx.Param("id"))))
//	}
package el
