//go:build js && wasm

package hydrate

import (
	"syscall/js"

	"github.com/vango-dev/vanext/pkg/page"
)

// JSNavigator maps navigations to the browser location and history.
type JSNavigator struct{}

// NewJSNavigator creates the browser navigator.
func NewJSNavigator() JSNavigator { return JSNavigator{} }

func (JSNavigator) Push(url string, opts ...page.NavigateOption) {
	o := page.ApplyNavigateOptions(opts...)
	window := js.Global().Get("window")
	location := window.Get("location")
	if o.Replace {
		location.Call("replace", url)
	} else {
		location.Set("href", url)
	}
	if !o.KeepScroll {
		window.Call("scrollTo", 0, 0)
	}
}

func (n JSNavigator) Replace(url string, opts ...page.NavigateOption) {
	n.Push(url, append(opts, page.WithReplace())...)
}

func (JSNavigator) Back() {
	js.Global().Get("history").Call("back")
}

func (JSNavigator) Forward() {
	js.Global().Get("history").Call("forward")
}

func (JSNavigator) Refresh() {
	js.Global().Get("location").Call("reload")
}
