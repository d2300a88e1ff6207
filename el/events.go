// This file re-exports vdom event helpers for the el package.
package el

import "github.com/vango-dev/vanext/pkg/vdom"

func OnClick(handler any) EventHandler {
	return vdom.OnClick(handler)
}
func OnInput(handler any) EventHandler {
	return vdom.OnInput(handler)
}
func OnChange(handler any) EventHandler {
	return vdom.OnChange(handler)
}
func OnSubmit(handler any) EventHandler {
	return vdom.OnSubmit(handler)
}
func OnKeyDown(handler any) EventHandler {
	return vdom.OnKeyDown(handler)
}
