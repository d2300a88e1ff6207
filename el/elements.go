// This file re-exports vdom element constructors for the el package.
package el

import "github.com/vango-dev/vanext/pkg/vdom"

func Element(tag string, args ...any) *VNode {
	return vdom.Element(tag, args...)
}
func Html(args ...any) *VNode {
	return vdom.Html(args...)
}
func Head(args ...any) *VNode {
	return vdom.Head(args...)
}
func Body(args ...any) *VNode {
	return vdom.Body(args...)
}
func Header(args ...any) *VNode {
	return vdom.Header(args...)
}
func Footer(args ...any) *VNode {
	return vdom.Footer(args...)
}
func Main(args ...any) *VNode {
	return vdom.Main(args...)
}
func Nav(args ...any) *VNode {
	return vdom.Nav(args...)
}
func Section(args ...any) *VNode {
	return vdom.Section(args...)
}
func Div(args ...any) *VNode {
	return vdom.Div(args...)
}
func Span(args ...any) *VNode {
	return vdom.Span(args...)
}
func P(args ...any) *VNode {
	return vdom.P(args...)
}
func H1(args ...any) *VNode {
	return vdom.H1(args...)
}
func H2(args ...any) *VNode {
	return vdom.H2(args...)
}
func H3(args ...any) *VNode {
	return vdom.H3(args...)
}
func Ul(args ...any) *VNode {
	return vdom.Ul(args...)
}
func Ol(args ...any) *VNode {
	return vdom.Ol(args...)
}
func Li(args ...any) *VNode {
	return vdom.Li(args...)
}
func A(args ...any) *VNode {
	return vdom.A(args...)
}
func Strong(args ...any) *VNode {
	return vdom.Strong(args...)
}
func Code(args ...any) *VNode {
	return vdom.Code(args...)
}
func Pre(args ...any) *VNode {
	return vdom.Pre(args...)
}
func Hr(args ...any) *VNode {
	return vdom.Hr(args...)
}
func Img(args ...any) *VNode {
	return vdom.Img(args...)
}
func Form(args ...any) *VNode {
	return vdom.Form(args...)
}
func Input(args ...any) *VNode {
	return vdom.Input(args...)
}
func Label(args ...any) *VNode {
	return vdom.Label(args...)
}
func Button(args ...any) *VNode {
	return vdom.Button(args...)
}
