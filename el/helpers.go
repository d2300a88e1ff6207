package el

import "github.com/vango-dev/vanext/pkg/vdom"

func Text(content string) *VNode {
	return vdom.Text(content)
}
func Textf(format string, args ...any) *VNode {
	return vdom.Textf(format, args...)
}
func Raw(html string) *VNode {
	return vdom.Raw(html)
}
func Fragment(children ...any) *VNode {
	return vdom.Fragment(children...)
}
func If(cond bool, node *VNode) *VNode {
	return vdom.If(cond, node)
}
func IfElse(cond bool, a, b *VNode) *VNode {
	return vdom.IfElse(cond, a, b)
}
func When(cond bool, build func() *VNode) *VNode {
	return vdom.When(cond, build)
}
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	return vdom.Range(items, fn)
}
