// This file re-exports vdom attribute helpers for the el package.
package el

import "github.com/vango-dev/vanext/pkg/vdom"

func ID(id string) Attr {
	return vdom.ID(id)
}
func Class(classes ...string) Attr {
	return vdom.Class(classes...)
}
func ClassIf(cond bool, class string) Attr {
	return vdom.ClassIf(cond, class)
}
func Style(css string) Attr {
	return vdom.Style(css)
}
func Title(text string) Attr {
	return vdom.Title(text)
}
func Data(key, value string) Attr {
	return vdom.Data(key, value)
}
func Aria(key, value string) Attr {
	return vdom.Aria(key, value)
}
func Role(role string) Attr {
	return vdom.Role(role)
}
func Href(url string) Attr {
	return vdom.Href(url)
}
func Target(target string) Attr {
	return vdom.Target(target)
}
func Rel(rel string) Attr {
	return vdom.Rel(rel)
}
func Src(url string) Attr {
	return vdom.Src(url)
}
func Alt(text string) Attr {
	return vdom.Alt(text)
}
func Type(t string) Attr {
	return vdom.Type(t)
}
func Name(name string) Attr {
	return vdom.Name(name)
}
func Value(v string) Attr {
	return vdom.Value(v)
}
func Placeholder(text string) Attr {
	return vdom.Placeholder(text)
}
func Disabled(disabled bool) Attr {
	return vdom.Disabled(disabled)
}
func Checked(checked bool) Attr {
	return vdom.Checked(checked)
}
func Required(required bool) Attr {
	return vdom.Required(required)
}
func Action(url string) Attr {
	return vdom.Action(url)
}
func Method(m string) Attr {
	return vdom.Method(m)
}
func Key(key any) Attr {
	return vdom.Key(key)
}
