//go:build js && wasm

package hydrate

import (
	"syscall/js"

	"github.com/vango-dev/vanext/pkg/vdom"
)

// JSDOM is the browser document.
type JSDOM struct {
	doc js.Value
}

// NewJSDOM wraps the global document.
func NewJSDOM() *JSDOM {
	return &JSDOM{doc: js.Global().Get("document")}
}

// Root returns #root.
func (d *JSDOM) Root() (Element, bool) {
	el := d.doc.Call("getElementById", "root")
	if !present(el) {
		return nil, false
	}
	return jsElement{v: el}, true
}

type jsElement struct {
	v js.Value
}

func (e jsElement) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e jsElement) SetInnerHTML(html string) {
	e.v.Set("innerHTML", html)
}

func (e jsElement) QueryHID(hid string) (Element, bool) {
	el := e.v.Call("querySelector", `[data-hid="`+hid+`"]`)
	if !present(el) {
		return nil, false
	}
	return jsElement{v: el}, true
}

func (e jsElement) Listen(event string, fn func(vdom.Event)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			fn(vdom.Event{Type: event})
			return nil
		}
		ev := args[0]
		if event == "submit" {
			ev.Call("preventDefault")
		}
		fn(toEvent(ev))
		return nil
	})
	e.v.Call("addEventListener", event, cb)
	return func() {
		e.v.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

func toEvent(ev js.Value) vdom.Event {
	out := vdom.Event{Type: ev.Get("type").String()}
	if key := ev.Get("key"); key.Type() == js.TypeString {
		out.Key = key.String()
	}
	target := ev.Get("target")
	if !present(target) {
		return out
	}
	if value := target.Get("value"); value.Type() == js.TypeString {
		out.Value = value.String()
	}
	if checked := target.Get("checked"); checked.Type() == js.TypeBoolean {
		out.Checked = checked.Bool()
	}
	return out
}

func present(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}
