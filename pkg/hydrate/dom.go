package hydrate

import "github.com/vango-dev/vanext/pkg/vdom"

// DOM is the part of the browser document the hydrator needs. The wasm
// build implements it on syscall/js; tests use an in-memory fake.
type DOM interface {
	// Root returns the #root element.
	Root() (Element, bool)
}

// Element is a DOM element.
type Element interface {
	// Attr returns an attribute value.
	Attr(name string) (string, bool)

	// SetInnerHTML replaces the element's content.
	SetInnerHTML(html string)

	// QueryHID finds the descendant carrying data-hid=hid.
	QueryHID(hid string) (Element, bool)

	// Listen registers fn for event and returns a function removing it.
	Listen(event string, fn func(vdom.Event)) (release func())
}
