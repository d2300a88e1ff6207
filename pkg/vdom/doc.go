// Package vdom provides the virtual DOM that vanext pages and layouts
// return.
//
// The same tree is built twice: on the server, where pkg/render turns it
// into HTML, and in the wasm client, where pkg/hydrate binds its event
// handlers to the server markup.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    Button(OnClick(increment), Text("+1")),
//	)
//
// Strings become text children; nil children are skipped, so If and When
// compose freely.
//
// # Hydration
//
// Elements with at least one event handler are interactive. AssignHIDs
// numbers them h1, h2, ... in document order. The server writes the ids as
// data-hid attributes and the client reassigns them on its own copy of the
// tree, which is what links a DOM element back to its handler.
package vdom
