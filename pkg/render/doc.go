// Package render serializes virtual DOM trees to HTML and writes the page
// document the wasm client hydrates.
//
// Text is escaped, raw nodes are written verbatim, event handlers are
// dropped from the markup and interactive elements carry a data-hid
// attribute:
//
//	r := render.NewRenderer()
//	html, _ := r.RenderToString(vdom.Button(vdom.OnClick(fn), "Go"))
//	// <button data-hid="h1">Go</button>
//
// RenderDocument wraps the body in the root element:
//
//	<div id="root" data-page="/dynamic/42/index"
//	     data-router="{...}" data-layouts="[...]">...</div>
package render
