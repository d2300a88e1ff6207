// Package hydrate brings server-rendered vanext pages to life in the wasm
// client.
//
// The hydrator reads the #root element written by pkg/render, resolves
// the page from data-page through the shared route table, rebuilds the
// same tree (providers, layouts from data-layouts, page) with the
// data-router snapshot and binds each handler to the element carrying
// the matching data-hid. A Set on the global store re-renders the root.
//
// The browser is reached through the DOM interface. JSDOM and
// JSNavigator implement it with syscall/js in js/wasm builds.
package hydrate
