// Package dev implements the vanext development loop.
//
// The loop is made of four parts:
//
//   - Watcher: fsnotify over the app directory, recursive, debounced
//   - Compiler: builds the frontend server binary and restarts it
//   - ReloadServer: a WebSocket endpoint browsers listen on for reloads
//   - Server: ties them together with the client builder
//
// On a Go change the route table is regenerated, the wasm client and the
// server are rebuilt, the server is restarted and browsers reload. CSS
// and other public files only trigger the reload, since they are served
// from disk.
//
// # Usage
//
//	srv, err := dev.NewServer(dev.ServerOptions{Config: cfg})
//	if err != nil {
//	    return err
//	}
//	return srv.Start(ctx)
//
// # Reload Protocol
//
// Pages rendered in development connect to ws://localhost:3001/hmr (see
// dev.reloadPort and dev.reloadPath). The server sends the text frame
// "reload" and the page calls location.reload().
package dev
