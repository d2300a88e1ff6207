//go:build js && wasm

// Command client is the browser half of the app. It is built to
// client.wasm and hydrates the server-rendered page in #root.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/vango-dev/vanext/app"
	"github.com/vango-dev/vanext/pkg/hydrate"
	"github.com/vango-dev/vanext/pkg/page"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	h := hydrate.New(hydrate.Config{
		Routes:    app.Routes,
		Registry:  app.NewRegistry(),
		Navigator: hydrate.NewJSNavigator(),
		Global:    page.NewStore(),
		Logger:    logger,
	})
	if err := h.Hydrate(context.Background(), hydrate.NewJSDOM()); err != nil {
		logger.Error("hydration failed", "error", err)
	}

	// Handlers are JS callbacks into this program; it must stay alive.
	select {}
}
