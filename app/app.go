// Package app is the demo application: its pages live under pages/ and
// routes_gen.go binds them to the route table.
package app

import (
	"github.com/vango-dev/vanext/app/providers"
	"github.com/vango-dev/vanext/pkg/page"
)

//go:generate go run github.com/vango-dev/vanext/cmd/vanext gen routes

// NewRegistry returns a registry holding every page, layout and the
// global provider.
func NewRegistry() *page.Registry {
	reg := page.NewRegistry()
	Register(reg)
	reg.Providers(providers.Providers)
	return reg
}
