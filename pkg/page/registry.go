package page

import (
	"sort"
	"sync"

	apperrors "github.com/vango-dev/vanext/internal/errors"
	"github.com/vango-dev/vanext/pkg/vdom"
)

// Registry maps page ids and layout ids to their functions. The generated
// routes file fills it; server and client both compose pages through it.
type Registry struct {
	mu        sync.RWMutex
	pages     map[string]PageFunc
	layouts   map[string]LayoutFunc
	providers LayoutFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pages:   make(map[string]PageFunc),
		layouts: make(map[string]LayoutFunc),
	}
}

// Page registers a page under its pattern ("/dynamic/[id]/index").
func (r *Registry) Page(id string, fn PageFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages[id] = fn
}

// Layout registers a layout under its id ("/dynamic/[id]/layout").
func (r *Registry) Layout(id string, fn LayoutFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layouts[id] = fn
}

// Providers sets the component wrapping every page and its layouts.
func (r *Registry) Providers(fn LayoutFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = fn
}

// LookupPage returns the page registered under id.
func (r *Registry) LookupPage(id string) (PageFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.pages[id]
	return fn, ok
}

// LookupLayout returns the layout registered under id.
func (r *Registry) LookupLayout(id string) (LayoutFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.layouts[id]
	return fn, ok
}

// PageIDs returns the registered page ids, sorted.
func (r *Registry) PageIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.pages))
	for id := range r.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Render composes the page registered under pageID. An unknown page is a
// CodePageNotRegistered error.
func (r *Registry) Render(ctx *Context, pageID string, layouts []string) (*vdom.VNode, error) {
	fn, ok := r.LookupPage(pageID)
	if !ok {
		return nil, apperrors.New(apperrors.CodePageNotRegistered).
			WithDetail("page " + pageID + " is in the route table but not in the registry")
	}
	return r.Compose(ctx, fn, layouts), nil
}

// Compose renders fn, wraps it in the layouts (the first id ends up
// outermost) and finally in the providers. Layout ids that are not
// registered are skipped.
func (r *Registry) Compose(ctx *Context, fn PageFunc, layouts []string) *vdom.VNode {
	node := fn(ctx)
	for i := len(layouts) - 1; i >= 0; i-- {
		layout, ok := r.LookupLayout(layouts[i])
		if !ok {
			continue
		}
		node = layout(ctx, node)
	}

	r.mu.RLock()
	providers := r.providers
	r.mu.RUnlock()
	if providers != nil {
		node = providers(ctx, node)
	}
	return node
}
