package hydrate

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	apperrors "github.com/vango-dev/vanext/internal/errors"
	"github.com/vango-dev/vanext/pkg/page"
	"github.com/vango-dev/vanext/pkg/render"
	"github.com/vango-dev/vanext/pkg/router"
	"github.com/vango-dev/vanext/pkg/vdom"
)

// Config configures a Hydrator.
type Config struct {
	// Routes is the generated route table, the same one the server uses.
	Routes *router.Table

	// Registry holds the page, layout and provider functions.
	Registry *page.Registry

	// Navigator performs navigations. Defaults to page.ServerNavigator.
	Navigator page.Navigator

	// Global is the global store. Defaults to a new store.
	Global *page.Store

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Hydrator rebuilds the server-rendered page in the client, binds its
// event handlers and re-renders the root when the global store changes.
type Hydrator struct {
	cfg    Config
	logger *slog.Logger

	mu       sync.Mutex
	root     Element
	ctx      *page.Context
	pageFn   page.PageFunc
	layouts  []string
	tree     *vdom.VNode
	releases []func()
	unsub    func()

	// rendering is set while page functions run outside mu; dirty records
	// a Rerender that arrived meanwhile.
	rendering bool
	dirty     bool
}

// maxRenderPasses bounds the renders triggered by store writes made
// while rendering.
const maxRenderPasses = 10

// New creates a hydrator.
func New(cfg Config) *Hydrator {
	if cfg.Registry == nil {
		cfg.Registry = page.NewRegistry()
	}
	if cfg.Global == nil {
		cfg.Global = page.NewStore()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Hydrator{cfg: cfg, logger: logger}
}

// Hydrate reads the root element, picks the page and binds the handlers
// of the rebuilt tree to the server markup. A missing root or data-page
// attribute is an error; malformed router or layout data is logged and
// replaced by defaults.
func (h *Hydrator) Hydrate(ctx context.Context, dom DOM) error {
	root, ok := dom.Root()
	if !ok {
		return apperrors.New(apperrors.CodeHydrationRoot)
	}
	pageKey, ok := root.Attr("data-page")
	if !ok || pageKey == "" {
		return apperrors.New(apperrors.CodeHydrationPage)
	}

	data := page.DefaultRouterData()
	if raw, ok := root.Attr("data-router"); ok && raw != "" {
		var parsed page.RouterData
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			h.logger.Error("failed to parse router data", "error", err)
		} else {
			data = parsed.Normalize()
		}
	}

	layouts := []string{}
	if raw, ok := root.Attr("data-layouts"); ok && raw != "" {
		var parsed []string
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			h.logger.Error("failed to parse layout paths", "error", err)
		} else if parsed != nil {
			layouts = parsed
		}
	}

	pageFn := h.lookupPage(pageKey)

	h.mu.Lock()
	h.root = root
	h.layouts = layouts
	h.pageFn = pageFn
	h.ctx = page.NewContext(ctx, data, h.cfg.Global, h.cfg.Navigator)
	h.rendering = true
	if h.unsub == nil {
		h.unsub = h.cfg.Global.Subscribe(h.Rerender)
	}
	h.mu.Unlock()

	h.render(true)
	return nil
}

// lookupPage resolves the page for a route key: exact key first, then
// the dynamic patterns, then a placeholder.
func (h *Hydrator) lookupPage(key string) page.PageFunc {
	if h.cfg.Routes != nil {
		if entry, _, ok := h.cfg.Routes.MatchKey(key); ok {
			if fn, ok := h.cfg.Registry.LookupPage(entry.Pattern); ok {
				return fn
			}
		}
	}
	h.logger.Error("no page found for route", "route", key)
	return notFoundPage
}

func notFoundPage(*page.Context) *vdom.VNode {
	return vdom.Div("Page not found")
}

// compose builds the tree and numbers its interactive elements the way
// the server renderer does. It runs without mu so page functions may
// write to the global store.
func (h *Hydrator) compose(ctx *page.Context, fn page.PageFunc, layouts []string) *vdom.VNode {
	tree := h.cfg.Registry.Compose(ctx, fn, layouts)
	vdom.AssignHIDs(tree, vdom.NewHIDGenerator())
	return tree
}

// render composes the page until no Rerender arrives during a pass.
// The first pass of a hydration keeps the server markup. Caller has set
// rendering.
func (h *Hydrator) render(initial bool) {
	for pass := 1; ; pass++ {
		h.mu.Lock()
		ctx, fn, layouts := h.ctx, h.pageFn, h.layouts
		h.dirty = false
		h.mu.Unlock()

		tree := h.compose(ctx, fn, layouts)
		var html string
		if !initial {
			var err error
			html, err = render.NewRenderer().RenderToString(tree)
			if err != nil {
				h.logger.Error("re-render failed", "error", err)
				h.finishRender()
				return
			}
		}

		h.mu.Lock()
		if h.root == nil {
			h.rendering = false
			h.mu.Unlock()
			return
		}
		h.unbind()
		h.tree = tree
		if !initial {
			h.root.SetInnerHTML(html)
		}
		h.bind()
		initial = false

		if !h.dirty {
			h.rendering = false
			h.mu.Unlock()
			return
		}
		if pass >= maxRenderPasses {
			h.rendering = false
			h.dirty = false
			h.mu.Unlock()
			h.logger.Warn("store kept changing during render", "passes", pass)
			return
		}
		h.mu.Unlock()
	}
}

func (h *Hydrator) finishRender() {
	h.mu.Lock()
	h.rendering = false
	h.dirty = false
	h.mu.Unlock()
}

// bind attaches listeners for every interactive node. Caller holds mu.
func (h *Hydrator) bind() {
	for hid, node := range vdom.CollectHIDs(h.tree) {
		el, ok := h.root.QueryHID(hid)
		if !ok {
			h.logger.Warn("hydration mismatch: element not found", "hid", hid, "tag", node.Tag)
			continue
		}
		for _, event := range node.Events() {
			handler := node.Handler(event)
			release := el.Listen(event, func(e vdom.Event) {
				vdom.Invoke(handler, e)
			})
			h.releases = append(h.releases, release)
		}
	}
}

func (h *Hydrator) unbind() {
	for _, release := range h.releases {
		release()
	}
	h.releases = nil
}

// Rerender rebuilds the page, replaces the root content and rebinds the
// listeners. It is a no-op before Hydrate. A call made while a render is
// in progress, including from a page function, schedules another pass.
func (h *Hydrator) Rerender() {
	h.mu.Lock()
	if h.root == nil {
		h.mu.Unlock()
		return
	}
	if h.rendering {
		h.dirty = true
		h.mu.Unlock()
		return
	}
	h.rendering = true
	h.mu.Unlock()

	h.render(false)
}

// Close removes every listener and the store subscription. Later
// Rerender calls do nothing.
func (h *Hydrator) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.unbind()
	h.root = nil
	if h.unsub != nil {
		h.unsub()
		h.unsub = nil
	}
}

// Tree returns the current virtual tree.
func (h *Hydrator) Tree() *vdom.VNode {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tree
}
