package page

import "github.com/vango-dev/vanext/pkg/router"

// RouterData is the routing snapshot shared by server and client. The
// server embeds it as JSON in the data-router attribute of the root
// element; the client decodes it before rebuilding the page.
type RouterData struct {
	Pathname string            `json:"pathname"`
	Params   map[string]string `json:"params"`
	Query    router.Query      `json:"query"`
	Search   string            `json:"search"`
	Route    string            `json:"route"`
	Pattern  string            `json:"pattern,omitempty"`
}

// DefaultRouterData is used when no match or no valid snapshot exists.
func DefaultRouterData() RouterData {
	return RouterData{
		Pathname: "/",
		Params:   map[string]string{},
		Query:    router.Query{},
		Route:    "/index",
	}
}

// FromMatch builds the snapshot of a route match.
func FromMatch(m *router.Match) RouterData {
	if m == nil {
		return DefaultRouterData()
	}
	data := RouterData{
		Pathname: m.Pathname,
		Params:   m.Params,
		Query:    m.Query,
		Search:   m.Search,
		Route:    m.Route,
		Pattern:  m.PageID(),
	}
	return data.withDefaults()
}

// withDefaults replaces nil maps so the JSON form always carries objects.
func (d RouterData) withDefaults() RouterData {
	if d.Params == nil {
		d.Params = map[string]string{}
	}
	if d.Query == nil {
		d.Query = router.Query{}
	}
	if d.Pathname == "" {
		d.Pathname = "/"
	}
	if d.Route == "" {
		d.Route = "/index"
	}
	return d
}

// Normalize fills missing fields with their defaults.
func (d RouterData) Normalize() RouterData {
	return d.withDefaults()
}
