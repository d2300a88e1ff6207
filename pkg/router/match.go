package router

// Match is the result of resolving a request against the table. It is
// derived per request and never stored.
type Match struct {
	Entry

	// Params are the path params by name. Catch-all values are the joined
	// remainder ("a/b/c").
	Params map[string]string

	// Query are the query params.
	Query Query

	// Pathname is the request path as received.
	Pathname string

	// Normalized is Pathname with leading and trailing slashes.
	Normalized string

	// Search is the raw query string with its "?", or "".
	Search string

	// Route is the route key, e.g. "/dynamic/42/index".
	Route string
}

// PageID returns the id of the page to render.
func (m *Match) PageID() string { return m.Pattern }

// Param returns a path param, or "".
func (m *Match) Param(name string) string { return m.Params[name] }
