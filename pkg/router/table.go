package router

import (
	"fmt"
	"strings"

	apperrors "github.com/vango-dev/vanext/internal/errors"
)

// Entry is one row of the route table. The pattern doubles as the page
// id the page registry is keyed by.
type Entry struct {
	// Pattern is the route key pattern, e.g. "/dynamic/[id]/index".
	Pattern string

	// Layouts are the layout ids wrapping the page, outermost first.
	Layouts []string
}

// Table is an ordered route table. Patterns are compiled once, when the
// table is built.
type Table struct {
	entries  []Entry
	patterns []*Pattern
	exact    map[string]int
	dynamic  []int
}

// NewTable compiles entries in order. Duplicate patterns are rejected.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		entries:  make([]Entry, 0, len(entries)),
		patterns: make([]*Pattern, 0, len(entries)),
		exact:    make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.exact[e.Pattern]; dup {
			return nil, apperrors.New(apperrors.CodeDuplicateRoute).
				WithDetail(fmt.Sprintf("pattern %s is declared twice", e.Pattern))
		}
		p, err := CompilePattern(e.Pattern)
		if err != nil {
			return nil, err
		}
		i := len(t.entries)
		t.entries = append(t.entries, e)
		t.patterns = append(t.patterns, p)
		t.exact[e.Pattern] = i
		if p.IsDynamic() {
			t.dynamic = append(t.dynamic, i)
		}
	}
	return t, nil
}

// MustTable is NewTable for generated code. It panics on error.
func MustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Entries returns the entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Lookup finds an entry by exact pattern.
func (t *Table) Lookup(pattern string) (Entry, bool) {
	i, ok := t.exact[pattern]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// MatchKey resolves a route key. The exact key is tried first, then every
// dynamic pattern in table order; the first match wins.
func (t *Table) MatchKey(key string) (Entry, map[string]string, bool) {
	if i, ok := t.exact[key]; ok {
		return t.entries[i], map[string]string{}, true
	}
	for _, i := range t.dynamic {
		if params, ok := t.patterns[i].Match(key); ok {
			return t.entries[i], params, true
		}
	}
	return Entry{}, nil, false
}

// Match resolves a request path and raw query string.
func (t *Table) Match(pathname, rawQuery string) (*Match, bool) {
	normalized, key := Normalize(pathname)
	entry, params, ok := t.MatchKey(key)
	if !ok {
		return nil, false
	}

	search := ""
	if rawQuery = strings.TrimPrefix(rawQuery, "?"); rawQuery != "" {
		search = "?" + rawQuery
	}

	return &Match{
		Entry:      entry,
		Params:     params,
		Query:      ParseQuery(rawQuery),
		Pathname:   pathname,
		Normalized: normalized,
		Search:     search,
		Route:      key,
	}, true
}

// Normalize returns the pathname with a leading and a trailing slash, and
// the route key derived from it: "/index" for the root, otherwise the
// normalized path with its trailing slash replaced by "/index".
func Normalize(pathname string) (normalized, key string) {
	normalized = pathname
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	if !strings.HasSuffix(normalized, "/") {
		normalized += "/"
	}
	if normalized == "/" {
		return normalized, "/index"
	}
	return normalized, strings.TrimSuffix(normalized, "/") + "/index"
}
