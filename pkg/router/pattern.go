package router

import (
	"fmt"
	"regexp"
	"strings"
)

// bracketRe finds the dynamic parts of a route pattern. Alternatives are
// tried left to right at each position, so an optional catch-all framed by
// slashes wins over a plain catch-all, which wins over a single param.
var bracketRe = regexp.MustCompile(`/\[\[\.\.\.([^\]/]+)\]\]/|\[\.\.\.([^\]/]+)\]|\[([^\]/]+)\]`)

// paramNameRe is what a param name must look like to become a regexp group.
var paramNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Pattern is a compiled route pattern such as "/dynamic/[id]/index".
type Pattern struct {
	raw     string
	re      *regexp.Regexp
	names   []string
	dynamic bool
}

// CompilePattern translates a bracket pattern into an anchored regexp:
//
//	/[[...name]]/  →  (?:/(?P<name>.+)/|/)   zero or more segments
//	[...name]      →  (?P<name>.+)           one or more segments
//	[name]         →  (?P<name>[^/]+)        exactly one segment
//
// Literal text is quoted. A pattern without brackets is static.
func CompilePattern(raw string) (*Pattern, error) {
	p := &Pattern{raw: raw}

	var b strings.Builder
	b.WriteString("^")
	last := 0
	for _, m := range bracketRe.FindAllStringSubmatchIndex(raw, -1) {
		b.WriteString(regexp.QuoteMeta(raw[last:m[0]]))
		last = m[1]

		switch {
		case m[2] >= 0:
			name := raw[m[2]:m[3]]
			if err := p.addName(name); err != nil {
				return nil, err
			}
			fmt.Fprintf(&b, "(?:/(?P<%s>.+)/|/)", name)
		case m[4] >= 0:
			name := raw[m[4]:m[5]]
			if err := p.addName(name); err != nil {
				return nil, err
			}
			fmt.Fprintf(&b, "(?P<%s>.+)", name)
		default:
			name := raw[m[6]:m[7]]
			if err := p.addName(name); err != nil {
				return nil, err
			}
			fmt.Fprintf(&b, "(?P<%s>[^/]+)", name)
		}
	}
	b.WriteString(regexp.QuoteMeta(raw[last:]))
	b.WriteString("$")

	p.dynamic = len(p.names) > 0
	if !p.dynamic {
		return p, nil
	}

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("route %q: %w", raw, err)
	}
	p.re = re
	return p, nil
}

func (p *Pattern) addName(name string) error {
	if !paramNameRe.MatchString(name) {
		return fmt.Errorf("route %q: invalid param name %q", p.raw, name)
	}
	for _, n := range p.names {
		if n == name {
			return fmt.Errorf("route %q: duplicate param name %q", p.raw, name)
		}
	}
	p.names = append(p.names, name)
	return nil
}

// String returns the pattern as written.
func (p *Pattern) String() string { return p.raw }

// IsDynamic reports whether the pattern has at least one param.
func (p *Pattern) IsDynamic() bool { return p.dynamic }

// ParamNames returns the param names in pattern order.
func (p *Pattern) ParamNames() []string { return p.names }

// Match matches a route key against the pattern. Static patterns match
// only themselves. Params whose group did not participate in the match,
// such as an optional catch-all matching zero segments, are absent.
func (p *Pattern) Match(key string) (map[string]string, bool) {
	if !p.dynamic {
		if key == p.raw {
			return map[string]string{}, true
		}
		return nil, false
	}

	idx := p.re.FindStringSubmatchIndex(key)
	if idx == nil {
		return nil, false
	}

	params := make(map[string]string, len(p.names))
	for i, name := range p.re.SubexpNames() {
		if name == "" || idx[2*i] < 0 {
			continue
		}
		params[name] = key[idx[2*i]:idx[2*i+1]]
	}
	return params, true
}
