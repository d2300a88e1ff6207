// Package routepath cleans request paths before routing and validates the
// targets pages navigate to.
package routepath

import (
	"errors"
	"strings"
)

// Path errors.
var (
	ErrInvalidPath     = errors.New("invalid path")
	ErrBackslashInPath = errors.New("path contains backslash")
	ErrNullByteInPath  = errors.New("path contains null byte")
	ErrPathEscapesRoot = errors.New("path escapes root via ..")
)

// Result is a canonicalized path.
type Result struct {
	// Path is the canonical path, without query.
	Path string

	// Query is the query string without the leading "?".
	Query string

	// Changed reports whether Path differs from the input path.
	Changed bool
}

// Canonicalize collapses repeated slashes and resolves "." and ".."
// segments:
//
//	/blog//post      →  /blog/post
//	/blog/./post     →  /blog/post
//	/blog/../other/  →  /other/
//
// A trailing slash is kept, since "/dynamic/42/" and "/dynamic/42" both
// route to the same page and report their own pathname. Backslashes, NUL
// bytes and ".." above the root are rejected. A query after "?" is
// returned untouched.
func Canonicalize(input string) (Result, error) {
	path, query, _ := strings.Cut(input, "?")
	if path == "" {
		return Result{Path: "/", Query: query, Changed: true}, nil
	}
	if strings.Contains(path, `\`) {
		return Result{}, ErrBackslashInPath
	}
	if strings.ContainsRune(path, 0) || strings.Contains(strings.ToUpper(path), "%00") {
		return Result{}, ErrNullByteInPath
	}

	trailing := len(path) > 1 && strings.HasSuffix(path, "/")

	var segs []string
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(segs) == 0 {
				return Result{}, ErrPathEscapesRoot
			}
			segs = segs[:len(segs)-1]
		default:
			segs = append(segs, seg)
		}
	}

	clean := "/" + strings.Join(segs, "/")
	if trailing && clean != "/" {
		clean += "/"
	}
	return Result{Path: clean, Query: query, Changed: clean != path}, nil
}

// NavPath validates a navigation target. Targets must be local absolute
// paths; full and protocol-relative URLs are rejected so a page cannot be
// turned into an open redirect. The canonical path is returned with its
// query and fragment.
func NavPath(target string) (string, error) {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "", ErrInvalidPath
	}

	rest, fragment, hasFragment := strings.Cut(target, "#")
	res, err := Canonicalize(rest)
	if err != nil {
		return "", err
	}

	out := res.Path
	if res.Query != "" {
		out += "?" + res.Query
	}
	if hasFragment {
		out += "#" + fragment
	}
	return out, nil
}
