package router

import (
	"path"
	"regexp"
	"strings"
)

// Directory names cannot hold brackets in Go import paths, so pages use
// an underscore notation that maps onto bracket segments:
//
//	_id_        →  [id]
//	_slug___    →  [...slug]
//	__slug___   →  [[...slug]]
//
// Bracket names are accepted verbatim too.
var (
	optionalDirRe = regexp.MustCompile(`^__(\w+)___$`)
	catchAllDirRe = regexp.MustCompile(`^_(\w+)___$`)
	paramDirRe    = regexp.MustCompile(`^_(\w+)_$`)
)

// SegmentPattern converts one directory name to its pattern segment.
func SegmentPattern(dir string) string {
	if strings.HasPrefix(dir, "[") {
		return dir
	}
	if m := optionalDirRe.FindStringSubmatch(dir); m != nil {
		return "[[..." + m[1] + "]]"
	}
	if m := catchAllDirRe.FindStringSubmatch(dir); m != nil {
		return "[..." + m[1] + "]"
	}
	if m := paramDirRe.FindStringSubmatch(dir); m != nil {
		return "[" + m[1] + "]"
	}
	return dir
}

// DirPattern converts a slash-separated directory, relative to the pages
// root, to its pattern prefix: "dynamic/_id_" → "/dynamic/[id]". The root
// directory ("" or ".") yields "".
func DirPattern(dir string) string {
	dir = strings.Trim(path.Clean("/"+dir), "/")
	if dir == "" {
		return ""
	}
	parts := strings.Split(dir, "/")
	for i, p := range parts {
		parts[i] = SegmentPattern(p)
	}
	return "/" + strings.Join(parts, "/")
}

// PageID returns the page id of the page in dir: "/dynamic/[id]/index".
func PageID(dir string) string {
	return DirPattern(dir) + "/index"
}

// LayoutID returns the layout id of the layout in dir: "/dynamic/[id]/layout".
func LayoutID(dir string) string {
	return DirPattern(dir) + "/layout"
}
