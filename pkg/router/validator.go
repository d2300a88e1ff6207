package router

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError represents a route validation finding.
type ValidationError struct {
	// Type is the error category
	Type ValidationErrorType

	// Message is the human-readable error message
	Message string

	// Dirs are the page directories involved
	Dirs []string

	// Pattern is the route pattern involved
	Pattern string
}

func (e ValidationError) Error() string {
	if len(e.Dirs) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, strings.Join(e.Dirs, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ValidationErrorType categorizes validation findings.
type ValidationErrorType string

const (
	// ErrorDuplicateRoute indicates several directories resolve to the
	// same pattern. Example: [id] and _id_ next to each other.
	ErrorDuplicateRoute ValidationErrorType = "DUPLICATE_ROUTE"

	// ErrorInvalidParam indicates a param name that cannot be matched.
	ErrorInvalidParam ValidationErrorType = "INVALID_PARAM"

	// ErrorDuplicateParam indicates the same param name twice in a pattern.
	ErrorDuplicateParam ValidationErrorType = "DUPLICATE_PARAM"

	// WarningOverlap indicates two dynamic patterns can match the same
	// path. The one earlier in the table wins.
	WarningOverlap ValidationErrorType = "OVERLAPPING_ROUTES"
)

// IsWarning reports whether the finding leaves the table usable.
func (t ValidationErrorType) IsWarning() bool {
	return t == WarningOverlap
}

// MultiValidationError wraps multiple validation errors.
type MultiValidationError struct {
	Errors []ValidationError
}

func (e *MultiValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d route validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Validate checks scanned routes. Errors make the table unusable and are
// returned as a *MultiValidationError; overlap warnings are returned
// separately and never reorder the table.
func Validate(routes []ScannedRoute) (warnings []ValidationError, err error) {
	var errs []ValidationError

	errs = append(errs, validateDuplicates(routes)...)
	errs = append(errs, validateParams(routes)...)
	warnings = validateOverlaps(routes)

	if len(errs) > 0 {
		return warnings, &MultiValidationError{Errors: errs}
	}
	return warnings, nil
}

func validateDuplicates(routes []ScannedRoute) []ValidationError {
	byPattern := make(map[string][]string)
	var order []string
	for _, r := range routes {
		if !r.HasPage {
			continue
		}
		if _, seen := byPattern[r.Pattern]; !seen {
			order = append(order, r.Pattern)
		}
		byPattern[r.Pattern] = append(byPattern[r.Pattern], displayDir(r.Dir))
	}

	var errs []ValidationError
	for _, pattern := range order {
		dirs := byPattern[pattern]
		if len(dirs) <= 1 {
			continue
		}
		errs = append(errs, ValidationError{
			Type:    ErrorDuplicateRoute,
			Message: fmt.Sprintf("Duplicate route detected at %s", pattern),
			Pattern: pattern,
			Dirs:    dirs,
		})
	}
	return errs
}

func validateParams(routes []ScannedRoute) []ValidationError {
	var errs []ValidationError
	for _, r := range routes {
		seen := make(map[string]bool)
		for _, p := range r.Params {
			if !paramNameRe.MatchString(p.Name) {
				errs = append(errs, ValidationError{
					Type:    ErrorInvalidParam,
					Message: fmt.Sprintf("Invalid param name %q in segment %s", p.Name, p.Segment),
					Pattern: r.Pattern,
					Dirs:    []string{displayDir(r.Dir)},
				})
				continue
			}
			if seen[p.Name] {
				errs = append(errs, ValidationError{
					Type:    ErrorDuplicateParam,
					Message: fmt.Sprintf("Param %q appears twice", p.Name),
					Pattern: r.Pattern,
					Dirs:    []string{displayDir(r.Dir)},
				})
			}
			seen[p.Name] = true
		}
	}
	return errs
}

func validateOverlaps(routes []ScannedRoute) []ValidationError {
	var dynamic []ScannedRoute
	for _, r := range routes {
		if r.HasPage && r.IsDynamic() {
			dynamic = append(dynamic, r)
		}
	}

	var warnings []ValidationError
	for i := 0; i < len(dynamic); i++ {
		for j := i + 1; j < len(dynamic); j++ {
			a, b := dynamic[i], dynamic[j]
			if a.Pattern == b.Pattern {
				continue
			}
			if !Overlaps(a.Pattern, b.Pattern) {
				continue
			}
			warnings = append(warnings, ValidationError{
				Type:    WarningOverlap,
				Message: fmt.Sprintf("%s and %s can match the same path, %s wins", a.Pattern, b.Pattern, a.Pattern),
				Pattern: a.Pattern,
				Dirs:    []string{displayDir(a.Dir), displayDir(b.Dir)},
			})
		}
	}
	return warnings
}

// segKind classifies one pattern segment for overlap analysis.
type segKind int

const (
	segLiteral segKind = iota
	segParam
	segCatchAll
	segOptional
)

type seg struct {
	kind segKind
	text string
}

func splitPattern(pattern string) []seg {
	parts := strings.Split(strings.Trim(pattern, "/"), "/")
	segs := make([]seg, 0, len(parts))
	for _, p := range parts {
		switch {
		case strings.HasPrefix(p, "[[..."):
			segs = append(segs, seg{kind: segOptional})
		case strings.HasPrefix(p, "[..."):
			segs = append(segs, seg{kind: segCatchAll})
		case strings.Contains(p, "["):
			segs = append(segs, seg{kind: segParam})
		default:
			segs = append(segs, seg{kind: segLiteral, text: p})
		}
	}
	return segs
}

// Overlaps reports whether some route key can match both patterns. It
// works segment by segment: a param matches any one segment, a catch-all
// one or more, an optional catch-all zero or more.
func Overlaps(a, b string) bool {
	return overlaps(splitPattern(a), splitPattern(b))
}

func overlaps(a, b []seg) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	if len(a) > 0 && (a[0].kind == segCatchAll || a[0].kind == segOptional) {
		from := 1
		if a[0].kind == segOptional {
			from = 0
		}
		for k := from; k <= len(b); k++ {
			if overlaps(a[1:], b[k:]) {
				return true
			}
		}
		return false
	}
	if len(b) > 0 && (b[0].kind == segCatchAll || b[0].kind == segOptional) {
		return overlaps(b, a)
	}
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if a[0].kind == segLiteral && b[0].kind == segLiteral && a[0].text != b[0].text {
		return false
	}
	return overlaps(a[1:], b[1:])
}

func displayDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

// FormatValidationError formats a validation finding for display:
//
//	ERROR: Duplicate route detected at /book/[id]/index
//	  book/_id_ → /book/[id]/index
//	  book/[id] → /book/[id]/index
func FormatValidationError(err ValidationError) string {
	var sb strings.Builder

	label := "ERROR"
	if err.Type.IsWarning() {
		label = "WARNING"
	}
	fmt.Fprintf(&sb, "%s: %s\n", label, err.Message)

	dirs := append([]string(nil), err.Dirs...)
	sort.Strings(dirs)
	for _, dir := range dirs {
		fmt.Fprintf(&sb, "  %s → %s\n", dir, err.Pattern)
	}

	return sb.String()
}
