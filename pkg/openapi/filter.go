package openapi

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// FilterByTag returns a copy of doc narrowed to the operations tagged with
// tag and to the component schemas those operations reference, directly or
// through other schemas. Paths left without operations are dropped.
func FilterByTag(doc *openapi3.T, tag string) *openapi3.T {
	out := &openapi3.T{
		OpenAPI:    doc.OpenAPI,
		Info:       doc.Info,
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: openapi3.Schemas{}},
	}

	var all openapi3.Schemas
	if doc.Components != nil {
		all = doc.Components.Schemas
	}
	used := map[string]bool{}

	if doc.Paths != nil {
		for path, item := range doc.Paths.Map() {
			kept := &openapi3.PathItem{}
			n := 0
			for method, op := range item.Operations() {
				if !hasTag(op, tag) {
					continue
				}
				kept.SetOperation(method, op)
				collectOperationRefs(op, all, used)
				n++
			}
			if n > 0 {
				out.Paths.Set(path, kept)
			}
		}
	}

	for name := range used {
		if s, ok := all[name]; ok {
			out.Components.Schemas[name] = s
		}
	}
	for _, t := range doc.Tags {
		if t.Name == tag {
			out.Tags = append(out.Tags, t)
		}
	}
	return out
}

func hasTag(op *openapi3.Operation, tag string) bool {
	for _, t := range op.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func collectOperationRefs(op *openapi3.Operation, all openapi3.Schemas, used map[string]bool) {
	for _, p := range op.Parameters {
		if p.Value != nil {
			collectSchemaRefs(p.Value.Schema, all, used)
		}
	}
	if op.RequestBody != nil && op.RequestBody.Value != nil {
		for _, mt := range op.RequestBody.Value.Content {
			collectSchemaRefs(mt.Schema, all, used)
		}
	}
	if op.Responses != nil {
		for _, resp := range op.Responses.Map() {
			if resp.Value == nil {
				continue
			}
			for _, mt := range resp.Value.Content {
				collectSchemaRefs(mt.Schema, all, used)
			}
		}
	}
}

func collectSchemaRefs(ref *openapi3.SchemaRef, all openapi3.Schemas, used map[string]bool) {
	if ref == nil {
		return
	}
	if name, ok := strings.CutPrefix(ref.Ref, "#/components/schemas/"); ok {
		if used[name] {
			return
		}
		used[name] = true
		if target, ok := all[name]; ok {
			collectSchemaRefs(target, all, used)
		}
		return
	}

	s := ref.Value
	if s == nil {
		return
	}
	collectSchemaRefs(s.Items, all, used)
	for _, prop := range s.Properties {
		collectSchemaRefs(prop, all, used)
	}
	for _, sub := range s.AllOf {
		collectSchemaRefs(sub, all, used)
	}
	for _, sub := range s.OneOf {
		collectSchemaRefs(sub, all, used)
	}
	for _, sub := range s.AnyOf {
		collectSchemaRefs(sub, all, used)
	}
}
