package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Version is the OpenAPI version of generated documents.
const Version = "3.0.3"

// Info contains API metadata.
type Info struct {
	Title       string
	Description string
	Version     string
}

// Param describes a path or query parameter. Params are strings.
type Param struct {
	Name        string
	Description string
	Format      string
	Required    bool
}

// Response describes one response of a route. Schema names a registered
// component; Inline is used when Schema is empty.
type Response struct {
	Status      int
	Description string
	Schema      string
	Array       bool
	Inline      *openapi3.Schema
}

// Route is a registered API operation.
type Route struct {
	Method      string
	Path        string
	Summary     string
	Tags        []string
	PathParams  []Param
	QueryParams []Param
	Body        string
	Responses   []Response
}

// Registry collects schemas and routes. It is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	schemas map[string]*openapi3.Schema
	routes  []Route
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*openapi3.Schema)}
}

// RegisterSchema registers the schema derived from v under name.
func (r *Registry) RegisterSchema(name string, v any) {
	r.RegisterSchemaValue(name, SchemaOf(v))
}

// RegisterSchemaValue registers a prebuilt schema under name.
func (r *Registry) RegisterSchemaValue(name string, s *openapi3.Schema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[name] = s
}

// RegisterRoute adds a route.
func (r *Registry) RegisterRoute(route Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

// Generate builds and validates the document.
func (r *Registry) Generate(ctx context.Context, info Info) (*openapi3.T, error) {
	if info.Title == "" {
		info.Title = "API"
	}
	if info.Version == "" {
		info.Version = "1.0.0"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       info.Title,
			Description: info.Description,
			Version:     info.Version,
		},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: openapi3.Schemas{}},
	}

	for name, s := range r.schemas {
		doc.Components.Schemas[name] = openapi3.NewSchemaRef("", s)
	}

	tags := map[string]bool{}
	for _, route := range r.routes {
		op, err := r.operation(route)
		if err != nil {
			return nil, err
		}
		item := doc.Paths.Value(route.Path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(route.Path, item)
		}
		item.SetOperation(strings.ToUpper(route.Method), op)
		for _, tag := range route.Tags {
			tags[tag] = true
		}
	}

	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		doc.Tags = append(doc.Tags, &openapi3.Tag{Name: name})
	}

	if err := doc.Validate(ctx, openapi3.DisableSchemaFormatValidation()); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// operation must be called with r.mu held.
func (r *Registry) operation(route Route) (*openapi3.Operation, error) {
	switch strings.ToUpper(route.Method) {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported method %q for %s", route.Method, route.Path)
	}

	op := &openapi3.Operation{
		Summary: route.Summary,
		Tags:    route.Tags,
	}

	for _, p := range route.PathParams {
		param := openapi3.NewPathParameter(p.Name).WithSchema(paramSchema(p))
		if p.Description != "" {
			param = param.WithDescription(p.Description)
		}
		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: param})
	}
	for _, p := range route.QueryParams {
		param := openapi3.NewQueryParameter(p.Name).WithSchema(paramSchema(p)).WithRequired(p.Required)
		if p.Description != "" {
			param = param.WithDescription(p.Description)
		}
		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: param})
	}

	if route.Body != "" {
		ref, err := r.ref(route.Body)
		if err != nil {
			return nil, err
		}
		body := openapi3.NewRequestBody().WithJSONSchemaRef(ref).WithRequired(true)
		op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}

	var opts []openapi3.NewResponsesOption
	for _, resp := range route.Responses {
		res := openapi3.NewResponse().WithDescription(resp.Description)
		switch {
		case resp.Schema != "":
			ref, err := r.ref(resp.Schema)
			if err != nil {
				return nil, err
			}
			if resp.Array {
				arr := openapi3.NewArraySchema()
				arr.Items = ref
				res = res.WithJSONSchema(arr)
			} else {
				res = res.WithJSONSchemaRef(ref)
			}
		case resp.Inline != nil:
			res = res.WithJSONSchema(resp.Inline)
		}
		opts = append(opts, openapi3.WithStatus(resp.Status, &openapi3.ResponseRef{Value: res}))
	}
	if len(opts) == 0 {
		return nil, fmt.Errorf("route %s %s declares no responses", route.Method, route.Path)
	}
	op.Responses = openapi3.NewResponses(opts...)

	return op, nil
}

// ref must be called with r.mu held.
func (r *Registry) ref(name string) (*openapi3.SchemaRef, error) {
	s, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("schema %q is not registered", name)
	}
	return openapi3.NewSchemaRef(componentRef(name), s), nil
}

func componentRef(name string) string {
	return "#/components/schemas/" + name
}

func paramSchema(p Param) *openapi3.Schema {
	s := openapi3.NewStringSchema()
	if p.Format != "" {
		s.WithFormat(p.Format)
	}
	return s
}

// ErrorSchema is the inline schema of {"error": string} bodies.
func ErrorSchema() *openapi3.Schema {
	return singleProperty("error", openapi3.NewStringSchema())
}

// ValidationErrorSchema is the inline schema of {"error": any} bodies.
func ValidationErrorSchema() *openapi3.Schema {
	return singleProperty("error", openapi3.NewSchema())
}

// MessageSchema is the inline schema of {"message": string} bodies.
func MessageSchema() *openapi3.Schema {
	return singleProperty("message", openapi3.NewStringSchema())
}

func singleProperty(name string, prop *openapi3.Schema) *openapi3.Schema {
	s := openapi3.NewObjectSchema().WithProperty(name, prop)
	s.Required = []string{name}
	return s
}

// MarshalIndent encodes doc as indented JSON.
func MarshalIndent(doc *openapi3.T) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
