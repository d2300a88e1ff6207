package openapi

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaOf derives a schema from the Go type of v.
func SchemaOf(v any) *openapi3.Schema {
	return schemaForType(reflect.TypeOf(v))
}

func schemaForType(t reflect.Type) *openapi3.Schema {
	if t == nil {
		return openapi3.NewSchema()
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return openapi3.NewStringSchema()
	case reflect.Bool:
		return openapi3.NewBoolSchema()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return openapi3.NewIntegerSchema()
	case reflect.Float32, reflect.Float64:
		return openapi3.NewFloat64Schema()
	case reflect.Slice, reflect.Array:
		return openapi3.NewArraySchema().WithItems(schemaForType(t.Elem()))
	case reflect.Map:
		return openapi3.NewObjectSchema().WithAdditionalProperties(schemaForType(t.Elem()))
	case reflect.Struct:
		return structSchema(t)
	default:
		return openapi3.NewSchema()
	}
}

func structSchema(t reflect.Type) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := jsonName(field)
		if name == "" {
			continue
		}

		prop := schemaForType(field.Type)
		rules := validateRules(field)
		applyRules(prop, rules)

		if _, ok := rules["required"]; ok && field.Type.Kind() != reflect.Pointer {
			required = append(required, name)
		}
		schema.WithProperty(name, prop)
	}

	if len(required) > 0 {
		schema.Required = required
	}
	return schema
}

// jsonName returns the json property name of a field, or "" when the field
// is not serialized.
func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name := strings.SplitN(tag, ",", 2)[0]
	if name == "" {
		return field.Name
	}
	return name
}

// validateRules parses a validate tag into rule → parameter.
func validateRules(field reflect.StructField) map[string]string {
	rules := map[string]string{}
	tag := field.Tag.Get("validate")
	if tag == "" {
		return rules
	}
	for _, part := range strings.Split(tag, ",") {
		name, param, _ := strings.Cut(part, "=")
		rules[name] = param
	}
	return rules
}

func applyRules(s *openapi3.Schema, rules map[string]string) {
	if _, ok := rules["email"]; ok {
		s.WithFormat("email")
	}
	if _, ok := rules["uuid"]; ok {
		s.WithFormat("uuid")
	}
	if p, ok := rules["min"]; ok {
		if n, err := strconv.ParseInt(p, 10, 64); err == nil && s.Type.Is(openapi3.TypeString) {
			s.WithMinLength(n)
		}
	}
	if p, ok := rules["max"]; ok {
		if n, err := strconv.ParseInt(p, 10, 64); err == nil && s.Type.Is(openapi3.TypeString) {
			s.WithMaxLength(n)
		}
	}
}
