package api

import (
	"net/http"

	"github.com/vango-dev/vanext/pkg/openapi"
	"github.com/vango-dev/vanext/pkg/users"
)

// TagUsers groups the user operations in the document.
const TagUsers = "Users"

// DefaultInfo is the metadata of the generated document.
var DefaultInfo = openapi.Info{
	Title:       "MyApp API",
	Description: "Auto-generated OpenAPI from schemas",
	Version:     "0.1.0",
}

// Describe registers the schemas and operations served by the API on reg.
func Describe(reg *openapi.Registry) {
	reg.RegisterSchema("User", users.User{})
	reg.RegisterSchema("CreateUser", users.CreateUser{})
	reg.RegisterSchema("UpdateUser", users.UpdateUser{})

	idParam := openapi.Param{Name: "id", Description: "User ID", Format: "uuid", Required: true}
	notFound := openapi.Response{Status: http.StatusNotFound, Description: "User not found", Inline: openapi.ErrorSchema()}
	invalid := openapi.Response{Status: http.StatusBadRequest, Description: "Validation error", Inline: openapi.ValidationErrorSchema()}

	reg.RegisterRoute(openapi.Route{
		Method:  http.MethodGet,
		Path:    "/api/users",
		Summary: "Get all users",
		Tags:    []string{TagUsers},
		Responses: []openapi.Response{
			{Status: http.StatusOK, Description: "List of users", Schema: "User", Array: true},
		},
	})
	reg.RegisterRoute(openapi.Route{
		Method:     http.MethodGet,
		Path:       "/api/users/{id}",
		Summary:    "Get user by ID",
		Tags:       []string{TagUsers},
		PathParams: []openapi.Param{idParam},
		Responses: []openapi.Response{
			{Status: http.StatusOK, Description: "User found", Schema: "User"},
			notFound,
		},
	})
	reg.RegisterRoute(openapi.Route{
		Method:  http.MethodPost,
		Path:    "/api/users",
		Summary: "Create user",
		Tags:    []string{TagUsers},
		Body:    "CreateUser",
		Responses: []openapi.Response{
			{Status: http.StatusCreated, Description: "Created user", Schema: "User"},
			invalid,
		},
	})
	reg.RegisterRoute(openapi.Route{
		Method:     http.MethodPut,
		Path:       "/api/users/{id}",
		Summary:    "Update user",
		Tags:       []string{TagUsers},
		PathParams: []openapi.Param{idParam},
		Body:       "UpdateUser",
		Responses: []openapi.Response{
			{Status: http.StatusOK, Description: "Updated user", Schema: "User"},
			invalid,
			notFound,
		},
	})
	reg.RegisterRoute(openapi.Route{
		Method:  http.MethodDelete,
		Path:    "/api/users",
		Summary: "Delete user",
		Tags:    []string{TagUsers},
		QueryParams: []openapi.Param{
			{Name: "id", Description: "User ID to delete", Format: "uuid", Required: true},
		},
		Responses: []openapi.Response{
			{Status: http.StatusOK, Description: "User deleted successfully", Inline: openapi.MessageSchema()},
			{Status: http.StatusBadRequest, Description: "Missing id query parameter", Inline: openapi.ErrorSchema()},
			notFound,
		},
	})
}
