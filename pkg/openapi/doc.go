// Package openapi builds OpenAPI 3.0 documents from registered routes and
// Go request/response types.
//
// Schemas are derived from struct tags: the json tag names the property and
// go-playground/validator rules map onto schema keywords (required, email
// and uuid formats, min length). The document model and its validation come
// from kin-openapi.
//
//	reg := openapi.NewRegistry()
//	reg.RegisterSchema("User", users.User{})
//	reg.RegisterRoute(openapi.Route{
//	    Method:  http.MethodGet,
//	    Path:    "/api/users",
//	    Summary: "Get all users",
//	    Tags:    []string{"Users"},
//	    Responses: []openapi.Response{
//	        {Status: 200, Description: "List of users", Schema: "User", Array: true},
//	    },
//	})
//	doc, err := reg.Generate(ctx, openapi.Info{Title: "MyApp API"})
package openapi
