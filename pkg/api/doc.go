// Package api serves the users REST API.
//
// Routes:
//
//	GET    /api/users          list users
//	GET    /api/users/{id}     get one user
//	POST   /api/users          create a user
//	PUT    /api/users/{id}     partially update a user
//	DELETE /api/users?id=      delete a user
//	GET    /openapi.json       generated OpenAPI document
//	GET    /docs               Swagger UI
//	GET    /metrics            Prometheus metrics
//	GET    /                   health check
//
// Request bodies are validated before the repository is touched. Failures
// are answered as {"error": ...}: the issue list for validation errors and
// a short message otherwise. Unexpected errors are logged and never leak
// their cause to clients.
package api
