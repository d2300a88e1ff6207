// Package users holds the user resource: its schema types, request
// validation and the repository implementations behind the REST API.
//
// Two repositories are provided. MemoryRepository keeps an ordered slice in
// process memory and is the default. SQLRepository stores users in Postgres
// (pgx) or SQLite (modernc) through database/sql.
package users
