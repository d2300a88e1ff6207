// Package static serves the public files of a vanext application.
//
// Files come from a Source: DirSource reads a directory (the default,
// app/public), S3Source reads a bucket. Middleware serves a file when the
// source has it and hands every other request to the page router, so
// static files always win over routes. Request paths are checked by
// CleanPath before any source sees them.
//
//	pub := static.NewDir(cfg.PublicPath())
//	r.Use(static.Middleware(pub, static.Options{}))
package static
