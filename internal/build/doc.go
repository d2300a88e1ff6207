// Package build produces the client side of a vanext application.
//
// A build:
//   - scans the pages directory and regenerates app/routes_gen.go
//   - compiles cmd/client with GOOS=js GOARCH=wasm
//   - copies wasm_exec.js from the Go toolchain
//   - writes the client.js loader and a manifest of content hashes
//
// # Usage
//
//	builder := build.New(cfg, build.Options{})
//	result, err := builder.Build(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Built %d routes in %s\n", result.Routes, result.Duration)
//
// # Output Structure
//
//	dist/
//	└── client/            # served under /.vanext/
//	    ├── client.wasm
//	    ├── wasm_exec.js
//	    ├── client.js      # loader, fetches client.wasm?v=<hash>
//	    └── manifest.json
package build
