// Package config provides configuration parsing for vanext projects.
//
// The configuration is stored in vanext.json (or vanext.yaml) at the
// project root. Every field has a default, so a project without a config
// file works too. Environment variables override the file:
//
//	PORT            frontend port (3000)
//	API_PORT        API port (4000)
//	API_BASE_URL    API base URL used by pages (http://localhost:4000)
//	API_PREFIX      path prefix prepended to API routes ("")
//	API_ORIGINS     comma-separated origins allowed to call the API (frontend URL)
//	VANEXT_ENV      "production" disables dev features
//	VANEXT_STORAGE  memory, postgres or sqlite
//	DATABASE_URL    DSN of the SQL storage
//
// # Configuration File Structure
//
//	{
//	  "title": "My app",
//	  "paths": {"pages": "app/pages", "public": "app/public"},
//	  "api": {"port": 4000, "storage": {"driver": "sqlite", "dsn": "file:app.db"}},
//	  "dev": {"reloadPort": 3001, "debounce": "100ms"},
//	  "static": {"source": "s3", "bucket": "my-assets"},
//	  "openapi": {"output": "dist/openapi.json", "tag": "Users"}
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Pages:", cfg.PagesPath())
package config
