package assets

// Resolver turns a client file name into the URL pages reference.
type Resolver interface {
	Asset(source string) string
}

type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver resolves names through m and prepends prefix:
//
//	m, _ := assets.Load("dist/client/manifest.json")
//	assets.NewResolver(m, "/.vanext/").Asset("client.js") // "/.vanext/client.js?v=1a2b3c"
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{manifest: m, prefix: prefix}
}

func (r *manifestResolver) Asset(source string) string {
	return r.prefix + r.manifest.Resolve(source)
}

type passthrough struct {
	prefix string
}

// NewPassthroughResolver only prepends prefix. It is used before the
// first build, when there is no manifest.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(source string) string {
	return p.prefix + source
}

// LoadResolver returns a resolver over the manifest at path, or a
// passthrough resolver when it cannot be read.
func LoadResolver(path, prefix string) Resolver {
	m, err := Load(path)
	if err != nil {
		return NewPassthroughResolver(prefix)
	}
	return NewResolver(m, prefix)
}
