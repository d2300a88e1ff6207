package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vango-dev/vanext/pkg/page"
	"github.com/vango-dev/vanext/pkg/vdom"
)

// Document defaults.
const (
	DefaultTitle        = "vanext"
	DefaultStyleSheet   = "/global.css"
	DefaultFavicon      = "/favicon.ico"
	DefaultWasmExec     = "/.vanext/wasm_exec.js"
	DefaultClientScript = "/.vanext/client.js"
	DefaultReloadURL    = "ws://localhost:3001/hmr"
)

// Document is everything needed to render a full page.
type Document struct {
	// Body is the composed page: providers, layouts and page.
	Body *vdom.VNode

	// Route is the route key written to data-page.
	Route string

	// Router is the snapshot written to data-router.
	Router page.RouterData

	// Layouts are the layout ids written to data-layouts, outermost first.
	Layouts []string

	Title      string
	Lang       string
	StyleSheet string
	Favicon    string

	// WasmExec and ClientScript load the wasm client.
	WasmExec     string
	ClientScript string

	// DevReload injects the reload script connecting to ReloadURL.
	DevReload bool
	ReloadURL string
}

func (d *Document) applyDefaults() {
	if d.Title == "" {
		d.Title = DefaultTitle
	}
	if d.Lang == "" {
		d.Lang = "en"
	}
	if d.StyleSheet == "" {
		d.StyleSheet = DefaultStyleSheet
	}
	if d.Favicon == "" {
		d.Favicon = DefaultFavicon
	}
	if d.WasmExec == "" {
		d.WasmExec = DefaultWasmExec
	}
	if d.ClientScript == "" {
		d.ClientScript = DefaultClientScript
	}
	if d.ReloadURL == "" {
		d.ReloadURL = DefaultReloadURL
	}
	d.Router = d.Router.Normalize()
	if d.Route == "" {
		d.Route = d.Router.Route
	}
	if d.Layouts == nil {
		d.Layouts = []string{}
	}
}

// RenderDocument writes a complete HTML document. Interactive elements of
// the body get data-hid ids in document order.
func (r *Renderer) RenderDocument(w io.Writer, doc Document) error {
	doc.applyDefaults()

	routerJSON, err := json.Marshal(doc.Router)
	if err != nil {
		return fmt.Errorf("encoding router data: %w", err)
	}
	layoutsJSON, err := json.Marshal(doc.Layouts)
	if err != nil {
		return fmt.Errorf("encoding layouts: %w", err)
	}

	bw := bufio.NewWriter(w)

	bw.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(bw, "<html lang=\"%s\">\n<head>\n", escapeAttr(doc.Lang))
	bw.WriteString("  <meta charset=\"utf-8\">\n")
	fmt.Fprintf(bw, "  <title>%s</title>\n", escapeHTML(doc.Title))
	fmt.Fprintf(bw, "  <link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(doc.StyleSheet))
	fmt.Fprintf(bw, "  <link rel=\"icon\" href=\"%s\">\n", escapeAttr(doc.Favicon))
	if doc.DevReload {
		bw.WriteString("  <script>")
		bw.WriteString(ReloadScript(doc.ReloadURL))
		bw.WriteString("</script>\n")
	}
	bw.WriteString("</head>\n<body>\n")

	fmt.Fprintf(bw, `<div id="root" data-page="%s" data-router="%s" data-layouts="%s">`,
		escapeAttr(doc.Route), escapeAttr(string(routerJSON)), escapeAttr(string(layoutsJSON)))
	if err := r.RenderToWriter(bw, doc.Body); err != nil {
		return err
	}
	bw.WriteString("</div>\n")

	fmt.Fprintf(bw, "<script src=\"%s\"></script>\n", escapeAttr(doc.WasmExec))
	fmt.Fprintf(bw, "<script src=\"%s\"></script>\n", escapeAttr(doc.ClientScript))
	bw.WriteString("</body>\n</html>\n")

	return bw.Flush()
}

// ReloadScript returns the dev reload client: it connects to url and
// reloads the page on a "reload" message.
func ReloadScript(url string) string {
	quoted, _ := json.Marshal(url)
	return `(function() {
  var ws = new WebSocket(` + string(quoted) + `);
  ws.onmessage = function(e) {
    if (e.data === 'reload') {
      console.log('[vanext] reloading');
      location.reload();
    }
  };
  ws.onopen = function() { console.log('[vanext] reload connected'); };
  ws.onclose = function() { console.log('[vanext] reload disconnected'); };
})();`
}
