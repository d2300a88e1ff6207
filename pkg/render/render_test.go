package render

import (
	"strings"
	"testing"

	"github.com/vango-dev/vanext/pkg/page"
	"github.com/vango-dev/vanext/pkg/router"
	"github.com/vango-dev/vanext/pkg/vdom"
)

func TestRenderToString(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{"nil", nil, ""},
		{"text is escaped", vdom.Text(`<b>"a" & 'b'</b>`), "&lt;b&gt;&quot;a&quot; &amp; &#39;b&#39;&lt;/b&gt;"},
		{"raw is verbatim", vdom.Raw("<b>x</b>"), "<b>x</b>"},
		{"element", vdom.Div(vdom.ID("main"), vdom.Class("a"), "hi"), `<div class="a" id="main">hi</div>`},
		{"void", vdom.Input(vdom.Type("text"), vdom.Name("q")), `<input name="q" type="text">`},
		{"boolean attrs", vdom.Input(vdom.Disabled(true), vdom.Checked(false)), `<input disabled>`},
		{"empty attr skipped", vdom.Div(vdom.Class("")), `<div></div>`},
		{"attr escaping", vdom.Div(vdom.Title("a\"b\nc")), `<div title="a&quot;b&#10;c"></div>`},
		{"fragment", vdom.Fragment(vdom.Span("a"), "b"), `<span>a</span>b`},
		{"int attr", vdom.Div(vdom.Data("n", "1"), vdom.Attr{Key: "tabindex", Value: 3}), `<div data-n="1" tabindex="3"></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRenderer().RenderToString(tt.node)
			if err != nil {
				t.Fatalf("RenderToString: %v", err)
			}
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestRenderToString_HydrationIDs(t *testing.T) {
	tree := vdom.Div(
		vdom.H1("Title"),
		vdom.Button(vdom.OnClick(func() {}), "One"),
		vdom.Div(vdom.Input(vdom.OnInput(func(string) {}))),
		vdom.Attr{Key: "onclick", Value: "ignored()"},
	)

	got, err := NewRenderer().RenderToString(tree)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	want := `<div onclick="ignored()"><h1>Title</h1><button data-hid="h1">One</button><div><input data-hid="h2"></div></div>`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestRenderToString_UnknownKind(t *testing.T) {
	if _, err := NewRenderer().RenderToString(&vdom.VNode{Kind: vdom.VKind(99)}); err == nil {
		t.Error("expected error")
	}
	if _, err := NewRenderer().RenderToString(&vdom.VNode{Kind: vdom.KindElement}); err == nil {
		t.Error("expected error for element without tag")
	}
}

func TestRenderDocument(t *testing.T) {
	table := router.MustTable(router.Entry{Pattern: "/dynamic/[id]/index", Layouts: []string{"/layout", "/dynamic/[id]/layout"}})
	m, _ := table.Match("/dynamic/42/", "")

	var sb strings.Builder
	err := NewRenderer().RenderDocument(&sb, Document{
		Body:    vdom.Main(vdom.Button(vdom.OnClick(func() {}), "Go")),
		Route:   m.Route,
		Router:  page.FromMatch(m),
		Layouts: m.Layouts,
	})
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	html := sb.String()

	for _, want := range []string{
		"<!DOCTYPE html>\n<html lang=\"en\">",
		`<meta charset="utf-8">`,
		"<title>vanext</title>",
		`<link rel="stylesheet" href="/global.css">`,
		`<link rel="icon" href="/favicon.ico">`,
		`<div id="root" data-page="/dynamic/42/index" data-router="{&quot;pathname&quot;:&quot;/dynamic/42/&quot;,&quot;params&quot;:{&quot;id&quot;:&quot;42&quot;}`,
		`data-layouts="[&quot;/layout&quot;,&quot;/dynamic/[id]/layout&quot;]">`,
		`<main><button data-hid="h1">Go</button></main></div>`,
		`<script src="/.vanext/wasm_exec.js"></script>`,
		`<script src="/.vanext/client.js"></script>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q\n%s", want, html)
		}
	}
	if strings.Contains(html, "WebSocket") {
		t.Error("reload script present without DevReload")
	}
}

func TestRenderDocument_DevReloadAndDefaults(t *testing.T) {
	var sb strings.Builder
	err := NewRenderer().RenderDocument(&sb, Document{
		Title:     "A <b> title",
		DevReload: true,
		ReloadURL: "ws://localhost:4001/hmr",
	})
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	html := sb.String()

	for _, want := range []string{
		"<title>A &lt;b&gt; title</title>",
		`new WebSocket("ws://localhost:4001/hmr")`,
		"location.reload()",
		`data-page="/index"`,
		`data-layouts="[]"`,
		`&quot;params&quot;:{}`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q\n%s", want, html)
		}
	}
}
