package vdom

import (
	"reflect"
	"testing"
)

func TestCreateElement(t *testing.T) {
	clicked := func() {}
	node := Div(
		ID("main"),
		Class("card", "", "wide"),
		Class("dark"),
		Key(7),
		nil,
		"hello",
		H1(Text("Title")),
		[]*VNode{Li("a"), nil, Li("b")},
		OnClick(clicked),
		42,
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("node = %+v", node)
	}
	if node.Props["id"] != "main" {
		t.Errorf("id = %v", node.Props["id"])
	}
	if node.Props["class"] != "card wide dark" {
		t.Errorf("class = %q", node.Props["class"])
	}
	if node.Key != "7" {
		t.Errorf("key = %q", node.Key)
	}
	if len(node.Children) != 5 {
		t.Fatalf("children = %d, want 5", len(node.Children))
	}
	if node.Children[0].Kind != KindText || node.Children[0].Text != "hello" {
		t.Errorf("first child = %+v", node.Children[0])
	}
	if node.Children[4].Text != "42" {
		t.Errorf("last child = %+v", node.Children[4])
	}
	if !node.IsInteractive() {
		t.Error("div with onclick should be interactive")
	}
	if got := node.Events(); !reflect.DeepEqual(got, []string{"click"}) {
		t.Errorf("Events = %v", got)
	}
}

func TestClassIfAndEmptyAttr(t *testing.T) {
	node := Span(ClassIf(false, "hidden"), ClassIf(true, "shown"))
	if node.Props["class"] != "shown" {
		t.Errorf("class = %v", node.Props["class"])
	}
	if len(Span(ClassIf(false, "x")).Props) != 0 {
		t.Error("empty attr should not be applied")
	}
}

func TestIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want bool
	}{
		{"nil", nil, false},
		{"plain", Div(), false},
		{"text", Text("x"), false},
		{"handler", Button(OnClick(func() {})), true},
		{"event handler", Input(OnInput(func(Event) {})), true},
		{"string value handler", Input(OnChange(func(string) {})), true},
		{"on attr string", Div(Attr{Key: "onclick", Value: "alert(1)"}), false},
		{"unsupported func", Div(OnClick(func(int) {})), false},
	}
	for _, tt := range tests {
		if got := tt.node.IsInteractive(); got != tt.want {
			t.Errorf("%s: IsInteractive = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestInvoke(t *testing.T) {
	var calls []string
	handlers := []any{
		func() { calls = append(calls, "plain") },
		func(e Event) { calls = append(calls, "event:"+e.Type) },
		func(v string) { calls = append(calls, "value:"+v) },
	}
	for _, h := range handlers {
		if !Invoke(h, Event{Type: "input", Value: "abc"}) {
			t.Errorf("Invoke(%T) = false", h)
		}
	}
	if Invoke(42, Event{}) {
		t.Error("Invoke(42) = true")
	}
	want := []string{"plain", "event:input", "value:abc"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestHelpers(t *testing.T) {
	if If(false, Div()) != nil || If(true, Div()) == nil {
		t.Error("If")
	}
	if IfElse(false, Div(), Span()).Tag != "span" {
		t.Error("IfElse")
	}
	if When(false, func() *VNode { t.Error("built"); return nil }) != nil {
		t.Error("When")
	}

	items := Range([]string{"a", "", "c"}, func(s string, i int) *VNode {
		return If(s != "", Li(Textf("%d:%s", i, s)))
	})
	if len(items) != 2 || items[1].Children[0].Text != "2:c" {
		t.Errorf("Range = %+v", items)
	}

	frag := Fragment("x", Span(), nil)
	if frag.Kind != KindFragment || len(frag.Children) != 2 {
		t.Errorf("Fragment = %+v", frag)
	}
	if Raw("<b>").Kind != KindRaw {
		t.Error("Raw kind")
	}
}

func TestHIDGenerator(t *testing.T) {
	gen := NewHIDGenerator()
	if gen.Next() != "h1" || gen.Next() != "h2" {
		t.Fatal("ids not sequential")
	}
	gen.Reset()
	if got := gen.Next(); got != "h1" {
		t.Errorf("after Reset = %q", got)
	}
}

func TestAssignHIDs(t *testing.T) {
	build := func() *VNode {
		return Div(
			H1(Text("Title")),
			Button(OnClick(func() {}), Text("One")),
			Fragment(
				P(Text("para")),
				Input(OnInput(func(string) {})),
			),
			Form(OnSubmit(func() {}), Button(Type("submit"), "Go")),
		)
	}

	tree := build()
	AssignHIDs(tree, NewHIDGenerator())

	hids := CollectHIDs(tree)
	if len(hids) != 3 {
		t.Fatalf("hids = %v, want 3 entries", hids)
	}
	if hids["h1"].Tag != "button" || hids["h2"].Tag != "input" || hids["h3"].Tag != "form" {
		t.Errorf("order = %s %s %s", hids["h1"].Tag, hids["h2"].Tag, hids["h3"].Tag)
	}
	if CountInteractive(tree) != 3 {
		t.Errorf("CountInteractive = %d", CountInteractive(tree))
	}
	if FindByHID(tree, "h2") != hids["h2"] || FindByHID(tree, "h9") != nil {
		t.Error("FindByHID")
	}

	// A second build of the same tree gets the same ids.
	again := build()
	AssignHIDs(again, NewHIDGenerator())
	for hid, node := range CollectHIDs(again) {
		if hids[hid].Tag != node.Tag {
			t.Errorf("%s: %s vs %s", hid, hids[hid].Tag, node.Tag)
		}
	}
}

func TestAssignHIDs_ClearsStaleIDs(t *testing.T) {
	tree := Div(P("static"))
	tree.Children[0].HID = "h9"
	AssignHIDs(tree, NewHIDGenerator())
	if len(CollectHIDs(tree)) != 0 {
		t.Error("stale id kept")
	}
}
