package vdom

import "fmt"

// createElement builds an element from a mixed argument list: attributes,
// event handlers, child nodes and strings (text children). nil arguments
// are skipped so conditional helpers can return nothing.
func createElement(tag string, args []any) *VNode {
	node := &VNode{Kind: KindElement, Tag: tag, Props: make(Props)}
	appendArgs(node, args)
	return node
}

func appendArgs(node *VNode, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case Attr:
			if !v.IsEmpty() {
				applyAttr(node, v)
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					applyAttr(node, a)
				}
			}
		case EventHandler:
			node.Props["on"+v.Event] = v.Handler
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}
		case []any:
			appendArgs(node, v)
		case string:
			node.Children = append(node.Children, Text(v))
		default:
			node.Children = append(node.Children, Text(fmt.Sprint(v)))
		}
	}
}

func applyAttr(node *VNode, a Attr) {
	if a.Key == "key" {
		node.Key = fmt.Sprint(a.Value)
		return
	}
	// Repeated class attributes accumulate.
	if a.Key == "class" {
		prev, _ := node.Props["class"].(string)
		next, _ := a.Value.(string)
		switch {
		case prev != "" && next != "":
			a.Value = prev + " " + next
		case prev != "":
			return
		}
	}
	node.Props[a.Key] = a.Value
}

// Element creates an element with an arbitrary tag.
func Element(tag string, args ...any) *VNode { return createElement(tag, args) }

// Document structure

func Html(args ...any) *VNode    { return createElement("html", args) }
func Head(args ...any) *VNode    { return createElement("head", args) }
func Body(args ...any) *VNode    { return createElement("body", args) }
func Header(args ...any) *VNode  { return createElement("header", args) }
func Footer(args ...any) *VNode  { return createElement("footer", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func Section(args ...any) *VNode { return createElement("section", args) }

// Content

func Div(args ...any) *VNode    { return createElement("div", args) }
func Span(args ...any) *VNode   { return createElement("span", args) }
func P(args ...any) *VNode      { return createElement("p", args) }
func H1(args ...any) *VNode     { return createElement("h1", args) }
func H2(args ...any) *VNode     { return createElement("h2", args) }
func H3(args ...any) *VNode     { return createElement("h3", args) }
func Ul(args ...any) *VNode     { return createElement("ul", args) }
func Ol(args ...any) *VNode     { return createElement("ol", args) }
func Li(args ...any) *VNode     { return createElement("li", args) }
func A(args ...any) *VNode      { return createElement("a", args) }
func Strong(args ...any) *VNode { return createElement("strong", args) }
func Code(args ...any) *VNode   { return createElement("code", args) }
func Pre(args ...any) *VNode    { return createElement("pre", args) }
func Hr(args ...any) *VNode     { return createElement("hr", args) }
func Img(args ...any) *VNode    { return createElement("img", args) }

// Forms

func Form(args ...any) *VNode   { return createElement("form", args) }
func Input(args ...any) *VNode  { return createElement("input", args) }
func Label(args ...any) *VNode  { return createElement("label", args) }
func Button(args ...any) *VNode { return createElement("button", args) }
