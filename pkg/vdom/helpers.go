package vdom

import "fmt"

// Text creates an escaped text node.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Textf creates a text node from a format string.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates a node whose HTML is written without escaping. Only use it
// with trusted content.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	holder := createElement("", children)
	return &VNode{Kind: KindFragment, Children: holder.Children}
}

// If returns node when cond holds, nil otherwise.
func If(cond bool, node *VNode) *VNode {
	if cond {
		return node
	}
	return nil
}

// IfElse returns a when cond holds, b otherwise.
func IfElse(cond bool, a, b *VNode) *VNode {
	if cond {
		return a
	}
	return b
}

// When lazily builds a node when cond holds.
func When(cond bool, build func() *VNode) *VNode {
	if cond {
		return build()
	}
	return nil
}

// Range maps items to nodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// Key sets the reconciliation key of an element.
func Key(key any) Attr {
	return Attr{Key: "key", Value: key}
}
