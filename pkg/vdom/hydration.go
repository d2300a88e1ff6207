package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator generates sequential hydration ids ("h1", "h2", ...).
type HIDGenerator struct {
	mu   sync.Mutex
	next uint32
}

// NewHIDGenerator creates a generator starting at h1.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next id.
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("h%d", g.next)
}

// Reset restarts the sequence at h1.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	g.next = 0
	g.mu.Unlock()
}

// AssignHIDs walks the tree in document order and gives every interactive
// element the next id. Non-interactive nodes get their HID cleared, so the
// server render and the client rebuild of the same tree always agree.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	if node == nil {
		return
	}
	if node.IsInteractive() {
		node.HID = gen.Next()
	} else {
		node.HID = ""
	}
	for _, child := range node.Children {
		AssignHIDs(child, gen)
	}
}

// CollectHIDs returns every node carrying an id, keyed by id.
func CollectHIDs(node *VNode) map[string]*VNode {
	out := make(map[string]*VNode)
	collectHIDs(node, out)
	return out
}

func collectHIDs(node *VNode, out map[string]*VNode) {
	if node == nil {
		return
	}
	if node.HID != "" {
		out[node.HID] = node
	}
	for _, child := range node.Children {
		collectHIDs(child, out)
	}
}

// FindByHID returns the node with the given id, or nil.
func FindByHID(node *VNode, hid string) *VNode {
	if node == nil {
		return nil
	}
	if node.HID == hid {
		return node
	}
	for _, child := range node.Children {
		if found := FindByHID(child, hid); found != nil {
			return found
		}
	}
	return nil
}

// CountInteractive counts interactive elements in the tree.
func CountInteractive(node *VNode) int {
	if node == nil {
		return 0
	}
	n := 0
	if node.IsInteractive() {
		n = 1
	}
	for _, child := range node.Children {
		n += CountInteractive(child)
	}
	return n
}
