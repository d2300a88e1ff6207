package vdom

import (
	"sort"
	"strings"
)

// VKind is the type of a virtual DOM node.
type VKind uint8

const (
	// KindElement is an HTML element (div, button, ...).
	KindElement VKind = iota
	// KindText is a text node. Its content is escaped on render.
	KindText
	// KindFragment groups children without a wrapper element.
	KindFragment
	// KindRaw is trusted HTML written verbatim.
	KindRaw
)

func (k VKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindFragment:
		return "fragment"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Props holds element attributes and event handlers. Handlers are stored
// under "on" + event name ("onclick").
type Props map[string]any

// VNode is a node of the virtual DOM tree returned by pages and layouts.
type VNode struct {
	Kind     VKind
	Tag      string
	Props    Props
	Children []*VNode
	Key      string
	Text     string

	// HID is the hydration id, assigned to interactive elements only.
	HID string
}

// IsInteractive reports whether the node is an element carrying at least
// one event handler.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key, value := range v.Props {
		if isHandlerProp(key, value) {
			return true
		}
	}
	return false
}

// Events returns the event names the node listens to, sorted.
func (v *VNode) Events() []string {
	if v == nil {
		return nil
	}
	var events []string
	for key, value := range v.Props {
		if isHandlerProp(key, value) {
			events = append(events, key[2:])
		}
	}
	sort.Strings(events)
	return events
}

// Handler returns the handler registered for event, or nil.
func (v *VNode) Handler(event string) any {
	if v == nil || v.Props == nil {
		return nil
	}
	h := v.Props["on"+event]
	if !IsHandler(h) {
		return nil
	}
	return h
}

func isHandlerProp(key string, value any) bool {
	return strings.HasPrefix(key, "on") && len(key) > 2 && IsHandler(value)
}

// Attr is a single attribute applied when building an element.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty reports whether the attribute should be ignored.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler binds a handler to an event name when building an element.
type EventHandler struct {
	Event   string
	Handler any
}
