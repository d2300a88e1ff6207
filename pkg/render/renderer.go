package render

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/vanext/pkg/vdom"
)

// Renderer serializes VNode trees to HTML.
type Renderer struct {
	gen *vdom.HIDGenerator
}

// NewRenderer creates a renderer. Each renderer numbers hydration ids from
// h1, so use one renderer per document.
func NewRenderer() *Renderer {
	return &Renderer{gen: vdom.NewHIDGenerator()}
}

// RenderToString renders node to a string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var sb strings.Builder
	if err := r.RenderToWriter(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderToWriter assigns hydration ids to the interactive elements of node
// in document order and writes its HTML to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	vdom.AssignHIDs(node, r.gen)

	bw := bufio.NewWriter(w)
	if err := r.renderNode(bw, node); err != nil {
		return err
	}
	return bw.Flush()
}

func (r *Renderer) renderNode(w *bufio.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node)
	case vdom.KindText:
		_, err := w.WriteString(escapeHTML(node.Text))
		return err
	case vdom.KindRaw:
		_, err := w.WriteString(node.Text)
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w *bufio.Writer, node *vdom.VNode) error {
	if node.Tag == "" {
		return fmt.Errorf("element without tag")
	}

	w.WriteByte('<')
	w.WriteString(node.Tag)
	writeAttributes(w, node)
	if node.HID != "" {
		fmt.Fprintf(w, ` data-hid="%s"`, node.HID)
	}
	w.WriteByte('>')

	if voidElements[node.Tag] {
		return nil
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}

	w.WriteString("</")
	w.WriteString(node.Tag)
	_, err := w.WriteString(">")
	return err
}

// writeAttributes writes props in key order. Handlers are bound by the
// client and never rendered.
func writeAttributes(w *bufio.Writer, node *vdom.VNode) {
	keys := make([]string, 0, len(node.Props))
	for key, value := range node.Props {
		if strings.HasPrefix(key, "on") && vdom.IsHandler(value) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		if b, ok := value.(bool); ok && booleanAttrs[key] {
			if b {
				w.WriteByte(' ')
				w.WriteString(key)
			}
			continue
		}

		s, ok := attrString(value)
		if !ok || s == "" {
			continue
		}
		fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(s))
	}
}

func attrString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}
