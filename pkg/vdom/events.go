package vdom

// Event is the payload delivered to handlers. The client fills it from the
// DOM event; fields that do not apply stay zero.
type Event struct {
	Type    string
	Value   string
	Checked bool
	Key     string
}

// IsHandler reports whether value is a supported handler signature.
func IsHandler(value any) bool {
	switch value.(type) {
	case func(), func(Event), func(string):
		return true
	}
	return false
}

// Invoke calls handler with e. func(string) receives e.Value. It reports
// whether handler had a supported signature.
func Invoke(handler any, e Event) bool {
	switch h := handler.(type) {
	case func():
		h()
	case func(Event):
		h(e)
	case func(string):
		h(e.Value)
	default:
		return false
	}
	return true
}

func event(name string, handler any) EventHandler {
	return EventHandler{Event: name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnInput handles input events.
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnChange handles change events.
func OnChange(handler any) EventHandler { return event("change", handler) }

// OnSubmit handles form submission. The client prevents the default
// navigation.
func OnSubmit(handler any) EventHandler { return event("submit", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }
