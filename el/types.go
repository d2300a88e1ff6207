package el

import "github.com/vango-dev/vanext/pkg/vdom"

type (
	VNode        = vdom.VNode
	Attr         = vdom.Attr
	EventHandler = vdom.EventHandler
	Event        = vdom.Event
)
