package userlist

import (
	"context"
	"time"

	"github.com/vango-dev/vanext/app/providers"
	. "github.com/vango-dev/vanext/el"
	"github.com/vango-dev/vanext/pkg/page"
	"github.com/vango-dev/vanext/pkg/users"
)

// Page lists the users of the API. The list is fetched on demand from the
// browser; the server renders the empty state.
func Page(ctx *page.Context) *VNode {
	list, loaded := ctx.Global.Get(providers.KeyUsers)
	errMsg := ctx.Global.String(providers.KeyUsersError)

	return Main(Class("mx-auto max-w-3xl p-6"),
		H1(Class("text-3xl font-bold"), "Users"),
		Button(Class("mt-4 p-2 border rounded-lg"), OnClick(func() { go load(ctx) }), "Load users"),
		If(errMsg != "", P(Class("mt-2 text-red-600"), errMsg)),
		IfElse(loaded, userTable(list), P(Class("mt-2 text-gray-500"), "No users loaded")),
	)
}

// load runs outside the event callback: HTTP calls block, and the wasm
// event loop must keep running for them to complete.
func load(ctx *page.Context) {
	c, cancel := context.WithTimeout(ctx.Context(), 10*time.Second)
	defer cancel()

	list, err := providers.API().List(c)
	if err != nil {
		ctx.Global.Set(providers.KeyUsersError, err.Error())
		return
	}
	ctx.Global.Set(providers.KeyUsersError, "")
	ctx.Global.Set(providers.KeyUsers, list)
}

func userTable(v any) *VNode {
	list, _ := v.([]users.User)
	if len(list) == 0 {
		return P(Class("mt-2"), "No users yet")
	}
	return Ul(Class("mt-4 divide-y"),
		Range(list, func(u users.User, _ int) *VNode {
			return Li(Class("py-2"), Strong(u.Name), " ", Span(Class("text-gray-500"), u.Email))
		}),
	)
}
