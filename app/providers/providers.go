// Package providers holds the global provider of the demo app: the
// shared store keys and the API client pages use.
package providers

import (
	"github.com/vango-dev/vanext/pkg/apiclient"
	"github.com/vango-dev/vanext/pkg/page"
	"github.com/vango-dev/vanext/pkg/vdom"
)

// Store keys.
const (
	KeyTest       = "test"
	KeyUsers      = "users"
	KeyUsersError = "usersError"
)

// API location. The wasm client has no environment, so both can be set
// with -ldflags "-X".
var (
	APIBaseURL = "http://localhost:4000"
	APIPrefix  = ""
)

// Providers wraps every page. The global store travels on the context,
// so it adds no markup.
func Providers(ctx *page.Context, children *vdom.VNode) *vdom.VNode {
	return children
}

// Test returns the "test" value, "" until it is set.
func Test(ctx *page.Context) string {
	return ctx.Global.String(KeyTest)
}

// SetTest stores the "test" value and re-renders on the client.
func SetTest(ctx *page.Context, v string) {
	ctx.Global.Set(KeyTest, v)
}

// API returns a client for the users API.
func API() *apiclient.Client {
	return apiclient.New(APIBaseURL, apiclient.WithPrefix(APIPrefix))
}
