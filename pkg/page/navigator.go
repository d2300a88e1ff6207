package page

// NavigateOptions controls a navigation.
type NavigateOptions struct {
	// Replace swaps the current history entry instead of pushing one.
	Replace bool
	// KeepScroll skips the scroll to the top of the page.
	KeepScroll bool
}

// NavigateOption configures a navigation.
type NavigateOption func(*NavigateOptions)

// WithReplace makes Push behave like Replace.
func WithReplace() NavigateOption {
	return func(o *NavigateOptions) { o.Replace = true }
}

// WithKeepScroll keeps the scroll position.
func WithKeepScroll() NavigateOption {
	return func(o *NavigateOptions) { o.KeepScroll = true }
}

// ApplyNavigateOptions folds opts into a NavigateOptions value.
func ApplyNavigateOptions(opts ...NavigateOption) NavigateOptions {
	var o NavigateOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Navigator performs browser navigations. The wasm client maps the calls
// to location and history; on the server they do nothing.
type Navigator interface {
	Push(url string, opts ...NavigateOption)
	Replace(url string, opts ...NavigateOption)
	Back()
	Forward()
	Refresh()
}

// ServerNavigator is the no-op navigator used during server rendering.
type ServerNavigator struct{}

func (ServerNavigator) Push(string, ...NavigateOption)    {}
func (ServerNavigator) Replace(string, ...NavigateOption) {}
func (ServerNavigator) Back()                             {}
func (ServerNavigator) Forward()                          {}
func (ServerNavigator) Refresh()                          {}
