package vdom

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Global attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute. Empty names are dropped.
func Class(classes ...string) Attr {
	nonEmpty := classes[:0:0]
	for _, c := range classes {
		if c != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}
	return attr("class", strings.Join(nonEmpty, " "))
}

// ClassIf sets the class attribute only when cond holds.
func ClassIf(cond bool, class string) Attr {
	if !cond {
		return Attr{}
	}
	return attr("class", class)
}

// Style sets inline CSS.
func Style(css string) Attr { return attr("style", css) }

// Title sets the title attribute.
func Title(text string) Attr { return attr("title", text) }

// Data sets a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Aria sets an aria-* attribute.
func Aria(key, value string) Attr { return attr("aria-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// Link and media attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(v string) Attr { return attr("value", v) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled sets the boolean disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Checked sets the boolean checked attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Required sets the boolean required attribute.
func Required(required bool) Attr { return attr("required", required) }

// Action sets a form's action URL.
func Action(url string) Attr { return attr("action", url) }

// Method sets a form's HTTP method.
func Method(m string) Attr { return attr("method", m) }
