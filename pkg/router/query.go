package router

import (
	"encoding/json"
	"net/url"
)

// Query holds query params. Repeated keys keep every value in arrival
// order.
type Query map[string][]string

// ParseQuery parses a raw query string, with or without its leading "?".
// Malformed pairs are skipped.
func ParseQuery(raw string) Query {
	if len(raw) > 0 && raw[0] == '?' {
		raw = raw[1:]
	}
	values, _ := url.ParseQuery(raw)
	return Query(values)
}

// Get returns the first value of key, or "".
func (q Query) Get(key string) string {
	if vs := q[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Values returns every value of key.
func (q Query) Values(key string) []string {
	return q[key]
}

// MarshalJSON encodes single values as strings and repeated values as
// arrays.
func (q Query) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(q))
	for k, vs := range q {
		if len(vs) == 1 {
			out[k] = vs[0]
		} else {
			out[k] = vs
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts both the string and the array form.
func (q *Query) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Query, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = []string{s}
			continue
		}
		var list []string
		if err := json.Unmarshal(v, &list); err != nil {
			return err
		}
		out[k] = list
	}
	*q = out
	return nil
}
