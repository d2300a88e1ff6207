package routepath

import (
	"errors"
	"testing"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input   string
		path    string
		query   string
		changed bool
	}{
		{"/", "/", "", false},
		{"", "/", "", true},
		{"/about", "/about", "", false},
		{"/dynamic/42/", "/dynamic/42/", "", false},
		{"/blog//post", "/blog/post", "", true},
		{"///a", "/a", "", true},
		{"/blog/./post", "/blog/post", "", true},
		{"/blog/../other", "/other", "", true},
		{"/blog/../other/", "/other/", "", true},
		{"/a/..", "/", "", true},
		{"/a/../", "/", "", true},
		{"/docs/a/b/c?x=1&y=2", "/docs/a/b/c", "x=1&y=2", false},
		{"/a//b?q=//", "/a/b", "q=//", true},
		{"relative", "/relative", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Canonicalize(tt.input)
			if err != nil {
				t.Fatalf("Canonicalize(%q) error: %v", tt.input, err)
			}
			if got.Path != tt.path || got.Query != tt.query || got.Changed != tt.changed {
				t.Errorf("Canonicalize(%q) = %+v, want {Path:%s Query:%s Changed:%v}",
					tt.input, got, tt.path, tt.query, tt.changed)
			}
		})
	}
}

func TestCanonicalizeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{`/a\b`, ErrBackslashInPath},
		{"/a\x00b", ErrNullByteInPath},
		{"/a%00b", ErrNullByteInPath},
		{"/..", ErrPathEscapesRoot},
		{"/../../etc/passwd", ErrPathEscapesRoot},
		{"/a/../../b", ErrPathEscapesRoot},
	}
	for _, tt := range tests {
		if _, err := Canonicalize(tt.input); !errors.Is(err, tt.want) {
			t.Errorf("Canonicalize(%q) error = %v, want %v", tt.input, err, tt.want)
		}
	}
}

func TestNavPath(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"/", "/", false},
		{"/dynamic/456", "/dynamic/456", false},
		{"/dynamic/7?tab=settings&view=grid", "/dynamic/7?tab=settings&view=grid", false},
		{"/docs//a#intro", "/docs/a#intro", false},
		{"/a/./b/", "/a/b/", false},
		{"https://evil.example", "", true},
		{"//evil.example/x", "", true},
		{"javascript:alert(1)", "", true},
		{"relative", "", true},
		{"", "", true},
		{"/../x", "", true},
	}
	for _, tt := range tests {
		got, err := NavPath(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("NavPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("NavPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
