package app

import "testing"

func TestOriginMatcher(t *testing.T) {
	allow := originMatcher([]string{
		"journal.example.com",
		"*.cdn.example.com",
		"localhost:*",
		"  ", // blank entries are ignored
	})

	cases := []struct {
		origin string
		want   bool
	}{
		{"https://journal.example.com", true},
		{"http://JOURNAL.EXAMPLE.COM", true},
		{"https://assets.cdn.example.com", true},
		{"https://deep.assets.cdn.example.com", true},
		{"http://localhost:5173", true},
		{"http://localhost:3000", true},
		{"https://evil.example.com", false},
		{"https://journal.example.com.evil.net", false},
		{"https://cdn.example.com.evil.net", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := allow(tc.origin); got != tc.want {
			t.Errorf("allow(%q) = %v, want %v", tc.origin, got, tc.want)
		}
	}
}

func TestOriginHost(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://journal.example.com", "journal.example.com"},
		{"http://localhost:5173", "localhost:5173"},
		{"journal.example.com", "journal.example.com"},
		{"  HTTPS://Journal.Example.COM  ", "journal.example.com"},
	}
	for _, tc := range cases {
		if got := originHost(tc.in); got != tc.want {
			t.Errorf("originHost(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
