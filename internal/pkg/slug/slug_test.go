package slug

import "testing"

func TestDerive(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello, World!", "hello-world"},
		{"  Trimmed Title  ", "trimmed-title"},
		{"Already-slugged", "already-slugged"},
		{"Multiple   Spaces", "multiple---spaces"},
		{"CAPS and 123", "caps-and-123"},
		{"Ünicode stripped", "nicode-stripped"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Derive(tc.title); got != tc.want {
			t.Errorf("Derive(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestDeriveIdempotent(t *testing.T) {
	titles := []string{"Hello, World!", "Some Long Post Title", "a-b-c", "Mixed CASE 42"}
	for _, title := range titles {
		once := Derive(title)
		if twice := Derive(once); twice != once {
			t.Errorf("Derive not idempotent for %q: %q -> %q", title, once, twice)
		}
	}
}
