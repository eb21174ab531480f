package mail

import (
	"strings"
	"testing"
)

func TestSendDisabledIsNoop(t *testing.T) {
	s := New(Config{Enable: false})
	if err := s.Send(Message{To: []string{"a@b.c"}, Subject: "x"}); err != nil {
		t.Fatalf("disabled sender should not error, got %v", err)
	}
}

func TestNewPostTemplate(t *testing.T) {
	html, err := renderTemplate(newPostTpl, NewPostData{
		Title:    "Hello <World>",
		Slug:     "hello-world",
		PostURL:  "https://example.com/post/hello-world",
		SiteName: "FirstPost Journal",
	})
	if err != nil {
		t.Fatalf("renderTemplate failed: %v", err)
	}
	if !strings.Contains(html, "https://example.com/post/hello-world") {
		t.Error("rendered mail should contain the post URL")
	}
	if !strings.Contains(html, "Hello &lt;World&gt;") {
		t.Error("title should be HTML-escaped")
	}
}

func TestPostURL(t *testing.T) {
	cases := []struct {
		base string
		slug string
		want string
	}{
		{"https://example.com", "hello-world", "https://example.com/post/hello-world"},
		{"https://example.com/", "hello-world", "https://example.com/post/hello-world"},
		{"", "hello-world", "http://localhost:3000/post/hello-world"},
	}
	for _, tc := range cases {
		if got := PostURL(tc.base, tc.slug); got != tc.want {
			t.Errorf("PostURL(%q, %q) = %q, want %q", tc.base, tc.slug, got, tc.want)
		}
	}
}
