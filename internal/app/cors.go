package app

import (
	"net/url"
	"strings"
)

// originMatcher compiles the configured allow-list into a predicate.
// Three pattern forms are supported, matching what operators put in
// allowed_origins: an exact "host[:port]", a subdomain wildcard
// "*.example.com", and a port wildcard "host:*". Matching is
// case-insensitive and ignores the origin's scheme.
func originMatcher(patterns []string) func(origin string) bool {
	exact := make(map[string]struct{}, len(patterns))
	var suffixes, prefixes []string

	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		switch {
		case p == "":
		case strings.HasPrefix(p, "*."):
			suffixes = append(suffixes, p[1:])
		case strings.HasSuffix(p, ":*"):
			prefixes = append(prefixes, p[:len(p)-1])
		default:
			exact[p] = struct{}{}
		}
	}

	return func(origin string) bool {
		host := originHost(origin)
		if _, ok := exact[host]; ok {
			return true
		}
		for _, suffix := range suffixes {
			if strings.HasSuffix(host, suffix) {
				return true
			}
		}
		for _, prefix := range prefixes {
			if strings.HasPrefix(host, prefix) {
				return true
			}
		}
		return false
	}
}

// originHost reduces an Origin header value to its "host[:port]" part.
func originHost(origin string) string {
	origin = strings.ToLower(strings.TrimSpace(origin))
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}
