package router

import (
	"strings"

	"github.com/en9inerd/go-svrouter/pathmatch"
)

// normalizePrefix strips trailing slashes. An all-slash prefix becomes "",
// which matches every path.
func normalizePrefix(p string) string {
	return strings.TrimRight(p, "/")
}

// prefixMatcher matches p itself and anything below it segment-wise, so
// "/api" accepts "/api" and "/api/x" but not "/api2".
func prefixMatcher(p string) pathmatch.Matcher {
	if p == "" {
		return matchAll
	}
	return func(path string) (map[string]string, bool) {
		if path == p || strings.HasPrefix(path, p+"/") {
			return nil, true
		}
		return nil, false
	}
}

func matchAll(string) (map[string]string, bool) { return nil, true }

// validMethod reports whether m is an HTTP token (RFC 9110 section 5.6.2).
func validMethod(m string) bool {
	if m == "" {
		return false
	}
	for i := 0; i < len(m); i++ {
		if !isTokenChar(m[i]) {
			return false
		}
	}
	return true
}

func isTokenChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("!#$%&'*+-.^_`|~", c) >= 0
}
