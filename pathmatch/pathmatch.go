// Package pathmatch compiles route patterns into matcher functions.
//
// Patterns are made of literal text, named segment parameters (":id"),
// named wildcards ("*rest") that span several segments, and optional
// groups in braces ("/files{/:name}"). A backslash escapes the next
// character.
package pathmatch

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/dghubble/trie"
)

// Matcher reports whether path matches and which parameters it captured.
// A nil params map with ok=true means the match carries no parameters.
type Matcher func(path string) (params map[string]string, ok bool)

// Compiler turns a pattern string into a Matcher.
type Compiler func(pattern string) (Matcher, error)

// Options control how a pattern is compiled. The zero value matches the
// default behavior of Compile.
type Options struct {
	// Sensitive makes literal comparisons case-sensitive.
	Sensitive bool
	// Strict disallows the optional trailing slash.
	Strict bool
	// Prefix lets the pattern match a leading run of whole segments
	// instead of the full path.
	Prefix bool
	// Raw leaves captured values percent-encoded.
	Raw bool
}

var (
	cacheMu sync.Mutex
	cache   = trie.NewPathTrie()
)

// Compile compiles pattern with default options. Compiled matchers are
// cached by pattern, so registering the same pattern twice shares one
// matcher.
func Compile(pattern string) (Matcher, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if v := cache.Get(pattern); v != nil {
		return v.(Matcher), nil
	}
	m, err := CompileWithOptions(pattern, Options{})
	if err != nil {
		return nil, err
	}
	cache.Put(pattern, m)
	return m, nil
}

// MustCompile is like Compile but panics if the pattern is invalid.
func MustCompile(pattern string) Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// CompileWithOptions compiles pattern using opts.
func CompileWithOptions(pattern string, opts Options) (Matcher, error) {
	toks, err := parse(pattern)
	if err != nil {
		return nil, err
	}

	var names []string
	var sb strings.Builder
	if !opts.Sensitive {
		sb.WriteString("(?i)")
	}
	sb.WriteByte('^')
	if err := writeTokens(&sb, toks, &names); err != nil {
		return nil, &PatternError{Pattern: pattern, Reason: err.Error()}
	}
	if !opts.Strict {
		sb.WriteString("/?")
	}
	if opts.Prefix {
		sb.WriteString("(?:/|$)")
	} else {
		sb.WriteByte('$')
	}

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Reason: err.Error()}
	}

	return func(path string) (map[string]string, bool) {
		loc := re.FindStringSubmatchIndex(path)
		if loc == nil {
			return nil, false
		}
		params := make(map[string]string, len(names))
		for i, name := range names {
			start, end := loc[2*i+2], loc[2*i+3]
			if start < 0 {
				continue // optional group not taken
			}
			v := path[start:end]
			if !opts.Raw {
				dv, err := url.PathUnescape(v)
				if err != nil {
					return nil, false
				}
				v = dv
			}
			params[name] = v
		}
		return params, true
	}, nil
}

// PatternError describes a malformed pattern.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pathmatch: invalid pattern %q: %s", e.Pattern, e.Reason)
}

func writeTokens(sb *strings.Builder, toks []token, names *[]string) error {
	for _, t := range toks {
		switch t.kind {
		case tokText:
			sb.WriteString(regexp.QuoteMeta(t.value))
		case tokParam, tokWildcard:
			for _, n := range *names {
				if n == t.value {
					return fmt.Errorf("duplicate parameter name %q", t.value)
				}
			}
			*names = append(*names, t.value)
			if t.kind == tokParam {
				sb.WriteString("([^/]+)")
			} else {
				sb.WriteString("(.+)")
			}
		case tokGroup:
			sb.WriteString("(?:")
			if err := writeTokens(sb, t.group, names); err != nil {
				return err
			}
			sb.WriteString(")?")
		}
	}
	return nil
}
