package router

import (
	"net/http"
	"net/url"
	"strings"
)

// Request is the routing view of an inbound request.
//
// The router never mutates the Request it is handed. Each matched route
// receives its own shallow copy carrying that route's params and mount
// base, so nothing a route contributes leaks into the routes tried after
// it calls next.
type Request struct {
	Method string
	// ParsedURL is the pre-parsed request URL. Routes match its escaped
	// path, so pattern literals and mount paths compare against the
	// percent-encoded form and captured params are decoded once.
	ParsedURL *url.URL
	// Params holds the parameters captured by the most recent matching
	// pattern route.
	Params map[string]string

	// URL, BaseURL and OriginalURL are maintained by mounted foreign
	// middleware: URL is relative to the mount point, BaseURL is the
	// mount point and OriginalURL is URL as it was before mounting.
	URL         string
	BaseURL     string
	OriginalURL string

	// HTTP is the underlying net/http request, if any.
	HTTP *http.Request

	// Locals is shared by every route invoked during one dispatch.
	Locals map[string]any

	mountBase string
}

// Param returns the named path parameter, or "" if it was not captured.
func (r *Request) Param(name string) string {
	return r.Params[name]
}

// MountBase returns the concatenation of the mount prefixes of the
// pass-through routes that led to this request.
func (r *Request) MountBase() string {
	return r.mountBase
}

// path returns the escaped path relative to the accumulated mount base.
func (r *Request) path() string {
	var p string
	if r.ParsedURL != nil {
		p = r.ParsedURL.EscapedPath()
	}
	p = strings.TrimPrefix(p, r.mountBase)
	if p == "" {
		return "/"
	}
	return p
}

// mounted derives the request a foreign middleware sees: URL relative to
// the mount base, BaseURL set to it, and the mount base cleared so that
// nested mounts start from zero.
func (r *Request) mounted() *Request {
	m := *r
	m.BaseURL = r.mountBase
	m.OriginalURL = r.URL
	m.URL = strings.TrimPrefix(r.URL, r.mountBase)
	if m.URL == "" || m.URL[0] != '/' {
		m.URL = "/" + m.URL
	}
	m.mountBase = ""
	return &m
}

// Response is the collaborator a route reports failures to.
type Response interface {
	Error(code int, err error)
}
