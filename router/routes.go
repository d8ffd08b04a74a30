package router

import (
	"net/http"
	"slices"
	"strings"
)

// KnownMethods lists the methods Method accepts.
var KnownMethods = []string{
	"ACL", "BIND", "CHECKOUT", "CONNECT", "COPY", "DELETE", "GET", "HEAD",
	"LINK", "LOCK", "M-SEARCH", "MERGE", "MKACTIVITY", "MKCALENDAR", "MKCOL",
	"MOVE", "NOTIFY", "OPTIONS", "PATCH", "POST", "PROPFIND", "PROPPATCH",
	"PURGE", "PUT", "QUERY", "REBIND", "REPORT", "SEARCH", "SOURCE",
	"SUBSCRIBE", "TRACE", "UNBIND", "UNLINK", "UNLOCK", "UNSUBSCRIBE",
}

// Register appends a route for method and pattern. Method "*" matches every
// method. Register panics with an *ArgumentError if the method is not a
// token, the pattern does not compile or cb is nil.
func (r *Router) Register(method, pattern string, cb Callback) *Router {
	if method != "*" && !validMethod(method) {
		panic(invalid("method", "must be an HTTP method token or \"*\""))
	}
	if cb == nil {
		panic(invalid("callback", "must not be nil"))
	}
	match, err := r.compile(pattern)
	if err != nil {
		panic(&ArgumentError{Param: "path", Reason: "pattern does not compile", Err: err})
	}

	if method == "*" {
		method = ""
	}
	r.routes = append(r.routes, &Route{
		method:   strings.ToUpper(method),
		pattern:  pattern,
		match:    match,
		callback: cb,
	})
	return r
}

// All registers cb for pattern and every method.
func (r *Router) All(pattern string, cb Callback) *Router {
	return r.Register("*", pattern, cb)
}

// Method returns the registration shorthand for one of KnownMethods.
func (r *Router) Method(name string) func(pattern string, cb Callback) *Router {
	m := strings.ToUpper(name)
	if !slices.Contains(KnownMethods, m) {
		panic(invalid("method", "unknown method "+name))
	}
	return func(pattern string, cb Callback) *Router {
		return r.Register(m, pattern, cb)
	}
}

// Get registers cb for GET requests matching pattern.
func (r *Router) Get(pattern string, cb Callback) *Router {
	return r.Register(http.MethodGet, pattern, cb)
}

// Head registers cb for HEAD requests matching pattern.
func (r *Router) Head(pattern string, cb Callback) *Router {
	return r.Register(http.MethodHead, pattern, cb)
}

// Post registers cb for POST requests matching pattern.
func (r *Router) Post(pattern string, cb Callback) *Router {
	return r.Register(http.MethodPost, pattern, cb)
}

// Put registers cb for PUT requests matching pattern.
func (r *Router) Put(pattern string, cb Callback) *Router {
	return r.Register(http.MethodPut, pattern, cb)
}

// Patch registers cb for PATCH requests matching pattern.
func (r *Router) Patch(pattern string, cb Callback) *Router {
	return r.Register(http.MethodPatch, pattern, cb)
}

// Delete registers cb for DELETE requests matching pattern.
func (r *Router) Delete(pattern string, cb Callback) *Router {
	return r.Register(http.MethodDelete, pattern, cb)
}

// Connect registers cb for CONNECT requests matching pattern.
func (r *Router) Connect(pattern string, cb Callback) *Router {
	return r.Register(http.MethodConnect, pattern, cb)
}

// Options registers cb for OPTIONS requests matching pattern.
func (r *Router) Options(pattern string, cb Callback) *Router {
	return r.Register(http.MethodOptions, pattern, cb)
}

// Trace registers cb for TRACE requests matching pattern.
func (r *Router) Trace(pattern string, cb Callback) *Router {
	return r.Register(http.MethodTrace, pattern, cb)
}

// Use appends a pass-through route that matches every request.
func (r *Router) Use(cb Callback) *Router {
	return r.pass("", cb)
}

// Mount appends a pass-through route for path and everything below it.
// Trailing slashes are ignored; a path made only of slashes matches every
// request. path is compared with the escaped request path, so a segment
// containing a space is mounted as "%20". The matched prefix is added to the
// request's mount base for the duration of cb.
func (r *Router) Mount(path string, cb Callback) *Router {
	return r.pass(normalizePrefix(path), cb)
}

// UseForeign mounts foreign middleware at the root.
func (r *Router) UseForeign(mw ForeignMiddleware) *Router {
	if mw == nil {
		panic(invalid("middleware", "must not be nil"))
	}
	return r.Use(adapt(mw))
}

// MountForeign mounts foreign middleware at path. Inside mw the request's
// URL is relative to path and BaseURL holds the mount point.
func (r *Router) MountForeign(path string, mw ForeignMiddleware) *Router {
	if mw == nil {
		panic(invalid("middleware", "must not be nil"))
	}
	return r.Mount(path, adapt(mw))
}

func (r *Router) pass(prefix string, cb Callback) *Router {
	if cb == nil {
		panic(invalid("callback", "must not be nil"))
	}
	r.routes = append(r.routes, &Route{
		pattern:  prefix,
		match:    prefixMatcher(prefix),
		callback: cb,
		prefix:   &prefix,
	})
	return r
}
