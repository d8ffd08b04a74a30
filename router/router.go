package router

import (
	"log/slog"

	"github.com/en9inerd/go-svrouter/pathmatch"
)

// Next resumes the search for the next matching route.
type Next func()

// Callback handles a matched request. logs and config are the two values
// given to Dispatch, forwarded unchanged. A non-nil error ends dispatch and
// is reported through res.Error.
type Callback func(req *Request, res Response, logs, config any, next Next) error

// Route is an entry in the route table.
type Route struct {
	method   string // "" matches every method
	pattern  string
	match    pathmatch.Matcher
	callback Callback
	prefix   *string // mount prefix, nil unless the route is a mount point
}

// RouteInfo describes a registered route.
type RouteInfo struct {
	Method  string
	Pattern string
	// Mount is true for pass-through routes; Prefix is their normalized
	// mount prefix ("" matches every path).
	Mount  bool
	Prefix string
}

// Config holds router configuration.
type Config struct {
	// Compiler compiles route patterns. Default: pathmatch.Compile
	Compiler pathmatch.Compiler

	// Logger, if set, logs panics recovered from callbacks.
	Logger *slog.Logger

	// IncludeStack adds the stack trace to logged panics.
	IncludeStack bool
}

// Router is an ordered table of routes. Registration must complete before
// the first Dispatch; after that the table is only read.
type Router struct {
	routes       []*Route
	compile      pathmatch.Compiler
	logger       *slog.Logger
	includeStack bool
}

// New creates a new router with default settings.
func New() *Router {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a new router with custom configuration.
func NewWithConfig(cfg Config) *Router {
	if cfg.Compiler == nil {
		cfg.Compiler = pathmatch.Compile
	}
	return &Router{
		compile:      cfg.Compiler,
		logger:       cfg.Logger,
		includeStack: cfg.IncludeStack,
	}
}

// Routes returns the route table in match order.
func (r *Router) Routes() []RouteInfo {
	out := make([]RouteInfo, 0, len(r.routes))
	for _, rt := range r.routes {
		info := RouteInfo{Method: rt.method, Pattern: rt.pattern}
		if info.Method == "" {
			info.Method = "*"
		}
		if rt.prefix != nil {
			info.Mount = true
			info.Prefix = *rt.prefix
		}
		out = append(out, info)
	}
	return out
}

// AsCallback lets the router be registered inside another router. Mounted
// with Mount, it matches paths relative to the mount prefix and falls
// through to the outer router when nothing inside matches.
func (r *Router) AsCallback() Callback {
	return func(req *Request, res Response, logs, config any, next Next) error {
		r.Dispatch(req, res, logs, config, next)
		return nil
	}
}
