package router

import (
	"errors"
	"net/http"
	"net/url"
)

// ForeignMiddleware is middleware written without the router's context
// values: it gets the request, the response and a bare continuation.
type ForeignMiddleware func(req *Request, res Response, next Next) error

var errNoResponseWriter = errors.New("router: response does not implement http.ResponseWriter")

// adapt wraps mw so that it sees the request relative to its mount point.
// The rewritten fields live on a private copy, so the caller's view is
// back to its previous state as soon as mw calls next.
func adapt(mw ForeignMiddleware) Callback {
	return func(req *Request, res Response, _, _ any, next Next) error {
		return mw(req.mounted(), res, next)
	}
}

// FromHTTP adapts standard net/http middleware. The wrapped middleware sees
// an *http.Request whose URL is the mount-relative URL; reaching the inner
// handler counts as calling next. The response passed to the router must
// implement http.ResponseWriter.
//
// Changes the middleware makes to the *http.Request it passes on are not
// carried back into the router's Request, except through shared values such
// as headers.
func FromHTTP(mw func(http.Handler) http.Handler) ForeignMiddleware {
	if mw == nil {
		panic(invalid("middleware", "must not be nil"))
	}
	return func(req *Request, res Response, next Next) error {
		w, ok := res.(http.ResponseWriter)
		if !ok {
			return errNoResponseWriter
		}
		hr, err := req.httpRequest()
		if err != nil {
			return err
		}
		inner := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { next() })
		mw(inner).ServeHTTP(w, hr)
		return nil
	}
}

// httpRequest builds the net/http view of req with URL as its target.
func (r *Request) httpRequest() (*http.Request, error) {
	target := r.URL
	if target == "" {
		target = "/"
	}
	u, err := url.ParseRequestURI(target)
	if err != nil {
		return nil, err
	}

	if r.HTTP == nil {
		hr, err := http.NewRequest(r.Method, target, http.NoBody)
		if err != nil {
			return nil, err
		}
		hr.RequestURI = target
		return hr, nil
	}

	hr := *r.HTTP
	hu := *r.HTTP.URL
	hu.Path, hu.RawPath, hu.RawQuery = u.Path, u.RawPath, u.RawQuery
	hr.URL = &hu
	hr.RequestURI = target
	return &hr, nil
}
