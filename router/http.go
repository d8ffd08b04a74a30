package router

import (
	"log/slog"
	"net/http"

	"github.com/en9inerd/go-svrouter/httperrors"
)

// NewRequest builds a routing Request from a net/http request.
func NewRequest(hr *http.Request) *Request {
	target := hr.RequestURI
	if target == "" {
		target = hr.URL.RequestURI()
	}
	return &Request{
		Method:    hr.Method,
		ParsedURL: hr.URL,
		URL:       target,
		HTTP:      hr,
	}
}

// HTTPResponse is a Response backed by an http.ResponseWriter.
type HTTPResponse struct {
	http.ResponseWriter
	req    *http.Request
	logger *slog.Logger
}

// NewResponse wraps w. logger may be nil.
func NewResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger) *HTTPResponse {
	return &HTTPResponse{ResponseWriter: w, req: r, logger: logger}
}

// Error writes err as a JSON error body. An *httperrors.Error anywhere in
// err's chain supplies its own code and message; anything else is reported
// with code and its status text. Server errors are logged.
func (r *HTTPResponse) Error(code int, err error) {
	he := httperrors.FromError(code, err)
	if r.logger != nil && he.Code >= http.StatusInternalServerError {
		attrs := []any{slog.Int("code", he.Code), slog.Any("error", err)}
		if r.req != nil {
			attrs = append(attrs,
				slog.String("method", r.req.Method),
				slog.String("url", r.req.URL.String()),
				slog.String("remote_addr", r.req.RemoteAddr),
			)
		}
		r.logger.Error("route failed", attrs...)
	}
	he.WriteJSON(r.ResponseWriter)
}

// Handler returns an http.Handler that dispatches every request through r,
// forwarding logs and config to the callbacks. Requests no route finishes
// are passed to notFound, or answered with a JSON 404 when it is nil.
func (r *Router) Handler(logs, config any, notFound http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, hr *http.Request) {
		res := NewResponse(w, hr, r.logger)
		r.Dispatch(NewRequest(hr), res, logs, config, func() {
			if notFound != nil {
				notFound.ServeHTTP(w, hr)
				return
			}
			res.Error(http.StatusNotFound, httperrors.NewError(http.StatusNotFound, http.StatusText(http.StatusNotFound)))
		})
	})
}
