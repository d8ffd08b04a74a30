package middleware

import (
	"net/http"

	"github.com/en9inerd/go-svrouter/httperrors"
	"github.com/en9inerd/go-svrouter/router"
)

// SizeLimit rejects requests with bodies larger than size.
func SizeLimit(size int64) router.Callback {
	return func(req *router.Request, res router.Response, logs, config any, next router.Next) error {
		if req.HTTP != nil {
			if req.HTTP.ContentLength > size {
				return httperrors.NewError(http.StatusRequestEntityTooLarge, "request too large")
			}
			if w, ok := res.(http.ResponseWriter); ok && req.HTTP.Body != nil {
				req.HTTP.Body = http.MaxBytesReader(w, req.HTTP.Body, size)
			}
		}
		next()
		return nil
	}
}
