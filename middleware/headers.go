package middleware

import (
	"net/http"
	"strings"

	"github.com/en9inerd/go-svrouter/router"
)

// Headers adds "Key: Value" headers to the response and passes on.
// Header values are sanitized to prevent HTTP header injection attacks.
func Headers(headers ...string) router.Callback {
	return func(req *router.Request, res router.Response, logs, config any, next router.Next) error {
		if w, ok := res.(http.ResponseWriter); ok {
			for _, h := range headers {
				elems := strings.SplitN(h, ":", 2)
				if len(elems) != 2 {
					continue
				}
				key := strings.TrimSpace(elems[0])
				value := strings.TrimSpace(elems[1])

				if strings.ContainsAny(value, "\r\n") {
					continue
				}
				w.Header().Set(key, value)
			}
		}
		next()
		return nil
	}
}
