package middleware

import (
	"log/slog"
	"time"

	"github.com/en9inerd/go-svrouter/logging"
	"github.com/en9inerd/go-svrouter/router"
)

// Logger logs every request that reaches it, using the logger carried by
// the logs context value. Register it first with Use so the logged
// duration covers the rest of the chain.
func Logger(req *router.Request, res router.Response, logs, config any, next router.Next) error {
	start := time.Now()

	// Call the next route
	next()

	path := ""
	if req.ParsedURL != nil {
		path = req.ParsedURL.Path
	}
	attrs := []any{
		slog.String("method", req.Method),
		slog.String("path", path),
		slog.String("duration", time.Since(start).String()),
	}
	if base := req.MountBase(); base != "" {
		attrs = append(attrs, slog.String("mount_base", base))
	}
	if req.HTTP != nil {
		attrs = append(attrs, slog.String("remote", req.HTTP.RemoteAddr))
	}
	logging.From(logs).Info("request", attrs...)
	return nil
}
