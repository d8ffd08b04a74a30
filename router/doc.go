// Package router dispatches requests through an ordered table of routes.
// It supports:
//
//   - Method routes with parameter extraction ("GET /user/:id")
//   - Pass-through routes matching every request or a mount prefix
//   - Mounting foreign middleware, including standard net/http middleware,
//     under a prefix
//   - Nesting routers under a prefix
//
// Example usage:
//
//	r := router.New()
//
//	r.Use(middleware.Logger)
//	r.Get("/user/:id", func(req *router.Request, res router.Response, logs, config any, next router.Next) error {
//	    fmt.Fprintf(res.(http.ResponseWriter), "user %s", req.Param("id"))
//	    return nil
//	})
//	r.MountForeign("/legacy", router.FromHTTP(legacyMiddleware))
//
//	http.ListenAndServe(":8080", r.Handler(logging.New(), cfg, nil))
//
// Routes are tried in registration order and the first whose method and
// pattern both match is invoked. A route either finishes the request or
// calls next to resume the search after itself; if it does neither the
// dispatch simply ends. When no route is left the notFound continuation
// given to Dispatch runs.
//
// Every route sees its own copy of the Request: the params captured by its
// pattern and the mount base contributed by its prefix are visible to it
// and to nothing registered after it. Values meant for later routes go in
// Request.Locals.
//
// Registration panics with an *ArgumentError on invalid input. A callback
// that returns an error or panics ends the dispatch with a single call to
// Response.Error(500, err).
package router
