package router

import (
	"log/slog"
	"net/http"
)

// dispatch is the state of one pass through the route table.
type dispatch struct {
	routes []*Route
	cursor int

	// entry is the request as the router received it. Every step is
	// derived from it, which is what keeps params and mount base from
	// leaking between steps.
	entry *Request

	res          Response
	logs, config any
	notFound     Next

	logger       *slog.Logger
	includeStack bool
}

// Dispatch runs req through the route table. The first route whose method
// and pattern match is invoked; calling its next resumes the scan after it.
// When the table is exhausted notFound is called with no arguments. An error
// returned or a panic raised by a callback is reported once through
// res.Error(500, err) and ends the dispatch.
func (r *Router) Dispatch(req *Request, res Response, logs, config any, notFound Next) {
	entry := *req
	if entry.Locals == nil {
		entry.Locals = make(map[string]any)
	}
	d := &dispatch{
		routes:       r.routes,
		entry:        &entry,
		res:          res,
		logs:         logs,
		config:       config,
		notFound:     notFound,
		logger:       r.logger,
		includeStack: r.includeStack,
	}
	d.next()
}

func (d *dispatch) next() {
	path := d.entry.path()
	for d.cursor < len(d.routes) {
		rt := d.routes[d.cursor]
		d.cursor++

		if rt.method != "" && rt.method != d.entry.Method {
			continue
		}
		params, ok := rt.match(path)
		if !ok {
			continue
		}
		d.invoke(rt, d.step(rt, params))
		return
	}
	if d.notFound != nil {
		d.notFound()
	}
}

// step derives the request rt sees from the entry request.
func (d *dispatch) step(rt *Route, params map[string]string) *Request {
	req := *d.entry
	if params != nil {
		req.Params = params
	}
	if rt.prefix != nil {
		req.mountBase = d.entry.mountBase + *rt.prefix
	}
	return &req
}

func (d *dispatch) invoke(rt *Route, req *Request) {
	defer func() {
		rvr := recover()
		if rvr == nil {
			return
		}
		if rvr == http.ErrAbortHandler {
			panic(rvr)
		}
		fault := newHandlerFault(rvr)
		d.logFault(req, fault)
		d.res.Error(http.StatusInternalServerError, fault)
	}()

	if err := rt.callback(req, d.res, d.logs, d.config, d.next); err != nil {
		d.res.Error(http.StatusInternalServerError, err)
	}
}

func (d *dispatch) logFault(req *Request, fault *HandlerFault) {
	if d.logger == nil {
		return
	}
	attrs := []any{
		slog.Any("panic", fault.Value),
		slog.String("method", req.Method),
		slog.String("path", req.path()),
		slog.String("mount_base", req.mountBase),
	}
	if d.includeStack {
		attrs = append(attrs, slog.String("stack", string(fault.Stack)))
	}
	d.logger.Error("panic recovered", attrs...)
}
