package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
)

func TestMountPrefixMatching(t *testing.T) {
	tests := []struct {
		path  string
		match bool
	}{
		{"/api", true},
		{"/api/", true},
		{"/api/x", true},
		{"/api/x/y", true},
		{"/api2", false},
		{"/apiextra", false},
		{"/", false},
		{"/other/api", false},
	}

	for _, mountPath := range []string{"/api", "/api/", "/api///"} {
		r := New().Mount(mountPath, endWith("mounted"))
		for _, tt := range tests {
			res, _ := serveRoute(r, newReq("DELETE", tt.path))
			if got := len(res.body) == 1; got != tt.match {
				t.Errorf("Mount(%q) against %q: got match=%v, want %v", mountPath, tt.path, got, tt.match)
			}
		}
	}
}

func TestMountAllSlashesMatchesEverything(t *testing.T) {
	for _, p := range []string{"", "/", "///"} {
		r := New().Mount(p, endWith("all"))
		for _, path := range []string{"/", "/a", "/a/b"} {
			res, _ := serveRoute(r, newReq("PATCH", path))
			if len(res.body) != 1 {
				t.Errorf("Mount(%q) should match %q", p, path)
			}
		}
		if got := r.Routes()[0].Prefix; got != "" {
			t.Errorf("Mount(%q): expected empty prefix, got %q", p, got)
		}
	}
}

func TestUseMatchesEverything(t *testing.T) {
	r := New().Use(endWith("pass"))
	for _, m := range []string{"GET", "DELETE", "PROPFIND"} {
		for _, p := range []string{"/", "/anything", "/a/b/c"} {
			if res, _ := serveRoute(r, newReq(m, p)); len(res.body) != 1 {
				t.Errorf("Use should match %s %s", m, p)
			}
		}
	}
}

func TestMountBaseAccumulatesAndIsScopedToStep(t *testing.T) {
	var inner, sibling string
	var innerPath string

	api := New().
		Mount("/v1", func(req *Request, res Response, logs, config any, next Next) error {
			inner = req.MountBase()
			innerPath = req.path()
			next()
			return nil
		})

	r := New().
		Mount("/api", api.AsCallback()).
		Use(func(req *Request, res Response, logs, config any, next Next) error {
			sibling = req.MountBase()
			return nil
		})

	serveRoute(r, newReq("GET", "/api/v1/users"))
	if inner != "/api/v1" {
		t.Fatalf("expected accumulated base /api/v1, got %q", inner)
	}
	if innerPath != "/users" {
		t.Fatalf("expected path relative to the mount base, got %q", innerPath)
	}
	if sibling != "" {
		t.Fatalf("mount base leaked into the next outer route: %q", sibling)
	}
}

func TestNestedRouterMatchesRelativePaths(t *testing.T) {
	users := New().
		Get("/:id", func(req *Request, res Response, logs, config any, next Next) error {
			res.(*recordingResponse).end("user " + req.Param("id"))
			return nil
		})

	r := New().
		Mount("/users", users.AsCallback()).
		Get("/users/:id", endWith("outer"))

	res, _ := serveRoute(r, newReq("GET", "/users/7"))
	if !slices.Equal(res.body, []string{"user 7"}) {
		t.Fatalf("expected nested router to handle the request, got %v", res.body)
	}

	// nested table exhausted: the outer router resumes
	res, notFound := serveRoute(r, newReq("POST", "/users/7"))
	if len(res.body) != 0 || notFound != 1 {
		t.Fatalf("expected fallthrough to the outer notFound, got %v notFound=%d", res.body, notFound)
	}
}

func TestForeignMiddlewareRoundTrip(t *testing.T) {
	req := newReq("GET", "/api/resource")
	res := &recordingResponse{}
	var inside Request
	finished := false

	r := New().MountForeign("/api", func(req *Request, res Response, next Next) error {
		inside = *req
		next()
		return nil
	})

	r.Dispatch(req, res, nil, nil, func() {
		if req.BaseURL != "" || req.URL != "/api/resource" || req.OriginalURL != "" {
			t.Errorf("fields not restored: base=%q url=%q original=%q", req.BaseURL, req.URL, req.OriginalURL)
		}
		finished = true
	})

	if inside.BaseURL != "/api" || inside.URL != "/resource" || inside.OriginalURL != "/api/resource" {
		t.Fatalf("unexpected view inside middleware: base=%q url=%q original=%q",
			inside.BaseURL, inside.URL, inside.OriginalURL)
	}
	if inside.MountBase() != "" {
		t.Fatalf("mount base must be cleared inside foreign middleware, got %q", inside.MountBase())
	}
	if !finished || len(res.errors) != 0 {
		t.Fatalf("expected chain to complete without errors")
	}
}

func TestForeignMiddlewareURLDefaultsToSlash(t *testing.T) {
	var url string
	r := New().MountForeign("/api", func(req *Request, res Response, next Next) error {
		url = req.URL
		return nil
	})
	serveRoute(r, newReq("GET", "/api"))
	if url != "/" {
		t.Fatalf("expected URL / at the mount point, got %q", url)
	}
}

func TestForeignMiddlewareNoMatchCallsNotFound(t *testing.T) {
	called := false
	r := New().MountForeign("/api", func(req *Request, res Response, next Next) error {
		called = true
		return nil
	})
	_, notFound := serveRoute(r, newReq("GET", "/nomatch/resource"))
	if called || notFound != 1 {
		t.Fatalf("expected middleware skipped and notFound called, called=%v notFound=%d", called, notFound)
	}
}

func TestForeignMiddlewareChaining(t *testing.T) {
	var order []string
	mw := func(name string) ForeignMiddleware {
		return func(req *Request, res Response, next Next) error {
			order = append(order, name+":"+req.URL)
			next()
			return nil
		}
	}

	r := New().
		MountForeign("/api", mw("first")).
		MountForeign("/api", mw("second")).
		UseForeign(mw("root"))

	serveRoute(r, newReq("GET", "/api/resource"))
	want := []string{"first:/resource", "second:/resource", "root:/api/resource"}
	if !slices.Equal(order, want) {
		t.Fatalf("got %v, want %v", order, want)
	}
}

func TestNestedForeignMounts(t *testing.T) {
	var outerView, innerView Request

	inner := New().MountForeign("/v1", func(req *Request, res Response, next Next) error {
		innerView = *req
		next()
		return nil
	})

	r := New().Mount("/api", func(req *Request, res Response, logs, config any, next Next) error {
		outerView = *req.mounted()
		inner.Dispatch(req, res, logs, config, next)
		return nil
	})

	serveRoute(r, newReq("GET", "/api/v1/x"))
	if outerView.URL != "/v1/x" || outerView.BaseURL != "/api" {
		t.Fatalf("unexpected outer view: url=%q base=%q", outerView.URL, outerView.BaseURL)
	}
	if innerView.BaseURL != "/api/v1" || innerView.URL != "/x" || innerView.OriginalURL != "/api/v1/x" {
		t.Fatalf("unexpected inner view: base=%q url=%q original=%q",
			innerView.BaseURL, innerView.URL, innerView.OriginalURL)
	}
}

func TestForeignMiddlewareFailure(t *testing.T) {
	boom := errors.New("Middleware error")
	r := New().MountForeign("/api", func(req *Request, res Response, next Next) error {
		return boom
	})
	res, notFound := serveRoute(r, newReq("GET", "/api/resource"))
	if len(res.errors) != 1 || res.errors[0].err != boom || res.errors[0].code != 500 {
		t.Fatalf("expected Error(500, boom), got %+v", res.errors)
	}
	if notFound != 0 {
		t.Fatalf("notFound must not run after a failure")
	}

	r = New().MountForeign("/api", func(req *Request, res Response, next Next) error {
		panic(boom)
	})
	res, _ = serveRoute(r, newReq("GET", "/api/resource"))
	if len(res.errors) != 1 || !errors.Is(res.errors[0].err, boom) {
		t.Fatalf("expected panic reported as a fault wrapping boom, got %+v", res.errors)
	}
}

func TestFromHTTPWithChiMiddleware(t *testing.T) {
	var seenPath string
	r := New().
		MountForeign("/api", FromHTTP(middleware.SetHeader("X-Mounted", "yes"))).
		MountForeign("/api", FromHTTP(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenPath = r.URL.Path
				next.ServeHTTP(w, r)
			})
		})).
		Get("/api/resource", func(req *Request, res Response, logs, config any, next Next) error {
			_, _ = res.(http.ResponseWriter).Write([]byte("resource"))
			return nil
		})

	rec := httptest.NewRecorder()
	r.Handler(nil, nil, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/resource?q=1", nil))

	if rec.Header().Get("X-Mounted") != "yes" {
		t.Errorf("expected header set by chi middleware")
	}
	if seenPath != "/resource" {
		t.Errorf("expected mount-relative path in net/http middleware, got %q", seenPath)
	}
	if rec.Body.String() != "resource" {
		t.Errorf("expected the chain to continue to the route, got %q", rec.Body.String())
	}
}

func TestFromHTTPStopsChainWhenNextNotReached(t *testing.T) {
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
	}
	r := New().
		UseForeign(FromHTTP(deny)).
		Use(func(req *Request, res Response, logs, config any, next Next) error {
			t.Errorf("route after a denying middleware must not run")
			return nil
		})

	rec := httptest.NewRecorder()
	r.Handler(nil, nil, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestFromHTTPNeedsResponseWriter(t *testing.T) {
	r := New().UseForeign(FromHTTP(middleware.NoCache))
	res, _ := serveRoute(r, newReq("GET", "/"))
	if len(res.errors) != 1 || !errors.Is(res.errors[0].err, errNoResponseWriter) {
		t.Fatalf("expected errNoResponseWriter, got %+v", res.errors)
	}
}

func TestMountComparesEncodedPaths(t *testing.T) {
	var view Request
	capture := func(req *Request, res Response, next Next) error {
		view = *req
		return nil
	}

	r := New().MountForeign("/a%20b", capture)
	serveRoute(r, newReq("GET", "/a%20b/resource?q=1"))
	if view.BaseURL != "/a%20b" || view.URL != "/resource?q=1" || view.OriginalURL != "/a%20b/resource?q=1" {
		t.Fatalf("unexpected view: base=%q url=%q original=%q", view.BaseURL, view.URL, view.OriginalURL)
	}

	// the decoded spelling never matches an encoded request path
	_, notFound := serveRoute(New().MountForeign("/a b", capture), newReq("GET", "/a%20b/resource"))
	if notFound != 1 {
		t.Fatalf("expected decoded mount path to fall through, notFound=%d", notFound)
	}
}

func TestForeignMiddlewareKeepsQueryAtMountPoint(t *testing.T) {
	var url string
	r := New().MountForeign("/api", func(req *Request, res Response, next Next) error {
		url = req.URL
		return nil
	})
	serveRoute(r, newReq("GET", "/api?x=1"))
	if url != "/?x=1" {
		t.Fatalf("expected /?x=1, got %q", url)
	}
}

func TestNestedRouterDecodesParamsOnce(t *testing.T) {
	var name string
	files := New().Get("/:name", func(req *Request, res Response, logs, config any, next Next) error {
		name = req.Param("name")
		return nil
	})
	r := New().Mount("/files", files.AsCallback())

	if _, notFound := serveRoute(r, newReq("GET", "/files/a%2Fb")); notFound != 0 || name != "a/b" {
		t.Fatalf("expected name a/b, got %q notFound=%d", name, notFound)
	}
}
