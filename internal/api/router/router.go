package router

import (
	"net/http"

	"github.com/5w1tchy/bookshelf/internal/api/handlers"
	"github.com/5w1tchy/bookshelf/internal/api/handlers/books"
	"github.com/5w1tchy/bookshelf/internal/api/handlers/login"
	"github.com/5w1tchy/bookshelf/internal/api/handlers/pages"
	mw "github.com/5w1tchy/bookshelf/internal/api/middlewares"
	"github.com/5w1tchy/bookshelf/internal/metrics"
	"github.com/5w1tchy/bookshelf/internal/views"
)

// Gate is the login gate as the router sees it.
type Gate interface {
	login.Gate
	mw.IdentityResolver
}

type Deps struct {
	Catalog books.Catalog
	Views   views.Renderer
	Gate    Gate
	// Metrics and DB are optional; without them /metrics and /healthz are not mounted.
	Metrics *metrics.Metrics
	DB      handlers.Pinger
	// LoginLimit wraps POST /login when set.
	LoginLimit mw.Middleware
}

// Router mounts every page route. Session identity is resolved before dispatch;
// GET forms redirect anonymous callers to /login, state-changing POSTs answer 403.
func Router(d Deps) http.Handler {
	mux := http.NewServeMux()

	pg := &pages.Handler{Views: d.Views}
	bk := &books.Handler{Store: d.Catalog, Views: d.Views}
	lg := &login.Handler{Gate: d.Gate, Views: d.Views}
	if d.Metrics != nil {
		lg.Metrics = d.Metrics
	}

	handle := func(pattern string, h http.Handler) {
		mux.Handle(pattern, d.Metrics.Instrument(pattern, h))
	}
	redirect := func(f http.HandlerFunc) http.Handler { return mw.RequireLoginRedirect(f) }
	forbid := func(f http.HandlerFunc) http.Handler { return mw.RequireLoginForbidden(f) }

	// Pages
	handle("GET /{$}", http.HandlerFunc(pg.Home))
	handle("GET /about", http.HandlerFunc(pg.About))
	handle("GET /contact", http.HandlerFunc(pg.Contact))

	// Books
	handle("GET /list", http.HandlerFunc(bk.List))
	handle("GET /book/{id}", http.HandlerFunc(bk.Detail))
	handle("GET /book/{id}/edit", redirect(bk.EditForm))
	handle("POST /book/{id}/edit", forbid(bk.Update))
	handle("POST /book/{id}/delete", forbid(bk.Delete))
	handle("GET /add", redirect(bk.AddForm))
	handle("POST /add", forbid(bk.Create))

	// Session
	handle("GET /login", http.HandlerFunc(lg.Form))
	var loginPost http.Handler = http.HandlerFunc(lg.Login)
	if d.LoginLimit != nil {
		loginPost = d.LoginLimit(loginPost)
	}
	handle("POST /login", loginPost)
	handle("GET /logout", http.HandlerFunc(lg.Logout))

	// Ops
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics.Handler())
	}
	if d.DB != nil {
		mux.Handle("GET /healthz", handlers.Health(d.DB))
	}

	return mw.Session(d.Gate)(mux)
}
