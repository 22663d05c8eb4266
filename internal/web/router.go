package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is the interface handlers use to declare routes.
type Router interface {
	// POST registers a handler for POST requests.
	POST(path string, h HandlerFunc)

	// Handle attaches an http.Handler to an exact pattern for all methods.
	Handle(pattern string, h http.Handler)
}

// routerAdapter wraps chi.Router to implement the Router interface.
type routerAdapter struct {
	router chi.Router
	app    *App
}

func (r *routerAdapter) POST(path string, h HandlerFunc) {
	r.router.Post(path, r.app.wrapHandler(h))
}

func (r *routerAdapter) Handle(pattern string, h http.Handler) {
	r.router.Handle(pattern, h)
}

// adaptMiddleware converts a Middleware to chi middleware.
// The request seen by next carries any values the middleware stored with Set.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextFunc := func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			}
			c := newContext(w, r, a)
			if err := mw(nextFunc)(c); err != nil {
				a.handleError(c, err)
			}
		})
	}
}
