package handler

import (
	"net/http"
)

// Middleware wraps a handler
type Middleware func(http.Handler) http.Handler

// ContentRoutes is implemented by every ContentHandler regardless of kind
type ContentRoutes interface {
	Collection() string
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	AdminGet(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// Router holds everything needed to build the HTTP routes
type Router struct {
	Site    *SiteHandler
	Auth    *AuthHandler
	Import  *ImportHandler
	Content []ContentRoutes

	// RateLimit wraps every admin route, including login.
	RateLimit Middleware
	// RequireAdmin wraps every admin route except login and logout.
	RequireAdmin Middleware
}

// Handler registers every route on a new ServeMux
func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	limited := rt.RateLimit
	if limited == nil {
		limited = passThrough
	}
	protected := rt.RequireAdmin
	if protected == nil {
		protected = passThrough
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return limited(protected(h))
	}

	// Public
	mux.HandleFunc("GET /health", rt.Site.HealthCheck)
	mux.HandleFunc("GET /api/tags", rt.Site.Tags)
	mux.HandleFunc("GET /sitemap.xml", rt.Site.Sitemap)

	// Session
	mux.Handle("POST /api/admin/login", limited(http.HandlerFunc(rt.Auth.Login)))
	mux.Handle("POST /api/admin/logout", limited(http.HandlerFunc(rt.Auth.Logout)))

	for _, c := range rt.Content {
		public := "/api/" + c.Collection()
		private := "/api/admin/" + c.Collection()

		mux.HandleFunc("GET "+public, c.List)
		mux.HandleFunc("GET "+public+"/{slug}", c.Get)

		mux.Handle("GET "+private, admin(c.List))
		mux.Handle("GET "+private+"/{slug}", admin(c.AdminGet))
		mux.Handle("POST "+private, admin(c.Create))
		mux.Handle("PUT "+private, admin(c.Update))
		mux.Handle("PUT "+private+"/{slug}", admin(c.Update))
		mux.Handle("DELETE "+private, admin(c.Delete))
		mux.Handle("DELETE "+private+"/{slug}", admin(c.Delete))
	}

	if rt.Import != nil {
		mux.Handle("POST /api/admin/import/{kind}", admin(rt.Import.Import))
	}

	return mux
}

func passThrough(next http.Handler) http.Handler {
	return next
}
