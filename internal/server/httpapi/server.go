// Package httpapi exposes the account and catalog routes over HTTP and
// guards the protected ones with the cookie session gate.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/merchkeeper/internal/logging"
	"github.com/dmitrijs2005/merchkeeper/internal/server/catalog"
	"github.com/dmitrijs2005/merchkeeper/internal/server/users"
	"github.com/go-chi/chi/v5"
)

type HTTPServer struct {
	address      string
	users        *users.Service
	catalog      *catalog.Service
	logger       logging.Logger
	authn        *Authenticator
	cookieSecure bool
}

func NewHTTPServer(a string, l logging.Logger, us *users.Service, cs *catalog.Service, secretKey string, cookieSecure bool) *HTTPServer {
	return &HTTPServer{
		address:      a,
		logger:       l.With("module", "http_server"),
		users:        us,
		catalog:      cs,
		authn:        NewAuthenticator([]byte(secretKey), loginPagePath),
		cookieSecure: cookieSecure,
	}
}

// Routes assembles the router. Page routes reject with a redirect to the
// login form; the JSON API rejects with a plain 401.
func (s *HTTPServer) Routes() http.Handler {
	r := chi.NewRouter()

	// public, but logged-in visitors go straight home
	r.Group(func(r chi.Router) {
		r.Use(s.authn.RedirectIfLoggedIn(defaultLandingPath))
		r.Get("/", s.welcome)
		r.Get("/welcome", s.welcome)
		r.Get(loginPagePath, s.loginPage)
	})

	r.Get("/account/signup-page", s.signupPage)
	r.Post("/account/sign-up", s.signUp)
	r.Post("/account/login", s.logIn)
	r.Post("/account/logout", s.logOut)
	r.Get("/logout", s.logOut)

	// protected pages
	r.Group(func(r chi.Router) {
		r.Use(s.authn.Gate(RejectRedirect))
		r.Get("/home", s.home)
		r.Get("/about", s.about)
		r.Get("/contact", s.contact)
		r.Get("/items", s.itemsPage)
		r.Get("/saved", s.savedPage)
	})

	// protected JSON API
	r.Route("/api", func(r chi.Router) {
		r.Use(s.authn.Gate(RejectUnauthorized))
		r.Get("/items", s.listItems)
		r.Get("/saved", s.listSaved)
		r.Post("/saved", s.saveItems)
		r.Post("/saved/delete", s.deleteSaved)
	})

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
