package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/merchkeeper/internal/server/auth"
)

// SessionCookieName is the cookie carrying the session token. Expiry lives
// in the token payload, not in the cookie attributes.
const SessionCookieName = "accessToken"

type ctxKey string

const identityKey ctxKey = "identity"

// Identity is the verified claim attached to a request after the session
// gate admits it. It lives for one request and is never persisted.
type Identity struct {
	UserID   int64
	Username string
}

// IdentityFromContext returns the identity the session gate attached.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// RejectMode selects what the session gate does with an unauthenticated
// request. Page routes redirect to the login form, API routes answer 401;
// each route group picks its own mode.
type RejectMode int

const (
	// RejectUnauthorized answers 401 with a plain message.
	RejectUnauthorized RejectMode = iota

	// RejectRedirect sends the client to the login page, preserving the
	// original URL in the returnUrl query parameter.
	RejectRedirect
)

var errNoToken = errors.New("access token is missing")

// Authenticator is the session gate. It holds only the immutable signing
// secret, so verification is safe for concurrent requests.
type Authenticator struct {
	secret    []byte
	loginPath string
}

func NewAuthenticator(secret []byte, loginPath string) *Authenticator {
	return &Authenticator{secret: secret, loginPath: loginPath}
}

// Gate returns middleware that admits requests bearing a valid session token
// and rejects everything else according to mode. Admitted requests carry the
// decoded identity in their context.
func (a *Authenticator) Gate(mode RejectMode) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := a.verify(r)
			if err != nil {
				a.reject(w, r, mode, err)
				return
			}

			identity := Identity{UserID: claims.UserID, Username: claims.Username}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RedirectIfLoggedIn returns middleware that sends already-authenticated
// clients straight to target. The login and welcome pages use it.
func (a *Authenticator) RedirectIfLoggedIn(target string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := a.verify(r); err == nil {
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *Authenticator) verify(r *http.Request) (*auth.Claims, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, errNoToken
	}
	return auth.ParseToken(cookie.Value, a.secret)
}

func (a *Authenticator) reject(w http.ResponseWriter, r *http.Request, mode RejectMode, err error) {
	if mode == RejectRedirect {
		returnURL := url.QueryEscape(r.URL.RequestURI())
		http.Redirect(w, r, a.loginPath+"?returnUrl="+returnURL, http.StatusFound)
		return
	}

	msg := "Unauthorized: Invalid access token"
	if errors.Is(err, errNoToken) {
		msg = "Unauthorized: Access token is missing"
	}
	http.Error(w, msg, http.StatusUnauthorized)
}
