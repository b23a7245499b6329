package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/merchkeeper/internal/common"
	"github.com/dmitrijs2005/merchkeeper/internal/server/catalog"
)

const (
	loginPagePath      = "/account/login-page"
	defaultLandingPath = "/home"
)

// resolveReturnPath validates the post-login destination. Only same-site
// paths are accepted; anything else falls back to the default landing page.
func resolveReturnPath(raw string) string {
	if raw == "" {
		return defaultLandingPath
	}
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return defaultLandingPath
	}
	if _, err := url.Parse(raw); err != nil {
		return defaultLandingPath
	}
	return raw
}

func (s *HTTPServer) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   s.cookieSecure,
	})
}

func (s *HTTPServer) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   s.cookieSecure,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// --- account handlers ---

func (s *HTTPServer) signUp(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := s.users.SignUp(r.Context(), username, password)
	switch {
	case err == nil:
		http.Redirect(w, r, loginPagePath, http.StatusSeeOther)
	case errors.Is(err, common.ErrorValidation):
		http.Error(w, "Username and password are required", http.StatusBadRequest)
	case errors.Is(err, common.ErrLoginAlreadyExists):
		http.Error(w, "Username already exists! Go to "+loginPagePath+" to login", http.StatusBadRequest)
	default:
		s.logger.Error(r.Context(), "signup failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (s *HTTPServer) logIn(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	returnURL := r.PostFormValue("returnUrl")

	token, err := s.users.LogIn(r.Context(), username, password)
	switch {
	case err == nil:
		s.setSessionCookie(w, token)
		http.Redirect(w, r, resolveReturnPath(returnURL), http.StatusFound)
	case errors.Is(err, common.ErrInvalidLoginPassword):
		http.Error(w, "Invalid username or password", http.StatusBadRequest)
	default:
		s.logger.Error(r.Context(), "login failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (s *HTTPServer) logOut(w http.ResponseWriter, r *http.Request) {
	// Stateless tokens: clearing the carrier is all there is to do.
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/welcome", http.StatusFound)
}

// --- pages ---

func (s *HTTPServer) welcome(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "<h1>Welcome!</h1><p><a href=\""+loginPagePath+"\">Log in</a> or <a href=\"/account/signup-page\">sign up</a>.</p>")
}

func (s *HTTPServer) loginPage(w http.ResponseWriter, r *http.Request) {
	returnURL := r.URL.Query().Get("returnUrl")
	fmt.Fprintf(w, `<form method="post" action="/account/login">
<input name="username" placeholder="Username">
<input name="password" type="password" placeholder="Password">
<input name="returnUrl" type="hidden" value="%s">
<button type="submit">Log in</button>
</form>`, resolveReturnPath(returnURL))
}

func (s *HTTPServer) signupPage(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, `<form method="post" action="/account/sign-up">
<input name="username" placeholder="Username">
<input name="password" type="password" placeholder="Password">
<button type="submit">Sign up</button>
</form>`)
}

func (s *HTTPServer) home(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())
	fmt.Fprintf(w, "Welcome to the home page, %s!", identity.Username)
}

func (s *HTTPServer) about(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "Welcome to the about page!")
}

func (s *HTTPServer) contact(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "Welcome to the contact page!")
}

func renderItemList(w http.ResponseWriter, title string, items []catalog.Item) {
	fmt.Fprintf(w, "<h1>%s</h1><ul>", title)
	for _, it := range items {
		fmt.Fprintf(w, `<li><a href="%s">%s</a> (%s)</li>`, it.URL, it.Description, it.Kind)
	}
	fmt.Fprint(w, "</ul>")
}

func (s *HTTPServer) itemsPage(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.ListItems(r.Context(), r.URL.Query().Get("kind"))
	if err != nil {
		s.logger.Error(r.Context(), "listing items failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	renderItemList(w, "Catalog", items)
}

func (s *HTTPServer) savedPage(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	items, err := s.catalog.ListSaved(r.Context(), identity.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "listing saved items failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	renderItemList(w, "Saved items", items)
}

// --- catalog API ---

type saveRequest struct {
	ItemIDs []int64 `json:"itemIds"`
}

func (s *HTTPServer) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.ListItems(r.Context(), r.URL.Query().Get("kind"))
	if err != nil {
		s.logger.Error(r.Context(), "listing items failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *HTTPServer) listSaved(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	items, err := s.catalog.ListSaved(r.Context(), identity.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "listing saved items failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *HTTPServer) saveItems(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid item ids provided", http.StatusBadRequest)
		return
	}

	inserted, err := s.catalog.SaveItems(r.Context(), identity.UserID, req.ItemIDs)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"inserted": inserted})
	case errors.Is(err, common.ErrorValidation):
		http.Error(w, "Invalid item ids provided", http.StatusBadRequest)
	case errors.Is(err, common.ErrorNotFound):
		http.Error(w, "No new items were inserted", http.StatusBadRequest)
	default:
		s.logger.Error(r.Context(), "saving items failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (s *HTTPServer) deleteSaved(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFromContext(r.Context())

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid item ids provided", http.StatusBadRequest)
		return
	}

	deleted, err := s.catalog.DeleteSaved(r.Context(), identity.UserID, req.ItemIDs)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"deleted": deleted})
	case errors.Is(err, common.ErrorValidation):
		http.Error(w, "Invalid item ids provided", http.StatusBadRequest)
	case errors.Is(err, common.ErrorNotFound):
		http.Error(w, "No matching records found for deletion", http.StatusNotFound)
	default:
		s.logger.Error(r.Context(), "deleting saved items failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
