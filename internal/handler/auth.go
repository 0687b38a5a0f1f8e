package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
	"github.com/nobijoy/hedge-fund-app/internal/service"
)

// AuthHandler serves the login screen and the session endpoints.
type AuthHandler struct {
	auth         *service.AuthService
	renderer     *Renderer
	cookieSecure bool
}

func NewAuthHandler(auth *service.AuthService, renderer *Renderer, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, renderer: renderer, cookieSecure: cookieSecure}
}

type loginView struct {
	Email string
	Error string
}

// HandleLoginPage shows the login form. Authenticated visitors are sent
// straight to the dashboard.
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if AdminFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderer.Render(w, http.StatusOK, "login.html", loginView{})
}

// HandleLogin verifies credentials and establishes a session cookie.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.Render(w, http.StatusBadRequest, "login.html", loginView{Error: "Invalid form submission."})
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	token, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.renderer.Render(w, http.StatusUnauthorized, "login.html", loginView{
				Email: email,
				Error: "Invalid email or password.",
			})
			return
		}
		slog.Error("login failed", "error", err)
		h.renderer.Render(w, http.StatusInternalServerError, "login.html", loginView{
			Email: email,
			Error: "Something went wrong. Please try again.",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout clears the session cookie.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
