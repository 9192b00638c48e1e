package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/services"
	"github.com/sbilibin2017/gw-company-portal/internal/session"
	"github.com/sbilibin2017/gw-company-portal/internal/validation"
	"github.com/sbilibin2017/gw-company-portal/internal/views"
)

// DefaultLandingPath is where sign-in ends when no safe returnUrl is given.
const DefaultLandingPath = "/"

// Renderer renders server-side pages.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any)
}

// Authenticator runs the sign-in flows of the page surface.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) (*services.Session, error)
	Logout(ctx context.Context, claims *session.Claims) error
}

// SessionCookies writes and clears the session cookie.
type SessionCookies interface {
	SetCookie(w http.ResponseWriter, token string, claims *session.Claims, persistent bool)
	ClearCookie(w http.ResponseWriter)
}

// IsLocalURL reports whether target is a same-origin relative path that is
// safe to redirect to.
func IsLocalURL(target string) bool {
	if target == "" || target[0] != '/' {
		return false
	}
	// "//host" and "/\host" are scheme-relative for browsers
	if len(target) > 1 && (target[1] == '/' || target[1] == '\\') {
		return false
	}
	if strings.ContainsAny(target, "\r\n\t") {
		return false
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return false
	}
	return true
}

// SafeRedirectTarget returns target when it is local, else DefaultLandingPath.
func SafeRedirectTarget(target string) string {
	if IsLocalURL(target) {
		return target
	}
	return DefaultLandingPath
}

func pageData(r *http.Request, title string) views.Data {
	claims, _ := session.FromContext(r.Context())
	return views.Data{Title: title, User: claims}
}

// NewHomePageHandler renders the landing page.
func NewHomePageHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusOK, views.Home, pageData(r, "Home"))
	}
}

// NewLoginPageHandler renders the login form.
func NewLoginPageHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData(r, "Log in")
		if rt := r.URL.Query().Get("returnUrl"); IsLocalURL(rt) {
			data.ReturnURL = rt
		}
		renderer.Render(w, http.StatusOK, views.Login, data)
	}
}

// NewLoginSubmitHandler signs the user in and redirects to the returnUrl
// when it is local. Failures never tell which credential was wrong.
func NewLoginSubmitHandler(svc Authenticator, cookies SessionCookies, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		req := models.LoginRequest{
			Email:      strings.TrimSpace(r.PostFormValue("email")),
			Password:   r.PostFormValue("password"),
			RememberMe: r.PostFormValue("rememberMe") == "true",
		}
		data := pageData(r, "Log in")
		data.Form = req
		if rt := r.PostFormValue("returnUrl"); IsLocalURL(rt) {
			data.ReturnURL = rt
		}

		if err := validation.Struct(req); err != nil {
			data.Errors = fieldErrors(err)
			renderer.Render(w, http.StatusOK, views.Login, data)
			return
		}

		s, err := svc.Login(r.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			data.Error = "Invalid login attempt."
			renderer.Render(w, http.StatusOK, views.Login, data)
			return
		case err != nil:
			logger.Log.Errorw("login failed", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		cookies.SetCookie(w, s.Token, s.Claims, req.RememberMe)
		http.Redirect(w, r, SafeRedirectTarget(data.ReturnURL), http.StatusFound)
	}
}

// NewRegisterPageHandler renders the registration form.
func NewRegisterPageHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusOK, views.Register, pageData(r, "Register"))
	}
}

// NewRegisterSubmitHandler creates the account and signs the new user in.
func NewRegisterSubmitHandler(svc Authenticator, cookies SessionCookies, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		req := models.RegisterRequest{
			Email:           strings.TrimSpace(r.PostFormValue("email")),
			Password:        r.PostFormValue("password"),
			ConfirmPassword: r.PostFormValue("confirmPassword"),
			FirstName:       strings.TrimSpace(r.PostFormValue("firstName")),
			LastName:        strings.TrimSpace(r.PostFormValue("lastName")),
		}
		data := pageData(r, "Register")
		data.Form = req

		if err := validation.Struct(req); err != nil {
			data.Errors = fieldErrors(err)
			renderer.Render(w, http.StatusOK, views.Register, data)
			return
		}

		s, err := svc.Register(r.Context(), req)
		switch {
		case errors.Is(err, services.ErrEmailExists):
			data.Errors = map[string]string{"email": "Email already exists"}
			renderer.Render(w, http.StatusOK, views.Register, data)
			return
		case err != nil:
			logger.Log.Errorw("registration failed", "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		cookies.SetCookie(w, s.Token, s.Claims, false)
		http.Redirect(w, r, DefaultLandingPath, http.StatusFound)
	}
}

// NewLogoutHandler revokes the current session and clears the cookie.
func NewLogoutHandler(svc Authenticator, cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := session.FromContext(r.Context())
		if err := svc.Logout(r.Context(), claims); err != nil {
			logger.Log.Errorw("logout failed", "err", err)
		}
		cookies.ClearCookie(w)
		http.Redirect(w, r, DefaultLandingPath, http.StatusFound)
	}
}

// NewAccessDeniedHandler renders the access denied page.
func NewAccessDeniedHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusForbidden, views.AccessDenied, pageData(r, "Access denied"))
	}
}

// AccountHandlers groups the account pages for registration.
type AccountHandlers struct {
	Home, LoginPage, LoginSubmit, RegisterPage, RegisterSubmit, Logout, AccessDenied http.HandlerFunc
}

// NewAccountHandlers builds every account page.
func NewAccountHandlers(svc Authenticator, cookies SessionCookies, renderer Renderer) AccountHandlers {
	return AccountHandlers{
		Home:           NewHomePageHandler(renderer),
		LoginPage:      NewLoginPageHandler(renderer),
		LoginSubmit:    NewLoginSubmitHandler(svc, cookies, renderer),
		RegisterPage:   NewRegisterPageHandler(renderer),
		RegisterSubmit: NewRegisterSubmitHandler(svc, cookies, renderer),
		Logout:         NewLogoutHandler(svc, cookies),
		AccessDenied:   NewAccessDeniedHandler(renderer),
	}
}

// RegisterAccountHandlers registers the public account pages. loginLimiter
// wraps the login POST.
func RegisterAccountHandlers(r chi.Router, h AccountHandlers, loginLimiter func(http.Handler) http.Handler) {
	r.Get("/", h.Home)
	r.Get("/account/login", h.LoginPage)
	r.With(loginLimiter).Post("/account/login", h.LoginSubmit)
	r.Get("/account/register", h.RegisterPage)
	r.Post("/account/register", h.RegisterSubmit)
	r.Post("/account/logout", h.Logout)
	r.Get("/account/access-denied", h.AccessDenied)
}

func fieldErrors(err error) map[string]string {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	return map[string]string{"": err.Error()}
}
