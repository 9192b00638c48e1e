package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/services"
	"github.com/sbilibin2017/gw-company-portal/internal/session"
	"github.com/sbilibin2017/gw-company-portal/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passThrough(next http.Handler) http.Handler { return next }

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// captureRender records the last Render call of a MockRenderer.
type captureRender struct {
	status int
	name   string
	data   views.Data
}

func (c *captureRender) do(w http.ResponseWriter, status int, name string, data interface{}) {
	c.status = status
	c.name = name
	if d, ok := data.(views.Data); ok {
		c.data = d
	}
	w.WriteHeader(status)
}

func TestIsLocalURL(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"/", true},
		{"/companies", true},
		{"/companies?x=1#top", true},
		{"", false},
		{"companies", false},
		{"//evil.com", false},
		{"/\\evil.com", false},
		{"https://evil.com/companies", false},
		{"javascript:alert(1)", false},
		{"/foo\nbar", false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLocalURL(tt.target))
		})
	}

	assert.Equal(t, "/companies", SafeRedirectTarget("/companies"))
	assert.Equal(t, DefaultLandingPath, SafeRedirectTarget("//evil.com"))
}

func TestLoginSubmitHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockAuthenticator(ctrl)
	cookies := NewMockSessionCookies(ctrl)
	renderer := NewMockRenderer(ctrl)

	r := chi.NewRouter()
	RegisterAccountHandlers(r, NewAccountHandlers(svc, cookies, renderer), passThrough)

	sess := &services.Session{
		User:   &models.User{ID: 1, Email: "a@x.com"},
		Token:  "tok",
		Claims: &session.Claims{UserID: 1},
	}

	t.Run("success with remember me and local returnUrl", func(t *testing.T) {
		svc.EXPECT().Login(gomock.Any(), "a@x.com", "pw1").Return(sess, nil)
		cookies.EXPECT().SetCookie(gomock.Any(), "tok", sess.Claims, true)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, formRequest(http.MethodPost, "/account/login", url.Values{
			"email":      {" a@x.com "},
			"password":   {"pw1"},
			"rememberMe": {"true"},
			"returnUrl":  {"/companies"},
		}))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/companies", rr.Header().Get("Location"))
	})

	t.Run("foreign returnUrl lands on home", func(t *testing.T) {
		svc.EXPECT().Login(gomock.Any(), "a@x.com", "pw1").Return(sess, nil)
		cookies.EXPECT().SetCookie(gomock.Any(), "tok", sess.Claims, false)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, formRequest(http.MethodPost, "/account/login", url.Values{
			"email":     {"a@x.com"},
			"password":  {"pw1"},
			"returnUrl": {"https://evil.com"},
		}))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("invalid credentials re-render the form", func(t *testing.T) {
		var got captureRender
		svc.EXPECT().Login(gomock.Any(), "a@x.com", "pw2").Return(nil, services.ErrInvalidCredentials)
		renderer.EXPECT().Render(gomock.Any(), http.StatusOK, views.Login, gomock.Any()).Do(got.do)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, formRequest(http.MethodPost, "/account/login", url.Values{
			"email":    {"a@x.com"},
			"password": {"pw2"},
		}))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Invalid login attempt.", got.data.Error)
		form, ok := got.data.Form.(models.LoginRequest)
		require.True(t, ok)
		assert.Equal(t, "a@x.com", form.Email)
	})

	t.Run("missing fields skip the service", func(t *testing.T) {
		var got captureRender
		renderer.EXPECT().Render(gomock.Any(), http.StatusOK, views.Login, gomock.Any()).Do(got.do)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, formRequest(http.MethodPost, "/account/login", url.Values{"email": {"a@x.com"}}))

		assert.Equal(t, "is required", got.data.Errors["password"])
	})

	t.Run("service failure", func(t *testing.T) {
		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, formRequest(http.MethodPost, "/account/login", url.Values{
			"email":    {"a@x.com"},
			"password": {"pw1"},
		}))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestLoginPageHandler_ReturnURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := NewMockRenderer(ctrl)
	h := NewLoginPageHandler(renderer)

	var got captureRender
	renderer.EXPECT().Render(gomock.Any(), http.StatusOK, views.Login, gomock.Any()).Do(got.do)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/account/login?returnUrl=%2Fcompanies", nil))
	assert.Equal(t, "/companies", got.data.ReturnURL)

	renderer.EXPECT().Render(gomock.Any(), http.StatusOK, views.Login, gomock.Any()).Do(got.do)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/account/login?returnUrl=%2F%2Fevil.com", nil))
	assert.Empty(t, got.data.ReturnURL)
}

func TestRegisterSubmitHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockAuthenticator(ctrl)
	cookies := NewMockSessionCookies(ctrl)
	renderer := NewMockRenderer(ctrl)
	h := NewRegisterSubmitHandler(svc, cookies, renderer)

	form := url.Values{
		"email":           {"new@x.com"},
		"password":        {"pw1"},
		"confirmPassword": {"pw1"},
		"firstName":       {"New"},
		"lastName":        {"User"},
	}
	req := models.RegisterRequest{
		Email: "new@x.com", Password: "pw1", ConfirmPassword: "pw1", FirstName: "New", LastName: "User",
	}

	t.Run("registers and signs in", func(t *testing.T) {
		sess := &services.Session{Token: "tok", Claims: &session.Claims{UserID: 5}}
		svc.EXPECT().Register(gomock.Any(), req).Return(sess, nil)
		cookies.EXPECT().SetCookie(gomock.Any(), "tok", sess.Claims, false)

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, formRequest(http.MethodPost, "/account/register", form))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		var got captureRender
		svc.EXPECT().Register(gomock.Any(), req).Return(nil, services.ErrEmailExists)
		renderer.EXPECT().Render(gomock.Any(), http.StatusOK, views.Register, gomock.Any()).Do(got.do)

		h.ServeHTTP(httptest.NewRecorder(), formRequest(http.MethodPost, "/account/register", form))

		assert.Equal(t, map[string]string{"email": "Email already exists"}, got.data.Errors)
	})

	t.Run("password confirmation mismatch", func(t *testing.T) {
		var got captureRender
		renderer.EXPECT().Render(gomock.Any(), http.StatusOK, views.Register, gomock.Any()).Do(got.do)

		bad := url.Values{}
		for k, v := range form {
			bad[k] = v
		}
		bad.Set("confirmPassword", "other")
		h.ServeHTTP(httptest.NewRecorder(), formRequest(http.MethodPost, "/account/register", bad))

		assert.Contains(t, got.data.Errors, "confirmPassword")
	})
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockAuthenticator(ctrl)
	cookies := NewMockSessionCookies(ctrl)
	h := NewLogoutHandler(svc, cookies)

	claims := &session.Claims{UserID: 1}
	svc.EXPECT().Logout(gomock.Any(), claims).Return(errors.New("redis down"))
	cookies.EXPECT().ClearCookie(gomock.Any())

	req := httptest.NewRequest(http.MethodPost, "/account/logout", nil)
	req = req.WithContext(session.WithClaims(req.Context(), claims))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestAccountPages_RealTemplates(t *testing.T) {
	renderer, err := views.New()
	require.NoError(t, err)

	r := chi.NewRouter()
	RegisterAccountHandlers(r, NewAccountHandlers(nil, nil, renderer), passThrough)

	tests := []struct {
		path         string
		expectedCode int
	}{
		{"/", http.StatusOK},
		{"/account/login", http.StatusOK},
		{"/account/register", http.StatusOK},
		{"/account/access-denied", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
		})
	}
}
