package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-company-portal/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &session.Claims{UserID: 7, Email: "a@x.com"}

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", session.ErrNoToken)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().Parse(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "RevokedToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("revoked", nil)
				m.EXPECT().Parse(gomock.Any(), "revoked").
					Return(nil, session.ErrRevoked)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().Parse(gomock.Any(), "validtoken").
					Return(claims, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := session.FromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, int64(7), got.UserID)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if !tt.expectNextCalled {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
			}
		})
	}
}

func TestPageAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("AnonymousRedirectsToLogin", func(t *testing.T) {
		m := NewMockTokener(ctrl)
		m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", session.ErrNoToken)

		nextCalled := false
		handler := PageAuthMiddleware(m, "/account/login")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		}))

		req := httptest.NewRequest(http.MethodGet, "/companies?x=1", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/account/login?returnUrl=%2Fcompanies%3Fx%3D1", rr.Header().Get("Location"))
	})

	t.Run("SignedInPassesThrough", func(t *testing.T) {
		m := NewMockTokener(ctrl)
		m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
		m.EXPECT().Parse(gomock.Any(), "tok").Return(&session.Claims{UserID: 3}, nil)

		handler := PageAuthMiddleware(m, "/account/login")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := session.FromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, int64(3), claims.UserID)
			w.WriteHeader(http.StatusTeapot)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/companies", nil))
		assert.Equal(t, http.StatusTeapot, rr.Code)
	})
}

func TestOptionalSessionMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Anonymous", func(t *testing.T) {
		m := NewMockTokener(ctrl)
		m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", session.ErrNoToken)

		handler := OptionalSessionMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := session.FromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("SignedIn", func(t *testing.T) {
		m := NewMockTokener(ctrl)
		m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil)
		m.EXPECT().Parse(gomock.Any(), "tok").Return(&session.Claims{UserID: 9}, nil)

		handler := OptionalSessionMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := session.FromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, int64(9), claims.UserID)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
