package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/session"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Parse(ctx context.Context, tokenString string) (*session.Claims, error)
}

func authenticate(tokener Tokener, r *http.Request) (*session.Claims, error) {
	ctx := r.Context()
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	return tokener.Parse(ctx, tokenString)
}

// AuthMiddleware rejects API requests without a live session with 401.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authenticate(tokener, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "path", r.URL.Path, "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r.WithContext(session.WithClaims(r.Context(), claims)))
		})
	}
}

// PageAuthMiddleware redirects anonymous page requests to loginPath,
// carrying the requested path in the returnUrl query parameter.
func PageAuthMiddleware(tokener Tokener, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authenticate(tokener, r)
			if err != nil {
				target := loginPath + "?returnUrl=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(session.WithClaims(r.Context(), claims)))
		})
	}
}

// OptionalSessionMiddleware attaches the session identity when there is one
// and lets anonymous requests through.
func OptionalSessionMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, err := authenticate(tokener, r); err == nil {
				r = r.WithContext(session.WithClaims(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}
