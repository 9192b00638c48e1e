package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/metrics"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/session"
)

// Accounts is the part of UserService the auth flow relies on.
type Accounts interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
}

// SessionIssuer issues and revokes session tokens.
type SessionIssuer interface {
	Issue(ctx context.Context, u *models.User) (string, *session.Claims, error)
	Revoke(ctx context.Context, claims *session.Claims) error
}

// Session is the outcome of a successful login or registration.
type Session struct {
	User   *models.User
	Token  string
	Claims *session.Claims
}

// AuthService handles login, registration and logout.
type AuthService struct {
	accounts Accounts
	sessions SessionIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(accounts Accounts, sessions SessionIssuer) *AuthService {
	return &AuthService{
		accounts: accounts,
		sessions: sessions,
	}
}

// Login verifies the credentials, records the login time and issues a session.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := svc.accounts.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			metrics.RecordLogin("invalid")
		} else {
			metrics.RecordLogin("error")
		}
		return nil, err
	}

	if err := svc.accounts.UpdateLastLogin(ctx, user.ID); err != nil {
		metrics.RecordLogin("error")
		return nil, err
	}

	s, err := svc.issue(ctx, user)
	if err != nil {
		metrics.RecordLogin("error")
		return nil, err
	}
	metrics.RecordLogin("success")
	return s, nil
}

// Register creates the account and signs the new user in.
func (svc *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*Session, error) {
	user, err := svc.accounts.Create(ctx, models.CreateUserRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, err
	}
	return svc.issue(ctx, user)
}

// Logout revokes the session. Without a session it does nothing.
func (svc *AuthService) Logout(ctx context.Context, claims *session.Claims) error {
	if claims == nil {
		return nil
	}
	if err := svc.sessions.Revoke(ctx, claims); err != nil {
		logger.Log.Errorw("failed to revoke session", "user_id", claims.UserID, "err", err)
		return err
	}
	return nil
}

func (svc *AuthService) issue(ctx context.Context, user *models.User) (*Session, error) {
	token, claims, err := svc.sessions.Issue(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to issue session", "user_id", user.ID, "err", err)
		return nil, err
	}
	return &Session{User: user, Token: token, Claims: claims}, nil
}
