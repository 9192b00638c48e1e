package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/repositories"
)

// Error variables
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid login attempt")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailAndPasswordHash(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetActive(ctx context.Context) ([]models.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
	Deterministic() bool
}

// UserService manages user accounts and verifies credentials.
type UserService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	now    func() time.Time
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, hasher PasswordHasher) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		now:    time.Now,
	}
}

// GetByID returns the user or nil when there is none.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	return user, nil
}

// GetByEmail returns the user or nil when there is none.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "err", err)
		return nil, err
	}
	return user, nil
}

// GetAll returns every user.
func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// GetActive returns the users allowed to sign in.
func (s *UserService) GetActive(ctx context.Context) ([]models.User, error) {
	users, err := s.reader.GetActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list active users", "err", err)
		return nil, err
	}
	return users, nil
}

// Exists reports whether a user with the id exists.
func (s *UserService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.reader.ExistsByID(ctx, id)
}

// EmailExists reports whether the email is taken.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.reader.EmailExists(ctx, email)
}

// Create hashes the password and stores a new active user.
func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	exists, err := s.reader.EmailExists(ctx, req.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, err
	}
	if exists {
		logger.Log.Infow("email already exists", "email", req.Email)
		return nil, ErrEmailExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := s.writer.Create(ctx, &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CreatedAt:    s.now().UTC(),
		IsActive:     true,
	})
	if errors.Is(err, repositories.ErrConflict) {
		return nil, ErrEmailExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", req.Email, "err", err)
		return nil, err
	}
	return user, nil
}

// Update replaces the mutable fields of an existing user. An empty password
// keeps the stored hash and a nil IsActive keeps the flag.
func (s *UserService) Update(ctx context.Context, req models.UpdateUserRequest) error {
	existing, err := s.reader.GetByID(ctx, req.ID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", req.ID, "err", err)
		return err
	}
	if existing == nil {
		return ErrUserNotFound
	}

	if req.Email != existing.Email {
		exists, err := s.reader.EmailExists(ctx, req.Email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "err", err)
			return err
		}
		if exists {
			return ErrEmailExists
		}
	}

	updated := *existing
	updated.Email = req.Email
	updated.FirstName = req.FirstName
	updated.LastName = req.LastName
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return err
		}
		updated.PasswordHash = hash
	}

	err = s.writer.Update(ctx, &updated)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, repositories.ErrConflict):
		return ErrEmailExists
	case err != nil:
		logger.Log.Errorw("failed to update user", "id", req.ID, "err", err)
		return err
	}
	return nil
}

// Delete removes the user; a missing id is not an error.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	return nil
}

// Authenticate returns the active user matching the credentials or
// ErrInvalidCredentials. The error never tells which credential was wrong.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user *models.User
	if s.hasher.Deterministic() {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		user, err = s.reader.GetByEmailAndPasswordHash(ctx, email, hash)
		if err != nil {
			logger.Log.Errorw("failed to look up credentials", "err", err)
			return nil, err
		}
	} else {
		found, err := s.reader.GetByEmail(ctx, email)
		if err != nil {
			logger.Log.Errorw("failed to look up credentials", "err", err)
			return nil, err
		}
		if found != nil && found.IsActive && s.hasher.Compare(found.PasswordHash, password) == nil {
			user = found
		}
	}

	if user == nil || !user.IsActive {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpdateLastLogin stamps the current time on the user.
func (s *UserService) UpdateLastLogin(ctx context.Context, id int64) error {
	if err := s.writer.UpdateLastLogin(ctx, id, s.now().UTC()); err != nil {
		logger.Log.Errorw("failed to update last login", "id", id, "err", err)
		return err
	}
	return nil
}
