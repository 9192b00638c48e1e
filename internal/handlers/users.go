package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/services"
)

// UserLister lists users.
type UserLister interface {
	GetAll(ctx context.Context) ([]models.User, error)
}

// ActiveUserLister lists users allowed to sign in.
type ActiveUserLister interface {
	GetActive(ctx context.Context) ([]models.User, error)
}

// UserGetter loads one user.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// UserCreator creates users.
type UserCreator interface {
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
}

// UserUpdater updates users.
type UserUpdater interface {
	Update(ctx context.Context, req models.UpdateUserRequest) error
}

// UserDeleter deletes users.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// CredentialsChecker verifies credentials without issuing a session.
type CredentialsChecker interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// NewListUsersHandler returns all users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /api/users [get]
// @Security Session
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.GetAll(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if users == nil {
			users = []models.User{}
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// RegisterListUsersHandler registers GET /api/users.
func RegisterListUsersHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/users", h)
}

// NewActiveUsersHandler returns the active users.
// @Summary List active users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /api/users/active [get]
// @Security Session
func NewActiveUsersHandler(svc ActiveUserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.GetActive(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if users == nil {
			users = []models.User{}
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// RegisterActiveUsersHandler registers GET /api/users/active.
func RegisterActiveUsersHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/users/active", h)
}

// NewGetUserHandler returns one user.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{id} [get]
// @Security Session
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if user == nil {
			writeError(w, http.StatusNotFound, services.ErrUserNotFound.Error())
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// RegisterGetUserHandler registers GET /api/users/{id}.
func RegisterGetUserHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/users/{id}", h)
}

// NewCreateUserHandler creates a user.
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "User"
// @Success 201 {object} models.User
// @Header 201 {string} Location "/api/users/{id}"
// @Failure 400 {object} models.ErrorResponse
// @Router /api/users [post]
// @Security Session
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateUserRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := svc.Create(r.Context(), req)
		switch {
		case errors.Is(err, services.ErrEmailExists):
			writeError(w, http.StatusBadRequest, "Email already exists")
			return
		case err != nil:
			writeInternalError(w, err)
			return
		}

		w.Header().Set("Location", "/api/users/"+strconv.FormatInt(user.ID, 10))
		writeJSON(w, http.StatusCreated, user)
	}
}

// RegisterCreateUserHandler registers POST /api/users.
func RegisterCreateUserHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/users", h)
}

// NewUpdateUserHandler updates a user. The body id must match the path id.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.UpdateUserRequest true "User"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/users/{id} [put]
// @Security Session
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req models.UpdateUserRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		if req.ID != id {
			writeError(w, http.StatusBadRequest, "id mismatch")
			return
		}

		err = svc.Update(r.Context(), req)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrEmailExists):
			writeError(w, http.StatusBadRequest, "Email already exists")
		case err != nil:
			writeInternalError(w, err)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

// RegisterUpdateUserHandler registers PUT /api/users/{id}.
func RegisterUpdateUserHandler(r chi.Router, h http.HandlerFunc) {
	r.Put("/api/users/{id}", h)
}

// NewDeleteUserHandler deletes a user; a missing id still returns 204.
// @Summary Delete user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Router /api/users/{id} [delete]
// @Security Session
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeInternalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterDeleteUserHandler registers DELETE /api/users/{id}.
func RegisterDeleteUserHandler(r chi.Router, h http.HandlerFunc) {
	r.Delete("/api/users/{id}", h)
}

// NewAuthenticateHandler checks credentials and records the login time.
// It does not start a session.
// @Summary Authenticate user
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthenticateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 429 {string} string "Too Many Requests"
// @Router /api/users/authenticate [post]
func NewAuthenticateHandler(svc CredentialsChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		case err != nil:
			writeInternalError(w, err)
			return
		}

		if err := svc.UpdateLastLogin(r.Context(), user.ID); err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.AuthenticateResponse{
			Message: "Authentication successful",
			User:    models.NewUserSummary(user),
		})
	}
}

// RegisterAuthenticateHandler registers POST /api/users/authenticate.
func RegisterAuthenticateHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/users/authenticate", h)
}
