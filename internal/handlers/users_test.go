package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	if s, ok := v.(string); ok {
		return bytes.NewReader([]byte(s))
	}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserLister(ctrl)
	r := chi.NewRouter()
	RegisterListUsersHandler(r, NewListUsersHandler(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().GetAll(gomock.Any()).Return([]models.User{{ID: 1, Email: "a@x.com", PasswordHash: "secret-hash"}}, nil)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "a@x.com")
		assert.NotContains(t, rr.Body.String(), "secret-hash")
	})

	t.Run("empty list is an array", func(t *testing.T) {
		mockSvc.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}

func TestActiveUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockActiveUserLister(ctrl)
	mockGetter := NewMockUserGetter(ctrl)
	r := chi.NewRouter()
	RegisterActiveUsersHandler(r, NewActiveUsersHandler(mockSvc))
	RegisterGetUserHandler(r, NewGetUserHandler(mockGetter))

	mockSvc.EXPECT().GetActive(gomock.Any()).Return([]models.User{{ID: 2, IsActive: true}}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/users/active", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var users []models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 1)
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserGetter(ctrl)
	r := chi.NewRouter()
	RegisterGetUserHandler(r, NewGetUserHandler(mockSvc))

	tests := []struct {
		name         string
		path         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "found",
			path: "/api/users/1",
			mockSetup: func() {
				mockSvc.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/users/2",
			mockSetup: func() {
				mockSvc.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad id",
			path:         "/api/users/abc",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserCreator(ctrl)
	r := chi.NewRouter()
	RegisterCreateUserHandler(r, NewCreateUserHandler(mockSvc))

	valid := models.CreateUserRequest{Email: "a@x.com", Password: "pw1", FirstName: "A", LastName: "X"}

	tests := []struct {
		name         string
		body         any
		mockSetup    func()
		expectedCode int
		location     string
		bodyContains string
	}{
		{
			name: "created",
			body: valid,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), valid).
					Return(&models.User{ID: 12, Email: "a@x.com", IsActive: true}, nil)
			},
			expectedCode: http.StatusCreated,
			location:     "/api/users/12",
			bodyContains: `"isActive":true`,
		},
		{
			name:         "invalid JSON",
			body:         "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			bodyContains: "invalid request body",
		},
		{
			name:         "validation failure",
			body:         models.CreateUserRequest{Email: "nope", Password: "pw", FirstName: "A", LastName: "X"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			bodyContains: `"email":"must be a valid email address"`,
		},
		{
			name: "duplicate email",
			body: valid,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), valid).Return(nil, services.ErrEmailExists)
			},
			expectedCode: http.StatusBadRequest,
			bodyContains: "Email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/users", jsonBody(t, tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.location, rr.Header().Get("Location"))
			assert.Contains(t, rr.Body.String(), tt.bodyContains)
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserUpdater(ctrl)
	r := chi.NewRouter()
	RegisterUpdateUserHandler(r, NewUpdateUserHandler(mockSvc))

	req := models.UpdateUserRequest{ID: 3, Email: "c@x.com", FirstName: "C", LastName: "X"}

	tests := []struct {
		name         string
		path         string
		body         any
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "updated",
			path: "/api/users/3",
			body: req,
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), req).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "id mismatch",
			path:         "/api/users/4",
			body:         req,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			path: "/api/users/3",
			body: req,
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), req).Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "email taken",
			path: "/api/users/3",
			body: req,
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), req).Return(services.ErrEmailExists)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, tt.path, jsonBody(t, tt.body)))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserDeleter(ctrl)
	r := chi.NewRouter()
	RegisterDeleteUserHandler(r, NewDeleteUserHandler(mockSvc))

	mockSvc.EXPECT().Delete(gomock.Any(), int64(404)).Return(nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/users/404", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestAuthenticateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCredentialsChecker(ctrl)
	r := chi.NewRouter()
	RegisterAuthenticateHandler(r, NewAuthenticateHandler(mockSvc))

	t.Run("success", func(t *testing.T) {
		user := &models.User{ID: 1, Email: "a@x.com", FirstName: "A", LastName: "X", IsActive: true}
		mockSvc.EXPECT().Authenticate(gomock.Any(), "a@x.com", "pw1").Return(user, nil)
		mockSvc.EXPECT().UpdateLastLogin(gomock.Any(), int64(1)).Return(nil)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/users/authenticate",
			jsonBody(t, models.LoginRequest{Email: "a@x.com", Password: "pw1"})))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"message": "Authentication successful",
			"user": {"id": 1, "email": "a@x.com", "firstName": "A", "lastName": "X"}
		}`, rr.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		mockSvc.EXPECT().Authenticate(gomock.Any(), "a@x.com", "pw2").Return(nil, services.ErrInvalidCredentials)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/users/authenticate",
			jsonBody(t, models.LoginRequest{Email: "a@x.com", Password: "pw2"})))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, rr.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/users/authenticate", jsonBody(t, `{}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
