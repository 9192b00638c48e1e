package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/services"
	"github.com/sbilibin2017/gw-company-portal/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompanyPagesRouter(svc CompanyPages, renderer Renderer) chi.Router {
	r := chi.NewRouter()
	RegisterCompanyPageHandlers(r, NewCompanyPageHandlers(svc, renderer), passThrough)
	return r
}

func TestCompanyPages_Read(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCompanyPages(ctrl)
	renderer, err := views.New()
	require.NoError(t, err)
	r := newCompanyPagesRouter(svc, renderer)

	desc := "Builds rockets"
	acme := &models.Company{ID: 1, Name: "Acme", Description: &desc, CreatedAt: time.Now()}

	tests := []struct {
		name         string
		path         string
		mockSetup    func()
		expectedCode int
		bodyContains string
	}{
		{
			name: "index",
			path: "/companies",
			mockSetup: func() {
				svc.EXPECT().List(gomock.Any()).Return([]models.Company{*acme}, nil)
			},
			expectedCode: http.StatusOK,
			bodyContains: "Acme",
		},
		{
			name: "details",
			path: "/companies/1",
			mockSetup: func() {
				svc.EXPECT().Get(gomock.Any(), int64(1)).Return(acme, nil)
			},
			expectedCode: http.StatusOK,
			bodyContains: "Builds rockets",
		},
		{
			name: "details missing",
			path: "/companies/2",
			mockSetup: func() {
				svc.EXPECT().Get(gomock.Any(), int64(2)).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "details bad id",
			path:         "/companies/abc",
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "details failure",
			path: "/companies/1",
			mockSetup: func() {
				svc.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "create form",
			path:         "/companies/create",
			mockSetup:    func() {},
			expectedCode: http.StatusOK,
		},
		{
			name: "edit form",
			path: "/companies/1/edit",
			mockSetup: func() {
				svc.EXPECT().Get(gomock.Any(), int64(1)).Return(acme, nil)
			},
			expectedCode: http.StatusOK,
			bodyContains: `value="Acme"`,
		},
		{
			name: "delete confirmation",
			path: "/companies/1/delete",
			mockSetup: func() {
				svc.EXPECT().Get(gomock.Any(), int64(1)).Return(acme, nil)
			},
			expectedCode: http.StatusOK,
			bodyContains: "Acme",
		},
		{
			name: "llms partial",
			path: "/companies/1/llms",
			mockSetup: func() {
				withLLMs := *acme
				withLLMs.LLMs = []models.LLM{{ID: 7, Name: "GPT-X", Specialization: "text", CompanyID: 1}}
				svc.EXPECT().GetWithLLMs(gomock.Any(), int64(1)).Return(&withLLMs, nil)
			},
			expectedCode: http.StatusOK,
			bodyContains: "GPT-X",
		},
		{
			name: "chatbots partial",
			path: "/companies/1/chatbots",
			mockSetup: func() {
				withBots := *acme
				withBots.Chatbots = []models.Chatbot{{ID: 3, Name: "Helper", CompanyID: 1}}
				svc.EXPECT().GetWithChatbots(gomock.Any(), int64(1)).Return(&withBots, nil)
			},
			expectedCode: http.StatusOK,
			bodyContains: "Helper",
		},
		{
			name: "chatbots partial missing company",
			path: "/companies/9/chatbots",
			mockSetup: func() {
				svc.EXPECT().GetWithChatbots(gomock.Any(), int64(9)).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.bodyContains)
		})
	}
}

func TestCompanyPages_CreateSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCompanyPages(ctrl)
	renderer := NewMockRenderer(ctrl)
	r := newCompanyPagesRouter(svc, renderer)

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), models.CompanyRequest{Name: "Acme"}).
			Return(&models.Company{ID: 1, Name: "Acme"}, nil)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, formRequest(http.MethodPost, "/companies/create", url.Values{
			"name": {" Acme "},
			"id":   {"77"},
		}))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/companies", rr.Header().Get("Location"))
	})

	t.Run("duplicate name", func(t *testing.T) {
		var got captureRender
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrCompanyNameExists)
		renderer.EXPECT().Render(gomock.Any(), http.StatusOK, views.CompaniesCreate, gomock.Any()).Do(got.do)

		r.ServeHTTP(httptest.NewRecorder(), formRequest(http.MethodPost, "/companies/create", url.Values{"name": {"Acme"}}))

		assert.Equal(t, "Company name already exists", got.data.Errors["name"])
	})

	t.Run("missing name", func(t *testing.T) {
		var got captureRender
		renderer.EXPECT().Render(gomock.Any(), http.StatusOK, views.CompaniesCreate, gomock.Any()).Do(got.do)

		r.ServeHTTP(httptest.NewRecorder(), formRequest(http.MethodPost, "/companies/create", url.Values{"name": {"  "}}))

		assert.Equal(t, "is required", got.data.Errors["name"])
	})
}

func TestCompanyPages_EditSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCompanyPages(ctrl)
	renderer := NewMockRenderer(ctrl)
	r := newCompanyPagesRouter(svc, renderer)

	desc := "Rockets"

	t.Run("saved", func(t *testing.T) {
		svc.EXPECT().Update(gomock.Any(), models.CompanyRequest{ID: 1, Name: "Acme", Description: &desc}).Return(nil)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, formRequest(http.MethodPost, "/companies/1/edit", url.Values{
			"id":          {"1"},
			"name":        {"Acme"},
			"description": {"Rockets"},
		}))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/companies", rr.Header().Get("Location"))
	})

	t.Run("form id differs from path", func(t *testing.T) {
		renderer.EXPECT().Render(gomock.Any(), http.StatusNotFound, views.NotFound, gomock.Any())

		r.ServeHTTP(httptest.NewRecorder(), formRequest(http.MethodPost, "/companies/1/edit", url.Values{
			"id":   {"2"},
			"name": {"Acme"},
		}))
	})

	t.Run("company vanished", func(t *testing.T) {
		svc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(services.ErrCompanyNotFound)
		renderer.EXPECT().Render(gomock.Any(), http.StatusNotFound, views.NotFound, gomock.Any())

		r.ServeHTTP(httptest.NewRecorder(), formRequest(http.MethodPost, "/companies/1/edit", url.Values{
			"id":   {"1"},
			"name": {"Acme"},
		}))
	})

	t.Run("name taken", func(t *testing.T) {
		var got captureRender
		svc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(services.ErrCompanyNameExists)
		renderer.EXPECT().Render(gomock.Any(), http.StatusOK, views.CompaniesEdit, gomock.Any()).Do(got.do)

		r.ServeHTTP(httptest.NewRecorder(), formRequest(http.MethodPost, "/companies/1/edit", url.Values{
			"id":   {"1"},
			"name": {"Globex"},
		}))

		assert.Equal(t, "Company name already exists", got.data.Errors["name"])
	})
}

func TestCompanyPages_DeleteSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCompanyPages(ctrl)
	renderer := NewMockRenderer(ctrl)
	r := newCompanyPagesRouter(svc, renderer)

	svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, formRequest(http.MethodPost, "/companies/1/delete", url.Values{}))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/companies", rr.Header().Get("Location"))
}
