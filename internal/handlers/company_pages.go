package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/services"
	"github.com/sbilibin2017/gw-company-portal/internal/validation"
	"github.com/sbilibin2017/gw-company-portal/internal/views"
)

// CompanyPages is the company service as seen by the page surface.
type CompanyPages interface {
	CompanyLister
	CompanyGetter
	CompanyCreator
	CompanyUpdater
	CompanyDeleter
	GetWithLLMs(ctx context.Context, id int64) (*models.Company, error)
	GetWithChatbots(ctx context.Context, id int64) (*models.Company, error)
}

func renderNotFound(w http.ResponseWriter, r *http.Request, renderer Renderer) {
	renderer.Render(w, http.StatusNotFound, views.NotFound, pageData(r, "Not found"))
}

func pageError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("page failed", "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func companyForm(r *http.Request) models.CompanyRequest {
	req := models.CompanyRequest{Name: strings.TrimSpace(r.PostFormValue("name"))}
	if d := strings.TrimSpace(r.PostFormValue("description")); d != "" {
		req.Description = &d
	}
	if id, err := strconv.ParseInt(r.PostFormValue("id"), 10, 64); err == nil {
		req.ID = id
	}
	return req
}

// loadCompany resolves the {id} path parameter. It writes the 404 page and
// returns nil when the company does not exist.
func loadCompany(w http.ResponseWriter, r *http.Request, renderer Renderer, load func(ctx context.Context, id int64) (*models.Company, error)) *models.Company {
	id, err := urlID(r, "id")
	if err != nil {
		renderNotFound(w, r, renderer)
		return nil
	}
	company, err := load(r.Context(), id)
	if err != nil {
		pageError(w, err)
		return nil
	}
	if company == nil {
		renderNotFound(w, r, renderer)
		return nil
	}
	return company
}

// NewCompaniesPageHandler renders the company list.
func NewCompaniesPageHandler(svc CompanyPages, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companies, err := svc.List(r.Context())
		if err != nil {
			pageError(w, err)
			return
		}
		data := pageData(r, "Companies")
		data.Companies = companies
		renderer.Render(w, http.StatusOK, views.CompaniesIndex, data)
	}
}

// NewCompanyDetailsPageHandler renders one company.
func NewCompanyDetailsPageHandler(svc CompanyPages, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		company := loadCompany(w, r, renderer, svc.Get)
		if company == nil {
			return
		}
		data := pageData(r, company.Name)
		data.Company = company
		renderer.Render(w, http.StatusOK, views.CompaniesDetails, data)
	}
}

// NewCompanyCreatePageHandler renders the empty create form.
func NewCompanyCreatePageHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusOK, views.CompaniesCreate, pageData(r, "Create company"))
	}
}

// NewCompanyCreateSubmitHandler creates the company and returns to the list.
func NewCompanyCreateSubmitHandler(svc CompanyPages, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		req := companyForm(r)
		req.ID = 0
		data := pageData(r, "Create company")
		data.Form = req

		if err := validation.Struct(req); err != nil {
			data.Errors = fieldErrors(err)
			renderer.Render(w, http.StatusOK, views.CompaniesCreate, data)
			return
		}

		_, err := svc.Create(r.Context(), req)
		switch {
		case errors.Is(err, services.ErrCompanyNameExists):
			data.Errors = map[string]string{"name": "Company name already exists"}
			renderer.Render(w, http.StatusOK, views.CompaniesCreate, data)
			return
		case err != nil:
			pageError(w, err)
			return
		}
		http.Redirect(w, r, "/companies", http.StatusFound)
	}
}

// NewCompanyEditPageHandler renders the edit form of a company.
func NewCompanyEditPageHandler(svc CompanyPages, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		company := loadCompany(w, r, renderer, svc.Get)
		if company == nil {
			return
		}
		data := pageData(r, "Edit company")
		data.Form = models.CompanyRequest{ID: company.ID, Name: company.Name, Description: company.Description}
		renderer.Render(w, http.StatusOK, views.CompaniesEdit, data)
	}
}

// NewCompanyEditSubmitHandler saves the company and returns to the list.
// A form id that differs from the path id is treated as not found.
func NewCompanyEditSubmitHandler(svc CompanyPages, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "id")
		if err != nil {
			renderNotFound(w, r, renderer)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		req := companyForm(r)
		if req.ID != id {
			renderNotFound(w, r, renderer)
			return
		}
		data := pageData(r, "Edit company")
		data.Form = req

		if err := validation.Struct(req); err != nil {
			data.Errors = fieldErrors(err)
			renderer.Render(w, http.StatusOK, views.CompaniesEdit, data)
			return
		}

		err = svc.Update(r.Context(), req)
		switch {
		case errors.Is(err, services.ErrCompanyNotFound):
			renderNotFound(w, r, renderer)
			return
		case errors.Is(err, services.ErrCompanyNameExists):
			data.Errors = map[string]string{"name": "Company name already exists"}
			renderer.Render(w, http.StatusOK, views.CompaniesEdit, data)
			return
		case err != nil:
			pageError(w, err)
			return
		}
		http.Redirect(w, r, "/companies", http.StatusFound)
	}
}

// NewCompanyDeletePageHandler renders the delete confirmation.
func NewCompanyDeletePageHandler(svc CompanyPages, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		company := loadCompany(w, r, renderer, svc.Get)
		if company == nil {
			return
		}
		data := pageData(r, "Delete company")
		data.Company = company
		renderer.Render(w, http.StatusOK, views.CompaniesDelete, data)
	}
}

// NewCompanyDeleteSubmitHandler deletes the company and returns to the list.
func NewCompanyDeleteSubmitHandler(svc CompanyPages, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "id")
		if err != nil {
			renderNotFound(w, r, renderer)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			pageError(w, err)
			return
		}
		http.Redirect(w, r, "/companies", http.StatusFound)
	}
}

// NewCompanyLLMsPartialHandler renders the LLM fragment of a company.
func NewCompanyLLMsPartialHandler(svc CompanyPages, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		company := loadCompany(w, r, renderer, svc.GetWithLLMs)
		if company == nil {
			return
		}
		renderer.Render(w, http.StatusOK, views.LLMsPartial, company)
	}
}

// NewCompanyChatbotsPartialHandler renders the chatbot fragment of a company.
func NewCompanyChatbotsPartialHandler(svc CompanyPages, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		company := loadCompany(w, r, renderer, svc.GetWithChatbots)
		if company == nil {
			return
		}
		renderer.Render(w, http.StatusOK, views.ChatbotsPartial, company)
	}
}

// CompanyPageHandlers groups the company pages for registration.
type CompanyPageHandlers struct {
	Index, Details, CreatePage, CreateSubmit, EditPage, EditSubmit, DeletePage, DeleteSubmit, LLMs, Chatbots http.HandlerFunc
}

// NewCompanyPageHandlers builds every company page on one service.
func NewCompanyPageHandlers(svc CompanyPages, renderer Renderer) CompanyPageHandlers {
	return CompanyPageHandlers{
		Index:        NewCompaniesPageHandler(svc, renderer),
		Details:      NewCompanyDetailsPageHandler(svc, renderer),
		CreatePage:   NewCompanyCreatePageHandler(renderer),
		CreateSubmit: NewCompanyCreateSubmitHandler(svc, renderer),
		EditPage:     NewCompanyEditPageHandler(svc, renderer),
		EditSubmit:   NewCompanyEditSubmitHandler(svc, renderer),
		DeletePage:   NewCompanyDeletePageHandler(svc, renderer),
		DeleteSubmit: NewCompanyDeleteSubmitHandler(svc, renderer),
		LLMs:         NewCompanyLLMsPartialHandler(svc, renderer),
		Chatbots:     NewCompanyChatbotsPartialHandler(svc, renderer),
	}
}

// RegisterCompanyPageHandlers registers the company pages. tx wraps the
// form posts that write.
func RegisterCompanyPageHandlers(r chi.Router, h CompanyPageHandlers, tx func(http.Handler) http.Handler) {
	r.Get("/companies", h.Index)
	r.Get("/companies/create", h.CreatePage)
	r.With(tx).Post("/companies/create", h.CreateSubmit)
	r.Get("/companies/{id}", h.Details)
	r.Get("/companies/{id}/edit", h.EditPage)
	r.With(tx).Post("/companies/{id}/edit", h.EditSubmit)
	r.Get("/companies/{id}/delete", h.DeletePage)
	r.With(tx).Post("/companies/{id}/delete", h.DeleteSubmit)
	r.Get("/companies/{id}/llms", h.LLMs)
	r.Get("/companies/{id}/chatbots", h.Chatbots)
}
