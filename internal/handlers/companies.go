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

// CompanyLister lists companies.
type CompanyLister interface {
	List(ctx context.Context) ([]models.Company, error)
}

// CompanyGetter loads one company.
type CompanyGetter interface {
	Get(ctx context.Context, id int64) (*models.Company, error)
}

// CompanyCreator creates companies.
type CompanyCreator interface {
	Create(ctx context.Context, req models.CompanyRequest) (*models.Company, error)
}

// CompanyUpdater updates companies.
type CompanyUpdater interface {
	Update(ctx context.Context, req models.CompanyRequest) error
}

// CompanyDeleter deletes companies.
type CompanyDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewListCompaniesHandler returns all companies.
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {array} models.Company
// @Failure 401 {object} models.ErrorResponse
// @Router /api/companies [get]
// @Security Session
func NewListCompaniesHandler(svc CompanyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companies, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if companies == nil {
			companies = []models.Company{}
		}
		writeJSON(w, http.StatusOK, companies)
	}
}

// RegisterListCompaniesHandler registers GET /api/companies.
func RegisterListCompaniesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/companies", h)
}

// NewGetCompanyHandler returns one company.
// @Summary Get company
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} models.Company
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/companies/{id} [get]
// @Security Session
func NewGetCompanyHandler(svc CompanyGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		company, err := svc.Get(r.Context(), id)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if company == nil {
			writeError(w, http.StatusNotFound, services.ErrCompanyNotFound.Error())
			return
		}
		writeJSON(w, http.StatusOK, company)
	}
}

// RegisterGetCompanyHandler registers GET /api/companies/{id}.
func RegisterGetCompanyHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/companies/{id}", h)
}

// NewCreateCompanyHandler creates a company.
// @Summary Create company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body models.CompanyRequest true "Company"
// @Success 201 {object} models.Company
// @Header 201 {string} Location "/api/companies/{id}"
// @Failure 400 {object} models.ErrorResponse
// @Router /api/companies [post]
// @Security Session
func NewCreateCompanyHandler(svc CompanyCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CompanyRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		company, err := svc.Create(r.Context(), req)
		switch {
		case errors.Is(err, services.ErrCompanyNameExists):
			writeError(w, http.StatusBadRequest, "Company name already exists")
			return
		case err != nil:
			writeInternalError(w, err)
			return
		}

		w.Header().Set("Location", "/api/companies/"+strconv.FormatInt(company.ID, 10))
		writeJSON(w, http.StatusCreated, company)
	}
}

// RegisterCreateCompanyHandler registers POST /api/companies.
func RegisterCreateCompanyHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/companies", h)
}

// NewUpdateCompanyHandler updates a company. The body id must match the path id.
// @Summary Update company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param company body models.CompanyRequest true "Company"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/companies/{id} [put]
// @Security Session
func NewUpdateCompanyHandler(svc CompanyUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req models.CompanyRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		if req.ID != id {
			writeError(w, http.StatusBadRequest, "id mismatch")
			return
		}

		err = svc.Update(r.Context(), req)
		switch {
		case errors.Is(err, services.ErrCompanyNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrCompanyNameExists):
			writeError(w, http.StatusBadRequest, "Company name already exists")
		case err != nil:
			writeInternalError(w, err)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

// RegisterUpdateCompanyHandler registers PUT /api/companies/{id}.
func RegisterUpdateCompanyHandler(r chi.Router, h http.HandlerFunc) {
	r.Put("/api/companies/{id}", h)
}

// NewDeleteCompanyHandler deletes a company with its LLMs and chatbots.
// @Summary Delete company
// @Tags companies
// @Param id path int true "Company ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Router /api/companies/{id} [delete]
// @Security Session
func NewDeleteCompanyHandler(svc CompanyDeleter) http.HandlerFunc {
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

// RegisterDeleteCompanyHandler registers DELETE /api/companies/{id}.
func RegisterDeleteCompanyHandler(r chi.Router, h http.HandlerFunc) {
	r.Delete("/api/companies/{id}", h)
}
