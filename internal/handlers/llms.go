package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/services"
)

// LLMManager manages the LLMs of a company.
type LLMManager interface {
	ListByCompany(ctx context.Context, companyID int64) ([]models.LLM, error)
	Get(ctx context.Context, companyID, id int64) (*models.LLM, error)
	Create(ctx context.Context, companyID int64, req models.LLMRequest) (*models.LLM, error)
	Update(ctx context.Context, companyID int64, req models.LLMRequest) error
	Delete(ctx context.Context, companyID, id int64) error
}

// NewListLLMsHandler returns the LLMs of a company.
// @Summary List company LLMs
// @Tags llms
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {array} models.LLM
// @Failure 404 {object} models.ErrorResponse
// @Router /api/companies/{id}/llms [get]
// @Security Session
func NewListLLMsHandler(svc LLMManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := urlID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		llms, err := svc.ListByCompany(r.Context(), companyID)
		switch {
		case errors.Is(err, services.ErrCompanyNotFound):
			writeError(w, http.StatusNotFound, err.Error())
			return
		case err != nil:
			writeInternalError(w, err)
			return
		}
		if llms == nil {
			llms = []models.LLM{}
		}
		writeJSON(w, http.StatusOK, llms)
	}
}

// NewGetLLMHandler returns one LLM of a company.
// @Summary Get company LLM
// @Tags llms
// @Produce json
// @Param id path int true "Company ID"
// @Param llmID path int true "LLM ID"
// @Success 200 {object} models.LLM
// @Failure 404 {object} models.ErrorResponse
// @Router /api/companies/{id}/llms/{llmID} [get]
// @Security Session
func NewGetLLMHandler(svc LLMManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, id, ok := childIDs(w, r, "llmID")
		if !ok {
			return
		}

		llm, err := svc.Get(r.Context(), companyID, id)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if llm == nil {
			writeError(w, http.StatusNotFound, services.ErrLLMNotFound.Error())
			return
		}
		writeJSON(w, http.StatusOK, llm)
	}
}

// NewCreateLLMHandler adds an LLM to a company.
// @Summary Create company LLM
// @Tags llms
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param llm body models.LLMRequest true "LLM"
// @Success 201 {object} models.LLM
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/companies/{id}/llms [post]
// @Security Session
func NewCreateLLMHandler(svc LLMManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := urlID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req models.LLMRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		llm, err := svc.Create(r.Context(), companyID, req)
		switch {
		case errors.Is(err, services.ErrCompanyNotFound):
			writeError(w, http.StatusNotFound, err.Error())
			return
		case err != nil:
			writeInternalError(w, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/companies/%d/llms/%d", companyID, llm.ID))
		writeJSON(w, http.StatusCreated, llm)
	}
}

// NewUpdateLLMHandler updates an LLM. The body id must match the path id.
// @Summary Update company LLM
// @Tags llms
// @Accept json
// @Param id path int true "Company ID"
// @Param llmID path int true "LLM ID"
// @Param llm body models.LLMRequest true "LLM"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/companies/{id}/llms/{llmID} [put]
// @Security Session
func NewUpdateLLMHandler(svc LLMManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, id, ok := childIDs(w, r, "llmID")
		if !ok {
			return
		}

		var req models.LLMRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		if req.ID != id {
			writeError(w, http.StatusBadRequest, "id mismatch")
			return
		}

		err := svc.Update(r.Context(), companyID, req)
		switch {
		case errors.Is(err, services.ErrLLMNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case err != nil:
			writeInternalError(w, err)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

// NewDeleteLLMHandler deletes an LLM; a missing id still returns 204.
// @Summary Delete company LLM
// @Tags llms
// @Param id path int true "Company ID"
// @Param llmID path int true "LLM ID"
// @Success 204
// @Router /api/companies/{id}/llms/{llmID} [delete]
// @Security Session
func NewDeleteLLMHandler(svc LLMManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, id, ok := childIDs(w, r, "llmID")
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), companyID, id); err != nil {
			writeInternalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// LLMHandlers groups the LLM endpoints for registration.
type LLMHandlers struct {
	List, Get, Create, Update, Delete http.HandlerFunc
}

// NewLLMHandlers builds every LLM endpoint on one service.
func NewLLMHandlers(svc LLMManager) LLMHandlers {
	return LLMHandlers{
		List:   NewListLLMsHandler(svc),
		Get:    NewGetLLMHandler(svc),
		Create: NewCreateLLMHandler(svc),
		Update: NewUpdateLLMHandler(svc),
		Delete: NewDeleteLLMHandler(svc),
	}
}

// RegisterLLMReadHandlers registers the GET endpoints.
func RegisterLLMReadHandlers(r chi.Router, h LLMHandlers) {
	r.Get("/api/companies/{id}/llms", h.List)
	r.Get("/api/companies/{id}/llms/{llmID}", h.Get)
}

// RegisterLLMWriteHandlers registers the POST, PUT and DELETE endpoints.
func RegisterLLMWriteHandlers(r chi.Router, h LLMHandlers) {
	r.Post("/api/companies/{id}/llms", h.Create)
	r.Put("/api/companies/{id}/llms/{llmID}", h.Update)
	r.Delete("/api/companies/{id}/llms/{llmID}", h.Delete)
}

func childIDs(w http.ResponseWriter, r *http.Request, childParam string) (int64, int64, bool) {
	companyID, err := urlID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return 0, 0, false
	}
	id, err := urlID(r, childParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return 0, 0, false
	}
	return companyID, id, true
}
