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

// ChatbotManager manages the chatbots of a company.
type ChatbotManager interface {
	ListByCompany(ctx context.Context, companyID int64) ([]models.Chatbot, error)
	Get(ctx context.Context, companyID, id int64) (*models.Chatbot, error)
	Create(ctx context.Context, companyID int64, req models.ChatbotRequest) (*models.Chatbot, error)
	Update(ctx context.Context, companyID int64, req models.ChatbotRequest) error
	Delete(ctx context.Context, companyID, id int64) error
}

// NewListChatbotsHandler returns the chatbots of a company.
// @Summary List company chatbots
// @Tags chatbots
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {array} models.Chatbot
// @Failure 404 {object} models.ErrorResponse
// @Router /api/companies/{id}/chatbots [get]
// @Security Session
func NewListChatbotsHandler(svc ChatbotManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := urlID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		chatbots, err := svc.ListByCompany(r.Context(), companyID)
		switch {
		case errors.Is(err, services.ErrCompanyNotFound):
			writeError(w, http.StatusNotFound, err.Error())
			return
		case err != nil:
			writeInternalError(w, err)
			return
		}
		if chatbots == nil {
			chatbots = []models.Chatbot{}
		}
		writeJSON(w, http.StatusOK, chatbots)
	}
}

// NewGetChatbotHandler returns one chatbot of a company.
// @Summary Get company chatbot
// @Tags chatbots
// @Produce json
// @Param id path int true "Company ID"
// @Param chatbotID path int true "Chatbot ID"
// @Success 200 {object} models.Chatbot
// @Failure 404 {object} models.ErrorResponse
// @Router /api/companies/{id}/chatbots/{chatbotID} [get]
// @Security Session
func NewGetChatbotHandler(svc ChatbotManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, id, ok := childIDs(w, r, "chatbotID")
		if !ok {
			return
		}

		chatbot, err := svc.Get(r.Context(), companyID, id)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		if chatbot == nil {
			writeError(w, http.StatusNotFound, services.ErrChatbotNotFound.Error())
			return
		}
		writeJSON(w, http.StatusOK, chatbot)
	}
}

// NewCreateChatbotHandler adds a chatbot to a company.
// @Summary Create company chatbot
// @Tags chatbots
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param chatbot body models.ChatbotRequest true "Chatbot"
// @Success 201 {object} models.Chatbot
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/companies/{id}/chatbots [post]
// @Security Session
func NewCreateChatbotHandler(svc ChatbotManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, err := urlID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req models.ChatbotRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		chatbot, err := svc.Create(r.Context(), companyID, req)
		switch {
		case errors.Is(err, services.ErrCompanyNotFound):
			writeError(w, http.StatusNotFound, err.Error())
			return
		case err != nil:
			writeInternalError(w, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/companies/%d/chatbots/%d", companyID, chatbot.ID))
		writeJSON(w, http.StatusCreated, chatbot)
	}
}

// NewUpdateChatbotHandler updates a chatbot. The body id must match the path id.
// @Summary Update company chatbot
// @Tags chatbots
// @Accept json
// @Param id path int true "Company ID"
// @Param chatbotID path int true "Chatbot ID"
// @Param chatbot body models.ChatbotRequest true "Chatbot"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/companies/{id}/chatbots/{chatbotID} [put]
// @Security Session
func NewUpdateChatbotHandler(svc ChatbotManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, id, ok := childIDs(w, r, "chatbotID")
		if !ok {
			return
		}

		var req models.ChatbotRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		if req.ID != id {
			writeError(w, http.StatusBadRequest, "id mismatch")
			return
		}

		err := svc.Update(r.Context(), companyID, req)
		switch {
		case errors.Is(err, services.ErrChatbotNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case err != nil:
			writeInternalError(w, err)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

// NewDeleteChatbotHandler deletes a chatbot; a missing id still returns 204.
// @Summary Delete company chatbot
// @Tags chatbots
// @Param id path int true "Company ID"
// @Param chatbotID path int true "Chatbot ID"
// @Success 204
// @Router /api/companies/{id}/chatbots/{chatbotID} [delete]
// @Security Session
func NewDeleteChatbotHandler(svc ChatbotManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, id, ok := childIDs(w, r, "chatbotID")
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

// ChatbotHandlers groups the chatbot endpoints for registration.
type ChatbotHandlers struct {
	List, Get, Create, Update, Delete http.HandlerFunc
}

// NewChatbotHandlers builds every chatbot endpoint on one service.
func NewChatbotHandlers(svc ChatbotManager) ChatbotHandlers {
	return ChatbotHandlers{
		List:   NewListChatbotsHandler(svc),
		Get:    NewGetChatbotHandler(svc),
		Create: NewCreateChatbotHandler(svc),
		Update: NewUpdateChatbotHandler(svc),
		Delete: NewDeleteChatbotHandler(svc),
	}
}

// RegisterChatbotReadHandlers registers the GET endpoints.
func RegisterChatbotReadHandlers(r chi.Router, h ChatbotHandlers) {
	r.Get("/api/companies/{id}/chatbots", h.List)
	r.Get("/api/companies/{id}/chatbots/{chatbotID}", h.Get)
}

// RegisterChatbotWriteHandlers registers the POST, PUT and DELETE endpoints.
func RegisterChatbotWriteHandlers(r chi.Router, h ChatbotHandlers) {
	r.Post("/api/companies/{id}/chatbots", h.Create)
	r.Put("/api/companies/{id}/chatbots/{chatbotID}", h.Update)
	r.Delete("/api/companies/{id}/chatbots/{chatbotID}", h.Delete)
}
