package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/repositories"
)

var ErrChatbotNotFound = errors.New("chatbot not found")

// ChatbotStore persists chatbots.
type ChatbotStore interface {
	GetByID(ctx context.Context, id int64) (*models.Chatbot, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]models.Chatbot, error)
	Create(ctx context.Context, chatbot *models.Chatbot) (*models.Chatbot, error)
	Update(ctx context.Context, chatbot *models.Chatbot) error
	Delete(ctx context.Context, companyID, id int64) error
}

// ChatbotService manages the chatbots of a company.
type ChatbotService struct {
	companies CompanyChecker
	store     ChatbotStore
}

func NewChatbotService(companies CompanyChecker, store ChatbotStore) *ChatbotService {
	return &ChatbotService{companies: companies, store: store}
}

func (s *ChatbotService) ListByCompany(ctx context.Context, companyID int64) ([]models.Chatbot, error) {
	if err := requireCompany(ctx, s.companies, companyID); err != nil {
		return nil, err
	}
	chatbots, err := s.store.GetByCompanyID(ctx, companyID)
	if err != nil {
		logger.Log.Errorw("failed to list chatbots", "company_id", companyID, "err", err)
		return nil, err
	}
	return chatbots, nil
}

// Get returns the chatbot when it belongs to the company, nil otherwise.
func (s *ChatbotService) Get(ctx context.Context, companyID, id int64) (*models.Chatbot, error) {
	chatbot, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get chatbot", "id", id, "err", err)
		return nil, err
	}
	if chatbot == nil || chatbot.CompanyID != companyID {
		return nil, nil
	}
	return chatbot, nil
}

func (s *ChatbotService) Create(ctx context.Context, companyID int64, req models.ChatbotRequest) (*models.Chatbot, error) {
	if err := requireCompany(ctx, s.companies, companyID); err != nil {
		return nil, err
	}
	created, err := s.store.Create(ctx, &models.Chatbot{Name: req.Name, CompanyID: companyID})
	if errors.Is(err, repositories.ErrForeignKey) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to create chatbot", "company_id", companyID, "err", err)
		return nil, err
	}
	return created, nil
}

func (s *ChatbotService) Update(ctx context.Context, companyID int64, req models.ChatbotRequest) error {
	err := s.store.Update(ctx, &models.Chatbot{ID: req.ID, Name: req.Name, CompanyID: companyID})
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrChatbotNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update chatbot", "id", req.ID, "err", err)
		return err
	}
	return nil
}

// Delete removes the chatbot; a missing id is not an error.
func (s *ChatbotService) Delete(ctx context.Context, companyID, id int64) error {
	if err := s.store.Delete(ctx, companyID, id); err != nil {
		logger.Log.Errorw("failed to delete chatbot", "id", id, "err", err)
		return err
	}
	return nil
}
