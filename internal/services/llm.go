package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/repositories"
)

var ErrLLMNotFound = errors.New("llm not found")

// CompanyChecker reports whether a company exists.
type CompanyChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// LLMStore persists LLMs.
type LLMStore interface {
	GetByID(ctx context.Context, id int64) (*models.LLM, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]models.LLM, error)
	Create(ctx context.Context, llm *models.LLM) (*models.LLM, error)
	Update(ctx context.Context, llm *models.LLM) error
	Delete(ctx context.Context, companyID, id int64) error
}

// LLMService manages the LLMs of a company.
type LLMService struct {
	companies CompanyChecker
	store     LLMStore
}

// NewLLMService creates a new LLMService instance.
func NewLLMService(companies CompanyChecker, store LLMStore) *LLMService {
	return &LLMService{companies: companies, store: store}
}

// ListByCompany returns the LLMs of an existing company.
func (s *LLMService) ListByCompany(ctx context.Context, companyID int64) ([]models.LLM, error) {
	if err := requireCompany(ctx, s.companies, companyID); err != nil {
		return nil, err
	}
	llms, err := s.store.GetByCompanyID(ctx, companyID)
	if err != nil {
		logger.Log.Errorw("failed to list llms", "company_id", companyID, "err", err)
		return nil, err
	}
	return llms, nil
}

// Get returns the LLM when it belongs to the company, nil otherwise.
func (s *LLMService) Get(ctx context.Context, companyID, id int64) (*models.LLM, error) {
	llm, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get llm", "id", id, "err", err)
		return nil, err
	}
	if llm == nil || llm.CompanyID != companyID {
		return nil, nil
	}
	return llm, nil
}

// Create adds an LLM to an existing company.
func (s *LLMService) Create(ctx context.Context, companyID int64, req models.LLMRequest) (*models.LLM, error) {
	if err := requireCompany(ctx, s.companies, companyID); err != nil {
		return nil, err
	}
	created, err := s.store.Create(ctx, &models.LLM{
		Name:           req.Name,
		Specialization: req.Specialization,
		CompanyID:      companyID,
	})
	if errors.Is(err, repositories.ErrForeignKey) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to create llm", "company_id", companyID, "err", err)
		return nil, err
	}
	return created, nil
}

// Update replaces name and specialization of an LLM of the company.
func (s *LLMService) Update(ctx context.Context, companyID int64, req models.LLMRequest) error {
	err := s.store.Update(ctx, &models.LLM{
		ID:             req.ID,
		Name:           req.Name,
		Specialization: req.Specialization,
		CompanyID:      companyID,
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrLLMNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update llm", "id", req.ID, "err", err)
		return err
	}
	return nil
}

// Delete removes the LLM; a missing id is not an error.
func (s *LLMService) Delete(ctx context.Context, companyID, id int64) error {
	if err := s.store.Delete(ctx, companyID, id); err != nil {
		logger.Log.Errorw("failed to delete llm", "id", id, "err", err)
		return err
	}
	return nil
}

func requireCompany(ctx context.Context, companies CompanyChecker, id int64) error {
	exists, err := companies.ExistsByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to check company", "id", id, "err", err)
		return err
	}
	if !exists {
		return ErrCompanyNotFound
	}
	return nil
}
