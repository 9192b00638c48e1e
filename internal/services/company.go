package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/metrics"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/repositories"
	"github.com/segmentio/kafka-go"
)

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrCompanyNameExists = errors.New("company name already exists")
)

// CompanyReader defines read-only operations for companies.
type CompanyReader interface {
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	GetAll(ctx context.Context) ([]models.Company, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	NameExists(ctx context.Context, name string) (bool, error)
	GetWithLLMs(ctx context.Context, id int64) (*models.Company, error)
	GetWithChatbots(ctx context.Context, id int64) (*models.Company, error)
}

// CompanyWriter defines write operations for companies.
type CompanyWriter interface {
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id int64) error
}

// CompanyListCache holds the full company list. Set with a generation older
// than the current one is dropped, so a list fetched before an invalidation
// never lands in the cache.
type CompanyListCache interface {
	Get(ctx context.Context) ([]models.Company, bool, error)
	Generation(ctx context.Context) (uint64, error)
	Set(ctx context.Context, generation uint64, companies []models.Company) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AfterCommitFunc defers fn until the request transaction commits.
type AfterCommitFunc func(ctx context.Context, fn func(ctx context.Context))

// CompanyService handles companies, the company list cache and change events.
type CompanyService struct {
	reader      CompanyReader
	writer      CompanyWriter
	cache       CompanyListCache
	kafkaWriter KafkaWriter
	afterCommit AfterCommitFunc
	now         func() time.Time
}

// NewCompanyService creates a new CompanyService. kafkaWriter may be nil;
// a nil afterCommit runs hooks immediately.
func NewCompanyService(
	reader CompanyReader,
	writer CompanyWriter,
	cache CompanyListCache,
	kafkaWriter KafkaWriter,
	afterCommit AfterCommitFunc,
) *CompanyService {
	if afterCommit == nil {
		afterCommit = func(ctx context.Context, fn func(ctx context.Context)) { fn(ctx) }
	}
	return &CompanyService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		afterCommit: afterCommit,
		now:         time.Now,
	}
}

// List returns all companies, served from the cache when possible.
func (s *CompanyService) List(ctx context.Context) ([]models.Company, error) {
	companies, ok, err := s.cache.Get(ctx)
	if err != nil {
		logger.Log.Warnw("company list cache read failed", "err", err)
	} else if ok {
		metrics.RecordCacheLookup(true)
		return companies, nil
	}
	metrics.RecordCacheLookup(false)

	// read before the fetch: an invalidation in between makes the Set a no-op
	generation, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		logger.Log.Warnw("company list cache generation read failed", "err", genErr)
	}

	companies, err = s.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list companies", "err", err)
		return nil, err
	}

	if genErr == nil {
		if err := s.cache.Set(ctx, generation, companies); err != nil {
			logger.Log.Warnw("company list cache write failed", "err", err)
		}
	}
	return companies, nil
}

// Get returns the company or nil when there is none.
func (s *CompanyService) Get(ctx context.Context, id int64) (*models.Company, error) {
	company, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get company", "id", id, "err", err)
		return nil, err
	}
	return company, nil
}

// NameExists reports whether a company already uses the exact name.
func (s *CompanyService) NameExists(ctx context.Context, name string) (bool, error) {
	return s.reader.NameExists(ctx, name)
}

// Exists reports whether a company with the id exists.
func (s *CompanyService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.reader.ExistsByID(ctx, id)
}

// GetWithLLMs returns the company with its LLMs loaded, or nil.
func (s *CompanyService) GetWithLLMs(ctx context.Context, id int64) (*models.Company, error) {
	return s.reader.GetWithLLMs(ctx, id)
}

// GetWithChatbots returns the company with its chatbots loaded, or nil.
func (s *CompanyService) GetWithChatbots(ctx context.Context, id int64) (*models.Company, error) {
	return s.reader.GetWithChatbots(ctx, id)
}

// Create stores a new company after checking the name is free.
func (s *CompanyService) Create(ctx context.Context, req models.CompanyRequest) (*models.Company, error) {
	exists, err := s.reader.NameExists(ctx, req.Name)
	if err != nil {
		logger.Log.Errorw("failed to check company name", "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrCompanyNameExists
	}

	company := req.ToCompany()
	company.ID = 0
	company.CreatedAt = s.now().UTC()

	created, err := s.writer.Create(ctx, company)
	if errors.Is(err, repositories.ErrConflict) {
		return nil, ErrCompanyNameExists
	}
	if err != nil {
		logger.Log.Errorw("failed to create company", "name", req.Name, "err", err)
		return nil, err
	}

	s.changed(ctx, models.CompanyCreated, created.ID, created.Name)
	return created, nil
}

// Update replaces name and description of an existing company.
func (s *CompanyService) Update(ctx context.Context, req models.CompanyRequest) error {
	existing, err := s.reader.GetByID(ctx, req.ID)
	if err != nil {
		logger.Log.Errorw("failed to get company", "id", req.ID, "err", err)
		return err
	}
	if existing == nil {
		return ErrCompanyNotFound
	}

	if req.Name != existing.Name {
		exists, err := s.reader.NameExists(ctx, req.Name)
		if err != nil {
			logger.Log.Errorw("failed to check company name", "err", err)
			return err
		}
		if exists {
			return ErrCompanyNameExists
		}
	}

	err = s.writer.Update(ctx, req.ToCompany())
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrCompanyNotFound
	case errors.Is(err, repositories.ErrConflict):
		return ErrCompanyNameExists
	case err != nil:
		logger.Log.Errorw("failed to update company", "id", req.ID, "err", err)
		return err
	}

	s.changed(ctx, models.CompanyUpdated, req.ID, req.Name)
	return nil
}

// Delete removes the company with its LLMs and chatbots. A missing id is
// not an error.
func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete company", "id", id, "err", err)
		return err
	}
	s.changed(ctx, models.CompanyDeleted, id, "")
	return nil
}

// changed drops the cached list now and again once the write is committed,
// then publishes the event.
func (s *CompanyService) changed(ctx context.Context, eventType string, id int64, name string) {
	s.invalidate(ctx)
	s.afterCommit(ctx, func(ctx context.Context) {
		s.invalidate(ctx)
		s.publishEvent(ctx, models.CompanyEvent{
			EventID:   uuid.NewString(),
			Type:      eventType,
			CompanyID: id,
			Name:      name,
			Timestamp: s.now().Unix(),
		})
	})
}

func (s *CompanyService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate company list cache", "err", err)
		return
	}
	metrics.RecordCacheInvalidation()
}

// publishEvent publishes a company event to Kafka.
func (s *CompanyService) publishEvent(ctx context.Context, event models.CompanyEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal company event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.CompanyID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish company event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Company event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}
