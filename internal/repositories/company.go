package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
)

const companyColumns = `id, name, description, created_at`

// CompanyReadRepository handles company read operations
type CompanyReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCompanyReadRepository(db *sqlx.DB, txGetter TxGetter) *CompanyReadRepository {
	return &CompanyReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the company or nil when the id is unknown.
func (r *CompanyReadRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	var company models.Company
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &company, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &company, nil
}

// GetAll returns every company ordered by name.
func (r *CompanyReadRepository) GetAll(ctx context.Context) ([]models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name`

	companies := []models.Company{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &companies, query)
	logQuery(query, nil, len(companies), err)

	if err != nil {
		return nil, err
	}
	return companies, nil
}

// ExistsByID reports whether a company with id exists.
func (r *CompanyReadRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)`
	var exists bool
	_, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &exists, query, id)
	return exists, err
}

// NameExists reports whether a company with exactly this name exists.
func (r *CompanyReadRepository) NameExists(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM companies WHERE name = $1)`
	var exists bool
	_, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &exists, query, name)
	return exists, err
}

// GetWithLLMs returns the company with its LLMs loaded, or nil.
func (r *CompanyReadRepository) GetWithLLMs(ctx context.Context, id int64) (*models.Company, error) {
	company, err := r.GetByID(ctx, id)
	if err != nil || company == nil {
		return nil, err
	}

	query := `SELECT ` + llmColumns + ` FROM llms WHERE company_id = $1 ORDER BY id`
	llms := []models.LLM{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &llms, query, id)
	logQuery(query, []any{id}, len(llms), err)
	if err != nil {
		return nil, err
	}

	company.LLMs = llms
	return company, nil
}

// GetWithChatbots returns the company with its chatbots loaded, or nil.
func (r *CompanyReadRepository) GetWithChatbots(ctx context.Context, id int64) (*models.Company, error) {
	company, err := r.GetByID(ctx, id)
	if err != nil || company == nil {
		return nil, err
	}

	query := `SELECT ` + chatbotColumns + ` FROM chatbots WHERE company_id = $1 ORDER BY id`
	chatbots := []models.Chatbot{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &chatbots, query, id)
	logQuery(query, []any{id}, len(chatbots), err)
	if err != nil {
		return nil, err
	}

	company.Chatbots = chatbots
	return company, nil
}

// CompanyWriteRepository handles company write operations
type CompanyWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCompanyWriteRepository(db *sqlx.DB, txGetter TxGetter) *CompanyWriteRepository {
	return &CompanyWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts the company; the database assigns id and created_at.
func (r *CompanyWriteRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	const query = `
		INSERT INTO companies (name, description, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	args := []any{company.Name, company.Description}

	created := *company
	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

// Update replaces name and description.
func (r *CompanyWriteRepository) Update(ctx context.Context, company *models.Company) error {
	const query = `UPDATE companies SET name = $2, description = $3 WHERE id = $1`
	n, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, company.ID, company.Name, company.Description)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the company together with its LLMs and chatbots (ON DELETE CASCADE).
func (r *CompanyWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM companies WHERE id = $1`
	_, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, id)
	return err
}
