package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
)

const llmColumns = `id, name, specialization, created_at, company_id`

// LLMRepository stores the LLMs of companies
type LLMRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLLMRepository(db *sqlx.DB, txGetter TxGetter) *LLMRepository {
	return &LLMRepository{db: db, txGetter: txGetter}
}

func (r *LLMRepository) GetByID(ctx context.Context, id int64) (*models.LLM, error) {
	query := `SELECT ` + llmColumns + ` FROM llms WHERE id = $1`

	var llm models.LLM
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &llm, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &llm, nil
}

func (r *LLMRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]models.LLM, error) {
	query := `SELECT ` + llmColumns + ` FROM llms WHERE company_id = $1 ORDER BY id`

	llms := []models.LLM{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &llms, query, companyID)
	logQuery(query, []any{companyID}, len(llms), err)

	if err != nil {
		return nil, err
	}
	return llms, nil
}

// Create inserts the LLM. A missing company surfaces as ErrForeignKey.
func (r *LLMRepository) Create(ctx context.Context, llm *models.LLM) (*models.LLM, error) {
	const query = `
		INSERT INTO llms (name, specialization, company_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`
	args := []any{llm.Name, llm.Specialization, llm.CompanyID}

	created := *llm
	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

// Update replaces name and specialization of an LLM owned by llm.CompanyID.
func (r *LLMRepository) Update(ctx context.Context, llm *models.LLM) error {
	const query = `UPDATE llms SET name = $3, specialization = $4 WHERE id = $1 AND company_id = $2`
	n, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, llm.ID, llm.CompanyID, llm.Name, llm.Specialization)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LLMRepository) Delete(ctx context.Context, companyID, id int64) error {
	const query = `DELETE FROM llms WHERE id = $1 AND company_id = $2`
	_, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, id, companyID)
	return err
}
