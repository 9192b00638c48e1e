package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
)

const chatbotColumns = `id, name, created_at, company_id`

// ChatbotRepository stores the chatbots of companies
type ChatbotRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewChatbotRepository(db *sqlx.DB, txGetter TxGetter) *ChatbotRepository {
	return &ChatbotRepository{db: db, txGetter: txGetter}
}

func (r *ChatbotRepository) GetByID(ctx context.Context, id int64) (*models.Chatbot, error) {
	query := `SELECT ` + chatbotColumns + ` FROM chatbots WHERE id = $1`

	var chatbot models.Chatbot
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &chatbot, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &chatbot, nil
}

func (r *ChatbotRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]models.Chatbot, error) {
	query := `SELECT ` + chatbotColumns + ` FROM chatbots WHERE company_id = $1 ORDER BY id`

	chatbots := []models.Chatbot{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &chatbots, query, companyID)
	logQuery(query, []any{companyID}, len(chatbots), err)

	if err != nil {
		return nil, err
	}
	return chatbots, nil
}

func (r *ChatbotRepository) Create(ctx context.Context, chatbot *models.Chatbot) (*models.Chatbot, error) {
	const query = `
		INSERT INTO chatbots (name, company_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	args := []any{chatbot.Name, chatbot.CompanyID}

	created := *chatbot
	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

func (r *ChatbotRepository) Update(ctx context.Context, chatbot *models.Chatbot) error {
	const query = `UPDATE chatbots SET name = $3 WHERE id = $1 AND company_id = $2`
	n, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, chatbot.ID, chatbot.CompanyID, chatbot.Name)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ChatbotRepository) Delete(ctx context.Context, companyID, id int64) error {
	const query = `DELETE FROM chatbots WHERE id = $1 AND company_id = $2`
	_, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, id, companyID)
	return err
}
