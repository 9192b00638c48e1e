package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
)

const userColumns = `id, email, password_hash, first_name, last_name, created_at, last_login_at, is_active`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user or nil when the id is unknown.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getUser(ctx, query, id)
}

// GetByEmail returns the user with the given email or nil.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getUser(ctx, query, email)
}

// GetByEmailAndPasswordHash matches an active user by email and stored hash.
func (r *UserReadRepository) GetByEmailAndPasswordHash(ctx context.Context, email, passwordHash string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		  AND password_hash = $2
		  AND is_active = TRUE
	`
	return r.getUser(ctx, query, email, secret(passwordHash))
}

func (r *UserReadRepository) getUser(ctx context.Context, query string, args ...any) (*models.User, error) {
	var user models.User
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetAll returns every user ordered by id.
func (r *UserReadRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	return r.selectUsers(ctx, query)
}

// GetActive returns users whose active flag is set.
func (r *UserReadRepository) GetActive(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_active = TRUE ORDER BY id`
	return r.selectUsers(ctx, query)
}

func (r *UserReadRepository) selectUsers(ctx context.Context, query string) ([]models.User, error) {
	users := []models.User{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)
	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// ExistsByID reports whether a user with id exists.
func (r *UserReadRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var exists bool
	_, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &exists, query, id)
	return exists, err
}

// EmailExists reports whether the email is taken.
func (r *UserReadRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	_, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &exists, query, email)
	return exists, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts the user; the database assigns id and created_at.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	const query = `
		INSERT INTO users (email, password_hash, first_name, last_name, created_at, is_active)
		VALUES ($1, $2, $3, $4, NOW(), $5)
		RETURNING id, created_at
	`
	args := []any{user.Email, secret(user.PasswordHash), user.FirstName, user.LastName, user.IsActive}

	created := *user
	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

// Update replaces the mutable fields of the user. created_at and
// last_login_at are kept.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.User) error {
	const query = `
		UPDATE users
		SET email = $2, password_hash = $3, first_name = $4, last_name = $5, is_active = $6
		WHERE id = $1
	`
	n, err := exec(ctx, executor(ctx, r.db, r.txGetter), query,
		user.ID, user.Email, secret(user.PasswordHash), user.FirstName, user.LastName, user.IsActive)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user; deleting a missing id is not an error.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	_, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, id)
	return err
}

// UpdateLastLogin stamps the login time; a missing user is ignored.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	const query = `UPDATE users SET last_login_at = $2 WHERE id = $1`
	_, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, id, at)
	return err
}
