package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-company-portal/internal/migrations"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, migrations.Up(context.Background(), db.DB))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestPostgres_Users(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	reader := NewUserReadRepository(db, nil)
	writer := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	created, err := writer.Create(ctx, &models.User{
		Email: "alice@example.com", PasswordHash: "hash", FirstName: "Alice", LastName: "A", IsActive: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := writer.Create(ctx, &models.User{
			Email: "alice@example.com", PasswordHash: "x", FirstName: "B", LastName: "B", IsActive: true,
		})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("lookup by email and hash requires active", func(t *testing.T) {
		user, err := reader.GetByEmailAndPasswordHash(ctx, "alice@example.com", "hash")
		require.NoError(t, err)
		require.NotNil(t, user)

		user.IsActive = false
		require.NoError(t, writer.Update(ctx, user))

		user, err = reader.GetByEmailAndPasswordHash(ctx, "alice@example.com", "hash")
		assert.NoError(t, err)
		assert.Nil(t, user)

		active, err := reader.GetActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("last login", func(t *testing.T) {
		at := time.Now().UTC().Truncate(time.Microsecond)
		require.NoError(t, writer.UpdateLastLogin(ctx, created.ID, at))
		require.NoError(t, writer.UpdateLastLogin(ctx, 999999, at))

		user, err := reader.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, user.LastLoginAt)
		assert.True(t, at.Equal(*user.LastLoginAt))
	})

	t.Run("update missing user", func(t *testing.T) {
		err := writer.Update(ctx, &models.User{ID: 999999, Email: "z@x.com", PasswordHash: "h", FirstName: "Z", LastName: "Z"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, writer.Delete(ctx, created.ID))
		require.NoError(t, writer.Delete(ctx, created.ID))

		exists, err := reader.ExistsByID(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestPostgres_CompaniesCascade(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	reader := NewCompanyReadRepository(db, nil)
	writer := NewCompanyWriteRepository(db, nil)
	llms := NewLLMRepository(db, nil)
	chatbots := NewChatbotRepository(db, nil)
	ctx := context.Background()

	exists, err := reader.NameExists(ctx, "Acme")
	require.NoError(t, err)
	assert.False(t, exists)

	acme, err := writer.Create(ctx, &models.Company{Name: "Acme"})
	require.NoError(t, err)

	exists, err = reader.NameExists(ctx, "Acme")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = reader.NameExists(ctx, "acme")
	require.NoError(t, err)
	assert.False(t, exists, "name match is case-sensitive")

	_, err = writer.Create(ctx, &models.Company{Name: "Acme"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = llms.Create(ctx, &models.LLM{Name: "GPT", Specialization: "text", CompanyID: acme.ID})
	require.NoError(t, err)
	_, err = chatbots.Create(ctx, &models.Chatbot{Name: "Helper", CompanyID: acme.ID})
	require.NoError(t, err)

	_, err = chatbots.Create(ctx, &models.Chatbot{Name: "Orphan", CompanyID: acme.ID + 1000})
	assert.ErrorIs(t, err, ErrForeignKey)

	withLLMs, err := reader.GetWithLLMs(ctx, acme.ID)
	require.NoError(t, err)
	assert.Len(t, withLLMs.LLMs, 1)

	withBots, err := reader.GetWithChatbots(ctx, acme.ID)
	require.NoError(t, err)
	assert.Len(t, withBots.Chatbots, 1)

	require.NoError(t, writer.Delete(ctx, acme.ID))

	remainingLLMs, err := llms.GetByCompanyID(ctx, acme.ID)
	require.NoError(t, err)
	assert.Empty(t, remainingLLMs)

	remainingBots, err := chatbots.GetByCompanyID(ctx, acme.ID)
	require.NoError(t, err)
	assert.Empty(t, remainingBots)

	all, err := reader.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
