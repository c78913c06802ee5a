package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с клиентами салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись клиента, привязанную к пользователю
// Вызывается лениво при первом бронировании
func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns(
			"user_id",
			"name",
			"phone",
			"address",
		).
		Values(
			c.UserID,
			c.Name,
			c.Phone,
			c.Address,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return r.getByCondition(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByUserID получает клиента по ID связанного пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Client, error) {
	return r.getByCondition(ctx, "GetByUserID", squirrel.Eq{"user_id": userID})
}

// getByCondition общий код выборки одного клиента
func (r *Repository) getByCondition(ctx context.Context, op string, where squirrel.Eq) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"name",
		"phone",
		"address",
		"created_at",
		"updated_at",
	).
		From("clients").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var c domain.Client
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Phone,
		&c.Address,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan client: %v", ErrScanRow, op, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
