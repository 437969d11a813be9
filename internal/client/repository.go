// AngelaMos | 2026
// repository.go

package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fieldpro/fieldpro-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, userID, id string) (*Client, error)
	ListByUser(ctx context.Context, userID string) ([]Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, userID, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Client) error {
	query := `
		INSERT INTO clients (id, user_id, name, phone, email, address, city, state, zip)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		c.ID,
		c.UserID,
		c.Name,
		c.Phone,
		c.Email,
		c.Address,
		c.City,
		c.State,
		c.Zip,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create client: %w", core.ClassifyPgError(err))
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	userID, id string,
) (*Client, error) {
	query := `
		SELECT id, user_id, name, phone, email, address, city, state, zip,
			created_at, updated_at
		FROM clients
		WHERE id = $1 AND user_id = $2`

	var c Client
	err := r.db.GetContext(ctx, &c, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get client: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", core.ClassifyPgError(err))
	}

	return &c, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Client, error) {
	query := `
		SELECT id, user_id, name, phone, email, address, city, state, zip,
			created_at, updated_at
		FROM clients
		WHERE user_id = $1
		ORDER BY created_at DESC`

	clients := []Client{}
	err := r.db.SelectContext(ctx, &clients, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", core.ClassifyPgError(err))
	}

	return clients, nil
}

func (r *repository) Update(ctx context.Context, c *Client) error {
	query := `
		UPDATE clients
		SET name = $3, phone = $4, email = $5, address = $6, city = $7,
			state = $8, zip = $9, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		c.ID,
		c.UserID,
		c.Name,
		c.Phone,
		c.Email,
		c.Address,
		c.City,
		c.State,
		c.Zip,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update client: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update client: %w", core.ClassifyPgError(err))
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM clients WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete client: %w", core.ClassifyPgError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete client: %w", core.ErrNotFound)
	}

	return nil
}
