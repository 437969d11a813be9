// AngelaMos | 2026
// repository.go

package invoice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fieldpro/fieldpro-api/internal/core"
)

type Repository interface {
	// CreateWithItems inserts the invoice and all of its items in one
	// transaction. A failure on any insert leaves nothing behind.
	CreateWithItems(ctx context.Context, inv *Invoice, items []InvoiceItem) error
	GetByID(ctx context.Context, userID, id string) (*Invoice, error)
	// GetByIDUnscoped fetches by id regardless of owner so callers can
	// distinguish a missing invoice from someone else's.
	GetByIDUnscoped(ctx context.Context, id string) (*Invoice, error)
	ListByUser(ctx context.Context, userID string) ([]Invoice, error)
	ListItems(ctx context.Context, invoiceID string) ([]InvoiceItem, error)
	UpdateStatus(ctx context.Context, userID, id, status string) error
	Delete(ctx context.Context, userID, id string) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const invoiceColumns = `
	id, user_id, client_id, invoice_number, issue_date, due_date,
	total_cents, status, notes, created_at, updated_at`

func (r *repository) CreateWithItems(
	ctx context.Context,
	inv *Invoice,
	items []InvoiceItem,
) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO invoices (
				id, user_id, client_id, invoice_number, issue_date, due_date,
				total_cents, status, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING created_at, updated_at`

		err := tx.QueryRowxContext(ctx, query,
			inv.ID,
			inv.UserID,
			inv.ClientID,
			inv.InvoiceNumber,
			inv.IssueDate,
			inv.DueDate,
			inv.TotalCents,
			inv.Status,
			inv.Notes,
		).Scan(&inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert invoice: %w", core.ClassifyPgError(err))
		}

		itemQuery := `
			INSERT INTO invoice_items (
				id, invoice_id, description, quantity, unit_price_cents
			) VALUES ($1, $2, $3, $4, $5)`

		for i := range items {
			_, err := tx.ExecContext(ctx, itemQuery,
				items[i].ID,
				items[i].InvoiceID,
				items[i].Description,
				items[i].Quantity,
				items[i].UnitPriceCents,
			)
			if err != nil {
				return fmt.Errorf(
					"insert invoice item: %w",
					core.ClassifyPgError(err),
				)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	userID, id string,
) (*Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id = $1 AND user_id = $2`

	var inv Invoice
	err := r.db.GetContext(ctx, &inv, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get invoice: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", core.ClassifyPgError(err))
	}

	return &inv, nil
}

func (r *repository) GetByIDUnscoped(
	ctx context.Context,
	id string,
) (*Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id = $1`

	var inv Invoice
	err := r.db.GetContext(ctx, &inv, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get invoice: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", core.ClassifyPgError(err))
	}

	return &inv, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE user_id = $1
		ORDER BY created_at DESC`

	invoices := []Invoice{}
	err := r.db.SelectContext(ctx, &invoices, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", core.ClassifyPgError(err))
	}

	return invoices, nil
}

func (r *repository) ListItems(
	ctx context.Context,
	invoiceID string,
) ([]InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_price_cents
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY id`

	items := []InvoiceItem{}
	err := r.db.SelectContext(ctx, &items, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf(
			"list invoice items: %w",
			core.ClassifyPgError(err),
		)
	}

	return items, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	userID, id, status string,
) error {
	query := `
		UPDATE invoices
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", core.ClassifyPgError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update invoice status: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(
			ctx,
			`DELETE FROM invoice_items
			WHERE invoice_id IN (
				SELECT id FROM invoices WHERE id = $1 AND user_id = $2
			)`,
			id,
			userID,
		)
		if err != nil {
			return fmt.Errorf(
				"delete invoice items: %w",
				core.ClassifyPgError(err),
			)
		}

		result, err := tx.ExecContext(
			ctx,
			`DELETE FROM invoices WHERE id = $1 AND user_id = $2`,
			id,
			userID,
		)
		if err != nil {
			return fmt.Errorf("delete invoice: %w", core.ClassifyPgError(err))
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete invoice: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("delete invoice: %w", core.ErrNotFound)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}
