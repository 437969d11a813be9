// AngelaMos | 2026
// repository.go

package company

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fieldpro/fieldpro-api/internal/core"
)

type Repository interface {
	Upsert(ctx context.Context, p *Profile) error
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO company_profiles (
			id, user_id, company_name, address, city, state, zip,
			phone, email, logo_url,
			paypal_link, stripe_link, venmo_link, lemonsqueezy_link
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip = EXCLUDED.zip,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			logo_url = EXCLUDED.logo_url,
			paypal_link = EXCLUDED.paypal_link,
			stripe_link = EXCLUDED.stripe_link,
			venmo_link = EXCLUDED.venmo_link,
			lemonsqueezy_link = EXCLUDED.lemonsqueezy_link,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		p.ID,
		p.UserID,
		p.CompanyName,
		p.Address,
		p.City,
		p.State,
		p.Zip,
		p.Phone,
		p.Email,
		p.LogoURL,
		p.PaypalLink,
		p.StripeLink,
		p.VenmoLink,
		p.LemonSqueezyLink,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", core.ClassifyPgError(err))
	}

	return nil
}

func (r *repository) GetByUserID(
	ctx context.Context,
	userID string,
) (*Profile, error) {
	query := `
		SELECT id, user_id, company_name, address, city, state, zip,
			phone, email, logo_url,
			paypal_link, stripe_link, venmo_link, lemonsqueezy_link,
			created_at, updated_at
		FROM company_profiles
		WHERE user_id = $1`

	var p Profile
	err := r.db.GetContext(ctx, &p, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", core.ClassifyPgError(err))
	}

	return &p, nil
}
