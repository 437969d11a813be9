// AngelaMos | 2026
// entity.go

package company

import (
	"strings"
	"time"
)

// Profile is the operator's business identity shown on invoices. One row per
// account, written with an upsert.
type Profile struct {
	ID               string    `db:"id"`
	UserID           string    `db:"user_id"`
	CompanyName      string    `db:"company_name"`
	Address          string    `db:"address"`
	City             string    `db:"city"`
	State            string    `db:"state"`
	Zip              string    `db:"zip"`
	Phone            string    `db:"phone"`
	Email            string    `db:"email"`
	LogoURL          string    `db:"logo_url"`
	PaypalLink       string    `db:"paypal_link"`
	StripeLink       string    `db:"stripe_link"`
	VenmoLink        string    `db:"venmo_link"`
	LemonSqueezyLink string    `db:"lemonsqueezy_link"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// PaymentLink picks the single payment URL shown on an invoice. Providers are
// tried in a fixed priority order; an empty result means the invoice falls
// back to a "contact us to pay" line.
func (p *Profile) PaymentLink() string {
	for _, link := range []string{
		p.LemonSqueezyLink,
		p.StripeLink,
		p.PaypalLink,
		p.VenmoLink,
	} {
		if strings.TrimSpace(link) != "" {
			return strings.TrimSpace(link)
		}
	}
	return ""
}

func (p *Profile) FullAddress() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Address, p.City, p.State, p.Zip} {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
		}
	}
	return strings.Join(parts, ", ")
}
