// AngelaMos | 2026
// dto.go

package company

import (
	"time"
)

type UpsertProfileRequest struct {
	CompanyName      string `json:"company_name"      validate:"required,max=255"`
	Address          string `json:"address"           validate:"max=255"`
	City             string `json:"city"              validate:"max=100"`
	State            string `json:"state"             validate:"max=50"`
	Zip              string `json:"zip"               validate:"max=20"`
	Phone            string `json:"phone"             validate:"max=32"`
	Email            string `json:"email"             validate:"omitempty,email,max=255"`
	LogoURL          string `json:"logo_url"          validate:"omitempty,url,max=512"`
	PaypalLink       string `json:"paypal_link"       validate:"omitempty,url,max=512"`
	StripeLink       string `json:"stripe_link"       validate:"omitempty,url,max=512"`
	VenmoLink        string `json:"venmo_link"        validate:"omitempty,url,max=512"`
	LemonSqueezyLink string `json:"lemonsqueezy_link" validate:"omitempty,url,max=512"`
}

type ProfileResponse struct {
	ID               string    `json:"id"`
	CompanyName      string    `json:"company_name"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Zip              string    `json:"zip"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	LogoURL          string    `json:"logo_url"`
	PaypalLink       string    `json:"paypal_link"`
	StripeLink       string    `json:"stripe_link"`
	VenmoLink        string    `json:"venmo_link"`
	LemonSqueezyLink string    `json:"lemonsqueezy_link"`
	PaymentLink      string    `json:"payment_link,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToProfileResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		ID:               p.ID,
		CompanyName:      p.CompanyName,
		Address:          p.Address,
		City:             p.City,
		State:            p.State,
		Zip:              p.Zip,
		Phone:            p.Phone,
		Email:            p.Email,
		LogoURL:          p.LogoURL,
		PaypalLink:       p.PaypalLink,
		StripeLink:       p.StripeLink,
		VenmoLink:        p.VenmoLink,
		LemonSqueezyLink: p.LemonSqueezyLink,
		PaymentLink:      p.PaymentLink(),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
