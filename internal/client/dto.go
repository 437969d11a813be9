// AngelaMos | 2026
// dto.go

package client

import (
	"time"
)

type CreateClientRequest struct {
	Name    string `json:"name"    validate:"required,max=255"`
	Phone   string `json:"phone"   validate:"max=32"`
	Email   string `json:"email"   validate:"omitempty,email,max=255"`
	Address string `json:"address" validate:"max=255"`
	City    string `json:"city"    validate:"max=100"`
	State   string `json:"state"   validate:"max=50"`
	Zip     string `json:"zip"     validate:"max=20"`
}

type UpdateClientRequest struct {
	Name    string `json:"name"    validate:"required,max=255"`
	Phone   string `json:"phone"   validate:"max=32"`
	Email   string `json:"email"   validate:"omitempty,email,max=255"`
	Address string `json:"address" validate:"max=255"`
	City    string `json:"city"    validate:"max=100"`
	State   string `json:"state"   validate:"max=50"`
	Zip     string `json:"zip"     validate:"max=20"`
}

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	CallLink  string    `json:"call_link,omitempty"`
	TextLink  string    `json:"text_link,omitempty"`
	MapLink   string    `json:"map_link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

func ToClientResponse(c *Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		Zip:       c.Zip,
		CallLink:  c.CallLink(),
		TextLink:  c.TextLink(),
		MapLink:   c.MapLink(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
