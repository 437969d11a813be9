// AngelaMos | 2026
// entity.go

package client

import (
	"net/url"
	"strings"
	"time"
)

type Client struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	Address   string    `db:"address"`
	City      string    `db:"city"`
	State     string    `db:"state"`
	Zip       string    `db:"zip"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// DialablePhone strips formatting characters so the number can be used in
// tel: and sms: links. A leading + is preserved.
func (c *Client) DialablePhone() string {
	var b strings.Builder
	for i, r := range c.Phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c *Client) CallLink() string {
	phone := c.DialablePhone()
	if phone == "" {
		return ""
	}
	return "tel:" + phone
}

func (c *Client) TextLink() string {
	phone := c.DialablePhone()
	if phone == "" {
		return ""
	}
	return "sms:" + phone
}

// FullAddress joins the populated address parts with commas.
func (c *Client) FullAddress() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.Address, c.City, c.State, c.Zip} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}

func (c *Client) MapLink() string {
	addr := c.FullAddress()
	if addr == "" {
		return ""
	}
	return "https://www.google.com/maps/search/?api=1&query=" +
		url.QueryEscape(addr)
}
