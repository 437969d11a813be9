// AngelaMos | 2026
// entity_test.go

package company

import (
	"testing"
)

func TestPaymentLinkPriority(t *testing.T) {
	cases := []struct {
		name    string
		profile Profile
		want    string
	}{
		{
			name: "lemonsqueezy beats everything",
			profile: Profile{
				PaypalLink:       "https://paypal.me/x",
				StripeLink:       "https://stripe.com/x",
				VenmoLink:        "https://venmo.com/x",
				LemonSqueezyLink: "https://x.lemonsqueezy.com",
			},
			want: "https://x.lemonsqueezy.com",
		},
		{
			name: "stripe beats paypal and venmo",
			profile: Profile{
				PaypalLink: "https://paypal.me/x",
				StripeLink: "https://stripe.com/x",
				VenmoLink:  "https://venmo.com/x",
			},
			want: "https://stripe.com/x",
		},
		{
			name: "paypal beats venmo",
			profile: Profile{
				PaypalLink: "https://paypal.me/x",
				VenmoLink:  "https://venmo.com/x",
			},
			want: "https://paypal.me/x",
		},
		{
			name:    "venmo last",
			profile: Profile{VenmoLink: "https://venmo.com/x"},
			want:    "https://venmo.com/x",
		},
		{
			name:    "no links",
			profile: Profile{},
			want:    "",
		},
		{
			name: "whitespace is treated as unset",
			profile: Profile{
				LemonSqueezyLink: "   ",
				StripeLink:       "https://stripe.com/x",
			},
			want: "https://stripe.com/x",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.profile.PaymentLink(); got != c.want {
				t.Fatalf("PaymentLink() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestProfileFullAddress(t *testing.T) {
	p := Profile{Address: "12 Main St", City: "Springfield", Zip: "62704"}
	if got := p.FullAddress(); got != "12 Main St, Springfield, 62704" {
		t.Fatalf("FullAddress() = %q", got)
	}

	empty := Profile{}
	if got := empty.FullAddress(); got != "" {
		t.Fatalf("FullAddress() = %q, want empty", got)
	}
}
