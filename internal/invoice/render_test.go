// AngelaMos | 2026
// render_test.go

package invoice

import (
	"strings"
	"testing"
	"time"

	"github.com/fieldpro/fieldpro-api/internal/client"
	"github.com/fieldpro/fieldpro-api/internal/company"
)

func renderFixture() RenderData {
	return RenderData{
		Invoice: &Invoice{
			ID:            "inv-42",
			InvoiceNumber: "INV-2026-0042",
			IssueDate:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			TotalCents:    6000,
			Notes:         "Thanks for your business",
		},
		Items: []InvoiceItem{
			{Description: "Mowing", Quantity: 2, UnitPriceCents: 2500},
			{Description: "Edging", Quantity: 1, UnitPriceCents: 1000},
		},
		Client: &client.Client{
			Name:  "Dana Alvarez",
			Email: "dana@example.com",
		},
		Company: &company.Profile{
			CompanyName: "GreenLine Lawn Care",
			StripeLink:  "https://buy.stripe.com/abc",
		},
	}
}

func TestRenderEmailIncludesTotalsAndLines(t *testing.T) {
	html, err := RenderEmail(renderFixture())
	if err != nil {
		t.Fatalf("RenderEmail: %v", err)
	}

	for _, want := range []string{
		"INV-2026-0042",
		"GreenLine Lawn Care",
		"Dana Alvarez",
		"Mowing",
		"$25.00",
		"Total: $60.00",
		"Thanks for your business",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestRenderPaymentLinkPriority(t *testing.T) {
	data := renderFixture()
	data.Company = &company.Profile{
		CompanyName:      "GreenLine Lawn Care",
		PaypalLink:       "https://paypal.me/green",
		StripeLink:       "https://buy.stripe.com/abc",
		VenmoLink:        "https://venmo.com/green",
		LemonSqueezyLink: "https://green.lemonsqueezy.com/buy",
	}

	html, err := RenderEmail(data)
	if err != nil {
		t.Fatalf("RenderEmail: %v", err)
	}

	if !strings.Contains(html, "https://green.lemonsqueezy.com/buy") {
		t.Error("expected lemonsqueezy link to win priority")
	}
	if strings.Contains(html, "https://buy.stripe.com/abc") {
		t.Error("lower-priority link should not appear")
	}
}

func TestRenderFallsBackToContactPrompt(t *testing.T) {
	data := renderFixture()
	data.Company = &company.Profile{CompanyName: "GreenLine Lawn Care"}

	html, err := RenderEmail(data)
	if err != nil {
		t.Fatalf("RenderEmail: %v", err)
	}

	if strings.Contains(html, "Pay Now") {
		t.Error("no payment button expected without links")
	}
	if !strings.Contains(html, "contact GreenLine Lawn Care") {
		t.Error("expected contact prompt fallback")
	}
}

func TestRenderEmailLinksHostedInvoice(t *testing.T) {
	data := renderFixture()
	data.BaseURL = "https://app.fieldpro.example/"

	html, err := RenderEmail(data)
	if err != nil {
		t.Fatalf("RenderEmail: %v", err)
	}
	if !strings.Contains(html, "https://app.fieldpro.example/invoices/inv-42") {
		t.Error("email missing online-view link")
	}
	if !strings.Contains(html, "view this invoice online") {
		t.Error("email missing online-view footer text")
	}

	doc, err := RenderDocument(data)
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if strings.Contains(doc, "/invoices/inv-42") {
		t.Error("document should not link to itself")
	}
}

func TestRenderEmailWithoutBaseURLOmitsLink(t *testing.T) {
	html, err := RenderEmail(renderFixture())
	if err != nil {
		t.Fatalf("RenderEmail: %v", err)
	}
	if strings.Contains(html, "view this invoice online") {
		t.Error("no online-view footer expected without a base url")
	}
}

func TestRenderDocumentIsFullPage(t *testing.T) {
	html, err := RenderDocument(renderFixture())
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("document should be a standalone page")
	}
	if !strings.Contains(html, "Total: $60.00") {
		t.Error("document missing total")
	}
}

func TestRenderWithoutCompanyProfile(t *testing.T) {
	data := renderFixture()
	data.Company = nil

	html, err := RenderEmail(data)
	if err != nil {
		t.Fatalf("RenderEmail: %v", err)
	}

	if !strings.Contains(html, "Your service provider") {
		t.Error("expected placeholder company name")
	}
}

func TestEmailSubject(t *testing.T) {
	inv := &Invoice{InvoiceNumber: "INV-2026-0042"}

	got := EmailSubject(inv, "GreenLine Lawn Care")
	if got != "Invoice INV-2026-0042 from GreenLine Lawn Care" {
		t.Fatalf("subject = %q", got)
	}

	got = EmailSubject(inv, "")
	if got != "Invoice INV-2026-0042" {
		t.Fatalf("subject without company = %q", got)
	}
}
