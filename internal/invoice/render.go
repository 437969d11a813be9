// AngelaMos | 2026
// render.go

package invoice

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/fieldpro/fieldpro-api/internal/client"
	"github.com/fieldpro/fieldpro-api/internal/company"
	"github.com/fieldpro/fieldpro-api/internal/core"
)

// RenderData carries everything the document and email templates need. The
// company profile may be nil when the account has not filled one in.
// BaseURL is the public app origin; when set, the email footer links the
// hosted copy of the invoice.
type RenderData struct {
	Invoice *Invoice
	Items   []InvoiceItem
	Client  *client.Client
	Company *company.Profile
	BaseURL string
}

type templateLine struct {
	Description string
	Quantity    int64
	UnitPrice   string
	LineTotal   string
}

type templateData struct {
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	LogoURL        string
	InvoiceNumber  string
	IssueDate      string
	DueDate        string
	ClientName     string
	ClientAddress  string
	ClientEmail    string
	Lines          []templateLine
	Total          string
	PaymentLink    string
	InvoiceURL     string
	Notes          string
}

const dateLayout = "January 2, 2006"

var documentTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNumber}}</title>
</head>
<body style="font-family: Arial, sans-serif; color: #1a1a1a; max-width: 640px; margin: 0 auto; padding: 24px;">
{{template "body" .}}
</body>
</html>`))

var emailTmpl *template.Template

func init() {
	body := `{{define "body"}}<div style="border-bottom: 2px solid #1a1a1a; padding-bottom: 16px; margin-bottom: 24px;">
{{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.CompanyName}}" style="max-height: 64px; margin-bottom: 8px;">{{end}}
<h1 style="margin: 0; font-size: 24px;">{{.CompanyName}}</h1>
{{if .CompanyAddress}}<p style="margin: 4px 0; color: #555;">{{.CompanyAddress}}</p>{{end}}
{{if .CompanyPhone}}<p style="margin: 4px 0; color: #555;">{{.CompanyPhone}}</p>{{end}}
</div>
<table style="width: 100%; margin-bottom: 24px;"><tr>
<td style="vertical-align: top;">
<p style="margin: 0; font-weight: bold;">Bill To</p>
<p style="margin: 4px 0;">{{.ClientName}}</p>
{{if .ClientAddress}}<p style="margin: 4px 0; color: #555;">{{.ClientAddress}}</p>{{end}}
{{if .ClientEmail}}<p style="margin: 4px 0; color: #555;">{{.ClientEmail}}</p>{{end}}
</td>
<td style="vertical-align: top; text-align: right;">
<p style="margin: 0; font-size: 18px; font-weight: bold;">Invoice {{.InvoiceNumber}}</p>
<p style="margin: 4px 0;">Issued: {{.IssueDate}}</p>
<p style="margin: 4px 0;">Due: {{.DueDate}}</p>
</td>
</tr></table>
<table style="width: 100%; border-collapse: collapse; margin-bottom: 16px;">
<tr style="background: #f4f4f4;">
<th style="text-align: left; padding: 8px; border-bottom: 1px solid #ddd;">Description</th>
<th style="text-align: right; padding: 8px; border-bottom: 1px solid #ddd;">Qty</th>
<th style="text-align: right; padding: 8px; border-bottom: 1px solid #ddd;">Unit Price</th>
<th style="text-align: right; padding: 8px; border-bottom: 1px solid #ddd;">Amount</th>
</tr>
{{range .Lines}}<tr>
<td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Description}}</td>
<td style="text-align: right; padding: 8px; border-bottom: 1px solid #eee;">{{.Quantity}}</td>
<td style="text-align: right; padding: 8px; border-bottom: 1px solid #eee;">{{.UnitPrice}}</td>
<td style="text-align: right; padding: 8px; border-bottom: 1px solid #eee;">{{.LineTotal}}</td>
</tr>
{{end}}</table>
<p style="text-align: right; font-size: 18px; font-weight: bold;">Total: {{.Total}}</p>
{{if .PaymentLink}}<p style="text-align: right;"><a href="{{.PaymentLink}}" style="display: inline-block; background: #1a7f37; color: #ffffff; padding: 10px 20px; text-decoration: none; border-radius: 4px;">Pay Now</a></p>
{{else}}<p style="text-align: right; color: #555;">Please contact {{.CompanyName}} to arrange payment.</p>
{{end}}{{if .Notes}}<div style="margin-top: 24px; padding-top: 16px; border-top: 1px solid #ddd;">
<p style="font-weight: bold; margin: 0 0 4px;">Notes</p>
<p style="margin: 0; color: #555;">{{.Notes}}</p>
</div>
{{end}}{{end}}`

	template.Must(documentTmpl.Parse(body))

	// The online-view footer belongs to the email wrapper only; the
	// document endpoint serves the hosted copy itself.
	emailTmpl = template.Must(template.New("email").Parse(
		`<div style="font-family: Arial, sans-serif; color: #1a1a1a; max-width: 640px; margin: 0 auto;">{{template "body" .}}{{if .InvoiceURL}}<div style="margin-top: 24px; padding-top: 16px; border-top: 1px solid #ddd; text-align: center;">
<p style="margin: 0; color: #888; font-size: 12px;">You can also view this invoice online: <a href="{{.InvoiceURL}}" style="color: #2563eb;">{{.InvoiceURL}}</a></p>
</div>{{end}}</div>`,
	))
	template.Must(emailTmpl.Parse(body))
}

func buildTemplateData(data RenderData) templateData {
	companyName := "Your service provider"
	td := templateData{
		InvoiceNumber: data.Invoice.InvoiceNumber,
		IssueDate:     data.Invoice.IssueDate.Format(dateLayout),
		DueDate:       data.Invoice.DueDate.Format(dateLayout),
		Total:         core.FormatCents(data.Invoice.TotalCents),
		Notes:         data.Invoice.Notes,
	}

	if data.Client != nil {
		td.ClientName = data.Client.Name
		td.ClientAddress = data.Client.FullAddress()
		td.ClientEmail = data.Client.Email
	}

	if data.Company != nil {
		if strings.TrimSpace(data.Company.CompanyName) != "" {
			companyName = data.Company.CompanyName
		}
		td.CompanyAddress = data.Company.FullAddress()
		td.CompanyPhone = data.Company.Phone
		td.CompanyEmail = data.Company.Email
		td.LogoURL = data.Company.LogoURL
		td.PaymentLink = data.Company.PaymentLink()
	}
	td.CompanyName = companyName

	if base := strings.TrimSpace(data.BaseURL); base != "" {
		td.InvoiceURL = strings.TrimRight(base, "/") + "/invoices/" + data.Invoice.ID
	}

	lines := make([]templateLine, 0, len(data.Items))
	for i := range data.Items {
		lines = append(lines, templateLine{
			Description: data.Items[i].Description,
			Quantity:    data.Items[i].Quantity,
			UnitPrice:   core.FormatCents(data.Items[i].UnitPriceCents),
			LineTotal:   core.FormatCents(data.Items[i].LineTotalCents()),
		})
	}
	td.Lines = lines

	return td
}

// RenderDocument produces the standalone HTML invoice page.
func RenderDocument(data RenderData) (string, error) {
	var b strings.Builder
	if err := documentTmpl.Execute(&b, buildTemplateData(data)); err != nil {
		return "", fmt.Errorf("render invoice document: %w", err)
	}
	return b.String(), nil
}

// RenderEmail produces the HTML body for the invoice email. It shares the
// visual structure of the document without the page wrapper.
func RenderEmail(data RenderData) (string, error) {
	var b strings.Builder
	if err := emailTmpl.Execute(&b, buildTemplateData(data)); err != nil {
		return "", fmt.Errorf("render invoice email: %w", err)
	}
	return b.String(), nil
}

// EmailSubject is the subject line used when an invoice is delivered.
func EmailSubject(inv *Invoice, companyName string) string {
	if strings.TrimSpace(companyName) == "" {
		return fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
	}
	return fmt.Sprintf("Invoice %s from %s", inv.InvoiceNumber, companyName)
}
