// Package mailto turns a quote request into a pre-filled mailto: link for the
// visitor's own mail client. Nothing is sent from the server.
package mailto

import (
	"context"
	"net/url"
	"strings"

	"courierquote/internal/core/ports"
	"courierquote/internal/pkg/errs"
)

// Subject is the subject line of every quote request.
const Subject = "Courier quote request"

// componentReplacer turns url.QueryEscape output into encodeURIComponent
// output, which is what mail clients expect inside a mailto: link.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

var _ ports.QuoteRequestSender = Sender{}

// Sender implements ports.QuoteRequestSender by building a mailto: link.
type Sender struct{}

func NewSender() Sender {
	return Sender{}
}

// Send returns the link in the receipt. It fails only without a recipient.
func (Sender) Send(ctx context.Context, req ports.QuoteRequest) (ports.QuoteRequestReceipt, error) {
	if err := ctx.Err(); err != nil {
		return ports.QuoteRequestReceipt{}, err
	}
	if strings.TrimSpace(req.Recipient) == "" {
		return ports.QuoteRequestReceipt{}, errs.NewValueIsRequiredError("recipient")
	}

	link := "mailto:" + strings.TrimSpace(req.Recipient) +
		"?subject=" + EncodeComponent(Subject) +
		"&body=" + EncodeComponent(Body(req))

	return ports.QuoteRequestReceipt{Link: link}, nil
}

// Body renders the email body.
func Body(req ports.QuoteRequest) string {
	var b strings.Builder
	b.WriteString("Name: ")
	b.WriteString(req.Name)
	b.WriteString("\nEmail: ")
	b.WriteString(req.Email)
	b.WriteString("\n\nPickup & delivery details:\n")
	b.WriteString(req.Details)
	if req.QuoteRef != "" {
		b.WriteString("\n\nQuote reference: ")
		b.WriteString(req.QuoteRef)
	}
	return b.String()
}

// EncodeComponent percent-encodes s the way encodeURIComponent does.
func EncodeComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}
