package ports

import "context"

// QuoteRequest is a visitor's request for a firm quote.
type QuoteRequest struct {
	Name      string
	Email     string
	Recipient string
	Details   string
	// QuoteRef is the reference of the estimate the visitor saw, if any.
	QuoteRef string
}

// QuoteRequestReceipt describes how the request was handed off. For the
// mailto sender, Link is the pre-filled mailto: URL for the visitor to open.
type QuoteRequestReceipt struct {
	Link string
}

// QuoteRequestSender hands a quote request to whoever answers it.
type QuoteRequestSender interface {
	Send(ctx context.Context, req QuoteRequest) (QuoteRequestReceipt, error)
}
