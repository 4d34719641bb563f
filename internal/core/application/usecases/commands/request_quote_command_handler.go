package commands

import (
	"context"
	"fmt"
	"log/slog"

	"courierquote/internal/core/ports"
)

// RequestQuoteCommandHandler fills in the default recipient and passes the
// request to a QuoteRequestSender.
type RequestQuoteCommandHandler struct {
	sender           ports.QuoteRequestSender
	defaultRecipient string
	logger           *slog.Logger
}

func NewRequestQuoteCommandHandler(
	sender ports.QuoteRequestSender,
	defaultRecipient string,
	logger *slog.Logger,
) RequestQuoteCommandHandler {
	return RequestQuoteCommandHandler{
		sender:           sender,
		defaultRecipient: defaultRecipient,
		logger:           logger.With("component", "request_quote"),
	}
}

func (h RequestQuoteCommandHandler) Handle(ctx context.Context, cmd RequestQuoteCommand) (ports.QuoteRequestReceipt, error) {
	if err := cmd.Validate(); err != nil {
		return ports.QuoteRequestReceipt{}, err
	}

	recipient := cmd.Recipient()
	if recipient == "" {
		recipient = h.defaultRecipient
	}

	receipt, err := h.sender.Send(ctx, ports.QuoteRequest{
		Name:      cmd.Name(),
		Email:     cmd.Email(),
		Recipient: recipient,
		Details:   cmd.Details(),
		QuoteRef:  cmd.QuoteRef(),
	})
	if err != nil {
		return ports.QuoteRequestReceipt{}, fmt.Errorf("send quote request: %w", err)
	}

	h.logger.InfoContext(ctx, "quote request prepared", "recipient", recipient, "quote_ref", cmd.QuoteRef())
	return receipt, nil
}
