// Package commands contains the use cases that hand work to the outside
// world: sending a quote request and refreshing the town table.
package commands

import (
	"errors"

	"courierquote/internal/core/application/inputs"
	"courierquote/internal/core/domain/model/kernel"
	"courierquote/internal/pkg/errs"
	"courierquote/internal/pkg/guard"
)

var ErrRequestQuoteCommandIsNotConstructed = errors.New(
	"RequestQuoteCommand must be created via NewRequestQuoteCommand constructor",
)

// RequestQuoteCommand asks the courier for a firm quote. Recipient may be
// empty, in which case the handler's default recipient is used. QuoteRef,
// when given, must be the reference of an earlier estimate.
//
// Example:
//
//	cmd, err := NewRequestQuoteCommand("Thandi", "thandi@example.com", "", "2 boxes, JHB to DBN", "")
//	if err != nil {
//	    return err
//	}
//	receipt, err := handler.Handle(ctx, cmd)
type RequestQuoteCommand struct { //nolint:recvcheck //using for validation
	name      string
	email     string
	recipient string
	details   string
	quoteRef  string

	guard guard.ConstructorGuard
}

func NewRequestQuoteCommand(name, email, recipient, details, quoteRef string) (RequestQuoteCommand, error) {
	cmd := RequestQuoteCommand{
		recipient: inputs.Text(recipient),
		details:   inputs.Text(details),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setQuoteRef(quoteRef),
	); err != nil {
		return RequestQuoteCommand{}, err
	}

	return cmd, nil
}

func (c RequestQuoteCommand) Validate() error {
	return c.guard.Validate(ErrRequestQuoteCommandIsNotConstructed)
}

func (c RequestQuoteCommand) Name() string      { return c.name }
func (c RequestQuoteCommand) Email() string     { return c.email }
func (c RequestQuoteCommand) Recipient() string { return c.recipient }
func (c RequestQuoteCommand) Details() string   { return c.details }
func (c RequestQuoteCommand) QuoteRef() string  { return c.quoteRef }

func (c *RequestQuoteCommand) setName(name string) error {
	name = inputs.Text(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RequestQuoteCommand) setEmail(email string) error {
	email = inputs.Text(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RequestQuoteCommand) setQuoteRef(ref string) error {
	ref = inputs.Text(ref)
	if ref == "" {
		return nil
	}
	id, err := kernel.UUIDFromString(ref)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("quote_ref", err)
	}
	c.quoteRef = id.String()
	return nil
}
