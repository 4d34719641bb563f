// Package quote holds the Quote value object: one priced estimate, created
// fresh on every calculation and never stored.
package quote

import (
	"errors"

	"courierquote/internal/core/domain/model/area"
	"courierquote/internal/core/domain/model/kernel"
	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/pkg/errs"
	"courierquote/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrQuoteIsNotConstructed is returned when a zero-value Quote is used.
var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")

// Quote is an immutable priced estimate.
//
// Example:
//
//	q, err := quote.NewQuote(kernel.NewUUID(), tariff.Road, chargeable, state, total)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(q.ZoneKey(), q.Total().Format("R")) // durban R211.96
type Quote struct {
	reference        kernel.UUID
	service          tariff.ServiceType
	chargeableWeight decimal.Decimal
	area             area.State
	total            kernel.Money

	guard guard.ConstructorGuard
}

// NewQuote validates its parts. Chargeable weight and total must not be negative.
func NewQuote(
	reference kernel.UUID,
	service tariff.ServiceType,
	chargeableWeight decimal.Decimal,
	state area.State,
	total kernel.Money,
) (Quote, error) {
	q := Quote{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setReference(reference),
		q.setService(service),
		q.setChargeableWeight(chargeableWeight),
		q.setArea(state),
		q.setTotal(total),
	); err != nil {
		return Quote{}, err
	}

	return q, nil
}

func (q Quote) Validate() error {
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

// Reference identifies the quote in a follow-up quote request.
func (q Quote) Reference() kernel.UUID { return q.reference }

func (q Quote) Service() tariff.ServiceType { return q.service }

// ChargeableWeight is the greater of actual and volumetric weight, never negative.
func (q Quote) ChargeableWeight() decimal.Decimal { return q.chargeableWeight }

// Area is the resolved area the quote was priced in.
func (q Quote) Area() area.State { return q.area }

// ZoneKey is the tariff key that priced this quote's service.
func (q Quote) ZoneKey() string { return q.area.ZoneKey(q.service) }

// Total is the exact price including any documentation fee.
func (q Quote) Total() kernel.Money { return q.total }

func (q *Quote) setReference(reference kernel.UUID) error {
	if err := reference.Validate(); err != nil {
		return err
	}
	q.reference = reference
	return nil
}

func (q *Quote) setService(service tariff.ServiceType) error {
	if err := service.Validate(); err != nil {
		return err
	}
	q.service = service
	return nil
}

func (q *Quote) setChargeableWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return errs.NewValueIsOutOfRangeError("chargeable_weight", weight, 0, "∞")
	}
	q.chargeableWeight = weight
	return nil
}

func (q *Quote) setArea(state area.State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	q.area = state
	return nil
}

func (q *Quote) setTotal(total kernel.Money) error {
	if total.IsNegative() {
		return errs.NewValueIsOutOfRangeError("total", total, 0, "∞")
	}
	q.total = total
	return nil
}
