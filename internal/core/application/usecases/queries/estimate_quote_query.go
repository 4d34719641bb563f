package queries

import (
	"errors"

	"courierquote/internal/core/application/inputs"
	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrEstimateQuoteQueryIsNotConstructed = errors.New(
	"EstimateQuoteQuery must be created via NewEstimateQuoteQuery constructor",
)

// EstimateQuoteQuery asks for a priced estimate. Weights fail open to zero;
// the service name is the only input that can be rejected, since it selects
// the rate table.
//
// Example:
//
//	query, err := NewEstimateQuoteQuery("road", "15", "", "Johannesburg", "Upington")
//	if err != nil {
//	    return err // unknown service
//	}
//	res, err := handler.Handle(ctx, query)
//	fmt.Println(res.FormattedTotal) // R434.38
type EstimateQuoteQuery struct {
	service          tariff.ServiceType
	actualWeight     decimal.Decimal
	volumetricWeight decimal.Decimal
	origin           string
	destination      string

	guard guard.ConstructorGuard
}

func NewEstimateQuoteQuery(
	service, actualWeight, volumetricWeight, origin, destination string,
) (EstimateQuoteQuery, error) {
	serviceType, err := tariff.ParseServiceType(service)
	if err != nil {
		return EstimateQuoteQuery{}, err
	}

	return EstimateQuoteQuery{
		service:          serviceType,
		actualWeight:     inputs.NumberOr(actualWeight, decimal.Zero),
		volumetricWeight: inputs.NumberOr(volumetricWeight, decimal.Zero),
		origin:           inputs.Text(origin),
		destination:      inputs.Text(destination),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (q EstimateQuoteQuery) Validate() error {
	return q.guard.Validate(ErrEstimateQuoteQueryIsNotConstructed)
}

func (q EstimateQuoteQuery) Service() tariff.ServiceType       { return q.service }
func (q EstimateQuoteQuery) ActualWeight() decimal.Decimal     { return q.actualWeight }
func (q EstimateQuoteQuery) VolumetricWeight() decimal.Decimal { return q.volumetricWeight }
func (q EstimateQuoteQuery) Origin() string                    { return q.origin }
func (q EstimateQuoteQuery) Destination() string               { return q.destination }
