package queries

import (
	"context"
	"errors"

	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/core/domain/model/town"
	"courierquote/internal/pkg/guard"
)

var ErrGetTariffQueryIsNotConstructed = errors.New(
	"GetTariffQuery must be created via NewGetTariffQuery constructor",
)

// GetTariffQuery asks for the active price list, for pages that show it.
type GetTariffQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTariffQuery() GetTariffQuery {
	return GetTariffQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTariffQuery) Validate() error {
	return q.guard.Validate(ErrGetTariffQueryIsNotConstructed)
}

// GetTariffQueryResponse is the active price list and the towns forced to
// regional pricing.
type GetTariffQueryResponse struct {
	Tariff tariff.Tariff
	// RegionalOverrides are normalized town names, sorted.
	RegionalOverrides []string
}

// GetTariffQueryHandler returns the tariff and override set it was built with.
type GetTariffQueryHandler struct {
	tariff    tariff.Tariff
	overrides town.OverrideSet
}

func NewGetTariffQueryHandler(t tariff.Tariff, overrides town.OverrideSet) GetTariffQueryHandler {
	return GetTariffQueryHandler{tariff: t, overrides: overrides}
}

func (h GetTariffQueryHandler) Handle(_ context.Context, query GetTariffQuery) (GetTariffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTariffQueryResponse{}, err
	}
	if err := h.tariff.Validate(); err != nil {
		return GetTariffQueryResponse{}, err
	}
	return GetTariffQueryResponse{
		Tariff:            h.tariff,
		RegionalOverrides: h.overrides.Names(),
	}, nil
}
