package queries

import (
	"context"
	"log/slog"

	"courierquote/internal/core/domain/model/kernel"
	"courierquote/internal/core/domain/model/quote"
	"courierquote/internal/core/domain/services"
)

// EstimateQuoteQueryResponse is a priced quote plus its rendered total.
type EstimateQuoteQueryResponse struct {
	Quote quote.Quote
	// FormattedTotal carries the currency prefix and two decimals, e.g. "R150.00".
	FormattedTotal string
}

// EstimateQuoteQueryHandler resolves the area for the route and then prices
// the shipment in it. Area resolution always finishes before pricing starts.
type EstimateQuoteQueryHandler struct {
	resolver services.AreaResolver
	engine   services.PriceEngine
	currency string
	logger   *slog.Logger
}

func NewEstimateQuoteQueryHandler(
	resolver services.AreaResolver,
	engine services.PriceEngine,
	currencySymbol string,
	logger *slog.Logger,
) EstimateQuoteQueryHandler {
	return EstimateQuoteQueryHandler{
		resolver: resolver,
		engine:   engine,
		currency: currencySymbol,
		logger:   logger.With("component", "estimate_quote"),
	}
}

func (h EstimateQuoteQueryHandler) Handle(
	ctx context.Context,
	query EstimateQuoteQuery,
) (EstimateQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateQuoteQueryResponse{}, err
	}

	state := h.resolver.Resolve(query.Origin(), query.Destination())

	total, err := h.engine.Price(query.Service(), query.ActualWeight(), query.VolumetricWeight(), state)
	if err != nil {
		return EstimateQuoteQueryResponse{}, err
	}
	total = total.Rounded()

	chargeable := h.engine.ChargeableWeight(query.ActualWeight(), query.VolumetricWeight())
	q, err := quote.NewQuote(kernel.NewUUID(), query.Service(), chargeable, state, total)
	if err != nil {
		return EstimateQuoteQueryResponse{}, err
	}

	h.logger.DebugContext(ctx, "quote estimated",
		"reference", q.Reference().String(),
		"service", q.Service().String(),
		"zone", q.ZoneKey(),
		"chargeable_kg", chargeable.String(),
		"total", total.String(),
	)

	return EstimateQuoteQueryResponse{
		Quote:          q,
		FormattedTotal: total.Format(h.currency),
	}, nil
}
