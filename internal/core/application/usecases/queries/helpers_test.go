package queries_test

import (
	"io"
	"log/slog"

	"courierquote/internal/core/application/usecases/queries"
	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/core/domain/model/town"
	"courierquote/internal/core/domain/services"
)

type townTable map[string]town.Category

func (t townTable) Lookup(key string) (town.Record, bool) {
	category, ok := t[key]
	return town.Record{Name: key, Category: category}, ok
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newResolver() services.AreaResolver {
	towns := townTable{
		"johannesburg":  town.CategoryMajor,
		"pretoria":      town.CategoryMajor,
		"durban":        town.CategoryMajor,
		"somerset west": town.CategoryMajor,
		"upington":      town.CategoryRegional,
	}
	return services.NewAreaResolver(services.NewTownClassifier(towns, town.DefaultOverrides()))
}

func newEstimateHandler(t tariff.Tariff) queries.EstimateQuoteQueryHandler {
	return queries.NewEstimateQuoteQueryHandler(
		newResolver(),
		services.NewPriceEngine(t),
		t.CurrencySymbol(),
		discardLogger(),
	)
}
