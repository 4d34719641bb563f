package queries

import (
	"context"

	"courierquote/internal/core/domain/model/area"
	"courierquote/internal/core/domain/services"
)

// ResolveAreaQueryHandler answers area queries with the resolver.
type ResolveAreaQueryHandler struct {
	resolver services.AreaResolver
}

func NewResolveAreaQueryHandler(resolver services.AreaResolver) ResolveAreaQueryHandler {
	return ResolveAreaQueryHandler{resolver: resolver}
}

func (h ResolveAreaQueryHandler) Handle(_ context.Context, query ResolveAreaQuery) (area.State, error) {
	if err := query.Validate(); err != nil {
		return area.State{}, err
	}

	return h.resolver.Resolve(query.Origin(), query.Destination()), nil
}
