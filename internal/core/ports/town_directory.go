// Package ports defines the contracts between the quote engine and the
// infrastructure that feeds it or carries its output.
package ports

import (
	"context"

	"courierquote/internal/core/domain/model/town"
)

// TownDirectory is the town→category lookup table supplied by the host.
// An empty or not-yet-loaded directory is a valid state: every lookup misses.
type TownDirectory interface {
	// Lookup finds a town by its normalized key (see town.NormalizeName).
	Lookup(key string) (town.Record, bool)
}

// TownDirectoryReloader refreshes a TownDirectory from its source.
// A failed reload must leave the previously loaded table in place.
type TownDirectoryReloader interface {
	Reload(ctx context.Context) (int, error)
}
