// Package towndata provides a town directory backed by a YAML or JSON file.
// The file has the shape the estimator page expects of TOWN_DATA: a mapping
// from town name to a record with at least a category.
//
//	durban:
//	  name: Durban
//	  category: major
//	knysna:
//	  category: regional
//
// JSON is valid YAML, so {"durban": {"category": "major"}} loads as well.
package towndata

import (
	"courierquote/internal/core/domain/model/town"
)

// TownDTO is one entry of the town file.
type TownDTO struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// toDomain builds the lookup table, keyed by normalized town name.
// Entries whose key normalizes to an empty string are skipped. The category
// is kept verbatim: only an exact "major" makes a town major.
func toDomain(dtos map[string]TownDTO) map[string]town.Record {
	towns := make(map[string]town.Record, len(dtos))
	for key, dto := range dtos {
		normalized := town.NormalizeName(key)
		if normalized == "" {
			continue
		}

		name := dto.Name
		if name == "" {
			name = key
		}
		towns[normalized] = town.Record{
			Name:     name,
			Category: town.Category(dto.Category),
		}
	}
	return towns
}
