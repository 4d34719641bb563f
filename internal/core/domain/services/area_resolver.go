package services

import (
	"strings"

	"courierquote/internal/core/domain/model/area"
	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/core/domain/model/town"
)

// roadDestination maps destination name fragments to a road zone.
type roadDestination struct {
	fragments []string
	zone      tariff.RoadZone
}

// roadDestinations is checked in order; the first match wins.
var roadDestinations = []roadDestination{
	{fragments: []string{"durban"}, zone: tariff.Durban},
	{fragments: []string{"cape town"}, zone: tariff.CapeTown},
	{fragments: []string{"port elizabeth", "gqeberha"}, zone: tariff.PortElizabeth},
	{fragments: []string{"east london"}, zone: tariff.EastLondon},
	{fragments: []string{"bloemfontein"}, zone: tariff.Bloemfontein},
	{fragments: []string{"george"}, zone: tariff.George},
}

// AreaResolver selects the overnight and road zones for a route.
//
// Business rules:
//   - Overnight pricing is major_other only when both ends are major towns,
//     otherwise regional_other. City-specific overnight zones are never chosen
//     automatically.
//   - Road pricing follows the destination name when it contains a known city,
//     otherwise local for major-to-major routes and outlying for the rest.
//
// Example:
//
//	resolver := NewAreaResolver(classifier)
//	state := resolver.Resolve("Johannesburg", "Durban North")
//	fmt.Println(state.Road()) // durban
type AreaResolver struct {
	classifier TownClassifier
}

func NewAreaResolver(classifier TownClassifier) AreaResolver {
	return AreaResolver{classifier: classifier}
}

// Resolve returns the area state for origin and destination. Empty names are
// allowed and resolve to regional_other / outlying.
func (r AreaResolver) Resolve(origin, destination string) area.State {
	bothMajor := r.classifier.IsMajor(origin) && r.classifier.IsMajor(destination)

	overnight := tariff.RegionalOther
	if bothMajor {
		overnight = tariff.MajorOther
	}

	state, err := area.NewState(overnight, roadZoneFor(destination, bothMajor), bothMajor)
	if err != nil {
		// Both zones come from the closed sets above.
		return area.DefaultState()
	}
	return state
}

func roadZoneFor(destination string, bothMajor bool) tariff.RoadZone {
	key := town.NormalizeName(destination)
	for _, dest := range roadDestinations {
		for _, fragment := range dest.fragments {
			if strings.Contains(key, fragment) {
				return dest.zone
			}
		}
	}

	if bothMajor {
		return tariff.Local
	}
	return tariff.Outlying
}
