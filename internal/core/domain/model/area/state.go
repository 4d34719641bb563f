// Package area holds the result of area resolution: the zone each service
// type is priced in for one origin/destination pair.
package area

import (
	"errors"

	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/pkg/guard"
)

// ErrStateIsNotConstructed is returned when a zero-value State is used.
var ErrStateIsNotConstructed = errors.New("State must be created via NewState constructor")

const (
	hintBothMajor = "Origin and destination are within 50 km of major airports."
	hintRegional  = "Either origin or destination is more than 50 km from a major airport."
)

// State is the immutable outcome of resolving an origin/destination pair.
// It is produced by the area resolver and handed to the price engine.
type State struct {
	overnight tariff.OvernightZone
	road      tariff.RoadZone
	bothMajor bool

	guard guard.ConstructorGuard
}

// NewState validates both zones.
func NewState(overnight tariff.OvernightZone, road tariff.RoadZone, bothMajor bool) (State, error) {
	if err := errors.Join(overnight.Validate(), road.Validate()); err != nil {
		return State{}, err
	}
	return State{
		overnight: overnight,
		road:      road,
		bothMajor: bothMajor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// DefaultState is the state before any towns are entered: regional overnight
// pricing and outlying road pricing.
func DefaultState() State {
	return State{
		overnight: tariff.RegionalOther,
		road:      tariff.Outlying,
		guard:     guard.NewConstructorGuard(),
	}
}

func (s State) Validate() error {
	return s.guard.Validate(ErrStateIsNotConstructed)
}

func (s State) Overnight() tariff.OvernightZone { return s.overnight }
func (s State) Road() tariff.RoadZone           { return s.road }
func (s State) BothMajor() bool                 { return s.bothMajor }

// ZoneKey returns the zone key that prices service, e.g. "major_other" for
// Overnight or "durban" for Road.
func (s State) ZoneKey(service tariff.ServiceType) string {
	switch service {
	case tariff.Overnight:
		return s.overnight.String()
	case tariff.Road:
		return s.road.String()
	default:
		return ""
	}
}

// Hint is the sentence shown next to the area fields.
func (s State) Hint() string {
	if s.bothMajor {
		return hintBothMajor
	}
	return hintRegional
}
