package queries

import (
	"errors"

	"courierquote/internal/core/application/inputs"
	"courierquote/internal/pkg/guard"
)

var ErrResolveAreaQueryIsNotConstructed = errors.New(
	"ResolveAreaQuery must be created via NewResolveAreaQuery constructor",
)

// ResolveAreaQuery asks which zones an origin/destination pair is priced in.
// Either name may be empty.
type ResolveAreaQuery struct {
	origin      string
	destination string

	guard guard.ConstructorGuard
}

func NewResolveAreaQuery(origin, destination string) ResolveAreaQuery {
	return ResolveAreaQuery{
		origin:      inputs.Text(origin),
		destination: inputs.Text(destination),
		guard:       guard.NewConstructorGuard(),
	}
}

func (q ResolveAreaQuery) Validate() error {
	return q.guard.Validate(ErrResolveAreaQueryIsNotConstructed)
}

func (q ResolveAreaQuery) Origin() string      { return q.origin }
func (q ResolveAreaQuery) Destination() string { return q.destination }
