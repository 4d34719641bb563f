package tariff

import (
	"fmt"
	"strings"

	"courierquote/internal/pkg/errs"
)

// ServiceType selects which rate table and zone vocabulary price a shipment.
type ServiceType int

const (
	// UnknownService is the zero value and is never valid.
	UnknownService ServiceType = iota
	// Overnight is next-day air freight.
	Overnight
	// Road is road freight.
	Road
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		UnknownService: "unknown",
		Overnight:      "overnight",
		Road:           "road",
	}
}

// ParseServiceType maps "overnight" or "road" (any case, surrounding spaces
// ignored) to a ServiceType.
func ParseServiceType(s string) (ServiceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overnight":
		return Overnight, nil
	case "road":
		return Road, nil
	default:
		return UnknownService, errs.NewValueIsInvalidErrorWithCause(
			"service", fmt.Errorf("%q is not a known service type", s))
	}
}

// Validate rejects UnknownService and out-of-range values.
func (s ServiceType) Validate() error {
	if s != Overnight && s != Road {
		return errs.NewValueIsInvalidErrorWithCause("service", fmt.Errorf("%d is not a valid service type", s))
	}
	return nil
}

func (s ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[s]; ok {
		return str
	}
	return "unknown"
}
