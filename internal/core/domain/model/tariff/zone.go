package tariff

import (
	"fmt"

	"courierquote/internal/pkg/errs"
)

// OvernightZone pairs the majority classification of a route with a
// destination region. Only MajorOther and RegionalOther are chosen by the
// automatic area resolver; the city-specific keys are priced but reserved.
type OvernightZone int

const (
	UnknownOvernightZone OvernightZone = iota
	MajorCT
	MajorPE
	MajorEL
	MajorOther
	RegionalCT
	RegionalPE
	RegionalEL
	RegionalOther
)

var overnightZoneKeys = [...]string{
	UnknownOvernightZone: "unknown",
	MajorCT:              "major_ct",
	MajorPE:              "major_pe",
	MajorEL:              "major_el",
	MajorOther:           "major_other",
	RegionalCT:           "regional_ct",
	RegionalPE:           "regional_pe",
	RegionalEL:           "regional_el",
	RegionalOther:        "regional_other",
}

// OvernightZones lists every valid overnight zone in table order.
func OvernightZones() []OvernightZone {
	return []OvernightZone{MajorCT, MajorPE, MajorEL, MajorOther, RegionalCT, RegionalPE, RegionalEL, RegionalOther}
}

// ParseOvernightZone maps a key such as "major_other" to its zone. A key
// outside the table is an ObjectNotFoundError.
func ParseOvernightZone(key string) (OvernightZone, error) {
	for _, z := range OvernightZones() {
		if overnightZoneKeys[z] == key {
			return z, nil
		}
	}
	return UnknownOvernightZone, errs.NewObjectNotFoundError("overnight_zone", key)
}

func (z OvernightZone) Validate() error {
	if z <= UnknownOvernightZone || z > RegionalOther {
		return errs.NewValueIsInvalidErrorWithCause("overnight_zone", fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// String returns the tariff key, e.g. "regional_other".
func (z OvernightZone) String() string {
	if z.Validate() != nil {
		return overnightZoneKeys[UnknownOvernightZone]
	}
	return overnightZoneKeys[z]
}

// RoadZone is the destination-driven zone for road freight.
type RoadZone int

const (
	UnknownRoadZone RoadZone = iota
	Local
	Durban
	CapeTown
	PortElizabeth
	EastLondon
	Bloemfontein
	George
	Outlying
)

var roadZoneKeys = [...]string{
	UnknownRoadZone: "unknown",
	Local:           "local",
	Durban:          "durban",
	CapeTown:        "cape_town",
	PortElizabeth:   "port_elizabeth",
	EastLondon:      "east_london",
	Bloemfontein:    "bloemfontein",
	George:          "george",
	Outlying:        "outlying",
}

// RoadZones lists every valid road zone in table order.
func RoadZones() []RoadZone {
	return []RoadZone{Local, Durban, CapeTown, PortElizabeth, EastLondon, Bloemfontein, George, Outlying}
}

// ParseRoadZone maps a key such as "cape_town" to its zone. A key outside
// the table is an ObjectNotFoundError.
func ParseRoadZone(key string) (RoadZone, error) {
	for _, z := range RoadZones() {
		if roadZoneKeys[z] == key {
			return z, nil
		}
	}
	return UnknownRoadZone, errs.NewObjectNotFoundError("road_zone", key)
}

func (z RoadZone) Validate() error {
	if z <= UnknownRoadZone || z > Outlying {
		return errs.NewValueIsInvalidErrorWithCause("road_zone", fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// String returns the tariff key, e.g. "port_elizabeth".
func (z RoadZone) String() string {
	if z.Validate() != nil {
		return roadZoneKeys[UnknownRoadZone]
	}
	return roadZoneKeys[z]
}
