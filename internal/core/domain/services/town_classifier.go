package services

import (
	"courierquote/internal/core/domain/model/town"
	"courierquote/internal/core/ports"
)

// TownClassifier decides whether a town is major, i.e. within the close
// service radius of a major airport hub.
//
// Classification fails open to "not major": a missing table, an empty name or
// an unknown town all yield false, which prices at the higher regional tariff.
type TownClassifier struct {
	directory ports.TownDirectory
	overrides town.OverrideSet
}

// NewTownClassifier builds a classifier. directory may be nil when no town
// table is available.
func NewTownClassifier(directory ports.TownDirectory, overrides town.OverrideSet) TownClassifier {
	return TownClassifier{
		directory: directory,
		overrides: overrides,
	}
}

// IsMajor reports whether name is classified major. Overrides always win over
// the table.
func (c TownClassifier) IsMajor(name string) bool {
	key := town.NormalizeName(name)
	if c.directory == nil || key == "" {
		return false
	}

	if c.overrides.Contains(key) {
		return false
	}

	record, ok := c.directory.Lookup(key)
	return ok && record.IsMajor()
}
