package services_test

import (
	"courierquote/internal/core/domain/model/town"

	"github.com/stretchr/testify/mock"
)

// MockTownDirectory is a testify mock of ports.TownDirectory.
type MockTownDirectory struct {
	mock.Mock
}

func (m *MockTownDirectory) Lookup(key string) (town.Record, bool) {
	args := m.Called(key)
	return args.Get(0).(town.Record), args.Bool(1)
}

// townTable is a map-backed ports.TownDirectory.
type townTable map[string]town.Category

func (t townTable) Lookup(key string) (town.Record, bool) {
	category, ok := t[key]
	if !ok {
		return town.Record{}, false
	}
	return town.Record{Name: key, Category: category}, true
}

func sampleTowns() townTable {
	return townTable{
		"johannesburg":  town.CategoryMajor,
		"pretoria":      town.CategoryMajor,
		"durban":        town.CategoryMajor,
		"cape town":     town.CategoryMajor,
		"george":        town.CategoryMajor,
		"somerset west": town.CategoryMajor,
		"knysna":        town.CategoryRegional,
		"upington":      town.CategoryRegional,
	}
}
