package tariff_test

import (
	"testing"

	"courierquote/internal/core/domain/model/tariff"
	"courierquote/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceType(t *testing.T) {
	for input, want := range map[string]tariff.ServiceType{
		"overnight": tariff.Overnight,
		" Road ":    tariff.Road,
		"OVERNIGHT": tariff.Overnight,
	} {
		got, err := tariff.ParseServiceType(input)

		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := tariff.ParseServiceType("rail")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestServiceType_Validate(t *testing.T) {
	require.NoError(t, tariff.Overnight.Validate())
	require.NoError(t, tariff.Road.Validate())
	require.Error(t, tariff.UnknownService.Validate())
	assert.Equal(t, "unknown", tariff.ServiceType(9).String())
}

func TestOvernightZone_KeysRoundTrip(t *testing.T) {
	want := []string{
		"major_ct", "major_pe", "major_el", "major_other",
		"regional_ct", "regional_pe", "regional_el", "regional_other",
	}

	zones := tariff.OvernightZones()
	require.Len(t, zones, len(want))
	for i, zone := range zones {
		assert.Equal(t, want[i], zone.String())

		parsed, err := tariff.ParseOvernightZone(want[i])
		require.NoError(t, err)
		assert.Equal(t, zone, parsed)
	}
}

func TestRoadZone_KeysRoundTrip(t *testing.T) {
	want := []string{
		"local", "durban", "cape_town", "port_elizabeth",
		"east_london", "bloemfontein", "george", "outlying",
	}

	zones := tariff.RoadZones()
	require.Len(t, zones, len(want))
	for i, zone := range zones {
		assert.Equal(t, want[i], zone.String())

		parsed, err := tariff.ParseRoadZone(want[i])
		require.NoError(t, err)
		assert.Equal(t, zone, parsed)
	}
}

func TestZones_UnknownKeys(t *testing.T) {
	_, err := tariff.ParseOvernightZone("major_jhb")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "major_jhb")

	_, err = tariff.ParseRoadZone("pretoria")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "pretoria")

	assert.Equal(t, "unknown", tariff.UnknownOvernightZone.String())
	assert.Equal(t, "unknown", tariff.RoadZone(-3).String())
}
