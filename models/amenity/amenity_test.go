package amenity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amenities-dashboard/hours"
)

func TestNewID_StableAndCaseInsensitive(t *testing.T) {
	a := NewID("Origo", 44.4327, 26.1003)
	assert.Equal(t, a, NewID("  origo ", 44.4327, 26.1003))
	assert.NotEqual(t, a, NewID("Origo", 44.4327, 26.1004))
}

func TestAmenity_AnnotateAndJSON(t *testing.T) {
	a := Amenity{
		ID:          "a1",
		Name:        "Late Bar",
		AmenityType: "Pub",
		Latitude:    44.44,
		Longitude:   26.09,
		OpeningTime: hours.MustTimeOfDay(22, 0),
		ClosingTime: hours.MustTimeOfDay(2, 0),
	}

	require.NoError(t, a.Annotate(hours.ModeLegacy))
	assert.Equal(t, hours.Flags{}, a.DayParts)

	require.NoError(t, a.Annotate(hours.ModeCircular))
	assert.Equal(t, hours.Flags{Night: true}, a.DayParts)

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"opening_hour":"22:00"`)
	assert.Contains(t, string(data), `"open_night":true`)

	var back Amenity
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, a, back)
}

func TestAmenity_Helpers(t *testing.T) {
	a := Amenity{
		Name:        "Origo",
		AmenityType: " Cafe ",
		Latitude:    44.4327,
		Longitude:   26.1003,
		OpeningTime: hours.MustTimeOfDay(8, 0),
		ClosingTime: hours.MustTimeOfDay(18, 0),
	}

	assert.Equal(t, "cafe", a.TypeKey())
	assert.Equal(t, 26.1003, a.Point().Lon())
	assert.Equal(t, 44.4327, a.Point().Lat())

	open, err := a.IsOpenAt(hours.MustTimeOfDay(17, 59))
	require.NoError(t, err)
	assert.True(t, open)

	_, err = a.IsOpenAt(hours.TimeOfDay(-1))
	assert.ErrorIs(t, err, hours.ErrInvalidTime)

	assert.Contains(t, a.ToString(), "hours=08:00-18:00")
}
