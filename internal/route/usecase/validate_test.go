package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/commutecast/backend/internal/route/model/request"
)

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, validateTitle("Morning commute"))
	assert.Error(t, validateTitle(""))

	long := make([]byte, 49)
	for i := range long {
		long[i] = 'a'
	}
	err := validateTitle(string(long))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "48 characters")
}

func TestValidateWaypoint(t *testing.T) {
	ok := request.Waypoint{Label: "Home"}
	ok.Location.LatLng.Latitude = 53.35
	ok.Location.LatLng.Longitude = -6.26
	assert.NoError(t, validateWaypoint(ok))

	noLabel := ok
	noLabel.Label = ""
	assert.Error(t, validateWaypoint(noLabel))

	nonFinite := ok
	nonFinite.Location.LatLng.Latitude = 0
	nonFinite.Location.LatLng.Latitude /= nonFinite.Location.LatLng.Latitude
	err := validateWaypoint(nonFinite)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "finite")
}

func TestValidateTravelMode(t *testing.T) {
	mode, err := validateTravelMode("TRANSIT")
	assert.NoError(t, err)
	assert.EqualValues(t, "TRANSIT", mode)

	_, err = validateTravelMode("ROCKET")
	assert.Error(t, err)
}

func TestValidateDaysOfWeek(t *testing.T) {
	days, err := validateDaysOfWeek([]string{"MON", "WED", "MON"})
	assert.NoError(t, err)
	assert.Len(t, days, 2)

	_, err = validateDaysOfWeek([]string{"FUNDAY"})
	assert.Error(t, err)
}

func TestValidateArriveBy(t *testing.T) {
	assert.NoError(t, validateArriveBy("08:30"))
	assert.Error(t, validateArriveBy("8:30"))
	assert.Error(t, validateArriveBy("24:00"))
}

func TestValidateTimezone(t *testing.T) {
	assert.NoError(t, validateTimezone("Europe/Dublin"))
	assert.NoError(t, validateTimezone("America/Argentina/Buenos_Aires"))
	assert.Error(t, validateTimezone("not a zone"))
}

func TestParseDurationMinutes(t *testing.T) {
	mins, err := parseDurationMinutes("90s")
	assert.NoError(t, err)
	assert.Equal(t, 2, mins)

	mins, err = parseDurationMinutes("120s")
	assert.NoError(t, err)
	assert.Equal(t, 2, mins)

	_, err = parseDurationMinutes("")
	assert.Error(t, err)

	_, err = parseDurationMinutes("-10s")
	assert.Error(t, err)
}

func TestNormalizeCityKey(t *testing.T) {
	assert.Equal(t, "IE#DUBLIN", normalizeCityKey("ie", "Dublin"))
	assert.Equal(t, "US#NEW_YORK", normalizeCityKey("us", "New York"))
}
