package usecase

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/commutecast/backend/internal/route/model/entity"
	"github.com/commutecast/backend/internal/route/model/request"
)

var (
	arriveByPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	// IANA zone names are "Area/Location" or "Area/Location_With_Underscores",
	// occasionally with a second slash (e.g. "America/Argentina/Buenos_Aires").
	timezonePattern = regexp.MustCompile(`^[A-Za-z]+(/[A-Za-z0-9_+\-]+){1,2}$`)
)

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > 48 {
		return fmt.Errorf("title must be at most 48 characters")
	}
	return nil
}

func validateWaypoint(w request.Waypoint) error {
	if w.Label == "" {
		return fmt.Errorf("waypoint label is required")
	}
	if !isFiniteCoord(w.Location.LatLng.Latitude) || !isFiniteCoord(w.Location.LatLng.Longitude) {
		return fmt.Errorf("waypoint coordinates must be finite")
	}
	return nil
}

func isFiniteCoord(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func validateTravelMode(mode string) (entity.TravelMode, error) {
	for _, m := range entity.ValidTravelModes() {
		if string(m) == mode {
			return m, nil
		}
	}
	return "", fmt.Errorf("travelMode must be one of DRIVE, TRANSIT, WALK, TWO_WHEELER, BICYCLE")
}

func validateDaysOfWeek(days []string) ([]entity.DayOfWeek, error) {
	out := make([]entity.DayOfWeek, 0, len(days))
	seen := make(map[string]struct{}, len(days))
	for _, d := range days {
		if !entity.IsValidDayOfWeek(d) {
			return nil, fmt.Errorf("daysOfWeek must be a subset of MON..SUN, got %q", d)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, entity.DayOfWeek(d))
	}
	return out, nil
}

func validateArriveBy(arriveBy string) error {
	if !arriveByPattern.MatchString(arriveBy) {
		return fmt.Errorf("arriveBy must match HH:MM")
	}
	return nil
}

func validateTimezone(zone string) error {
	if !timezonePattern.MatchString(zone) {
		return fmt.Errorf("timezone must be an IANA zone name")
	}
	if _, err := time.LoadLocation(zone); err != nil {
		return fmt.Errorf("timezone %q is not recognised: %w", zone, err)
	}
	return nil
}

// parseDurationMinutes accepts either a bare integer (seconds) or a
// Google-duration-style "<n>s" string, and rounds up to whole minutes:
// durations are stored as minutes, but providers report seconds, and any
// fractional minute must round toward a safer (longer) buffer.
func parseDurationMinutes(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("duration is required")
	}

	seconds, err := strconv.Atoi(strings.TrimSuffix(raw, "s"))
	if err != nil {
		return 0, fmt.Errorf("duration must be an integer or \"<n>s\": %w", err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("duration must not be negative")
	}

	minutes := seconds / 60
	if seconds%60 != 0 {
		minutes++
	}
	return minutes, nil
}

// normalizeCityKey produces "<UPPER(countryCode)>#<UPPER(city)_snake_cased>".
func normalizeCityKey(countryCode, city string) string {
	snake := strings.ToUpper(strings.Join(strings.Fields(city), "_"))
	return strings.ToUpper(countryCode) + "#" + snake
}
