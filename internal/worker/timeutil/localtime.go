// Package timeutil converts a route's local "arrive by" wall-clock time
// into a UTC instant, using the IANA zone's offset in effect on the
// specific forecast date rather than the offset in effect "now" - the
// only way a schedule created in winter still produces the correct UTC
// departure in summer.
package timeutil

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/commutecast/backend/shared/logger"
)

const (
	localTimeLayout = "15:04"
	dateLayout      = "2006-01-02"
)

// LocalToUTC resolves (localHHMM, zone, date) to the UTC instant for that
// local wall-clock time on that date. If zone cannot be loaded, it falls
// back to treating the local time as if it were already UTC and logs a
// warning - a bounded one-zone-offset error is preferable to dropping the
// route from the night's run entirely.
func LocalToUTC(localHHMM, zone, date string) (time.Time, error) {
	hour, min, err := parseHHMM(localHHMM)
	if err != nil {
		return time.Time{}, err
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: invalid date %q: %w", date, err)
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to local-as-UTC",
			zap.String("zone", zone), zap.String("date", date), zap.Error(err))
		return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.UTC), nil
	}

	local := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, loc)
	return local.UTC(), nil
}

// FormatHHMM renders a UTC instant's wall-clock time as "HH:MM", used to
// feed the recommendation engine's UTC-only contract.
func FormatHHMM(t time.Time) string {
	return t.UTC().Format(localTimeLayout)
}

func parseHHMM(s string) (hour, min int, err error) {
	t, err := time.Parse(localTimeLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("timeutil: invalid HH:MM %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// NextOccurrence resolves the next calendar date (as "YYYY-MM-DD", UTC
// calendar) on which dayName occurs, counting today as day offset 0 but
// wrapping today's own weekday to next week - the worker always forecasts
// a day ahead, never "today".
func NextOccurrence(now time.Time, dayName string) (string, error) {
	target, ok := weekdayIndex[dayName]
	if !ok {
		return "", fmt.Errorf("timeutil: invalid day name %q", dayName)
	}
	today := int(now.UTC().Weekday())
	offset := ((target - today) % 7 + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return now.UTC().AddDate(0, 0, offset).Format(dateLayout), nil
}

var weekdayIndex = map[string]int{
	"SUN": 0, "MON": 1, "TUE": 2, "WED": 3, "THU": 4, "FRI": 5, "SAT": 6,
}
