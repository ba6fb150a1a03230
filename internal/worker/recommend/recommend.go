// Package recommend implements the nightly recommendation engine: the
// single swap-point the forecast worker depends on for turning a route's
// commute-window weather and corridor events into an adjusted departure.
// A future model-backed implementation only has to match this package's
// input/output contract.
package recommend

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingStaticDuration is returned when StaticDuration is not a
// positive number of minutes - the single source of truth for departure
// arithmetic can't be absent.
var ErrMissingStaticDuration = errors.New("recommend: staticDuration is required")

const (
	rainThresholdMm = 0.5
	rainBufferMins  = 10
	eventBufferMins = 30
)

// HourlyPrecip is one UTC hour's precipitation reading within the
// forecast date's 24-hour window.
type HourlyPrecip struct {
	Hour            int
	PrecipitationMm float64
}

// CorridorEvent is an event that already passed the commute-window and
// corridor-membership filters; the engine only needs its name to build
// the reasoning string.
type CorridorEvent struct {
	Name string
}

// Input is the engine's full input contract.
type Input struct {
	Hourly         []HourlyPrecip
	CorridorEvents []CorridorEvent
	ArriveByUTC    string // "HH:MM", UTC
	StaticDuration int    // minutes; must be > 0
	ForecastDate   string // "YYYY-MM-DD", UTC calendar date
}

// Output is the engine's full output contract.
type Output struct {
	AdjustedDepartBy time.Time // UTC instant, whole-second precision
	ExtraBufferMins  int
	Reasoning        string
}

// Compute applies the phase-1 deterministic rules: +10 minutes for any
// commute-window precipitation over the threshold, +30 minutes per
// corridor event, then anchors the adjusted departure to forecastDate
// 00:00Z plus the resulting offset. Negative offsets roll over to the
// previous calendar day with no clamping - a midnight-crossing arrival
// correctly produces a departure timestamped the day before.
func Compute(in Input) (Output, error) {
	if in.StaticDuration <= 0 {
		return Output{}, ErrMissingStaticDuration
	}

	arriveMinsUTC, err := parseMinutes(in.ArriveByUTC)
	if err != nil {
		return Output{}, err
	}
	forecastDate, err := time.Parse("2006-01-02", in.ForecastDate)
	if err != nil {
		return Output{}, fmt.Errorf("recommend: invalid forecastDate %q: %w", in.ForecastDate, err)
	}

	var reasons []string
	extraBufferMins := 0

	departHourUTC := floorDiv(arriveMinsUTC-in.StaticDuration, 60)
	arriveHourUTC := floorDiv(arriveMinsUTC, 60)
	if totalPrecip(in.Hourly, departHourUTC, arriveHourUTC) > rainThresholdMm {
		extraBufferMins += rainBufferMins
		reasons = append(reasons, "Rain expected during your commute window — allow extra time")
	}

	for _, ev := range in.CorridorEvents {
		extraBufferMins += eventBufferMins
		reasons = append(reasons, fmt.Sprintf("Event near your route: %s", ev.Name))
	}

	departMins := arriveMinsUTC - in.StaticDuration - extraBufferMins
	adjustedDepartBy := time.Date(forecastDate.Year(), forecastDate.Month(), forecastDate.Day(), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(departMins) * time.Minute)

	return Output{
		AdjustedDepartBy: adjustedDepartBy,
		ExtraBufferMins:  extraBufferMins,
		Reasoning:        strings.Join(reasons, "; "),
	}, nil
}

func totalPrecip(hourly []HourlyPrecip, fromHour, toHour int) float64 {
	if fromHour > toHour {
		fromHour, toHour = toHour, fromHour
	}
	byHour := make(map[int]float64, len(hourly))
	for _, h := range hourly {
		byHour[h.Hour] = h.PrecipitationMm
	}

	var total float64
	for h := fromHour; h <= toHour; h++ {
		if h < 0 || h > 23 {
			// Outside the loaded date's 24-hour window (a midnight-crossing
			// commute spilling into the adjacent day); no data is loaded for
			// that adjacent hour, so it contributes nothing.
			continue
		}
		total += byHour[h]
	}
	return total
}

func parseMinutes(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("recommend: invalid arriveBy %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
