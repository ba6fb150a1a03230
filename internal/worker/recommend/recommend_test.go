package recommend

import (
	"strings"
	"testing"
	"time"
)

func TestComputeRainOnly(t *testing.T) {
	out, err := Compute(Input{
		Hourly:         []HourlyPrecip{{Hour: 8, PrecipitationMm: 0.7}},
		ArriveByUTC:    "08:30",
		StaticDuration: 25,
		ForecastDate:   "2026-08-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ExtraBufferMins != 10 {
		t.Fatalf("expected 10 extra minutes, got %d", out.ExtraBufferMins)
	}
	if !strings.Contains(out.Reasoning, "Rain expected") {
		t.Fatalf("expected rain reasoning, got %q", out.Reasoning)
	}
	want := time.Date(2026, 8, 3, 7, 55, 0, 0, time.UTC)
	if !out.AdjustedDepartBy.Equal(want) {
		t.Fatalf("expected %s, got %s", want, out.AdjustedDepartBy)
	}
}

func TestComputeEventOnCorridor(t *testing.T) {
	out, err := Compute(Input{
		CorridorEvents: []CorridorEvent{{Name: "Summer Concert"}},
		ArriveByUTC:    "18:30",
		StaticDuration: 25,
		ForecastDate:   "2026-08-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ExtraBufferMins != 30 {
		t.Fatalf("expected 30 extra minutes, got %d", out.ExtraBufferMins)
	}
	if !strings.Contains(out.Reasoning, "Summer Concert") {
		t.Fatalf("expected reasoning to name the event, got %q", out.Reasoning)
	}
	want := time.Date(2026, 8, 3, 17, 35, 0, 0, time.UTC)
	if !out.AdjustedDepartBy.Equal(want) {
		t.Fatalf("expected %s, got %s", want, out.AdjustedDepartBy)
	}
}

func TestComputeRainAndEvents(t *testing.T) {
	out, err := Compute(Input{
		Hourly:         []HourlyPrecip{{Hour: 8, PrecipitationMm: 1.2}},
		CorridorEvents: []CorridorEvent{{Name: "Event A"}, {Name: "Event B"}},
		ArriveByUTC:    "08:30",
		StaticDuration: 25,
		ForecastDate:   "2026-08-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ExtraBufferMins != 70 {
		t.Fatalf("expected 70 extra minutes, got %d", out.ExtraBufferMins)
	}
}

func TestComputeMidnightCrossing(t *testing.T) {
	out, err := Compute(Input{
		ArriveByUTC:    "00:30",
		StaticDuration: 45,
		ForecastDate:   "2026-08-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 8, 2, 23, 45, 0, 0, time.UTC)
	if !out.AdjustedDepartBy.Equal(want) {
		t.Fatalf("expected previous-day 23:45:00Z, got %s", out.AdjustedDepartBy)
	}
}

func TestComputeMissingStaticDuration(t *testing.T) {
	_, err := Compute(Input{ArriveByUTC: "08:30", ForecastDate: "2026-08-03"})
	if err == nil {
		t.Fatal("expected error for missing staticDuration")
	}
}

func TestComputeRainBelowThresholdNoBuffer(t *testing.T) {
	out, err := Compute(Input{
		Hourly:         []HourlyPrecip{{Hour: 8, PrecipitationMm: 0.4}},
		ArriveByUTC:    "08:30",
		StaticDuration: 25,
		ForecastDate:   "2026-08-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ExtraBufferMins != 0 {
		t.Fatalf("expected no buffer below threshold, got %d", out.ExtraBufferMins)
	}
}
