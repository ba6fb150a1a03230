package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/commutecast/backend/internal/route/model/entity"
)

func TestForecastStatus(t *testing.T) {
	assert.Equal(t, "empty", forecastStatus(nil, nil))

	pendingSchedule := &entity.Schedule{DaysOfWeek: []entity.DayOfWeek{entity.Monday}}
	assert.Equal(t, "pending", forecastStatus(pendingSchedule, nil))

	emptySchedule := &entity.Schedule{}
	assert.Equal(t, "empty", forecastStatus(emptySchedule, nil))

	forecast := &entity.Forecast{GeneratedAt: time.Now()}
	assert.Equal(t, "active", forecastStatus(pendingSchedule, forecast))
	assert.Equal(t, "active", forecastStatus(nil, forecast))
}

func TestToResponseRouteCarriesScheduleFields(t *testing.T) {
	route := entity.Route{RouteID: "r1", Title: "Commute"}
	schedule := &entity.Schedule{
		ArriveBy:   "08:30",
		Timezone:   "Europe/Dublin",
		DaysOfWeek: []entity.DayOfWeek{entity.Monday, entity.Tuesday},
	}

	res := toResponseRoute(route, schedule, nil)

	assert.Equal(t, "08:30", res.ArriveBy)
	assert.Equal(t, "Europe/Dublin", res.Timezone)
	assert.Equal(t, []string{"MON", "TUE"}, res.DaysOfWeek)
	assert.Equal(t, "pending", res.ForecastStatus)
}

func TestToResponseForecastFormatsUTCInstant(t *testing.T) {
	departBy := time.Date(2026, 3, 30, 7, 45, 0, 0, time.UTC)
	f := &entity.Forecast{
		Days: map[string]entity.DayForecast{
			"MON": {
				ForecastDate: "2026-03-30",
				Recommendation: entity.Recommendation{
					AdjustedDepartBy: departBy,
					ExtraBufferMins:  10,
					Reasoning:        "Rain expected during your commute window",
				},
			},
		},
	}

	out := toResponseForecast(f)
	assert.Len(t, out, 1)
	assert.Equal(t, "2026-03-30T07:45:00Z", out["MON"].AdjustedDepartBy)
	assert.Equal(t, 10, out["MON"].ExtraBufferMins)
}
