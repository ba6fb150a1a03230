package forecast

import (
	"testing"
	"time"

	delayrepo "github.com/commutecast/backend/internal/delay/repository"
	"github.com/commutecast/backend/internal/queue"
	routeentity "github.com/commutecast/backend/internal/route/model/entity"
	routerepo "github.com/commutecast/backend/internal/route/repository"
)

func TestResolveDatesWrapsTodaysWeekday(t *testing.T) {
	// 2026-07-27 is a Monday.
	now := time.Date(2026, 7, 27, 0, 0, 0, 0, time.UTC)
	dates, err := resolveDates(now, []queue.RouteRef{
		{DaysOfWeek: []string{"MON", "WED"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dates["MON"] != "2026-08-03" {
		t.Fatalf("expected MON to wrap to next week, got %s", dates["MON"])
	}
	if dates["WED"] != "2026-07-29" {
		t.Fatalf("expected WED later this week, got %s", dates["WED"])
	}
}

func TestBuildCityDatePairsDeduplicates(t *testing.T) {
	refs := []queue.RouteRef{
		{UserID: "u1", RouteID: "r1", DaysOfWeek: []string{"MON"}},
		{UserID: "u2", RouteID: "r2", DaysOfWeek: []string{"MON"}},
	}
	routes := map[routerepo.RouteRef]routeentity.Route{
		{UserID: "u1", RouteID: "r1"}: {CityKey: "IE#DUBLIN"},
		{UserID: "u2", RouteID: "r2"}: {CityKey: "IE#DUBLIN"},
	}
	dates := map[string]string{"MON": "2026-08-03"}

	pairs := buildCityDatePairs(refs, routes, dates)
	if len(pairs) != 1 {
		t.Fatalf("expected one deduplicated pair, got %d: %v", len(pairs), pairs)
	}
	want := delayrepo.CityDate{CityKey: "IE#DUBLIN", Date: "2026-08-03"}
	if pairs[0] != want {
		t.Fatalf("expected %+v, got %+v", want, pairs[0])
	}
}

func TestBuildCityDatePairsSkipsMissingRoutes(t *testing.T) {
	refs := []queue.RouteRef{
		{UserID: "u1", RouteID: "deleted", DaysOfWeek: []string{"MON"}},
	}
	pairs := buildCityDatePairs(refs, map[routerepo.RouteRef]routeentity.Route{}, map[string]string{"MON": "2026-08-03"})
	if len(pairs) != 0 {
		t.Fatalf("expected no pairs for a route missing from the batch load, got %v", pairs)
	}
}
