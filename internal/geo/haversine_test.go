package geo

import "testing"

func TestDistanceKmSamePoint(t *testing.T) {
	p := Point{Lat: 40.7128, Lng: -74.0060}
	if d := DistanceKm(p, p); d > 0.0001 {
		t.Fatalf("expected ~0 distance for identical points, got %f", d)
	}
}

func TestDistanceKmKnownCities(t *testing.T) {
	nyc := Point{Lat: 40.7128, Lng: -74.0060}
	boston := Point{Lat: 42.3601, Lng: -71.0589}

	d := DistanceKm(nyc, boston)
	if d < 290 || d > 310 {
		t.Fatalf("expected NYC-Boston distance near 300km, got %f", d)
	}
}

func TestWithinRadiusKm(t *testing.T) {
	center := Point{Lat: 40.7128, Lng: -74.0060}
	near := Point{Lat: 40.7138, Lng: -74.0070}
	far := Point{Lat: 42.3601, Lng: -71.0589}

	if !WithinRadiusKm(center, near, 2.0) {
		t.Fatal("expected nearby point within 2km radius")
	}
	if WithinRadiusKm(center, far, 2.0) {
		t.Fatal("expected distant point outside 2km radius")
	}
}

func TestNearCorridorMidpoint(t *testing.T) {
	origin := Point{Lat: 40.70, Lng: -74.00}
	destination := Point{Lat: 40.80, Lng: -74.10}
	midEvent := Point{Lat: 40.75, Lng: -74.05}

	if !NearCorridor(origin, destination, midEvent, 2.0) {
		t.Fatal("expected event near the corridor midpoint to match")
	}

	farEvent := Point{Lat: 41.50, Lng: -75.00}
	if NearCorridor(origin, destination, farEvent, 2.0) {
		t.Fatal("expected distant event to not match corridor")
	}
}
