package reps

import (
	"math"
	"testing"
)

func fl(v float64) *float64 { return &v }

func office(name string, lat, lng *float64) OfficeLocation {
	return OfficeLocation{Line1: name, Lat: lat, Lng: lng}
}

func TestHaversineMeters(t *testing.T) {
	// Lincoln NE to Omaha NE is roughly 79 km.
	d := haversineMeters(40.8136, -96.7026, 41.2565, -95.9345)
	if math.Abs(d-79_000) > 5_000 {
		t.Errorf("Lincoln-Omaha distance = %.0f m, want ~79000", d)
	}

	if d := haversineMeters(40.0, -96.0, 40.0, -96.0); d != 0 {
		t.Errorf("zero distance for identical points, got %f", d)
	}
}

func TestRankOfficesOrdersByDistance(t *testing.T) {
	// Query point near Cozad, Nebraska. The North Platte office is closer
	// than the Grand Island one; the capitol office sits far outside the
	// query area but inside the default radius.
	queryLat, queryLng := 40.8597, -99.9865

	grandIsland := office("Grand Island", fl(40.9264), fl(-98.3420))
	northPlatte := office("North Platte", fl(41.1239), fl(-100.7654))
	capitol := office("Washington DC", fl(38.8866), fl(-77.0047))

	ranked := RankOffices([]OfficeLocation{capitol, grandIsland, northPlatte}, queryLat, queryLng, DefaultOfficeRadiusMeters)

	if len(ranked) != 3 {
		t.Fatalf("expected 3 offices, got %d", len(ranked))
	}
	if ranked[0].Line1 != "North Platte" {
		t.Errorf("nearest office first, got %q", ranked[0].Line1)
	}
	if ranked[1].Line1 != "Grand Island" {
		t.Errorf("second nearest office second, got %q", ranked[1].Line1)
	}
	if ranked[2].Line1 != "Washington DC" {
		t.Errorf("farthest office last, got %q", ranked[2].Line1)
	}
}

func TestRankOfficesDemotesUngeocodedAndOutOfRadius(t *testing.T) {
	near := office("near", fl(40.0), fl(-96.0))
	ungeocodedA := office("ungeocoded a", nil, nil)
	far := office("far", fl(-33.8688), fl(151.2093)) // Sydney, outside any sane radius
	ungeocodedB := office("ungeocoded b", fl(41.0), nil)

	in := []OfficeLocation{ungeocodedA, far, near, ungeocodedB}
	ranked := RankOffices(in, 40.0, -96.0, 100_000)

	if len(ranked) != len(in) {
		t.Fatalf("ranking must not drop offices: got %d, want %d", len(ranked), len(in))
	}
	if ranked[0].Line1 != "near" {
		t.Errorf("in-radius office first, got %q", ranked[0].Line1)
	}
	// Demoted offices keep their input order.
	rest := []string{ranked[1].Line1, ranked[2].Line1, ranked[3].Line1}
	want := []string{"ungeocoded a", "far", "ungeocoded b"}
	for i := range want {
		if rest[i] != want[i] {
			t.Errorf("demoted office %d = %q, want %q", i, rest[i], want[i])
		}
	}
}

func TestRankOfficesEmptyInput(t *testing.T) {
	ranked := RankOffices(nil, 40.0, -96.0, DefaultOfficeRadiusMeters)
	if ranked == nil || len(ranked) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", ranked)
	}
}

func TestRankOfficesAllUngeocoded(t *testing.T) {
	in := []OfficeLocation{
		office("first", nil, nil),
		office("second", nil, nil),
	}
	ranked := RankOffices(in, 40.0, -96.0, DefaultOfficeRadiusMeters)
	if len(ranked) != 2 || ranked[0].Line1 != "first" || ranked[1].Line1 != "second" {
		t.Errorf("ungeocoded offices must keep input order, got %#v", ranked)
	}
}
