package reps

import (
	"context"
	"errors"
	"testing"

	"github.com/phoneyourrep/pyr-backend/internal/reps/geocoding"
)

type stubGeocoder struct {
	result *geocoding.Result
	err    error
}

func (s stubGeocoder) Geocode(ctx context.Context, address string) (*geocoding.Result, error) {
	return s.result, s.err
}

func TestResolveAddressNilGeocoder(t *testing.T) {
	_, err := ResolveAddress(context.Background(), nil, "1600 Pennsylvania Ave")
	if !errors.Is(err, ErrNoGeocode) {
		t.Errorf("expected ErrNoGeocode, got %v", err)
	}
}

func TestResolveAddressGeocodeFailure(t *testing.T) {
	gc := stubGeocoder{err: geocoding.ErrNotFound}
	lookup, err := ResolveAddress(context.Background(), gc, "nowhere at all")
	if !errors.Is(err, ErrNoGeocode) {
		t.Errorf("expected ErrNoGeocode, got %v", err)
	}
	if lookup.Address != "nowhere at all" {
		t.Errorf("lookup keeps the query address, got %q", lookup.Address)
	}
}

func TestLookupAssembleOrdersFederalFirst(t *testing.T) {
	lookup := Lookup{
		Lat: 40.8597,
		Lng: -99.9865,
		Reps: []Rep{
			{OfficialFull: "Adrian Smith", State: State{Abbr: "NE"}},
			{OfficialFull: "Deb Fischer", State: State{Abbr: "NE"}},
		},
		StateReps: []StateRep{
			{OfficialFull: "Matt Williams", State: State{Abbr: "NE"}},
		},
	}

	out := lookup.Assemble()
	if len(out) != 3 {
		t.Fatalf("expected 3 reps, got %d", len(out))
	}
	want := []string{"Adrian Smith", "Deb Fischer", "Matt Williams"}
	for i, name := range want {
		if out[i].Name != name {
			t.Errorf("rep %d = %q, want %q", i, out[i].Name, name)
		}
	}
}

func TestLookupAssembleRanksOffices(t *testing.T) {
	near := office("North Platte", fl(41.1239), fl(-100.7654))
	far := office("Washington DC", fl(38.8866), fl(-77.0047))

	lookup := Lookup{
		Lat: 40.8597,
		Lng: -99.9865,
		Reps: []Rep{{
			OfficialFull:    "Adrian Smith",
			State:           State{Abbr: "NE"},
			OfficeLocations: []OfficeLocation{far, near},
		}},
	}

	out := lookup.Assemble()
	if len(out) != 1 {
		t.Fatalf("expected 1 rep, got %d", len(out))
	}
	locs := out[0].OfficeLocations
	if len(locs) != 2 || locs[0].Line1 != "North Platte" {
		t.Errorf("nearest office must come first, got %#v", locs)
	}
}

func TestLookupAssembleEmpty(t *testing.T) {
	out := Lookup{}.Assemble()
	if out == nil || len(out) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", out)
	}
}
