package reps

import (
	"context"
	"errors"
	"fmt"

	"github.com/phoneyourrep/pyr-backend/internal/reps/geocoding"
)

// ErrNoGeocode marks an address the geocoder could not resolve. The read
// path answers it with an empty representative list, not a failed request.
var ErrNoGeocode = errors.New("address could not be geocoded")

// Geocoder is the one signature the resolution core needs from the geocoding
// collaborator.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*geocoding.Result, error)
}

// Lookup is the immutable per-request resolution context: the query point,
// the resolved state and districts, and the candidate reps. Each resolution
// call builds its own value, so concurrent requests share nothing.
type Lookup struct {
	Address   string
	Lat       float64
	Lng       float64
	StateAbbr string

	State          *State
	Districts      []District
	StateDistricts []StateDistrict
	Reps           []Rep
	StateReps      []StateRep
}

// ResolveAddress runs the full pipeline for a street address: geocode, then
// resolve the point like ResolveCoordinates but scoped to the geocoded state.
func ResolveAddress(ctx context.Context, gc Geocoder, address string) (Lookup, error) {
	if gc == nil {
		return Lookup{}, fmt.Errorf("%w: no geocoder configured", ErrNoGeocode)
	}

	loc, err := gc.Geocode(ctx, address)
	if err != nil {
		return Lookup{Address: address}, fmt.Errorf("%w: %v", ErrNoGeocode, err)
	}

	lookup, err := resolvePoint(ctx, loc.Lat, loc.Lng, loc.State)
	if err != nil {
		return lookup, err
	}
	lookup.Address = address
	return lookup, nil
}

// ResolveCoordinates runs the pipeline for an ad-hoc lat/lng pair. Without an
// address there is no parsed state, so the containment query is unscoped.
func ResolveCoordinates(ctx context.Context, lat, lng float64) (Lookup, error) {
	return resolvePoint(ctx, lat, lng, "")
}

// resolvePoint determines the districts containing the point and collects
// their reps. Zero containing districts is the statewide fallback, not an
// error: when the state is known its statewide seats are still returned.
func resolvePoint(ctx context.Context, lat, lng float64, stateAbbr string) (Lookup, error) {
	lookup := Lookup{Lat: lat, Lng: lng, StateAbbr: stateAbbr}

	districts, err := DistrictsContaining(ctx, lat, lng, stateAbbr)
	if err != nil {
		return lookup, err
	}
	lookup.Districts = districts

	if stateAbbr == "" && len(districts) > 0 {
		// Coordinate path: adopt the state owning the first containing
		// district so statewide seats join the result.
		var owner State
		if err := stateByID(ctx, districts[0].StateID, &owner); err != nil {
			return lookup, err
		}
		lookup.State = &owner
		lookup.StateAbbr = owner.Abbr
	} else if stateAbbr != "" {
		state, err := StateByAbbr(ctx, stateAbbr)
		if err != nil {
			return lookup, err
		}
		lookup.State = state
	}

	lookup.Reps, err = RepsByDistricts(ctx, lookup.State, districts)
	if err != nil {
		return lookup, err
	}

	lookup.StateDistricts, err = StateDistrictsContaining(ctx, lat, lng, lookup.StateAbbr)
	if err != nil {
		return lookup, err
	}

	lookup.StateReps, err = StateRepsByDistricts(ctx, lookup.StateDistricts)
	if err != nil {
		return lookup, err
	}

	return lookup, nil
}

// Assemble shapes the lookup's candidates for the response, ranking each
// rep's offices by proximity to the query point. Federal reps come first,
// then state legislators, mirroring the original response ordering.
func (l Lookup) Assemble() []RepOut {
	out := make([]RepOut, 0, len(l.Reps)+len(l.StateReps))

	for _, rep := range l.Reps {
		ranked := RankOffices(rep.OfficeLocations, l.Lat, l.Lng, DefaultOfficeRadiusMeters)
		out = append(out, AssembleRep(rep, ranked))
	}
	for _, rep := range l.StateReps {
		ranked := RankOffices(rep.OfficeLocations, l.Lat, l.Lng, DefaultOfficeRadiusMeters)
		out = append(out, AssembleStateRep(rep, ranked))
	}

	return out
}
