package reps

import (
	"math"
	"sort"
)

// DefaultOfficeRadiusMeters is deliberately permissive: the ranker's job is
// ordering, not filtering, and a rep's offices can be far from a rural query
// point.
const DefaultOfficeRadiusMeters = 4_000_000

const earthRadiusMeters = 6_371_000

// haversineMeters returns the great-circle distance between two points.
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}

// RankOffices orders a rep's offices by proximity to the query point:
// geocoded offices within radiusMeters first, ascending distance with stable
// ties, then every remaining office (un-geocoded or out of radius) in input
// order. No office is ever dropped, only demoted to the end. Zero offices in
// gives zero offices out; callers must not assume at least one office.
func RankOffices(offices []OfficeLocation, lat, lng, radiusMeters float64) []OfficeLocation {
	if len(offices) == 0 {
		return []OfficeLocation{}
	}

	type scored struct {
		office   OfficeLocation
		distance float64
		index    int
	}

	var near []scored
	for i, off := range offices {
		if off.Lat == nil || off.Lng == nil {
			continue
		}
		d := haversineMeters(lat, lng, *off.Lat, *off.Lng)
		if d <= radiusMeters {
			near = append(near, scored{office: off, distance: d, index: i})
		}
	}

	sort.SliceStable(near, func(i, j int) bool {
		return near[i].distance < near[j].distance
	})

	ranked := make([]OfficeLocation, 0, len(offices))
	picked := make(map[int]struct{}, len(near))
	for _, s := range near {
		ranked = append(ranked, s.office)
		picked[s.index] = struct{}{}
	}
	for i, off := range offices {
		if _, ok := picked[i]; ok {
			continue
		}
		ranked = append(ranked, off)
	}

	return ranked
}
