package shapefile

import (
	"fmt"

	"github.com/jonas-p/go-shp"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
)

// EncodeMultiPolygon converts a shapefile Polygon to EWKB bytes with SRID
// 4326, the representation the district geometry columns expect. Returns
// nil, nil for nil or non-polygon shapes; TIGER boundary products only carry
// polygons, so anything else is a malformed record worth skipping.
func EncodeMultiPolygon(shape shp.Shape) ([]byte, error) {
	poly, ok := shape.(*shp.Polygon)
	if !ok || poly == nil {
		return nil, nil
	}

	mp := polygonToMultiPolygon(poly)
	if mp == nil {
		return nil, nil
	}

	data, err := ewkb.Marshal(mp, ewkb.NDR)
	if err != nil {
		return nil, fmt.Errorf("encode ewkb: %w", err)
	}

	return data, nil
}

// polygonToMultiPolygon converts a shapefile Polygon to a geom.MultiPolygon.
// Shapefile polygons store rings flat with part offsets; each part becomes
// one single-ring polygon.
func polygonToMultiPolygon(p *shp.Polygon) *geom.MultiPolygon {
	if p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY).SetSRID(4326)

	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		var end int32
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		} else {
			end = int32(len(p.Points))
		}

		flat := make([]float64, 0, (end-start)*2)
		for j := start; j < end; j++ {
			flat = append(flat, p.Points[j].X, p.Points[j].Y)
		}

		ring := geom.NewLinearRingFlat(geom.XY, flat)
		poly := geom.NewPolygon(geom.XY)
		if err := poly.Push(ring); err != nil {
			continue
		}
		if err := mp.Push(poly); err != nil {
			continue
		}
	}

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}
