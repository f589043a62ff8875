package shapefile

import (
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
)

func squarePolygon() *shp.Polygon {
	return &shp.Polygon{
		NumParts:  1,
		NumPoints: 5,
		Parts:     []int32{0},
		Points: []shp.Point{
			{X: -100.0, Y: 40.0},
			{X: -100.0, Y: 41.0},
			{X: -99.0, Y: 41.0},
			{X: -99.0, Y: 40.0},
			{X: -100.0, Y: 40.0},
		},
	}
}

func TestEncodeMultiPolygon(t *testing.T) {
	data, err := EncodeMultiPolygon(squarePolygon())
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("expected EWKB bytes")
	}

	decoded, err := ewkb.Unmarshal(data)
	if err != nil {
		t.Fatalf("round-trip decode: %v", err)
	}
	mp, ok := decoded.(*geom.MultiPolygon)
	if !ok {
		t.Fatalf("decoded %T, want MultiPolygon", decoded)
	}
	if mp.SRID() != 4326 {
		t.Errorf("srid = %d, want 4326", mp.SRID())
	}
	if mp.NumPolygons() != 1 {
		t.Fatalf("polygons = %d, want 1", mp.NumPolygons())
	}

	ring := mp.Polygon(0).LinearRing(0)
	if ring.NumCoords() != 5 {
		t.Errorf("ring coords = %d, want 5", ring.NumCoords())
	}
	first := ring.Coord(0)
	if first.X() != -100.0 || first.Y() != 40.0 {
		t.Errorf("first coord = (%f, %f)", first.X(), first.Y())
	}
}

func TestEncodeMultiPolygonMultipleParts(t *testing.T) {
	p := squarePolygon()
	// Second part: a detached square, as islands appear in TIGER data.
	p.NumParts = 2
	p.Parts = append(p.Parts, int32(len(p.Points)))
	p.Points = append(p.Points,
		shp.Point{X: -98.0, Y: 42.0},
		shp.Point{X: -98.0, Y: 43.0},
		shp.Point{X: -97.0, Y: 43.0},
		shp.Point{X: -97.0, Y: 42.0},
		shp.Point{X: -98.0, Y: 42.0},
	)
	p.NumPoints = int32(len(p.Points))

	data, err := EncodeMultiPolygon(p)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := ewkb.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if mp := decoded.(*geom.MultiPolygon); mp.NumPolygons() != 2 {
		t.Errorf("polygons = %d, want 2", mp.NumPolygons())
	}
}

func TestEncodeMultiPolygonRejectsOtherShapes(t *testing.T) {
	data, err := EncodeMultiPolygon(&shp.Point{X: 1, Y: 2})
	if err != nil || data != nil {
		t.Errorf("point shape: data=%v err=%v, want nil, nil", data, err)
	}

	data, err = EncodeMultiPolygon(nil)
	if err != nil || data != nil {
		t.Errorf("nil shape: data=%v err=%v, want nil, nil", data, err)
	}

	data, err = EncodeMultiPolygon(&shp.Polygon{})
	if err != nil || data != nil {
		t.Errorf("empty polygon: data=%v err=%v, want nil, nil", data, err)
	}
}
