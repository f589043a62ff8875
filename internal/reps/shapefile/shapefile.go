package shapefile

import (
	"fmt"
	"log"
	"strings"

	"github.com/jonas-p/go-shp"
)

// DistrictRecord is one district boundary read from a TIGER shapefile:
// attribute fields plus EWKB-encoded geometry ready for a PostGIS insert.
type DistrictRecord struct {
	StateFIPS string // STATEFP attribute
	Code      string // CD118FP / SLDUST / SLDLST attribute, depending on product
	Name      string // NAMELSAD attribute
	Geom      []byte
}

// ReadDistricts parses a TIGER boundary shapefile. codeField names the
// attribute carrying the district code, which differs per product:
// "CD118FP" for congressional districts, "SLDUST"/"SLDLST" for state
// legislative districts. Records with missing or unencodable geometry are
// skipped and counted, not fatal.
func ReadDistricts(path, codeField string) ([]DistrictRecord, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile %s: %w", path, err)
	}
	defer func() { _ = reader.Close() }()

	// Build field name -> index map. DBF field names are zero-padded.
	fields := reader.Fields()
	fieldIdx := make(map[string]int, len(fields))
	for i, f := range fields {
		name := strings.TrimRight(f.String(), "\x00")
		fieldIdx[strings.ToUpper(name)] = i
	}

	// Attribute reads from the reader's current row.
	attr := func(name string) string {
		idx, ok := fieldIdx[strings.ToUpper(name)]
		if !ok {
			return ""
		}
		return strings.TrimSpace(strings.TrimRight(reader.Attribute(idx), "\x00"))
	}

	var records []DistrictRecord
	var skipped int

	for reader.Next() {
		_, shape := reader.Shape()

		geomBytes, err := EncodeMultiPolygon(shape)
		if err != nil || geomBytes == nil {
			skipped++
			continue
		}

		records = append(records, DistrictRecord{
			StateFIPS: attr("STATEFP"),
			Code:      attr(codeField),
			Name:      attr("NAMELSAD"),
			Geom:      geomBytes,
		})
	}

	if skipped > 0 {
		log.Printf("[shapefile] skipped %d records with bad geometry in %s", skipped, path)
	}

	return records, nil
}
