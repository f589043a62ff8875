package reps

import (
	"context"
	"fmt"

	"github.com/phoneyourrep/pyr-backend/internal/db"
)

// DistrictsContaining performs a PostGIS point-in-polygon query to find all
// congressional districts whose geometry contains the given lat/lng. When
// stateAbbr is non-empty the search is scoped to that state's districts (the
// address path knows the state from the geocoder); the coordinate path passes
// "" and searches everywhere. An empty result is not an error: the caller
// falls back to statewide seats.
func DistrictsContaining(ctx context.Context, lat, lng float64, stateAbbr string) ([]District, error) {
	query := `
		SELECT d.id, d.code, d.state_id
		FROM reps.districts d
		JOIN reps.states s ON s.id = d.state_id
		WHERE ST_Contains(
			d.geom,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)
		)
	`
	args := []interface{}{lng, lat}
	if stateAbbr != "" {
		query += ` AND s.abbr = $3`
		args = append(args, stateAbbr)
	}

	rows, err := db.DB.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("district containment query failed: %w", err)
	}
	defer rows.Close()

	var districts []District
	for rows.Next() {
		var d District
		if err := rows.Scan(&d.ID, &d.Code, &d.StateID); err != nil {
			return nil, fmt.Errorf("scan district: %w", err)
		}
		districts = append(districts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("district containment rows: %w", err)
	}

	return districts, nil
}

// StateDistrictsContaining is the state-legislature analogue of
// DistrictsContaining, over both chambers at once. The chamber tag on each
// row keeps upper and lower districts apart when they share names.
func StateDistrictsContaining(ctx context.Context, lat, lng float64, stateAbbr string) ([]StateDistrict, error) {
	query := `
		SELECT sd.id, sd.name, sd.chamber, sd.state_id
		FROM reps.state_districts sd
		JOIN reps.states s ON s.id = sd.state_id
		WHERE ST_Contains(
			sd.geom,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)
		)
	`
	args := []interface{}{lng, lat}
	if stateAbbr != "" {
		query += ` AND s.abbr = $3`
		args = append(args, stateAbbr)
	}

	rows, err := db.DB.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("state district containment query failed: %w", err)
	}
	defer rows.Close()

	var districts []StateDistrict
	for rows.Next() {
		var d StateDistrict
		if err := rows.Scan(&d.ID, &d.Name, &d.Chamber, &d.StateID); err != nil {
			return nil, fmt.Errorf("scan state district: %w", err)
		}
		districts = append(districts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("state district containment rows: %w", err)
	}

	return districts, nil
}
