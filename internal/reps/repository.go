package reps

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phoneyourrep/pyr-backend/internal/db"
	"gorm.io/gorm"
)

var ErrRepNotFound = errors.New("rep not found")

// StateByAbbr resolves a state from its 2-letter abbreviation.
func StateByAbbr(ctx context.Context, abbr string) (*State, error) {
	var state State
	err := db.DB.WithContext(ctx).Where("abbr = ?", abbr).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("state lookup %q: %w", abbr, err)
	}
	return &state, nil
}

// AllStates returns every state ordered by abbreviation.
func AllStates(ctx context.Context) ([]State, error) {
	var states []State
	if err := db.DB.WithContext(ctx).Order("abbr").Find(&states).Error; err != nil {
		return nil, fmt.Errorf("all states: %w", err)
	}
	return states, nil
}

func stateByID(ctx context.Context, id uuid.UUID, out *State) error {
	if err := db.DB.WithContext(ctx).First(out, "id = ?", id).Error; err != nil {
		return fmt.Errorf("state by id: %w", err)
	}
	return nil
}

// RepsByLocation returns the active reps for a district together with the
// state's statewide seats (district_id IS NULL: senators and equivalents).
// The union is a hard requirement, not an optimization — senate seats have no
// district row and must appear whenever any district of their state matches.
// district may be nil, in which case only statewide seats are returned.
func RepsByLocation(ctx context.Context, state *State, district *District) ([]Rep, error) {
	if state == nil {
		return []Rep{}, nil
	}

	q := db.DB.WithContext(ctx).
		Preload("State").
		Preload("District").
		Preload("OfficeLocations", "active = ?", true).
		Where("active = ?", true).
		Distinct()

	if district != nil {
		q = q.Where(
			db.DB.Where("district_id = ?", district.ID).
				Or("state_id = ? AND district_id IS NULL", state.ID),
		)
	} else {
		q = q.Where("state_id = ? AND district_id IS NULL", state.ID)
	}

	var out []Rep
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("reps by location: %w", err)
	}
	return out, nil
}

// RepsByDistricts runs RepsByLocation for each containing district and
// deduplicates by rep identity. Statewide seats appear once even when several
// districts of the same state matched.
func RepsByDistricts(ctx context.Context, state *State, districts []District) ([]Rep, error) {
	if len(districts) == 0 {
		return RepsByLocation(ctx, state, nil)
	}

	seen := make(map[uuid.UUID]struct{})
	var out []Rep
	for i := range districts {
		d := districts[i]
		s := state
		if s == nil || s.ID != d.StateID {
			var owner State
			if err := db.DB.WithContext(ctx).First(&owner, "id = ?", d.StateID).Error; err != nil {
				return nil, fmt.Errorf("district owner state: %w", err)
			}
			s = &owner
		}
		batch, err := RepsByLocation(ctx, s, &d)
		if err != nil {
			return nil, err
		}
		for _, r := range batch {
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}
			out = append(out, r)
		}
	}
	return out, nil
}

// StateRepsByDistricts returns the active state legislators for the given
// state districts, deduplicated by identity.
func StateRepsByDistricts(ctx context.Context, districts []StateDistrict) ([]StateRep, error) {
	if len(districts) == 0 {
		return []StateRep{}, nil
	}

	ids := make([]uuid.UUID, 0, len(districts))
	for _, d := range districts {
		ids = append(ids, d.ID)
	}

	var out []StateRep
	err := db.DB.WithContext(ctx).
		Preload("State").
		Preload("StateDistrict").
		Preload("OfficeLocations", "active = ?", true).
		Where("active = ? AND state_district_id IN ?", true, ids).
		Distinct().
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("state reps by districts: %w", err)
	}
	return out, nil
}

// RepByBioguide fetches a single federal rep by its bioguide id.
func RepByBioguide(ctx context.Context, bioguideID string) (*Rep, error) {
	var rep Rep
	err := db.DB.WithContext(ctx).
		Preload("State").
		Preload("District").
		Preload("OfficeLocations", "active = ?", true).
		Where("bioguide_id = ?", bioguideID).
		First(&rep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRepNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("rep by bioguide %q: %w", bioguideID, err)
	}
	return &rep, nil
}

// RandomRep picks one active rep uniformly. Returns ErrRepNotFound on an
// empty store; the handler turns that into the designed degraded payload.
func RandomRep(ctx context.Context) (*Rep, error) {
	var rep Rep
	err := db.DB.WithContext(ctx).
		Preload("State").
		Preload("District").
		Preload("OfficeLocations", "active = ?", true).
		Where("active = ?", true).
		Order("RANDOM()").
		First(&rep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRepNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("random rep: %w", err)
	}
	return &rep, nil
}
