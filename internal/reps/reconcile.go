package reps

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/phoneyourrep/pyr-backend/internal/db"
	"github.com/phoneyourrep/pyr-backend/internal/reps/provider"
	"gorm.io/gorm"
)

// ReconcileResult reports the effects of one reconciliation batch. Records
// fail independently; a failure is recorded here and the rest of the batch
// continues.
type ReconcileResult struct {
	Created int
	Updated int
	Failed  int
	Errors  []RecordError
}

// RecordError ties a reconciliation failure to the external record that
// caused it.
type RecordError struct {
	OfficialID string
	Name       string
	Err        error
}

// Reconcile merges a batch of externally fetched records into the store,
// scoped to one state. State-legislature records (level "state") go to the
// state_reps table keyed by their official id; everything else is treated as
// federal and matched by bioguide id or, failing that, by (last name, state).
// Each record runs in its own transaction so partial failure never leaves a
// half-merged rep visible, but one bad record does not abort the batch.
func Reconcile(ctx context.Context, records []provider.NormalizedRep, state State) ReconcileResult {
	var res ReconcileResult

	for _, rec := range records {
		var created bool
		var err error
		if rec.Level == "state" {
			created, err = reconcileStateRep(ctx, rec, state)
		} else {
			created, err = reconcileFederalRep(ctx, rec, state)
		}

		switch {
		case err != nil:
			res.Failed++
			res.Errors = append(res.Errors, RecordError{
				OfficialID: rec.OfficialID,
				Name:       rec.OfficialFull,
				Err:        err,
			})
			log.Printf("[reconcile] record %q (%s) failed: %v", rec.OfficialFull, rec.OfficialID, err)
		case created:
			res.Created++
		default:
			res.Updated++
		}
	}

	return res
}

// reconcileFederalRep merges one federal record. Returns true when a new rep
// row was created.
func reconcileFederalRep(ctx context.Context, rec provider.NormalizedRep, state State) (bool, error) {
	var created bool

	err := db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stored, err := matchFederalRep(tx, rec, state)
		if err != nil {
			return err
		}

		if stored == nil {
			created = true
			return createFederalRep(tx, rec, state)
		}

		return updateRep(tx, stored, rec, state)
	})

	return created, err
}

// matchFederalRep looks up an existing rep by official id when the source
// provides one, falling back to (last name, state). The fallback is best
// effort: shared last names within a state can mismatch, which is why the
// official id wins whenever present.
func matchFederalRep(tx *gorm.DB, rec provider.NormalizedRep, state State) (*Rep, error) {
	var stored Rep

	if rec.OfficialID != "" {
		err := tx.Where("bioguide_id = ?", rec.OfficialID).First(&stored).Error
		if err == nil {
			return &stored, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("match by official id: %w", err)
		}
	}

	err := tx.Where("last = ? AND state_id = ?", rec.LastName, state.ID).First(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("match by last name: %w", err)
	}
	return &stored, nil
}

// createFederalRep builds a brand-new rep from the external record verbatim:
// full field copy, no diffing. The district is inferred from the office
// title; an unmapped title leaves the rep statewide and is logged.
func createFederalRep(tx *gorm.DB, rec provider.NormalizedRep, state State) error {
	class := ClassifyOfficeTitle(rec.Office)

	var districtID *uuid.UUID
	switch class.Kind {
	case TitleHouse, TitleStateChamber:
		var district District
		code := NormalizeDistrictCode(class.DistrictCode)
		err := tx.Where("state_id = ? AND code = ?", state.ID, code).First(&district).Error
		if err == nil {
			districtID = &district.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("district %q: %w", class.DistrictCode, err)
		}
	case TitleSenate, TitleGovernor:
		// statewide seat, no district
	default:
		log.Printf("[reconcile] unmapped office title %q for %s", rec.Office, rec.OfficialFull)
	}

	photo := rec.PhotoURL
	if photo == "" && rec.OfficialID != "" {
		photo = PhotoSlug(rec.OfficialID)
	}

	rep := Rep{
		BioguideID:   rec.OfficialID,
		First:        rec.FirstName,
		Middle:       rec.MiddleName,
		Last:         rec.LastName,
		Suffix:       rec.Suffix,
		OfficialFull: rec.OfficialFull,
		Office:       rec.Office,
		Party:        rec.Party,
		Emails:       pq.StringArray(rec.Emails),
		Committees:   pq.StringArray(rec.Committees),
		Twitter:      rec.Twitter,
		Facebook:     rec.Facebook,
		Youtube:      rec.Youtube,
		Googleplus:   rec.Googleplus,
		URL:          rec.URL,
		PhotoURL:     photo,
		Active:       true,
		StateID:      state.ID,
		DistrictID:   districtID,
	}

	if err := tx.Omit("State", "District", "OfficeLocations").Create(&rep).Error; err != nil {
		return fmt.Errorf("create rep: %w", err)
	}

	offices := officesFromExternal(rec, rep.ID, "rep")
	if len(offices) > 0 {
		if err := tx.Create(&offices).Error; err != nil {
			return fmt.Errorf("create offices: %w", err)
		}
	}

	return nil
}

// updateRep merges an external record into an already-stored rep. Scalar
// fields (office title, party, state-if-unset) are diffed; emails and
// committees are unioned and never shrink; social handles are last-write-wins
// per field; the capitol office merges per line. Everything lands in one
// Updates call so readers never see a partially merged field set, and an
// empty change set writes nothing.
func updateRep(tx *gorm.DB, stored *Rep, rec provider.NormalizedRep, state State) error {
	changes := map[string]interface{}{}

	if rec.Office != "" && rec.Office != stored.Office {
		changes["office"] = rec.Office
	}
	if rec.Party != "" && rec.Party != stored.Party {
		changes["party"] = rec.Party
	}
	if stored.StateID == uuid.Nil {
		changes["state_id"] = state.ID
	}

	if merged, grew := unionStrings(stored.Emails, rec.Emails); grew {
		changes["emails"] = pq.StringArray(merged)
	}

	for col, pair := range map[string][2]string{
		"twitter":    {stored.Twitter, rec.Twitter},
		"facebook":   {stored.Facebook, rec.Facebook},
		"youtube":    {stored.Youtube, rec.Youtube},
		"googleplus": {stored.Googleplus, rec.Googleplus},
	} {
		if pair[1] != "" && pair[1] != pair[0] {
			changes[col] = pair[1]
		}
	}

	if rec.Committees != nil {
		if merged, grew := unionStrings(stored.Committees, rec.Committees); grew {
			changes["committees"] = pq.StringArray(merged)
		}
	}

	if err := mergeCapitolOffice(tx, stored.ID, "rep", rec.CapitolOffice, capitolPhone(rec.Phones)); err != nil {
		return err
	}

	if len(changes) == 0 {
		return nil
	}
	if err := tx.Model(stored).Updates(changes).Error; err != nil {
		return fmt.Errorf("update rep: %w", err)
	}
	return nil
}

// reconcileStateRep merges one state-legislature record. The official id is
// always present and authoritative; a record whose district is unknown
// locally is skipped rather than guessed.
func reconcileStateRep(ctx context.Context, rec provider.NormalizedRep, state State) (bool, error) {
	if rec.OfficialID == "" {
		return false, errors.New("state record has no official id")
	}

	var created bool

	err := db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var district StateDistrict
		err := tx.Where("state_id = ? AND name = ? AND chamber = ?",
			state.ID, rec.DistrictName, rec.Chamber).First(&district).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("unknown state district %q (%s)", rec.DistrictName, rec.Chamber)
		}
		if err != nil {
			return fmt.Errorf("state district lookup: %w", err)
		}

		var stored StateRep
		err = tx.Where("official_id = ?", rec.OfficialID).First(&stored).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return createStateRep(tx, rec, state, district)
		}
		if err != nil {
			return fmt.Errorf("match by official id: %w", err)
		}

		return updateStateRep(tx, &stored, rec, state, district)
	})

	return created, err
}

func createStateRep(tx *gorm.DB, rec provider.NormalizedRep, state State, district StateDistrict) error {
	rep := StateRep{
		OfficialID:      rec.OfficialID,
		First:           rec.FirstName,
		Middle:          rec.MiddleName,
		Last:            rec.LastName,
		Suffix:          rec.Suffix,
		OfficialFull:    rec.OfficialFull,
		Office:          rec.Office,
		Party:           rec.Party,
		Chamber:         rec.Chamber,
		Level:           rec.Level,
		ContactForm:     rec.ContactForm,
		Emails:          pq.StringArray(rec.Emails),
		Committees:      pq.StringArray(rec.Committees),
		Twitter:         rec.Twitter,
		Facebook:        rec.Facebook,
		Youtube:         rec.Youtube,
		Googleplus:      rec.Googleplus,
		URL:             rec.URL,
		PhotoURL:        rec.PhotoURL,
		Active:          rec.Active,
		StateID:         state.ID,
		StateDistrictID: &district.ID,
	}

	if err := tx.Omit("State", "StateDistrict", "OfficeLocations").Create(&rep).Error; err != nil {
		return fmt.Errorf("create state rep: %w", err)
	}

	offices := officesFromExternal(rec, rep.ID, "state_rep")
	if len(offices) > 0 {
		if err := tx.Create(&offices).Error; err != nil {
			return fmt.Errorf("create offices: %w", err)
		}
	}

	return nil
}

func updateStateRep(tx *gorm.DB, stored *StateRep, rec provider.NormalizedRep, state State, district StateDistrict) error {
	changes := map[string]interface{}{}

	if rec.Office != "" && rec.Office != stored.Office {
		changes["office"] = rec.Office
	}
	if rec.Party != "" && rec.Party != stored.Party {
		changes["party"] = rec.Party
	}
	if rec.Chamber != "" && rec.Chamber != stored.Chamber {
		changes["chamber"] = rec.Chamber
	}
	if rec.ContactForm != "" && rec.ContactForm != stored.ContactForm {
		changes["contact_form"] = rec.ContactForm
	}
	if stored.StateDistrictID == nil || *stored.StateDistrictID != district.ID {
		changes["state_district_id"] = district.ID
	}
	if rec.Active != stored.Active {
		changes["active"] = rec.Active
	}
	if stored.StateID == uuid.Nil {
		changes["state_id"] = state.ID
	}

	if merged, grew := unionStrings(stored.Emails, rec.Emails); grew {
		changes["emails"] = pq.StringArray(merged)
	}

	for col, pair := range map[string][2]string{
		"twitter":    {stored.Twitter, rec.Twitter},
		"facebook":   {stored.Facebook, rec.Facebook},
		"youtube":    {stored.Youtube, rec.Youtube},
		"googleplus": {stored.Googleplus, rec.Googleplus},
	} {
		if pair[1] != "" && pair[1] != pair[0] {
			changes[col] = pair[1]
		}
	}

	if rec.Committees != nil {
		if merged, grew := unionStrings(stored.Committees, rec.Committees); grew {
			changes["committees"] = pq.StringArray(merged)
		}
	}

	if err := mergeCapitolOffice(tx, stored.ID, "state_rep", rec.CapitolOffice, capitolPhone(rec.Phones)); err != nil {
		return err
	}

	if len(changes) == 0 {
		return nil
	}
	if err := tx.Model(stored).Updates(changes).Error; err != nil {
		return fmt.Errorf("update state rep: %w", err)
	}
	return nil
}

// mergeCapitolOffice creates the capitol office when absent and otherwise
// updates only the address lines that differ. Phone and fax are set on
// create only, so a manual phone correction survives resync.
func mergeCapitolOffice(tx *gorm.DB, repID uuid.UUID, repType string, ext *provider.NormalizedOffice, phone string) error {
	if ext == nil {
		return nil
	}

	var stored OfficeLocation
	err := tx.Where("rep_id = ? AND rep_type = ? AND office_type = ?", repID, repType, "capitol").
		First(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		office := OfficeLocation{
			RepID:      repID,
			RepType:    repType,
			OfficeType: "capitol",
			Line1:      ext.Line1,
			Line2:      ext.Line2,
			Line3:      ext.Line3,
			Line4:      ext.Line4,
			Line5:      ext.Line5,
			Phone:      phone,
			Fax:        ext.Fax,
			Active:     true,
		}
		if err := tx.Create(&office).Error; err != nil {
			return fmt.Errorf("create capitol office: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("capitol office lookup: %w", err)
	}

	changes := map[string]interface{}{}
	if ext.Line1 != "" && ext.Line1 != stored.Line1 {
		changes["line1"] = ext.Line1
	}
	if ext.Line2 != "" && ext.Line2 != stored.Line2 {
		changes["line2"] = ext.Line2
	}
	if ext.Line3 != "" && ext.Line3 != stored.Line3 {
		changes["line3"] = ext.Line3
	}
	if len(changes) == 0 {
		return nil
	}
	if err := tx.Model(&stored).Updates(changes).Error; err != nil {
		return fmt.Errorf("update capitol office: %w", err)
	}
	return nil
}

// officesFromExternal builds at most two office rows from an external record.
// The source returns both phone numbers as one flat list; the first belongs
// to the district office and the last to the capitol office.
func officesFromExternal(rec provider.NormalizedRep, repID uuid.UUID, repType string) []OfficeLocation {
	var offices []OfficeLocation

	if rec.DistrictOffice != nil {
		offices = append(offices, OfficeLocation{
			RepID:      repID,
			RepType:    repType,
			OfficeType: "district",
			Line1:      rec.DistrictOffice.Line1,
			Line2:      rec.DistrictOffice.Line2,
			Line3:      rec.DistrictOffice.Line3,
			Line4:      rec.DistrictOffice.Line4,
			Line5:      rec.DistrictOffice.Line5,
			Phone:      districtPhone(rec.Phones),
			Fax:        rec.DistrictOffice.Fax,
			Active:     true,
		})
	}

	if rec.CapitolOffice != nil {
		offices = append(offices, OfficeLocation{
			RepID:      repID,
			RepType:    repType,
			OfficeType: "capitol",
			Line1:      rec.CapitolOffice.Line1,
			Line2:      rec.CapitolOffice.Line2,
			Line3:      rec.CapitolOffice.Line3,
			Line4:      rec.CapitolOffice.Line4,
			Line5:      rec.CapitolOffice.Line5,
			Phone:      capitolPhone(rec.Phones),
			Fax:        rec.CapitolOffice.Fax,
			Active:     true,
		})
	}

	return offices
}

func districtPhone(phones []string) string {
	if len(phones) == 0 {
		return ""
	}
	return phones[0]
}

func capitolPhone(phones []string) string {
	if len(phones) == 0 {
		return ""
	}
	return phones[len(phones)-1]
}

// unionStrings merges incoming into existing, preserving existing order and
// appending unseen incoming values in order. The second return reports
// whether anything was added; the union never removes elements, so repeated
// merges are idempotent and the result only grows.
func unionStrings(existing, incoming []string) ([]string, bool) {
	seen := make(map[string]struct{}, len(existing))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, v := range existing {
		key := strings.TrimSpace(v)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, v)
	}

	grew := false
	for _, v := range incoming {
		key := strings.TrimSpace(v)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, v)
		grew = true
	}

	return merged, grew
}

// PhotoSlug is the published portrait location for a federal rep.
func PhotoSlug(bioguideID string) string {
	return "https://phoneyourrep.github.io/images/congress/450x550/" + bioguideID + ".jpg"
}

// UpdateChamberTitles refreshes a state's chamber display names from the
// state-legislature metadata. The lower title may be empty for unicameral
// states (Nebraska) and is left untouched in that case.
func UpdateChamberTitles(ctx context.Context, state *State, upper, lower string) error {
	changes := map[string]interface{}{}
	if upper != "" && upper != state.UpperChamberTitle {
		changes["upper_chamber_title"] = upper
	}
	if lower != "" && lower != state.LowerChamberTitle {
		changes["lower_chamber_title"] = lower
	}
	if len(changes) == 0 {
		return nil
	}
	if err := db.DB.WithContext(ctx).Model(state).Updates(changes).Error; err != nil {
		return fmt.Errorf("update chamber titles: %w", err)
	}
	return nil
}
