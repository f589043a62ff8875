package reps

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// State owns both congressional and state-legislature districts. Chamber
// titles come from the state-legislature metadata sync and vary by state
// (Senate/Assembly/House of Delegates...).
type State struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Abbr              string    `json:"abbr" gorm:"size:2;uniqueIndex"`
	StateCode         string    `json:"state_code" gorm:"size:2"` // FIPS code
	Name              string    `json:"name"`
	UpperChamberTitle string    `json:"upper_chamber_title"`
	LowerChamberTitle string    `json:"lower_chamber_title"`
}

// District is a federal congressional district. Geom is a PostGIS
// multipolygon (SRID 4326) queried with ST_Contains; it is written raw by the
// shapefile loader and never read through gorm. Statewide seats are NOT
// district rows: a Rep with DistrictID = nil is a statewide seat.
type District struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Code    string    `json:"code" gorm:"size:4;index:uniq_state_district,unique"` // "1".."53" or "AL" for at-large
	StateID uuid.UUID `json:"state_id" gorm:"type:uuid;index:uniq_state_district,unique"`
	Geom    string    `json:"-" gorm:"type:geometry(MultiPolygon,4326)"`
}

// StateDistrict is the state-legislature analogue of District, keyed by
// (state, name, chamber) since upper and lower districts reuse names.
type StateDistrict struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name    string    `json:"name" gorm:"index:uniq_state_chamber_district,unique"`
	Chamber string    `json:"chamber" gorm:"size:5;index:uniq_state_chamber_district,unique"` // "upper" or "lower"
	StateID uuid.UUID `json:"state_id" gorm:"type:uuid;index:uniq_state_chamber_district,unique"`
	Geom    string    `json:"-" gorm:"type:geometry(MultiPolygon,4326)"`
}

// Rep is a federal representative or senator. BioguideID is the stable
// identity key when the source provides one; reconciliation falls back to
// (last name, state) otherwise. DistrictID nil means a statewide seat
// (senator), which location lookups must always include.
type Rep struct {
	ID           uuid.UUID  `json:"-" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BioguideID   string     `json:"bioguide_id" gorm:"index"`
	First        string     `json:"first"`
	Middle       string     `json:"middle"`
	Last         string     `json:"last"`
	Suffix       string     `json:"suffix"`
	OfficialFull string     `json:"official_full"`
	Office       string     `json:"office"` // free-text office title, parsed during reconciliation
	Party        string     `json:"party"`
	Emails       pq.StringArray `json:"emails" gorm:"type:text[]"`
	Committees   pq.StringArray `json:"committees" gorm:"type:text[]"`
	Twitter      string     `json:"twitter"`
	Facebook     string     `json:"facebook"`
	Youtube      string     `json:"youtube"`
	Googleplus   string     `json:"googleplus"`
	URL          string     `json:"url"`
	PhotoURL     string     `json:"photo"`
	Active       bool       `json:"active"`
	StateID      uuid.UUID  `json:"-" gorm:"type:uuid;index"`
	DistrictID   *uuid.UUID `json:"-" gorm:"type:uuid;index"`

	State           State            `json:"-" gorm:"foreignKey:StateID"`
	District        *District        `json:"-" gorm:"foreignKey:DistrictID"`
	OfficeLocations []OfficeLocation `json:"office_locations" gorm:"polymorphic:Rep;polymorphicValue:rep"`
}

// StateRep is a state legislator. OfficialID is the external id from the
// state-legislature API and is the authoritative reconciliation key, unlike
// the best-effort federal match.
type StateRep struct {
	ID           uuid.UUID `json:"-" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	OfficialID   string    `json:"official_id" gorm:"uniqueIndex"`
	First        string    `json:"first"`
	Middle       string    `json:"middle"`
	Last         string    `json:"last"`
	Suffix       string    `json:"suffix"`
	OfficialFull string    `json:"official_full"`
	Office       string    `json:"office"`
	Party        string    `json:"party"`
	Chamber      string    `json:"chamber"` // "upper" or "lower"
	Level        string    `json:"level"`   // e.g. "state"
	ContactForm  string    `json:"contact_form"`
	Emails       pq.StringArray `json:"emails" gorm:"type:text[]"`
	Committees   pq.StringArray `json:"committees" gorm:"type:text[]"`
	Twitter      string    `json:"twitter"`
	Facebook     string    `json:"facebook"`
	Youtube      string    `json:"youtube"`
	Googleplus   string    `json:"googleplus"`
	URL          string    `json:"url"`
	PhotoURL     string    `json:"photo"`
	Active       bool      `json:"active"`
	StateID      uuid.UUID  `json:"-" gorm:"type:uuid;index"`
	StateDistrictID *uuid.UUID `json:"-" gorm:"type:uuid;index"`

	State           State            `json:"-" gorm:"foreignKey:StateID"`
	StateDistrict   *StateDistrict   `json:"-" gorm:"foreignKey:StateDistrictID"`
	OfficeLocations []OfficeLocation `json:"office_locations" gorm:"polymorphic:Rep;polymorphicValue:state_rep"`
}

// OfficeLocation belongs to exactly one rep (federal or state) through the
// polymorphic RepID/RepType pair. Reconciliation matches offices by
// (rep, office_type) and updates fields in place; it never deletes, so stale
// offices persist until removed explicitly.
type OfficeLocation struct {
	ID         uuid.UUID `json:"-" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	RepID      uuid.UUID `json:"-" gorm:"type:uuid;index:idx_office_rep"`
	RepType    string    `json:"-" gorm:"size:10;index:idx_office_rep"` // "rep" or "state_rep"
	OfficeType string    `json:"office_type" gorm:"size:10"`            // "capitol", "district" or "office"
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2"`
	Line3      string    `json:"line3"`
	Line4      string    `json:"line4"`
	Line5      string    `json:"line5"`
	Phone      string    `json:"phone"`
	Fax        string    `json:"fax"`
	Active     bool      `json:"active"`
	Lat        *float64  `json:"-"` // nil until geocoded
	Lng        *float64  `json:"-"`
}

func (State) TableName() string {
	return "reps.states"
}

func (District) TableName() string {
	return "reps.districts"
}

func (StateDistrict) TableName() string {
	return "reps.state_districts"
}

func (Rep) TableName() string {
	return "reps.reps"
}

func (StateRep) TableName() string {
	return "reps.state_reps"
}

func (OfficeLocation) TableName() string {
	return "reps.office_locations"
}
