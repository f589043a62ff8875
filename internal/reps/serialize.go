package reps

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RepOut is the external-facing representative shape. The same shape serves
// every call path; only the office ordering differs (ranked on the location
// paths, stored order on the by-id path).
type RepOut struct {
	BioguideID      string      `json:"bioguide_id,omitempty" yaml:"bioguide_id,omitempty"`
	OfficialID      string      `json:"official_id,omitempty" yaml:"official_id,omitempty"`
	Name            string      `json:"name" yaml:"name"`
	State           string      `json:"state" yaml:"state"`
	District        string      `json:"district,omitempty" yaml:"district,omitempty"`
	Office          string      `json:"office" yaml:"office"`
	Party           string      `json:"party" yaml:"party"`
	Phones          []string    `json:"phones" yaml:"phones"`
	OfficeLocations []OfficeOut `json:"office_locations" yaml:"office_locations"`
	Emails          []string    `json:"emails,omitempty" yaml:"emails,omitempty"`
	Committees      []string    `json:"committees,omitempty" yaml:"committees,omitempty"`
	ContactForm     string      `json:"contact_form,omitempty" yaml:"contact_form,omitempty"`
	URL             string      `json:"url,omitempty" yaml:"url,omitempty"`
	Photo           string      `json:"photo,omitempty" yaml:"photo,omitempty"`
	Twitter         string      `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	Facebook        string      `json:"facebook,omitempty" yaml:"facebook,omitempty"`
	Youtube         string      `json:"youtube,omitempty" yaml:"youtube,omitempty"`
	Googleplus      string      `json:"googleplus,omitempty" yaml:"googleplus,omitempty"`
}

// OfficeOut is an office location in the external shape.
type OfficeOut struct {
	OfficeType string `json:"office_type" yaml:"office_type"`
	Line1      string `json:"line1,omitempty" yaml:"line1,omitempty"`
	Line2      string `json:"line2,omitempty" yaml:"line2,omitempty"`
	Line3      string `json:"line3,omitempty" yaml:"line3,omitempty"`
	Line4      string `json:"line4,omitempty" yaml:"line4,omitempty"`
	Line5      string `json:"line5,omitempty" yaml:"line5,omitempty"`
	Phone      string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Fax        string `json:"fax,omitempty" yaml:"fax,omitempty"`
}

// ErrorOut is the single-field degraded payload used only by the
// random-sample-on-empty-store case.
type ErrorOut struct {
	Error string `json:"error" yaml:"error"`
}

// EmptyStoreError is the designed response when a random sample is requested
// against an empty store.
func EmptyStoreError() ErrorOut {
	return ErrorOut{Error: "Something went wrong, try again."}
}

var titleCaser = cases.Title(language.AmericanEnglish)

// NormalizeParty maps single letters and word variants onto the canonical
// party names; anything unrecognized passes through title-cased.
func NormalizeParty(party string) string {
	switch strings.ToLower(strings.TrimSpace(party)) {
	case "":
		return ""
	case "d", "dem", "democrat", "democratic":
		return "Democratic"
	case "r", "rep", "republican":
		return "Republican"
	case "i", "ind", "independent":
		return "Independent"
	default:
		return titleCaser.String(strings.TrimSpace(party))
	}
}

// AssembleRep shapes a federal rep with the given office ordering. Offices
// with no phone number contribute nothing to the phone list but still appear
// as locations.
func AssembleRep(rep Rep, offices []OfficeLocation) RepOut {
	out := RepOut{
		BioguideID:      rep.BioguideID,
		Name:            rep.OfficialFull,
		Office:          rep.Office,
		Party:           NormalizeParty(rep.Party),
		Phones:          phonesFrom(offices),
		OfficeLocations: officeOuts(offices),
		Emails:          rep.Emails,
		Committees:      rep.Committees,
		URL:             rep.URL,
		Photo:           rep.PhotoURL,
		Twitter:         rep.Twitter,
		Facebook:        rep.Facebook,
		Youtube:         rep.Youtube,
		Googleplus:      rep.Googleplus,
	}

	out.State = rep.State.Abbr
	if rep.District != nil {
		out.District = rep.District.Code
	}

	return out
}

// AssembleStateRep shapes a state legislator with the given office ordering.
func AssembleStateRep(rep StateRep, offices []OfficeLocation) RepOut {
	out := RepOut{
		OfficialID:      rep.OfficialID,
		Name:            rep.OfficialFull,
		Office:          rep.Office,
		Party:           NormalizeParty(rep.Party),
		Phones:          phonesFrom(offices),
		OfficeLocations: officeOuts(offices),
		Emails:          rep.Emails,
		Committees:      rep.Committees,
		ContactForm:     rep.ContactForm,
		URL:             rep.URL,
		Photo:           rep.PhotoURL,
		Twitter:         rep.Twitter,
		Facebook:        rep.Facebook,
		Youtube:         rep.Youtube,
		Googleplus:      rep.Googleplus,
	}

	out.State = rep.State.Abbr
	if rep.StateDistrict != nil {
		out.District = rep.StateDistrict.Name
	}

	return out
}

func phonesFrom(offices []OfficeLocation) []string {
	phones := make([]string, 0, len(offices))
	for _, off := range offices {
		if off.Phone == "" {
			continue
		}
		phones = append(phones, off.Phone)
	}
	return phones
}

func officeOuts(offices []OfficeLocation) []OfficeOut {
	outs := make([]OfficeOut, 0, len(offices))
	for _, off := range offices {
		outs = append(outs, OfficeOut{
			OfficeType: off.OfficeType,
			Line1:      off.Line1,
			Line2:      off.Line2,
			Line3:      off.Line3,
			Line4:      off.Line4,
			Line5:      off.Line5,
			Phone:      off.Phone,
			Fax:        off.Fax,
		})
	}
	return outs
}
