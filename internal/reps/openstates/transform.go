package openstates

import (
	"strings"

	"github.com/phoneyourrep/pyr-backend/internal/reps/provider"
)

// transformPerson maps one legislator onto the normalized record shape. The
// official id is always present and is the authoritative reconciliation key
// for state records.
func transformPerson(p osPerson, state string) provider.NormalizedRep {
	rec := provider.NormalizedRep{
		OfficialID:   p.ID,
		FirstName:    p.GivenName,
		LastName:     p.FamilyName,
		OfficialFull: p.Name,
		Office:       p.CurrentRole.Title,
		Party:        p.Party,
		Chamber:      p.CurrentRole.OrgClassification,
		DistrictName: p.CurrentRole.District,
		Level:        "state",
		State:        strings.ToUpper(state),
		PhotoURL:     p.Image,
		Twitter:      p.Ids.Twitter,
		Facebook:     p.Ids.Facebook,
		Youtube:      p.Ids.Youtube,
		Active:       true,
		Source:       "openstates",
	}

	if p.Email != "" {
		rec.Emails = []string{p.Email}
	}
	if len(p.Links) > 0 {
		rec.URL = p.Links[0].URL
	}

	// Collect phones district-first so the flat list keeps the district
	// office number first and the capitol number last.
	var districtPhone, capitolPhone string
	for _, off := range p.Offices {
		switch off.Classification {
		case "district":
			if rec.DistrictOffice == nil {
				rec.DistrictOffice = toOffice(off)
				districtPhone = off.Voice
			}
		case "capitol":
			if rec.CapitolOffice == nil {
				rec.CapitolOffice = toOffice(off)
				capitolPhone = off.Voice
			}
		}
	}
	if districtPhone != "" {
		rec.Phones = append(rec.Phones, districtPhone)
	}
	if capitolPhone != "" {
		rec.Phones = append(rec.Phones, capitolPhone)
	}

	return rec
}

// toOffice splits the API's single address string into lines. Addresses come
// back semicolon- or newline-delimited; anything beyond five lines is
// collapsed into the last.
func toOffice(off osOffice) *provider.NormalizedOffice {
	out := &provider.NormalizedOffice{Fax: off.Fax}

	addr := strings.ReplaceAll(off.Address, "\n", ";")
	parts := strings.Split(addr, ";")
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) > 5 {
		lines[4] = strings.Join(lines[4:], ", ")
		lines = lines[:5]
	}

	fields := []*string{&out.Line1, &out.Line2, &out.Line3, &out.Line4, &out.Line5}
	for i, line := range lines {
		*fields[i] = line
	}

	return out
}

// transformBatch converts a page of legislators.
func transformBatch(people []osPerson, state string) []provider.NormalizedRep {
	out := make([]provider.NormalizedRep, 0, len(people))
	for _, p := range people {
		out = append(out, transformPerson(p, state))
	}
	return out
}
