package civicinfo

import (
	"strings"

	"github.com/phoneyourrep/pyr-backend/internal/reps/provider"
)

// transformResponse flattens the office/official index structure into one
// NormalizedRep per (office, official) pair. The civic-info API has no
// committee data, so Committees stays nil and the reconciler skips that
// merge entirely.
func transformResponse(payload *civicResponse) []provider.NormalizedRep {
	if payload == nil {
		return nil
	}

	out := make([]provider.NormalizedRep, 0, len(payload.Officials))

	for _, office := range payload.Offices {
		for _, idx := range office.OfficialIndices {
			if idx < 0 || idx >= len(payload.Officials) {
				continue
			}
			person := payload.Officials[idx]

			first, middle, last := splitName(person.Name)

			rec := provider.NormalizedRep{
				FirstName:    first,
				MiddleName:   middle,
				LastName:     last,
				OfficialFull: person.Name,
				Office:       office.Name,
				Party:        person.Party,
				State:        payload.NormalizedInput.State,
				Emails:       person.Emails,
				PhotoURL:     person.PhotoURL,
				Phones:       person.Phones,
				Active:       true,
				Source:       "civicinfo",
			}

			if len(person.Urls) > 0 {
				rec.URL = person.Urls[0]
			}

			for _, ch := range person.Channels {
				switch strings.ToLower(ch.Type) {
				case "twitter":
					rec.Twitter = ch.ID
				case "facebook":
					rec.Facebook = ch.ID
				case "youtube":
					rec.Youtube = ch.ID
				case "googleplus":
					rec.Googleplus = ch.ID
				}
			}

			// The API lists the capitol address first; any further address
			// is a district office.
			if len(person.Address) > 0 {
				rec.CapitolOffice = toOffice(person.Address[0])
			}
			if len(person.Address) > 1 {
				rec.DistrictOffice = toOffice(person.Address[1])
			}

			out = append(out, rec)
		}
	}

	return out
}

func toOffice(addr civicAddress) *provider.NormalizedOffice {
	office := &provider.NormalizedOffice{
		Line1: addr.Line1,
		Line2: addr.Line2,
		Line3: addr.Line3,
	}
	cityLine := strings.TrimSpace(addr.City)
	if addr.State != "" {
		cityLine = strings.TrimSpace(cityLine + " " + addr.State + " " + addr.Zip)
	}
	if office.Line2 == "" {
		office.Line2 = cityLine
	} else if office.Line3 == "" {
		office.Line3 = cityLine
	} else {
		office.Line4 = cityLine
	}
	if addr.LocationName != "" {
		office.Line5 = addr.LocationName
	}
	return office
}

// splitName is a best-effort split of a display name into parts. Suffixes
// like "Jr." stay attached to the last name rather than being guessed at.
func splitName(full string) (first, middle, last string) {
	fields := strings.Fields(full)
	switch len(fields) {
	case 0:
		return "", "", ""
	case 1:
		return "", "", fields[0]
	case 2:
		return fields[0], "", fields[1]
	default:
		return fields[0], strings.Join(fields[1:len(fields)-1], " "), fields[len(fields)-1]
	}
}
