package reps

import "strings"

// TitleKind classifies a free-text office title. The classifier is an ordered
// match (house, then senate/governor, then state chamber keywords); anything
// that falls through is TitleUnmapped, a first-class outcome the reconciler
// logs instead of guessing a district.
type TitleKind int

const (
	TitleHouse TitleKind = iota
	TitleSenate
	TitleGovernor
	TitleStateChamber
	TitleUnmapped
)

func (k TitleKind) String() string {
	switch k {
	case TitleHouse:
		return "house"
	case TitleSenate:
		return "senate"
	case TitleGovernor:
		return "governor"
	case TitleStateChamber:
		return "state_chamber"
	default:
		return "unmapped"
	}
}

// TitleClass is the classifier result. DistrictCode is only set for kinds
// that carry a district; senate and governor are statewide by definition.
type TitleClass struct {
	Kind         TitleKind
	DistrictCode string
}

// Statewide reports whether the title maps to a seat with no district.
func (c TitleClass) Statewide() bool {
	return c.Kind == TitleSenate || c.Kind == TitleGovernor
}

// ClassifyOfficeTitle parses an office title into a TitleClass.
//
// House district codes are the last whitespace token split on "-", final
// segment: "United States House - District 5" and "OH-5" both yield "5".
// The extraction is knowingly brittle for titles with trailing punctuation or
// multi-word district identifiers; there is no confirmed title format to
// generalize against, so the behavior is kept as is.
func ClassifyOfficeTitle(title string) TitleClass {
	lower := strings.ToLower(title)

	switch {
	case strings.Contains(lower, "united states house"):
		return TitleClass{Kind: TitleHouse, DistrictCode: lastDistrictToken(title)}

	case strings.Contains(lower, "united states senate"):
		return TitleClass{Kind: TitleSenate}

	case strings.Contains(lower, "governor"):
		return TitleClass{Kind: TitleGovernor}

	case strings.Contains(lower, "upper"),
		strings.Contains(lower, "lower"),
		strings.Contains(lower, "chamber"):
		return TitleClass{Kind: TitleStateChamber, DistrictCode: lastToken(title)}

	default:
		return TitleClass{Kind: TitleUnmapped}
	}
}

// NormalizeDistrictCode maps source district codes onto the stored form:
// leading zeros are stripped ("03" becomes "3") and the census at-large
// sentinel "00" becomes "AL". Title extraction and the boundary loader both
// go through here so a zero-padded code from either side matches the same
// district row.
func NormalizeDistrictCode(code string) string {
	if code == "00" {
		return "AL"
	}
	trimmed := strings.TrimLeft(code, "0")
	if trimmed == "" {
		return code
	}
	return trimmed
}

func lastToken(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func lastDistrictToken(title string) string {
	token := lastToken(title)
	parts := strings.Split(token, "-")
	return parts[len(parts)-1]
}
