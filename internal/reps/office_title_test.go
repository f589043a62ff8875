package reps

import "testing"

func TestClassifyOfficeTitle(t *testing.T) {
	tests := []struct {
		title    string
		kind     TitleKind
		district string
	}{
		{"United States House of Representatives NE-03", TitleHouse, "03"},
		{"United States House - District 5", TitleHouse, "5"},
		{"United States Senate", TitleSenate, ""},
		{"Governor of Nebraska", TitleGovernor, ""},
		{"Upper Chamber District 13", TitleStateChamber, "13"},
		{"Lower Chamber District 42", TitleStateChamber, "42"},
		{"Dog Catcher", TitleUnmapped, ""},
		{"", TitleUnmapped, ""},
	}

	for _, tc := range tests {
		got := ClassifyOfficeTitle(tc.title)
		if got.Kind != tc.kind {
			t.Errorf("ClassifyOfficeTitle(%q).Kind = %v, want %v", tc.title, got.Kind, tc.kind)
		}
		if got.DistrictCode != tc.district {
			t.Errorf("ClassifyOfficeTitle(%q).DistrictCode = %q, want %q", tc.title, got.DistrictCode, tc.district)
		}
	}
}

func TestTitleClassStatewide(t *testing.T) {
	if !ClassifyOfficeTitle("United States Senate").Statewide() {
		t.Error("expected senate to be statewide")
	}
	if !ClassifyOfficeTitle("Governor of Ohio").Statewide() {
		t.Error("expected governor to be statewide")
	}
	if ClassifyOfficeTitle("United States House of Representatives OH-05").Statewide() {
		t.Error("house seats carry a district, not statewide")
	}
	if ClassifyOfficeTitle("something unrecognizable").Statewide() {
		t.Error("unmapped titles must not be treated as statewide")
	}
}

func TestNormalizeDistrictCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"03", "3"},
		{"3", "3"},
		{"12", "12"},
		{"00", "AL"},
		{"AL", "AL"},
		{"ZZ", "ZZ"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := NormalizeDistrictCode(tc.in); got != tc.want {
			t.Errorf("NormalizeDistrictCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// A zero-padded dashed title and the census code for the same district must
// land on the same stored code.
func TestClassifiedCodeMatchesLoaderCode(t *testing.T) {
	class := ClassifyOfficeTitle("United States House of Representatives NE-03")
	fromTitle := NormalizeDistrictCode(class.DistrictCode)
	fromCensus := NormalizeDistrictCode("03")
	if fromTitle != fromCensus {
		t.Errorf("title code %q != census code %q", fromTitle, fromCensus)
	}
	if fromTitle != "3" {
		t.Errorf("normalized code = %q, want %q", fromTitle, "3")
	}
}

func TestTitleKindString(t *testing.T) {
	tests := map[TitleKind]string{
		TitleHouse:        "house",
		TitleSenate:       "senate",
		TitleGovernor:     "governor",
		TitleStateChamber: "state_chamber",
		TitleUnmapped:     "unmapped",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("TitleKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
