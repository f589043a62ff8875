package seeds

import "testing"

func TestStateSeedsCoverAllStates(t *testing.T) {
	if len(stateSeeds) != 51 {
		t.Fatalf("expected 50 states + DC, got %d entries", len(stateSeeds))
	}

	abbrs := make(map[string]struct{}, len(stateSeeds))
	codes := make(map[string]struct{}, len(stateSeeds))
	for _, s := range stateSeeds {
		if len(s.Abbr) != 2 {
			t.Errorf("abbr %q is not 2 letters", s.Abbr)
		}
		if len(s.StateCode) != 2 {
			t.Errorf("%s: FIPS code %q is not zero-padded to 2 digits", s.Abbr, s.StateCode)
		}
		if s.Name == "" {
			t.Errorf("%s: missing name", s.Abbr)
		}
		if _, dup := abbrs[s.Abbr]; dup {
			t.Errorf("duplicate abbr %q", s.Abbr)
		}
		if _, dup := codes[s.StateCode]; dup {
			t.Errorf("duplicate FIPS code %q", s.StateCode)
		}
		abbrs[s.Abbr] = struct{}{}
		codes[s.StateCode] = struct{}{}
	}
}

func TestStateSeedsKnownCodes(t *testing.T) {
	want := map[string]string{
		"NE": "31",
		"CA": "06",
		"DC": "11",
		"WY": "56",
	}
	got := make(map[string]string, len(stateSeeds))
	for _, s := range stateSeeds {
		got[s.Abbr] = s.StateCode
	}
	for abbr, code := range want {
		if got[abbr] != code {
			t.Errorf("%s FIPS code = %q, want %q", abbr, got[abbr], code)
		}
	}
}
