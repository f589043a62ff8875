package reps

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/phoneyourrep/pyr-backend/internal/reps/provider"
)

func TestUnionStringsGrows(t *testing.T) {
	existing := []string{"a@example.com"}
	merged, grew := unionStrings(existing, []string{"b@example.com"})
	if !grew {
		t.Error("expected union to report growth")
	}
	want := []string{"a@example.com", "b@example.com"}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("merged = %v, want %v", merged, want)
	}
}

func TestUnionStringsIdempotent(t *testing.T) {
	existing := []string{"a@example.com", "b@example.com"}
	incoming := []string{"b@example.com", "a@example.com"}

	merged, grew := unionStrings(existing, incoming)
	if grew {
		t.Error("re-merging known values must not report growth")
	}
	if !reflect.DeepEqual(merged, existing) {
		t.Errorf("merged = %v, want existing order %v preserved", merged, existing)
	}

	// A second pass over its own output changes nothing.
	again, grew := unionStrings(merged, incoming)
	if grew || !reflect.DeepEqual(again, merged) {
		t.Errorf("second merge not a fixpoint: %v -> %v", merged, again)
	}
}

func TestUnionStringsNeverShrinks(t *testing.T) {
	existing := []string{"a@example.com", "b@example.com"}
	merged, grew := unionStrings(existing, nil)
	if grew {
		t.Error("empty incoming must not report growth")
	}
	if len(merged) < len(existing) {
		t.Errorf("union shrank from %d to %d elements", len(existing), len(merged))
	}
}

func TestUnionStringsSkipsBlanks(t *testing.T) {
	merged, grew := unionStrings([]string{"a"}, []string{"", "  ", "b"})
	want := []string{"a", "b"}
	if !grew || !reflect.DeepEqual(merged, want) {
		t.Errorf("merged = %v (grew=%v), want %v", merged, grew, want)
	}
}

func TestPhoneConvention(t *testing.T) {
	phones := []string{"202-555-0001", "308-555-0002", "402-555-0003"}
	if got := districtPhone(phones); got != "202-555-0001" {
		t.Errorf("districtPhone = %q, want first entry", got)
	}
	if got := capitolPhone(phones); got != "402-555-0003" {
		t.Errorf("capitolPhone = %q, want last entry", got)
	}

	single := []string{"202-555-0001"}
	if districtPhone(single) != capitolPhone(single) {
		t.Error("a single phone serves both offices")
	}

	if districtPhone(nil) != "" || capitolPhone(nil) != "" {
		t.Error("no phones yields empty strings, not a panic")
	}
}

func TestOfficesFromExternal(t *testing.T) {
	repID := uuid.New()
	rec := provider.NormalizedRep{
		Phones: []string{"308-555-0002", "402-555-0003"},
		DistrictOffice: &provider.NormalizedOffice{
			Line1: "100 Main St",
			Line2: "Cozad, NE 69130",
		},
		CapitolOffice: &provider.NormalizedOffice{
			Line1: "1445 K St",
			Line2: "Lincoln, NE 68508",
			Fax:   "402-555-0099",
		},
	}

	offices := officesFromExternal(rec, repID, "state_rep")
	if len(offices) != 2 {
		t.Fatalf("expected 2 offices, got %d", len(offices))
	}

	district := offices[0]
	if district.OfficeType != "district" || district.Phone != "308-555-0002" {
		t.Errorf("district office = %q phone %q", district.OfficeType, district.Phone)
	}
	if district.RepID != repID || district.RepType != "state_rep" {
		t.Errorf("district office owner = %v/%q", district.RepID, district.RepType)
	}
	if !district.Active {
		t.Error("new offices start active")
	}

	capitol := offices[1]
	if capitol.OfficeType != "capitol" || capitol.Phone != "402-555-0003" {
		t.Errorf("capitol office = %q phone %q", capitol.OfficeType, capitol.Phone)
	}
	if capitol.Fax != "402-555-0099" {
		t.Errorf("capitol fax = %q", capitol.Fax)
	}
}

func TestOfficesFromExternalCapitolOnly(t *testing.T) {
	rec := provider.NormalizedRep{
		Phones:        []string{"202-555-0001"},
		CapitolOffice: &provider.NormalizedOffice{Line1: "B33 Rayburn"},
	}
	offices := officesFromExternal(rec, uuid.New(), "rep")
	if len(offices) != 1 {
		t.Fatalf("expected 1 office, got %d", len(offices))
	}
	if offices[0].OfficeType != "capitol" || offices[0].Phone != "202-555-0001" {
		t.Errorf("got %q office with phone %q", offices[0].OfficeType, offices[0].Phone)
	}
}

func TestOfficesFromExternalNoOffices(t *testing.T) {
	offices := officesFromExternal(provider.NormalizedRep{}, uuid.New(), "rep")
	if len(offices) != 0 {
		t.Errorf("expected no offices, got %d", len(offices))
	}
}

func TestPhotoSlug(t *testing.T) {
	got := PhotoSlug("A000360")
	want := "https://phoneyourrep.github.io/images/congress/450x550/A000360.jpg"
	if got != want {
		t.Errorf("PhotoSlug = %q, want %q", got, want)
	}
}
