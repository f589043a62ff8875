package openstates

import "testing"

func TestTransformPerson(t *testing.T) {
	p := osPerson{
		ID:         "ocd-person/abc-123",
		Name:       "Matt Williams",
		GivenName:  "Matt",
		FamilyName: "Williams",
		Party:      "Republican",
		Email:      "mwilliams@leg.ne.gov",
		Image:      "https://example.com/mw.jpg",
		CurrentRole: osRole{
			Title:             "Senator",
			OrgClassification: "upper",
			District:          "36",
		},
		Links: []osLink{{URL: "https://news.legislature.ne.gov/dist36"}},
		Offices: []osOffice{
			{
				Classification: "capitol",
				Address:        "1445 K St; Room 1000; Lincoln, NE 68508",
				Voice:          "402-555-0003",
				Fax:            "402-555-0099",
			},
			{
				Classification: "district",
				Address:        "100 Main St\nGothenburg, NE 69138",
				Voice:          "308-555-0002",
			},
		},
		Ids: osSocialIds{Twitter: "mattfor36"},
	}

	rec := transformPerson(p, "ne")

	if rec.OfficialID != "ocd-person/abc-123" {
		t.Errorf("official id = %q", rec.OfficialID)
	}
	if rec.Level != "state" || rec.Chamber != "upper" || rec.DistrictName != "36" {
		t.Errorf("role = level %q chamber %q district %q", rec.Level, rec.Chamber, rec.DistrictName)
	}
	if rec.State != "NE" {
		t.Errorf("state = %q, want upper-cased", rec.State)
	}
	if len(rec.Emails) != 1 || rec.Emails[0] != "mwilliams@leg.ne.gov" {
		t.Errorf("emails = %v", rec.Emails)
	}
	if rec.URL != "https://news.legislature.ne.gov/dist36" {
		t.Errorf("url = %q", rec.URL)
	}
	if rec.Twitter != "mattfor36" {
		t.Errorf("twitter = %q", rec.Twitter)
	}

	// District phone first, capitol phone last, regardless of the order the
	// API listed the offices in.
	if len(rec.Phones) != 2 {
		t.Fatalf("phones = %v", rec.Phones)
	}
	if rec.Phones[0] != "308-555-0002" || rec.Phones[1] != "402-555-0003" {
		t.Errorf("phones = %v, want district first, capitol last", rec.Phones)
	}

	if rec.CapitolOffice == nil || rec.CapitolOffice.Line1 != "1445 K St" {
		t.Fatalf("capitol office = %+v", rec.CapitolOffice)
	}
	if rec.CapitolOffice.Line2 != "Room 1000" || rec.CapitolOffice.Line3 != "Lincoln, NE 68508" {
		t.Errorf("capitol lines = %q / %q", rec.CapitolOffice.Line2, rec.CapitolOffice.Line3)
	}
	if rec.CapitolOffice.Fax != "402-555-0099" {
		t.Errorf("capitol fax = %q", rec.CapitolOffice.Fax)
	}
	if rec.DistrictOffice == nil || rec.DistrictOffice.Line1 != "100 Main St" {
		t.Fatalf("district office = %+v", rec.DistrictOffice)
	}
	if rec.DistrictOffice.Line2 != "Gothenburg, NE 69138" {
		t.Errorf("district line2 = %q", rec.DistrictOffice.Line2)
	}

	// Committees come from a different endpoint; the transform must leave
	// them nil so reconciliation skips the merge.
	if rec.Committees != nil {
		t.Errorf("committees = %v, want nil", rec.Committees)
	}
}

func TestTransformPersonNoOffices(t *testing.T) {
	rec := transformPerson(osPerson{ID: "ocd-person/x", Name: "Jane Doe"}, "NE")
	if rec.Phones != nil {
		t.Errorf("phones = %v, want none", rec.Phones)
	}
	if rec.CapitolOffice != nil || rec.DistrictOffice != nil {
		t.Error("expected no offices")
	}
}

func TestToOfficeCollapsesLongAddresses(t *testing.T) {
	off := toOffice(osOffice{
		Address: "a; b; c; d; e; f; g",
	})
	if off.Line5 != "e, f, g" {
		t.Errorf("line5 = %q, want overflow collapsed", off.Line5)
	}
	if off.Line1 != "a" || off.Line4 != "d" {
		t.Errorf("lines = %q..%q", off.Line1, off.Line4)
	}
}

func TestTransformBatch(t *testing.T) {
	people := []osPerson{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}
	out := transformBatch(people, "NE")
	if len(out) != 2 || out[0].OfficialID != "1" || out[1].OfficialID != "2" {
		t.Errorf("batch = %+v", out)
	}
}
