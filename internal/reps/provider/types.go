package provider

// NormalizedRep represents a representative from any source in a common
// shape. It is the only record type the reconciler consumes; the civicinfo
// and openstates packages each map their wire formats onto it.
type NormalizedRep struct {
	// OfficialID is the source's stable id. The state-legislature API always
	// sets it and it is authoritative for matching; the civic-info API sets
	// the bioguide-style id when it has one.
	OfficialID string `json:"official_id"`

	// Name parts
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MiddleName   string `json:"middle_name"`
	Suffix       string `json:"suffix"`
	OfficialFull string `json:"official_full"`

	// Seat
	Office  string `json:"office"` // free-text office title
	Party   string `json:"party"`  // single letter or full word
	Chamber string `json:"chamber"`
	Level   string `json:"level"`
	Active  bool   `json:"active"`

	// DistrictName is the source's district label for state legislators,
	// matched against StateDistrict.Name. Federal district membership is
	// inferred from the office title instead.
	DistrictName string `json:"district_name"`
	State        string `json:"state"` // 2-letter abbreviation

	// Contact
	Emails      []string `json:"emails"`
	ContactForm string   `json:"contact_form"`
	URL         string   `json:"url"`
	PhotoURL    string   `json:"photo_url"`
	Twitter     string   `json:"twitter"`
	Facebook    string   `json:"facebook"`
	Youtube     string   `json:"youtube"`
	Googleplus  string   `json:"googleplus"`

	// Committees is nil when the source has no committee data at all, which
	// the reconciler treats differently from an empty list.
	Committees []string `json:"committees"`

	// Phones is a flat list covering both offices: by convention the first
	// number belongs to the district office and the last to the capitol
	// office.
	Phones []string `json:"phones"`

	DistrictOffice *NormalizedOffice `json:"district_office"`
	CapitolOffice  *NormalizedOffice `json:"capitol_office"`

	// Source tracking: "civicinfo" or "openstates"
	Source string `json:"source"`
}

// NormalizedOffice is a physical office location from an external record.
type NormalizedOffice struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
	Line3 string `json:"line3"`
	Line4 string `json:"line4"`
	Line5 string `json:"line5"`
	Phone string `json:"phone"`
	Fax   string `json:"fax"`
}
