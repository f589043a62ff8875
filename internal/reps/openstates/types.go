package openstates

// peopleResponse is a page of legislators from the state-legislature API.
type peopleResponse struct {
	Results    []osPerson   `json:"results"`
	Pagination osPagination `json:"pagination"`
}

type osPagination struct {
	Page    int `json:"page"`
	MaxPage int `json:"max_page"`
	PerPage int `json:"per_page"`
}

// osPerson is one legislator as returned by the API.
type osPerson struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	GivenName   string      `json:"given_name"`
	FamilyName  string      `json:"family_name"`
	Party       string      `json:"party"`
	Email       string      `json:"email"`
	Image       string      `json:"image"`
	CurrentRole osRole      `json:"current_role"`
	Links       []osLink    `json:"links"`
	Offices     []osOffice  `json:"offices"`
	Ids         osSocialIds `json:"ids"`
}

// osRole carries the seat: OrgClassification is "upper" or "lower",
// District is the chamber district name.
type osRole struct {
	Title             string `json:"title"`
	OrgClassification string `json:"org_classification"`
	District          string `json:"district"`
}

type osLink struct {
	URL  string `json:"url"`
	Note string `json:"note"`
}

// osOffice is a contact office; Classification is "capitol" or "district".
type osOffice struct {
	Classification string `json:"classification"`
	Address        string `json:"address"`
	Voice          string `json:"voice"`
	Fax            string `json:"fax"`
	Name           string `json:"name"`
}

type osSocialIds struct {
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	Youtube  string `json:"youtube"`
}

// jurisdictionResponse carries a state's legislature metadata; the chamber
// organizations give the display titles (Senate, Assembly, House of
// Delegates...).
type jurisdictionResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Organizations []osOrganization `json:"organizations"`
}

type osOrganization struct {
	Classification string `json:"classification"` // "upper", "lower", "legislature"
	Name           string `json:"name"`
}
