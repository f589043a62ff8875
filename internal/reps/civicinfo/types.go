package civicinfo

// civicResponse is the top-level representatives payload from the civic-info
// API. Officials are referenced from offices by index.
type civicResponse struct {
	NormalizedInput civicAddress   `json:"normalizedInput"`
	Offices         []civicOffice  `json:"offices"`
	Officials       []civicPerson  `json:"officials"`
}

// civicOffice is a seat (e.g. "United States Senate") and the indices of the
// officials that hold it.
type civicOffice struct {
	Name            string   `json:"name"`
	DivisionID      string   `json:"divisionId"`
	Levels          []string `json:"levels"`
	Roles           []string `json:"roles"`
	OfficialIndices []int    `json:"officialIndices"`
}

// civicPerson is one official as returned by the API.
type civicPerson struct {
	Name     string         `json:"name"`
	Party    string         `json:"party"`
	Phones   []string       `json:"phones"`
	Urls     []string       `json:"urls"`
	PhotoURL string         `json:"photoUrl"`
	Emails   []string       `json:"emails"`
	Address  []civicAddress `json:"address"`
	Channels []civicChannel `json:"channels"`
}

type civicAddress struct {
	LocationName string `json:"locationName"`
	Line1        string `json:"line1"`
	Line2        string `json:"line2"`
	Line3        string `json:"line3"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

// civicChannel is a social-media handle: Type is "Twitter", "Facebook",
// "YouTube" or "GooglePlus".
type civicChannel struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}
