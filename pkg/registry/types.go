package registry

// SearchResult is a single hit from the company search endpoint. The
// registry returns more fields than these; only the ones the renderer and
// the network builder consume are mapped.
type SearchResult struct {
	Title          string `json:"title"`
	CompanyNumber  string `json:"company_number"`
	CompanyStatus  string `json:"company_status"`
	CompanyType    string `json:"company_type"`
	AddressSnippet string `json:"address_snippet,omitempty"`
	Description    string `json:"description,omitempty"`
	DateOfCreation string `json:"date_of_creation,omitempty"`
}

// CompanyProfile is the detailed record for one registered company.
// BusinessActivity is derived at mapping time: the registry field when
// present, otherwise a readable listing of the SIC codes, otherwise empty.
type CompanyProfile struct {
	CompanyNumber     string            `json:"company_number"`
	CompanyName       string            `json:"company_name"`
	CompanyStatus     string            `json:"company_status"`
	IncorporationDate string            `json:"incorporation_date,omitempty"`
	CompanyType       string            `json:"company_type"`
	SICCodes          []string          `json:"sic_codes,omitempty"`
	RegisteredAddress map[string]string `json:"registered_address,omitempty"`
	BusinessActivity  string            `json:"business_activity,omitempty"`
}

// Officer is a company officer (director, secretary, ...) scoped to one
// company number. OfficerID is best-effort parsed from the appointments
// link and may be empty when the link is absent or unparseable.
type Officer struct {
	OfficerID          string `json:"officer_id,omitempty"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	AppointedOn        string `json:"appointed_on,omitempty"`
	ResignedOn         string `json:"resigned_on,omitempty"`
	Nationality        string `json:"nationality,omitempty"`
	Occupation         string `json:"occupation,omitempty"`
	CountryOfResidence string `json:"country_of_residence,omitempty"`
}

// PSCType classifies a person with significant control.
type PSCType string

const (
	PSCTypeIndividual      PSCType = "individual"
	PSCTypeCorporateEntity PSCType = "corporate-entity"
	PSCTypeLegalPerson     PSCType = "legal-person"
)

// PSC is a person with significant control over a company. PSCID is the
// last path segment of the record's self link.
type PSC struct {
	PSCID              string   `json:"psc_id,omitempty"`
	Name               string   `json:"name"`
	PSCType            PSCType  `json:"psc_type"`
	NatureOfControl    []string `json:"nature_of_control,omitempty"`
	NotifiedOn         string   `json:"notified_on,omitempty"`
	CountryOfResidence string   `json:"country_of_residence,omitempty"`
	Nationality        string   `json:"nationality,omitempty"`
}
