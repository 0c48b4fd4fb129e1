// Package network assembles company relationship graphs from registry
// data. Given a seed search query it expands a bounded set of candidate
// companies into nodes and edges linking companies to the officers who
// direct them and the persons with significant control over them.
package network

// NodeType tags a graph node as a company, an officer, or a person with
// significant control.
type NodeType string

const (
	NodeTypeCompany NodeType = "Company"
	NodeTypePerson  NodeType = "Person"
	NodeTypePSC     NodeType = "PSC"
)

// EdgeType tags the relationship an edge carries.
type EdgeType string

const (
	EdgeTypeDirectorOf EdgeType = "DIRECTOR_OF"
	EdgeTypeControls   EdgeType = "CONTROLS"
)

// Visualization defaults per node type. Company nodes render larger than
// person nodes.
const (
	companyNodeSize  = 20
	companyNodeColor = "#1f77b4"
	personNodeSize   = 15
	personNodeColor  = "#ff7f0e"
	pscNodeSize      = 18
	pscNodeColor     = "#2ca02c"
)

// Node is a single vertex in the relationship graph. The attribute fields
// past Color are variant-specific and only populated for the matching
// node type.
type Node struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Type  NodeType `json:"type"`
	Size  int      `json:"size"`
	Color string   `json:"color"`

	// Company attributes.
	CompanyNumber     string   `json:"company_number,omitempty"`
	Status            string   `json:"status,omitempty"`
	IncorporationDate string   `json:"incorporation_date,omitempty"`
	SICCodes          []string `json:"sic_codes,omitempty"`
	BusinessActivity  string   `json:"business_activity,omitempty"`

	// Person attributes.
	Role       string `json:"role,omitempty"`
	Occupation string `json:"occupation,omitempty"`

	// Shared by Person and PSC.
	Nationality string `json:"nationality,omitempty"`

	// PSC attributes.
	PSCType            string `json:"psc_type,omitempty"`
	CountryOfResidence string `json:"country_of_residence,omitempty"`
}

// Edge is a directed relation from a Person or PSC node to a Company
// node. Role and AppointedOn are set on DIRECTOR_OF edges;
// NatureOfControl and NotifiedOn on CONTROLS edges.
type Edge struct {
	Source       string   `json:"source"`
	Target       string   `json:"target"`
	Relationship EdgeType `json:"relationship"`

	Role        string `json:"role,omitempty"`
	AppointedOn string `json:"appointed_on,omitempty"`

	NatureOfControl []string `json:"nature_of_control,omitempty"`
	NotifiedOn      string   `json:"notified_on,omitempty"`
}

// Metadata describes one build: the seed query, when the build ran, and
// node counts by type.
type Metadata struct {
	SearchQuery    string `json:"search_query"`
	Timestamp      string `json:"timestamp"`
	TotalCompanies int    `json:"total_companies"`
	TotalPeople    int    `json:"total_people"`
}

// Graph is one assembled relationship graph. Nodes and Edges are in
// discovery order: search-result order, then officer-list order, then
// PSC-list order per company. Node IDs are unique within a graph and every
// edge references existing node IDs.
type Graph struct {
	ID       string   `json:"id"`
	Nodes    []Node   `json:"nodes"`
	Edges    []Edge   `json:"edges"`
	Metadata Metadata `json:"metadata"`
}
