package directory

import "strconv"

// Page is one page of directory text, as delivered by a page source.
type Page struct {
	Number int    // 1-based page number within the full document
	Text   string // raw extracted text, may be empty
}

// LastUpdatedTag is the provenance stamp written into every record.
const LastUpdatedTag = "2025 v35"

// PersonRecord is a single person/position entry extracted from the directory.
// All fields default to empty; a record is only kept when Name is non-empty.
type PersonRecord struct {
	// Organizational hierarchy
	ServiceAgency            string `json:"service_agency"`
	OrganizationType         string `json:"organization_type"`
	OrganizationName         string `json:"organization_name"`
	OrganizationAbbreviation string `json:"organization_abbreviation"`
	ParentOrganization       string `json:"parent_organization"`
	Portfolio                string `json:"portfolio"`

	// Personnel
	Name         string `json:"name"`
	RankTitle    string `json:"rank_title"`
	Position     string `json:"position"`
	PositionType string `json:"position_type"`
	Status       string `json:"status"`

	// Contact and location
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Building string `json:"building"`

	// Program details
	MissionArea string `json:"mission_area"`
	KeyPrograms string `json:"key_programs"`

	// Metadata
	PageNumber  int    `json:"page_number"`
	Section     string `json:"section"`
	LastUpdated string `json:"last_updated"`
	Notes       string `json:"notes"`
}

// Relationship is a directed edge between two organizational entities.
type Relationship struct {
	ChildEntity      string `json:"child_entity"`
	ChildType        string `json:"child_type"`
	ParentEntity     string `json:"parent_entity"`
	ParentType       string `json:"parent_type"`
	RelationshipType string `json:"relationship_type"`
}

// Relationship types. CPE/PEO report to a PAE; a program office is part of
// its CPE.
const (
	RelReportsTo = "Reports_To"
	RelPartOf    = "Part_Of"
)

// RecordColumns is the output column order for the records table.
// Downstream consumers depend on this order.
var RecordColumns = []string{
	"service_agency", "organization_type", "organization_name",
	"organization_abbreviation", "parent_organization", "portfolio",
	"name", "rank_title", "position", "position_type", "status",
	"email", "phone", "location", "building",
	"mission_area", "key_programs",
	"page_number", "section", "last_updated", "notes",
}

// RelationshipColumns is the output column order for the relationships table.
var RelationshipColumns = []string{
	"child_entity", "child_type", "parent_entity", "parent_type",
	"relationship_type",
}

// Row returns the record's values in RecordColumns order.
func (r PersonRecord) Row() []string {
	return []string{
		r.ServiceAgency, r.OrganizationType, r.OrganizationName,
		r.OrganizationAbbreviation, r.ParentOrganization, r.Portfolio,
		r.Name, r.RankTitle, r.Position, r.PositionType, r.Status,
		r.Email, r.Phone, r.Location, r.Building,
		r.MissionArea, r.KeyPrograms,
		strconv.Itoa(r.PageNumber), r.Section, r.LastUpdated, r.Notes,
	}
}

// Row returns the relationship's values in RelationshipColumns order.
func (r Relationship) Row() []string {
	return []string{
		r.ChildEntity, r.ChildType, r.ParentEntity, r.ParentType,
		r.RelationshipType,
	}
}
