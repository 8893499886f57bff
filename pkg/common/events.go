package common

// Source events carry the raw fields extracted from indexed parish registers
// and census books. They are immutable inputs: the engine reads them, links
// them to persons via PersonID, and never edits the extracted fields.
//
// Integer day/month/year fields use zero for "not indexed". String fields
// use the empty string the same way.

// BirthEvent is one indexed birth (or baptism) register row.
type BirthEvent struct {
	ID               int64  `json:"id"`
	Day              int    `json:"day,omitempty"`
	Month            int    `json:"month,omitempty"`
	Year             int    `json:"year,omitempty"`
	Parish           string `json:"parish,omitempty"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Location         string `json:"location,omitempty"`
	FatherFirstName  string `json:"father_first_name,omitempty"`
	MotherFirstName  string `json:"mother_first_name,omitempty"`
	MotherMaidenName string `json:"mother_maiden_name,omitempty"`
	GodparentsNotes  string `json:"godparents_notes,omitempty"`
	Signature        string `json:"signature,omitempty"`
	Page             string `json:"page,omitempty"`
	Position         string `json:"position,omitempty"`
	Archive          string `json:"archive,omitempty"`
	ScanNumber       string `json:"scan_number,omitempty"`
	IndexAuthor      string `json:"index_author,omitempty"`
	ScanURL          string `json:"scan_url,omitempty"`
	PersonID         *int64 `json:"person_id,omitempty"`
}

// DeathEvent is one indexed death register row. AboutDeceasedAndFamily is a
// free-text field that often names the spouse, parents, or children of the
// deceased.
type DeathEvent struct {
	ID                     int64  `json:"id"`
	Day                    int    `json:"day,omitempty"`
	Month                  int    `json:"month,omitempty"`
	Year                   int    `json:"year,omitempty"`
	Parish                 string `json:"parish,omitempty"`
	FirstName              string `json:"first_name"`
	LastName               string `json:"last_name"`
	Age                    int    `json:"age,omitempty"`
	Location               string `json:"location,omitempty"`
	AboutDeceasedAndFamily string `json:"about_deceased_and_family,omitempty"`
	Signature              string `json:"signature,omitempty"`
	Page                   string `json:"page,omitempty"`
	Position               string `json:"position,omitempty"`
	Archive                string `json:"archive,omitempty"`
	ScanNumber             string `json:"scan_number,omitempty"`
	IndexAuthor            string `json:"index_author,omitempty"`
	ScanURL                string `json:"scan_url,omitempty"`
	PersonID               *int64 `json:"person_id,omitempty"`
}

// MarriageEvent is one indexed marriage register row.
type MarriageEvent struct {
	ID                    int64  `json:"id"`
	Day                   int    `json:"day,omitempty"`
	Month                 int    `json:"month,omitempty"`
	Year                  int    `json:"year,omitempty"`
	Parish                string `json:"parish,omitempty"`
	GroomFirstName        string `json:"groom_first_name"`
	GroomLastName         string `json:"groom_last_name"`
	GroomLocation         string `json:"groom_location,omitempty"`
	GroomAge              int    `json:"groom_age,omitempty"`
	GroomFatherFirstName  string `json:"groom_father_first_name,omitempty"`
	GroomMotherFirstName  string `json:"groom_mother_first_name,omitempty"`
	GroomMotherMaidenName string `json:"groom_mother_maiden_name,omitempty"`
	BrideFirstName        string `json:"bride_first_name"`
	BrideLastName         string `json:"bride_last_name"`
	BrideLocation         string `json:"bride_location,omitempty"`
	BrideAge              int    `json:"bride_age,omitempty"`
	BrideFatherFirstName  string `json:"bride_father_first_name,omitempty"`
	BrideMotherFirstName  string `json:"bride_mother_first_name,omitempty"`
	BrideMotherMaidenName string `json:"bride_mother_maiden_name,omitempty"`
	WitnessesNotes        string `json:"witnesses_notes,omitempty"`
	Signature             string `json:"signature,omitempty"`
	Page                  string `json:"page,omitempty"`
	Position              string `json:"position,omitempty"`
	Archive               string `json:"archive,omitempty"`
	ScanNumber            string `json:"scan_number,omitempty"`
	IndexAuthor           string `json:"index_author,omitempty"`
	ScanURL               string `json:"scan_url,omitempty"`
}

// CensusEntry is one row from a census or revision list. FullName is the
// combined name column as written ("Marianna z Nowaków" etc.); age columns
// are split by gender in the source books.
type CensusEntry struct {
	ID              int64  `json:"id"`
	HouseholdNumber string `json:"household_number,omitempty"`
	MaleNumber      string `json:"male_number,omitempty"`
	FemaleNumber    string `json:"female_number,omitempty"`
	FullName        string `json:"full_name"`
	MaleAge         int    `json:"male_age,omitempty"`
	FemaleAge       int    `json:"female_age,omitempty"`
	Parish          string `json:"parish,omitempty"`
	Location        string `json:"location,omitempty"`
	Year            int    `json:"year,omitempty"`
	Archive         string `json:"archive,omitempty"`
	IndexAuthor     string `json:"index_author,omitempty"`
	Signature       string `json:"signature,omitempty"`
	Page            string `json:"page,omitempty"`
	ScanNumber      string `json:"scan_number,omitempty"`
	Notes           string `json:"notes,omitempty"`
	PersonID        *int64 `json:"person_id,omitempty"`
}

// EventBatch groups the event records of one import call.
type EventBatch struct {
	Births    []BirthEvent    `json:"births"`
	Deaths    []DeathEvent    `json:"deaths"`
	Marriages []MarriageEvent `json:"marriages"`
	Census    []CensusEntry   `json:"census"`
}
