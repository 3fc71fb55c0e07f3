package model

import "time"

// Competition listing statuses.
const (
	StatusOpen        = "open"
	StatusClosingSoon = "closing-soon"
	StatusClosed      = "closed"
)

// Competition represents a case-competition listing. The identifier is a
// plain string so that the MongoDB and file-backed stores can share the
// same model; each store generates its own ids.
type Competition struct {
	ID               string    `bson:"_id,omitempty"     json:"id"`
	Title            string    `bson:"title"             json:"title"`
	Organizer        string    `bson:"organizer"         json:"organizer"`
	Logo             string    `bson:"logo"              json:"logo"`
	GradeEligibility string    `bson:"grade_eligibility" json:"gradeEligibility"`
	Deadline         time.Time `bson:"deadline"          json:"deadline"`
	Prize            string    `bson:"prize"             json:"prize"`
	Status           string    `bson:"status"            json:"status"`
	Description      string    `bson:"description"       json:"description"`
	ApplicationType  string    `bson:"application_type"  json:"applicationType"`
	ApplyURL         string    `bson:"apply_url"         json:"applyUrl"`
	Frequency        string    `bson:"frequency"         json:"frequency"`
	Dates            []string  `bson:"dates"             json:"dates"`
	Location         string    `bson:"location"          json:"location"`
	Cost             string    `bson:"cost"              json:"cost"`
}

// CompetitionStats summarizes the whole competition store for dashboards.
type CompetitionStats struct {
	Total       int `json:"total"`
	Open        int `json:"open"`
	ClosingSoon int `json:"closingSoon"`
	Closed      int `json:"closed"`
	Free        int `json:"free"`
	Virtual     int `json:"virtual"`
	InPerson    int `json:"inPerson"`
}
