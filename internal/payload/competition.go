package payload

// CompetitionRequest is the body of POST /api/competitions. The deadline
// is carried as a string and parsed after validation; the dates array is
// exactly [start, end] in dd/mm/yy form.
type CompetitionRequest struct {
	Title            string   `json:"title"            validate:"required"`
	Organizer        string   `json:"organizer"        validate:"required"`
	Logo             string   `json:"logo"             validate:"required"`
	GradeEligibility string   `json:"gradeEligibility" validate:"required"`
	Deadline         string   `json:"deadline"         validate:"required,calendardate"`
	Prize            string   `json:"prize"            validate:"required"`
	Status           string   `json:"status"           validate:"required"`
	Description      string   `json:"description"      validate:"required"`
	ApplicationType  string   `json:"applicationType"  validate:"required"`
	ApplyURL         string   `json:"applyUrl"         validate:"required"`
	Frequency        string   `json:"frequency"        validate:"required"`
	Dates            []string `json:"dates"            validate:"required,len=2,dive,datetoken"`
	Location         string   `json:"location"         validate:"required"`
	Cost             string   `json:"cost"             validate:"required"`
}

// CompetitionUpdateRequest is the body of PUT /api/competitions/{id}.
// All fields are optional; only present fields are applied. The id field
// is accepted but must match the path parameter.
type CompetitionUpdateRequest struct {
	ID               *string  `json:"id"`
	Title            *string  `json:"title"`
	Organizer        *string  `json:"organizer"`
	Logo             *string  `json:"logo"`
	GradeEligibility *string  `json:"gradeEligibility"`
	Deadline         *string  `json:"deadline"`
	Prize            *string  `json:"prize"`
	Status           *string  `json:"status"`
	Description      *string  `json:"description"`
	ApplicationType  *string  `json:"applicationType"`
	ApplyURL         *string  `json:"applyUrl"`
	Frequency        *string  `json:"frequency"`
	Dates            []string `json:"dates"`
	Location         *string  `json:"location"`
	Cost             *string  `json:"cost"`
}
