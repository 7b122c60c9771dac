package handler

// errorBody mirrors the envelope produced by the global error handler; it is
// repeated here so the transport types stay self-contained.
type errorBody struct {
	Message string   `json:"message"`
	Error   struct{} `json:"error"`
}

// validationBody carries one message per violated persistence rule.
type validationBody struct {
	Errors []string `json:"errors"`
}

// ownershipBody carries the operation-specific authorization denial message.
type ownershipBody struct {
	Error string `json:"error"`
}

// --- Request types ---

type createCourseRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
	// A client-supplied owner is accepted on the wire but never honoured:
	// ownership is always the authenticated caller.
	UserID string `json:"userId"`
}

// updateCourseRequest carries a partial update. Absent fields stay untouched;
// the course id and owner are immutable and have no place here.
type updateCourseRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// Response-only types owned by the transport layer. They make the projection
// rule explicit: no timestamps on courses, no credential or timestamps on the
// embedded owner.

type userResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type courseResponse struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	EstimatedTime   string        `json:"estimatedTime,omitempty"`
	MaterialsNeeded string        `json:"materialsNeeded,omitempty"`
	UserID          string        `json:"userId"`
	User            *userResponse `json:"user,omitempty"`
}

type listCoursesResponse struct {
	Courses []courseResponse `json:"courses"`
}

type getCourseResponse struct {
	Course courseResponse `json:"course"`
}
