package models

// ErrorViewModel feeds the generic error page.
type ErrorViewModel struct {
	RequestID     string `json:"requestId"`
	ShowRequestID bool   `json:"showRequestId"`
}

// NewErrorViewModel builds the model for requestID.
func NewErrorViewModel(requestID string) ErrorViewModel {
	return ErrorViewModel{RequestID: requestID, ShowRequestID: requestID != ""}
}

// PeopleViewModel lists recent submissions.
type PeopleViewModel struct {
	People []PersonRow `json:"people"`
}

// PersonRow is one line of the submissions list.
type PersonRow struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Age       int    `json:"age"`
	Location  string `json:"location"`
	Submitted string `json:"submitted"`
}
