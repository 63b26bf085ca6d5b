package profile

type getOutput struct {
	Body profileResponse
}

type profileResponse struct {
	Name                  string `json:"name"`
	Age                   int    `json:"age"`
	DateOfBirth           string `json:"date_of_birth,omitempty"`
	Relationship          string `json:"relationship"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
}

// updateRequest uses pointers so "field absent" and "field set to empty"
// stay distinguishable.
type updateInput struct {
	Body updateRequest
}

type updateRequest struct {
	Name                  *string `json:"name,omitempty"`
	Age                   *int    `json:"age,omitempty"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"`
	Relationship          *string `json:"relationship,omitempty"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
}

type updateOutput struct {
	Body updateResponse
}

type updateResponse struct {
	Message string          `json:"message"`
	Profile profileResponse `json:"profile"`
}
