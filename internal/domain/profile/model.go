package profile

// Profile describes the monitored person. Exactly one exists per
// account; it is created with defaults at signup.
type Profile struct {
	Name                  string
	Age                   int
	DateOfBirth           string
	Relationship          string
	EmergencyContactName  string
	EmergencyContactPhone string
}

// Update carries a partial update. A nil field means "leave unchanged";
// present-but-empty strings are stored as given. This replaces the
// build-from-whatever-is-truthy pattern that could clobber data.
type Update struct {
	Name                  *string
	Age                   *int
	DateOfBirth           *string
	Relationship          *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

func (u Update) IsEmpty() bool {
	return u.Name == nil && u.Age == nil && u.DateOfBirth == nil &&
		u.Relationship == nil && u.EmergencyContactName == nil &&
		u.EmergencyContactPhone == nil
}
