// File: tahanansafe/models/user.go
package models

// UserProfile is the client-side view of an account. The backend owns the
// record; fields fill in progressively as onboarding steps commit.
type UserProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Gender        string `json:"gender,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	ProfileImage  string `json:"profileImage,omitempty"`
	HasPin        bool   `json:"hasPin,omitempty"`
}

// NormalizeUser flattens the heterogeneous user shapes the backend returns
// (flat, or nested under "profile" / "personalInfo") into a UserProfile.
// For every field the flat object wins, then "profile", then "personalInfo".
// Returns nil when raw is not an object or carries no usable fields.
func NormalizeUser(raw any) *UserProfile {
	top, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	sources := []map[string]any{top}
	if m, ok := top["profile"].(map[string]any); ok {
		sources = append(sources, m)
	}
	if m, ok := top["personalInfo"].(map[string]any); ok {
		sources = append(sources, m)
	}

	u := UserProfile{
		ID:            firstString(sources, "id", "_id", "userId"),
		Email:         firstString(sources, "email"),
		FirstName:     firstString(sources, "firstName", "first_name"),
		LastName:      firstString(sources, "lastName", "last_name"),
		Gender:        firstString(sources, "gender"),
		DateOfBirth:   firstString(sources, "dateOfBirth", "dob", "date_of_birth"),
		ContactNumber: firstString(sources, "contactNumber", "phoneNumber", "contact_number"),
		ProfileImage:  firstString(sources, "profileImage", "avatar"),
		HasPin:        firstBool(sources, "hasPin", "has_pin"),
	}
	if u == (UserProfile{}) {
		return nil
	}
	return &u
}

func firstString(sources []map[string]any, keys ...string) string {
	for _, src := range sources {
		for _, key := range keys {
			if v, ok := src[key].(string); ok && v != "" {
				return v
			}
		}
	}
	return ""
}

func firstBool(sources []map[string]any, keys ...string) bool {
	for _, src := range sources {
		for _, key := range keys {
			if v, ok := src[key].(bool); ok {
				return v
			}
		}
	}
	return false
}
