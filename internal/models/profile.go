// Package models defines HealthGuard domain types: identities, sessions,
// vital readings and severity categories.
package models

// Role is the access role carried by a profile.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// EmergencyContact is the person to reach for a profile in an emergency.
type EmergencyContact struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
}

// Profile is the identity record owned by the credential directory and
// copied into a Session on login.
type Profile struct {
	ID               string           `json:"id"`
	Username         string           `json:"username"`
	Name             string           `json:"name"`
	Age              int              `json:"age"`
	Role             Role             `json:"role"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone,omitempty"`
	Address          string           `json:"address,omitempty"`
	Location         string           `json:"location,omitempty"`
	Nationality      string           `json:"nationality,omitempty"`
	BloodType        string           `json:"bloodType"`
	Allergies        string           `json:"allergies"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	AvatarURL        *string          `json:"avatarUrl,omitempty"`
}

// Clone returns a deep copy of p. The only reference field is AvatarURL.
func (p Profile) Clone() Profile {
	c := p
	if p.AvatarURL != nil {
		v := *p.AvatarURL
		c.AvatarURL = &v
	}
	return c
}

// CredentialEntry is one row of the credential directory. The password is an
// opaque secret compared by exact match.
type CredentialEntry struct {
	Username string
	Password string
	Profile  Profile
}
