// FILE: internal/entity/user_entity.go
package entity

type UserRole = string

const (
	UserRoleFounder  UserRole = "founder"
	UserRoleInvestor UserRole = "investor"
	UserRoleAdmin    UserRole = "admin"
)

// UserProfile is the canonical, already-normalized identity shape.
// Optional fields are omitted (not null, not "") when the server never
// provided them, so a stored profile round-trips without inventing values.
type UserProfile struct {
	Id        string `json:"id,omitempty"`
	Email     string `json:"email"`
	FullName  string `json:"fullName,omitempty"`
	Company   string `json:"company,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	Role      string `json:"role,omitempty"`
}

// DisplayName returns the full name, falling back to the email address.
func (u *UserProfile) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

func (u *UserProfile) IsInvestor() bool {
	return u.Role == UserRoleInvestor
}
