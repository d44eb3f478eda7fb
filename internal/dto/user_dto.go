// FILE: internal/dto/user_dto.go
package dto

// ProfileMeta is the optional nested grouping some server responses use for
// contact fields.
type ProfileMeta struct {
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// RawProfile is a profile exactly as the server shaped it: the display name
// may arrive as "name" or "fullName", contact fields may be flat or nested
// under "meta". Never let this shape past the mapper.
type RawProfile struct {
	Id         string       `json:"id,omitempty"`
	Email      string       `json:"email,omitempty"`
	Name       string       `json:"name,omitempty"`
	FullName   string       `json:"fullName,omitempty"`
	Company    string       `json:"company,omitempty"`
	Bio        string       `json:"bio,omitempty"`
	AvatarUrl  string       `json:"avatarUrl,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	Location   string       `json:"location,omitempty"`
	Role       string       `json:"role,omitempty"`
	IsVerified *bool        `json:"isVerified,omitempty"`
	Meta       *ProfileMeta `json:"meta,omitempty"`
}

// RegisterRequest contains only the fields the caller actually supplied;
// the remote API distinguishes "not provided" from "explicitly empty", so
// optional fields are omitted entirely when blank.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"required"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarUrl string `json:"avatarUrl,omitempty"`
	Role      string `json:"role,omitempty"`
}

// RegisterResponse tolerates both observed response shapes: the profile
// nested under "user" next to message/code, or inlined at the top level.
// A token is present only in revisions where registration logs the user in.
type RegisterResponse struct {
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
	Token   string      `json:"token,omitempty"`
	User    *RawProfile `json:"user,omitempty"`

	RawProfile
}

// Profile returns the nested profile when present, else the inline one.
func (r *RegisterResponse) Profile() *RawProfile {
	if r.User != nil {
		return r.User
	}
	return &r.RawProfile
}

type UpdateUserRequest struct {
	Name       string `json:"name,omitempty"`
	Company    string `json:"company,omitempty"`
	Bio        string `json:"bio,omitempty"`
	AvatarUrl  string `json:"avatarUrl,omitempty"`
	IsVerified *bool  `json:"isVerified,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Location   string `json:"location,omitempty"`
}
