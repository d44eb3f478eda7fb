package mapper

import (
	"fintech-hub-client/internal/dto"
	"fintech-hub-client/internal/entity"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToProfile normalizes a server-shaped profile into the canonical form:
// the explicit spelling wins over the legacy one ("fullName" over "name"),
// meta-nested contact fields win over flat ones, and a field neither source
// provides stays absent. Applying it to an already-canonical profile is a
// no-op, so every code path (login, register, refetch) can run through it.
func (m *UserMapper) ToProfile(raw *dto.RawProfile) *entity.UserProfile {
	if raw == nil {
		return nil
	}

	fullName := raw.FullName
	if fullName == "" {
		fullName = raw.Name
	}

	phone := raw.Phone
	location := raw.Location
	if raw.Meta != nil {
		if raw.Meta.Phone != "" {
			phone = raw.Meta.Phone
		}
		if raw.Meta.Location != "" {
			location = raw.Meta.Location
		}
	}

	return &entity.UserProfile{
		Id:        raw.Id,
		Email:     raw.Email,
		FullName:  fullName,
		Company:   raw.Company,
		Bio:       raw.Bio,
		AvatarURL: raw.AvatarUrl,
		Phone:     phone,
		Location:  location,
		Role:      raw.Role,
	}
}
