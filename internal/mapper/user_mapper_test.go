package mapper_test

import (
	"testing"

	"fintech-hub-client/internal/dto"
	"fintech-hub-client/internal/mapper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProfileNameSources(t *testing.T) {
	m := mapper.NewUserMapper()

	cases := []struct {
		label string
		raw   dto.RawProfile
		want  string
	}{
		{"fullName only", dto.RawProfile{FullName: "Ana Silva"}, "Ana Silva"},
		{"name only", dto.RawProfile{Name: "Ana Silva"}, "Ana Silva"},
		{"fullName wins over name", dto.RawProfile{Name: "legacy", FullName: "Ana Silva"}, "Ana Silva"},
		{"neither stays absent", dto.RawProfile{Email: "a@b.co"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			profile := m.ToProfile(&tc.raw)
			require.NotNil(t, profile)
			assert.Equal(t, tc.want, profile.FullName)
		})
	}
}

func TestToProfileMetaWinsOverFlat(t *testing.T) {
	m := mapper.NewUserMapper()

	profile := m.ToProfile(&dto.RawProfile{
		Phone:    "flat-phone",
		Location: "flat-location",
		Meta: &dto.ProfileMeta{
			Phone:    "meta-phone",
			Location: "meta-location",
		},
	})
	assert.Equal(t, "meta-phone", profile.Phone)
	assert.Equal(t, "meta-location", profile.Location)
}

func TestToProfileEmptyMetaKeepsFlat(t *testing.T) {
	m := mapper.NewUserMapper()

	profile := m.ToProfile(&dto.RawProfile{
		Phone:    "flat-phone",
		Location: "flat-location",
		Meta:     &dto.ProfileMeta{},
	})
	assert.Equal(t, "flat-phone", profile.Phone)
	assert.Equal(t, "flat-location", profile.Location)
}

func TestToProfileIdempotent(t *testing.T) {
	m := mapper.NewUserMapper()

	once := m.ToProfile(&dto.RawProfile{
		Id:       "u1",
		Email:    "ana@example.com",
		Name:     "legacy",
		FullName: "Ana Silva",
		Meta:     &dto.ProfileMeta{Phone: "+5511999"},
	})

	// Re-feeding canonical output must not change anything.
	twice := m.ToProfile(&dto.RawProfile{
		Id:       once.Id,
		Email:    once.Email,
		FullName: once.FullName,
		Phone:    once.Phone,
		Location: once.Location,
	})
	assert.Equal(t, once, twice)
}

func TestToProfileNil(t *testing.T) {
	m := mapper.NewUserMapper()
	assert.Nil(t, m.ToProfile(nil))
}
