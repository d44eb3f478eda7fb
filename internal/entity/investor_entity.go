// FILE: internal/entity/investor_entity.go
package entity

import "time"

type InvestorType = string

const (
	InvestorTypeAngel     InvestorType = "angel"
	InvestorTypeVC        InvestorType = "vc"
	InvestorTypeCorporate InvestorType = "corporate"
)

// Investor is the 1:1 companion profile of a user with the investor role.
// MinCheck/MaxCheck are pointers: an unspecified bound stays absent on the
// wire rather than becoming zero.
type Investor struct {
	Id                  string       `json:"id,omitempty"`
	UserId              string       `json:"userId"`
	LegalName           string       `json:"legalName"`
	Type                InvestorType `json:"type"`
	MinCheck            *int         `json:"minCheck,omitempty"`
	MaxCheck            *int         `json:"maxCheck,omitempty"`
	PreferredIndustries []string     `json:"preferredIndustries"`
	PreferredStages     []string     `json:"preferredStages"`
	Description         string       `json:"description"`
	Website             string       `json:"website"`
	IsVerified          bool         `json:"isVerified"`
	CreatedAt           *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt           *time.Time   `json:"updatedAt,omitempty"`
}
