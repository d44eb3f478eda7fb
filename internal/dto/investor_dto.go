// FILE: internal/dto/investor_dto.go
package dto

// InvestorDraft is the optional investor profile supplied at registration.
// Every field may be left blank; defaults are merged in by the session
// service before the provisioning call.
type InvestorDraft struct {
	LegalName           string   `json:"legalName,omitempty"`
	Type                string   `json:"type,omitempty" validate:"omitempty,oneof=angel vc corporate"`
	MinCheck            *int     `json:"minCheck,omitempty"`
	MaxCheck            *int     `json:"maxCheck,omitempty"`
	PreferredIndustries []string `json:"preferredIndustries,omitempty"`
	PreferredStages     []string `json:"preferredStages,omitempty"`
	Description         string   `json:"description,omitempty"`
	Website             string   `json:"website,omitempty" validate:"omitempty,url"`
}

// InvestorFilter maps to the query parameters of GET /investors.
// MinCheck/MaxCheck express the desired check range; matching is done
// server-side against the investors' own bounds.
type InvestorFilter struct {
	Type     string
	Industry string
	Stage    string
	MinCheck *int
	MaxCheck *int
}
