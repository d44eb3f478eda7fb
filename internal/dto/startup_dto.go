// FILE: internal/dto/startup_dto.go
package dto

import "fintech-hub-client/internal/entity"

// StartupRequest creates or patches a startup. On update the server applies
// only non-absent fields, so everything except the name is omittable.
type StartupRequest struct {
	Name            string                  `json:"name,omitempty" validate:"omitempty,min=1"`
	Slug            string                  `json:"slug,omitempty"`
	FounderId       string                  `json:"founderId,omitempty"`
	Stage           string                  `json:"stage,omitempty"`
	Industry        string                  `json:"industry,omitempty"`
	ShortPitch      string                  `json:"shortPitch,omitempty"`
	Description     string                  `json:"description,omitempty"`
	Website         string                  `json:"website,omitempty"`
	LogoUrl         string                  `json:"logoUrl,omitempty"`
	MetricsSnapshot *entity.MetricsSnapshot `json:"metricsSnapshot,omitempty"`
	Attachments     []string                `json:"attachments,omitempty"`
	Visibility      string                  `json:"visibility,omitempty"`
}

// StartupFilter maps to the query parameters of GET /startups.
type StartupFilter struct {
	Stage    string
	Industry string
	Query    string
}
