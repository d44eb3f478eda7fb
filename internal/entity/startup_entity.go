// FILE: internal/entity/startup_entity.go
package entity

import "time"

const (
	StartupStageIdea       = "idea"
	StartupStageIncubation = "incubation"
	StartupStageSeed       = "seed"
	StartupStageGrowth     = "growth"

	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// MetricsSnapshot is the denormalized metrics cache embedded in a startup.
type MetricsSnapshot struct {
	Mrr                *float64 `json:"mrr,omitempty"`
	Users              *int     `json:"users,omitempty"`
	ValuationPreMoney  *float64 `json:"valuationPreMoney,omitempty"`
	ValuationPostMoney *float64 `json:"valuationPostMoney,omitempty"`
}

type Startup struct {
	Id              string           `json:"id,omitempty"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug,omitempty"`
	FounderId       string           `json:"founderId,omitempty"`
	Stage           string           `json:"stage,omitempty"`
	Industry        string           `json:"industry,omitempty"`
	ShortPitch      string           `json:"shortPitch,omitempty"`
	Description     string           `json:"description,omitempty"`
	Website         string           `json:"website,omitempty"`
	LogoUrl         string           `json:"logoUrl,omitempty"`
	MetricsSnapshot *MetricsSnapshot `json:"metricsSnapshot,omitempty"`
	Attachments     []string         `json:"attachments,omitempty"`
	Visibility      string           `json:"visibility,omitempty"`
	CreatedAt       *time.Time       `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time       `json:"updatedAt,omitempty"`
}
