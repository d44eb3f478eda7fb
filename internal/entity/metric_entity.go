// FILE: internal/entity/metric_entity.go
package entity

import "time"

// StartupMetric is one dated data point of a startup's time series
// (MRR, active users, burn rate, valuations).
type StartupMetric struct {
	Id                 string                 `json:"id,omitempty"`
	StartupId          string                 `json:"startupId"`
	Date               time.Time              `json:"date"`
	Mrr                *float64               `json:"mrr,omitempty"`
	ActiveUsers        *int                   `json:"activeUsers,omitempty"`
	BurnRate           *float64               `json:"burnRate,omitempty"`
	ValuationPreMoney  *float64               `json:"valuationPreMoney,omitempty"`
	ValuationPostMoney *float64               `json:"valuationPostMoney,omitempty"`
	Other              map[string]interface{} `json:"other,omitempty"`
	CreatedAt          *time.Time             `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time             `json:"updatedAt,omitempty"`
}
