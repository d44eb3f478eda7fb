// FILE: internal/dto/metric_dto.go
package dto

import "time"

// MetricFilter maps to the query parameters of GET /startup-metrics.
// Zero From/To leave the range open on that side.
type MetricFilter struct {
	StartupId string
	From      time.Time
	To        time.Time
}
