// FILE: internal/entity/investment_entity.go
package entity

import "time"

const InvestmentStatusActive = "active"

// Investment records an accepted offer. The server materializes one whenever
// an offer status flips to "accepted".
type Investment struct {
	Id                 string     `json:"id,omitempty"`
	StartupId          string     `json:"startupId"`
	InvestorId         string     `json:"investorId"`
	Amount             int        `json:"amount"`
	Currency           string     `json:"currency,omitempty"`
	EquityPercent      float64    `json:"equityPercent"`
	ValuationPostMoney *float64   `json:"valuationPostMoney,omitempty"`
	Status             string     `json:"status,omitempty"`
	Note               string     `json:"note,omitempty"`
	CreatedAt          *time.Time `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}
