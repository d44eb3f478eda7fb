// FILE: internal/dto/offer_dto.go
package dto

// OfferStatusUpdate is the body of PATCH /offers/{id}/status. Accepting an
// offer makes the server record the investment and refresh the startup's
// post-money valuation.
type OfferStatusUpdate struct {
	Status string `json:"status,omitempty"`
	Note   string `json:"note,omitempty"`
}

// OfferFilter maps to the query parameters of GET /offers. The server
// honors exactly one filter; the first non-empty field wins.
type OfferFilter struct {
	StartupId  string
	InvestorId string
	Status     string
	Visibility string
}
