// FILE: internal/entity/offer_entity.go
package entity

import "time"

const (
	OfferStatusSent      = "sent"
	OfferStatusAccepted  = "accepted"
	OfferStatusRejected  = "rejected"
	OfferStatusCountered = "countered"

	OfferTypeOffer     = "offer"
	OfferTypeTermSheet = "term-sheet"
)

type OfferAttachment struct {
	Url  string `json:"url"`
	Name string `json:"name"`
}

type Offer struct {
	Id            string            `json:"id,omitempty"`
	StartupId     string            `json:"startupId"`
	InvestorId    string            `json:"investorId"`
	Title         string            `json:"title,omitempty"`
	Amount        int               `json:"amount"`
	EquityPercent float64           `json:"equityPercent"`
	Type          string            `json:"type,omitempty"`
	Visibility    string            `json:"visibility,omitempty"`
	Status        string            `json:"status,omitempty"`
	Attachments   []OfferAttachment `json:"attachments,omitempty"`
	Note          string            `json:"note,omitempty"`
	CreatedAt     *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time        `json:"updatedAt,omitempty"`
}
