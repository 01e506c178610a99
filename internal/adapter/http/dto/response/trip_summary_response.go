package response

import (
	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/domain/valueobject"
)

// TripSummaryResponse carries amounts as two-decimal strings.
type TripSummaryResponse struct {
	TripID            string `json:"trip_id"`
	TripNumber        string `json:"trip_number"`
	Revenue           string `json:"revenue"`
	Collected         string `json:"collected"`
	PendingCollection string `json:"pending_collection"`
	Expenses          string `json:"expenses"`
	Margin            string `json:"margin"`
}

func FromTripSummary(s entities.TripSummary) TripSummaryResponse {
	return TripSummaryResponse{
		TripID:            s.TripID,
		TripNumber:        s.TripNumber,
		Revenue:           valueobject.Money2(s.Revenue),
		Collected:         valueobject.Money2(s.Collected),
		PendingCollection: valueobject.Money2(s.PendingCollection),
		Expenses:          valueobject.Money2(s.Expenses),
		Margin:            valueobject.Money2(s.Margin),
	}
}
