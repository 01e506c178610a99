package entities

import (
	"math"

	"freight_settlement/internal/domain/valueobject"
)

// TripExpense is a cost booked against a trip (diesel, tolls, repairs...).
type TripExpense struct {
	ID      string  `json:"id"`
	TripID  string  `json:"trip_id"`
	Concept string  `json:"concept"`
	Amount  float64 `json:"amount"`
}

// TotalExpenses ignores amounts that did not parse.
func TotalExpenses(expenses []TripExpense) float64 {
	total := 0.0
	for _, e := range expenses {
		if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
			continue
		}
		total += e.Amount
	}
	return total
}

// TripSummary aggregates what a trip bills, what was collected and what it
// cost.
type TripSummary struct {
	TripID            string  `json:"trip_id"`
	TripNumber        string  `json:"trip_number"`
	Revenue           float64 `json:"revenue"`
	Collected         float64 `json:"collected"`
	PendingCollection float64 `json:"pending_collection"`
	Expenses          float64 `json:"expenses"`
	Margin            float64 `json:"margin"`
}

func Summarize(trip Trip, expenses []TripExpense) TripSummary {
	s := TripSummary{TripID: trip.TripID, TripNumber: trip.TripNumber}
	for _, st := range trip.Stages {
		if st.RateTarifa != nil {
			s.Revenue += *st.RateTarifa
		}
		if v, err := st.PaidRate.Parse(); err == nil && !math.IsInf(v, 0) {
			s.Collected += v
		}
	}
	s.Expenses = TotalExpenses(expenses)

	s.Revenue = valueobject.Round2(s.Revenue)
	s.Collected = valueobject.Round2(s.Collected)
	s.Expenses = valueobject.Round2(s.Expenses)
	s.PendingCollection = valueobject.Round2(s.Revenue - s.Collected)
	s.Margin = valueobject.Round2(s.Revenue - s.Expenses)
	return s
}
