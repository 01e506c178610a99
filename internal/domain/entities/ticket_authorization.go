package entities

import (
	"encoding/json"
	"time"
)

// AuthorizationStatus is the outcome recorded for an authorization attempt.
type AuthorizationStatus string

const (
	AuthorizationStatusAutorizado AuthorizationStatus = "autorizado"
)

// TicketAuthorization is the audit record of a driver payment sent to the
// remote system for authorization.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (trip_id-index): trip_id
//
// RemoteResponseRaw keeps the body returned by the remote API for
// traceability.
type TicketAuthorization struct {
	ID          string              `json:"id"`
	TripID      string              `json:"trip_id"`
	DriverID    string              `json:"driver_id"`
	Amount      float64             `json:"amount"`
	RatePerMile float64             `json:"rate_per_mile"`
	Anticipo1   float64             `json:"anticipo_1"`
	Anticipo2   float64             `json:"anticipo_2"`
	Anticipo3   float64             `json:"anticipo_3"`
	Gastos      float64             `json:"gastos"`
	Ajustes     map[int]float64     `json:"ajustes"`
	RemoteID    string              `json:"remote_id"`
	Status      AuthorizationStatus `json:"status"`
	Operator    string              `json:"operator"`
	Date        time.Time           `json:"date"`

	RemoteResponseRaw json.RawMessage `json:"remote_response_raw,omitempty"`
}

// Permissions is what the remote system grants an operator session.
type Permissions struct {
	User   string   `json:"user"`
	Grants []string `json:"grants"`
}

const PermissionAuthorizePayments = "authorize_payments"

func (p Permissions) Has(grant string) bool {
	for _, g := range p.Grants {
		if g == grant {
			return true
		}
	}
	return false
}
