package response

import (
	"strconv"
	"time"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/domain/valueobject"
	"freight_settlement/internal/usecase"
)

// Numbers derived from operator input may be NaN, so they travel as strings.

type TicketLineResponse struct {
	StageNumber        int     `json:"stage_number"`
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	EmptyMileage       bool    `json:"empty_mileage"`
	MillasPcMiller     float64 `json:"millas_pcmiller"`
	Ajuste             string  `json:"ajuste"`
	FinalMiles         string  `json:"final_miles"`
	NegativeAdjustment bool    `json:"negative_adjustment"`
}

type AdvancesResponse struct {
	A1      string `json:"a1"`
	A2      string `json:"a2"`
	A3      string `json:"a3"`
	Visible int    `json:"visible"`
	CanAdd  bool   `json:"can_add"`
}

type TicketTotalsResponse struct {
	TotalMillasAjustadas string `json:"total_millas_ajustadas"`
	TotalAvances         string `json:"total_avances"`
	Subtotal             string `json:"subtotal"`
	TotalPagar           string `json:"total_pagar"`
	Payable              bool   `json:"payable"`
}

type PaymentTicketResponse struct {
	TripID      string               `json:"trip_id"`
	TripNumber  string               `json:"trip_number"`
	DriverID    string               `json:"driver_id"`
	DriverName  string               `json:"driver_name"`
	RatePerMile string               `json:"rate_per_mile"`
	Gastos      string               `json:"gastos"`
	Ajustes     map[string]string    `json:"ajustes"`
	Advances    AdvancesResponse     `json:"advances"`
	Lines       []TicketLineResponse `json:"lines"`
	Totals      TicketTotalsResponse `json:"totals"`
	Warnings    []string             `json:"warnings"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func FromTicketView(v usecase.TicketView) PaymentTicketResponse {
	t, tt := v.Ticket, v.Totals

	res := PaymentTicketResponse{
		TripID:      t.TripID,
		TripNumber:  t.TripNumber,
		DriverID:    t.DriverID,
		DriverName:  t.DriverName,
		RatePerMile: t.RatePerMile.Raw(),
		Gastos:      t.Gastos.Raw(),
		Ajustes:     make(map[string]string, len(t.Ajustes)),
		Advances: AdvancesResponse{
			A1:      t.Advances.A1.Raw(),
			A2:      t.Advances.A2.Raw(),
			A3:      t.Advances.A3.Raw(),
			Visible: t.Advances.Visible,
			CanAdd:  t.Advances.Visible < entities.MaxAdvances,
		},
		Lines: make([]TicketLineResponse, 0, len(tt.Lines)),
		Totals: TicketTotalsResponse{
			TotalMillasAjustadas: valueobject.FormatJSNumber(tt.TotalMillasAjustadas),
			TotalAvances:         valueobject.FormatJSNumber(tt.TotalAvances),
			Subtotal:             valueobject.Money2(tt.Subtotal),
			TotalPagar:           tt.TotalPagarDisplay(),
			Payable:              tt.Payable(),
		},
		Warnings:  tt.Warnings,
		UpdatedAt: t.UpdatedAt,
	}
	if res.Warnings == nil {
		res.Warnings = []string{}
	}
	for n, d := range t.Ajustes {
		res.Ajustes[strconv.Itoa(n)] = d.Raw()
	}
	for _, l := range tt.Lines {
		res.Lines = append(res.Lines, TicketLineResponse{
			StageNumber:        l.StageNumber,
			Origin:             l.Origin,
			Destination:        l.DisplayDestination,
			EmptyMileage:       l.EmptyMileage,
			MillasPcMiller:     l.RawMiles,
			Ajuste:             valueobject.FormatJSNumber(l.Ajuste),
			FinalMiles:         valueobject.FormatJSNumber(l.FinalMiles),
			NegativeAdjustment: l.NegativeAdjustment,
		})
	}
	return res
}

type AuthorizationResponse struct {
	AuthorizationID string            `json:"authorization_id"`
	TripID          string            `json:"trip_id"`
	DriverID        string            `json:"driver_id"`
	Amount          string            `json:"amount"`
	RatePerMile     string            `json:"rate_per_mile"`
	Anticipo1       string            `json:"anticipo_1"`
	Anticipo2       string            `json:"anticipo_2"`
	Anticipo3       string            `json:"anticipo_3"`
	Gastos          string            `json:"gastos"`
	Ajustes         map[string]string `json:"ajustes"`
	RemoteID        string            `json:"remote_id"`
	Status          string            `json:"status"`
	Operator        string            `json:"operator"`
	Date            time.Time         `json:"date"`
}

func FromAuthorization(a entities.TicketAuthorization) AuthorizationResponse {
	res := AuthorizationResponse{
		AuthorizationID: a.ID,
		TripID:          a.TripID,
		DriverID:        a.DriverID,
		Amount:          valueobject.Money2(a.Amount),
		RatePerMile:     valueobject.FormatJSNumber(a.RatePerMile),
		Anticipo1:       valueobject.FormatJSNumber(a.Anticipo1),
		Anticipo2:       valueobject.FormatJSNumber(a.Anticipo2),
		Anticipo3:       valueobject.FormatJSNumber(a.Anticipo3),
		Gastos:          valueobject.FormatJSNumber(a.Gastos),
		Ajustes:         make(map[string]string, len(a.Ajustes)),
		RemoteID:        a.RemoteID,
		Status:          string(a.Status),
		Operator:        a.Operator,
		Date:            a.Date,
	}
	for n, v := range a.Ajustes {
		res.Ajustes[strconv.Itoa(n)] = valueobject.FormatJSNumber(v)
	}
	return res
}

func FromAuthorizations(list []entities.TicketAuthorization) []AuthorizationResponse {
	out := make([]AuthorizationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAuthorization(a))
	}
	return out
}
