package legacyapi

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/domain/valueobject"
)

// The back office is PHP: ids and amounts arrive as numbers or strings and
// statuses may be null. The flex types absorb that before it reaches the
// domain.

type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(string(b))
	return nil
}

// flexFloat is nil when the remote sent null, blank or something that is not
// a number.
type flexFloat struct {
	v *float64
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	f.v = nil
	raw := strings.TrimSpace(string(s))
	if raw == "" {
		return nil
	}
	n := valueobject.JSNumber(raw)
	if math.IsNaN(n) {
		return nil
	}
	f.v = &n
	return nil
}

func (f flexFloat) orZero() float64 {
	if f.v == nil {
		return 0
	}
	return *f.v
}

type flexInt struct {
	v *int
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var ff flexFloat
	if err := ff.UnmarshalJSON(b); err != nil {
		return err
	}
	f.v = nil
	if ff.v != nil && *ff.v == math.Trunc(*ff.v) {
		n := int(*ff.v)
		f.v = &n
	}
	return nil
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	ID      flexString      `json:"id"`
	Row     json.RawMessage `json:"row"`
}

func (e envelope) ok() bool {
	return strings.EqualFold(strings.TrimSpace(e.Status), "success")
}

type stageDTO struct {
	TripStageID   flexString                  `json:"trip_stage_id"`
	TripID        flexString                  `json:"trip_id"`
	Origin        string                      `json:"origin"`
	Destination   string                      `json:"destination"`
	RateTarifa    flexFloat                   `json:"rate_tarifa"`
	PaymentMethod *string                     `json:"payment_method"`
	PaidRate      valueobject.EditableDecimal `json:"paid_rate"`
	Status        flexInt                     `json:"status"`
}

type tripDTO struct {
	TripID     flexString `json:"trip_id"`
	TripNumber flexString `json:"trip_number"`
	Stages     []stageDTO `json:"stages"`
}

func (t tripDTO) toEntity() entities.Trip {
	trip := entities.Trip{
		TripID:     string(t.TripID),
		TripNumber: string(t.TripNumber),
		Stages:     make([]entities.Stage, 0, len(t.Stages)),
	}
	for _, s := range t.Stages {
		tripID := string(s.TripID)
		if tripID == "" {
			tripID = trip.TripID
		}
		method := ""
		if s.PaymentMethod != nil {
			method = *s.PaymentMethod
		}
		trip.Stages = append(trip.Stages, entities.Stage{
			TripStageID:   string(s.TripStageID),
			TripID:        tripID,
			Origin:        s.Origin,
			Destination:   s.Destination,
			RateTarifa:    s.RateTarifa.v,
			PaymentMethod: entities.PaymentMethod(method),
			PaidRate:      s.PaidRate,
			Status:        entities.NormalizeStatus(s.Status.v),
		})
	}
	return trip
}

type infoViajeDTO struct {
	TripID      flexString                  `json:"trip_id"`
	TripNumber  flexString                  `json:"trip_number"`
	DriverID    flexString                  `json:"driver_id"`
	DriverName  string                      `json:"driver_name"`
	RatePerMile valueobject.EditableDecimal `json:"rate_per_mile"`
}

type ticketStageDTO struct {
	StageNumber    flexInt                     `json:"stage_number"`
	Origin         string                      `json:"origin"`
	Destination    string                      `json:"destination"`
	MillasPcMiller flexFloat                   `json:"millas_pcmiller"`
	AjusteMillas   valueobject.EditableDecimal `json:"ajuste_millas"`
	StageType      flexString                  `json:"stageType"`
	LegacyType     flexString                  `json:"stage_type"`
}

func (s ticketStageDTO) stageType() string {
	if s.StageType != "" {
		return string(s.StageType)
	}
	return string(s.LegacyType)
}

type savedDataDTO struct {
	Anticipo1       valueobject.EditableDecimal `json:"anticipo_1"`
	Anticipo2       valueobject.EditableDecimal `json:"anticipo_2"`
	Anticipo3       valueobject.EditableDecimal `json:"anticipo_3"`
	GastosAplicados valueobject.EditableDecimal `json:"gastos_aplicados"`
}

// ticketResponse carries the ticket at the top level of the body, next to
// the envelope fields.
type ticketResponse struct {
	envelope
	InfoViaje *infoViajeDTO    `json:"info_viaje"`
	Stages    []ticketStageDTO `json:"stages"`
	SavedData *savedDataDTO    `json:"saved_data"`
}

func (r ticketResponse) toSource(tripID string) entities.PaymentTicketSource {
	t := entities.PaymentTicket{
		TripID:  tripID,
		Stages:  make([]entities.TicketStage, 0, len(r.Stages)),
		Ajustes: map[int]valueobject.EditableDecimal{},
	}
	if r.InfoViaje != nil {
		if id := string(r.InfoViaje.TripID); id != "" {
			t.TripID = id
		}
		t.TripNumber = string(r.InfoViaje.TripNumber)
		t.DriverID = string(r.InfoViaje.DriverID)
		t.DriverName = r.InfoViaje.DriverName
		t.RatePerMile = r.InfoViaje.RatePerMile
	}
	for i, s := range r.Stages {
		n := i + 1
		if s.StageNumber.v != nil {
			n = *s.StageNumber.v
		}
		t.Stages = append(t.Stages, entities.TicketStage{
			StageNumber:    n,
			Origin:         s.Origin,
			Destination:    s.Destination,
			MillasPcMiller: s.MillasPcMiller.orZero(),
			StageType:      s.stageType(),
		})
		if !s.AjusteMillas.IsBlank() {
			t.Ajustes[n] = s.AjusteMillas
		}
	}
	t.Advances = entities.Advances{Visible: 1}

	src := entities.PaymentTicketSource{Ticket: t}
	if r.SavedData != nil {
		src.Saved = &entities.SavedTicketData{
			Anticipo1:       r.SavedData.Anticipo1,
			Anticipo2:       r.SavedData.Anticipo2,
			Anticipo3:       r.SavedData.Anticipo3,
			GastosAplicados: r.SavedData.GastosAplicados,
		}
	}
	return src
}

type expenseDTO struct {
	ID      flexString `json:"id"`
	TripID  flexString `json:"trip_id"`
	Concept string     `json:"concepto"`
	Monto   flexFloat  `json:"monto"`
}

func (e expenseDTO) toEntity() entities.TripExpense {
	amount := math.NaN()
	if e.Monto.v != nil {
		amount = *e.Monto.v
	}
	return entities.TripExpense{
		ID:      string(e.ID),
		TripID:  string(e.TripID),
		Concept: e.Concept,
		Amount:  amount,
	}
}

type permissionsDTO struct {
	User        flexString `json:"user"`
	Permissions []string   `json:"permissions"`
}

// authorizationFields is the form sent with op=authorize_payment.
func authorizationFields(a entities.TicketAuthorization) (map[string]string, error) {
	ajustes := make(map[string]float64, len(a.Ajustes))
	for k, v := range a.Ajustes {
		ajustes[strconv.Itoa(k)] = v
	}
	raw, err := json.Marshal(ajustes)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"trip_id":       a.TripID,
		"driver_id":     a.DriverID,
		"amount":        valueobject.FormatJSNumber(a.Amount),
		"rate_per_mile": valueobject.FormatJSNumber(a.RatePerMile),
		"anticipo_1":    valueobject.FormatJSNumber(a.Anticipo1),
		"anticipo_2":    valueobject.FormatJSNumber(a.Anticipo2),
		"anticipo_3":    valueobject.FormatJSNumber(a.Anticipo3),
		"gastos":        valueobject.FormatJSNumber(a.Gastos),
		"ajustes":       string(raw),
	}, nil
}
