package entities

import (
	"errors"
	"fmt"
	"math"
	"time"

	"freight_settlement/internal/domain/valueobject"
)

const (
	StageTypeEmptyMileage = "emptyMileage"
	MaxAdvances           = 3
)

var (
	ErrAdvanceLimit      = errors.New("advance limit reached")
	ErrAdvanceSlotHidden = errors.New("advance slot not visible")
	ErrInvalidAdvance    = errors.New("invalid advance slot")
	ErrUnknownStage      = errors.New("unknown stage number")
)

// TicketStage is a trip leg as seen by the driver payment ticket.
type TicketStage struct {
	StageNumber    int     `json:"stage_number"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	MillasPcMiller float64 `json:"millas_pcmiller"`
	StageType      string  `json:"stage_type,omitempty"`
}

func (s TicketStage) EmptyMileage() bool {
	return s.StageType == StageTypeEmptyMileage
}

// Advances are the cash advances (anticipos) already paid to the driver.
// Visible is a bounded counter in {1,2,3}; slots above it are always blank.
type Advances struct {
	A1      valueobject.EditableDecimal `json:"a1"`
	A2      valueobject.EditableDecimal `json:"a2"`
	A3      valueobject.EditableDecimal `json:"a3"`
	Visible int                         `json:"visible"`
}

func NewAdvances(a1, a2, a3 valueobject.EditableDecimal) Advances {
	adv := Advances{A1: a1, A2: a2, A3: a3, Visible: 1}
	for i, v := range adv.slots() {
		if !v.IsBlank() && v.Float() != 0 {
			adv.Visible = i + 1
		}
	}
	return adv
}

func (a *Advances) slots() []*valueobject.EditableDecimal {
	return []*valueobject.EditableDecimal{&a.A1, &a.A2, &a.A3}
}

func (a *Advances) normalize() {
	if a.Visible < 1 {
		a.Visible = 1
	}
	if a.Visible > MaxAdvances {
		a.Visible = MaxAdvances
	}
}

// Total is a1 + a2 + a3 with blank fields counted as 0.
func (a Advances) Total() float64 {
	return a.A1.Float() + a.A2.Float() + a.A3.Float()
}

func (a *Advances) AddSlot() error {
	a.normalize()
	if a.Visible >= MaxAdvances {
		return ErrAdvanceLimit
	}
	a.Visible++
	return nil
}

// RemoveSlot clears slot n (2 or 3) and hides the last visible slot, moving
// later values down so no populated slot is left hidden.
func (a *Advances) RemoveSlot(n int) error {
	a.normalize()
	if n < 2 || n > MaxAdvances {
		return ErrInvalidAdvance
	}
	if n > a.Visible {
		return ErrAdvanceSlotHidden
	}
	slots := a.slots()
	for i := n - 1; i < a.Visible-1; i++ {
		*slots[i] = *slots[i+1]
	}
	*slots[a.Visible-1] = valueobject.EditableDecimal{}
	a.Visible--
	return nil
}

func (a *Advances) Set(n int, v valueobject.EditableDecimal) error {
	a.normalize()
	if n < 1 || n > MaxAdvances {
		return ErrInvalidAdvance
	}
	if n > a.Visible {
		return ErrAdvanceSlotHidden
	}
	*a.slots()[n-1] = v
	return nil
}

// PaymentTicket is the driver settlement for one trip while the operator is
// still adjusting it.
type PaymentTicket struct {
	TripID      string                              `json:"trip_id"`
	TripNumber  string                              `json:"trip_number"`
	DriverID    string                              `json:"driver_id"`
	DriverName  string                              `json:"driver_name"`
	Stages      []TicketStage                       `json:"stages"`
	Ajustes     map[int]valueobject.EditableDecimal `json:"ajustes"`
	RatePerMile valueobject.EditableDecimal         `json:"rate_per_mile"`
	Advances    Advances                            `json:"advances"`
	Gastos      valueobject.EditableDecimal         `json:"gastos"`
	UpdatedAt   time.Time                           `json:"updated_at"`
}

// SavedTicketData is what a previous, unfinished settlement left on the
// remote system.
type SavedTicketData struct {
	Anticipo1       valueobject.EditableDecimal
	Anticipo2       valueobject.EditableDecimal
	Anticipo3       valueobject.EditableDecimal
	GastosAplicados valueobject.EditableDecimal
}

type PaymentTicketSource struct {
	Ticket PaymentTicket
	Saved  *SavedTicketData
}

func (t PaymentTicket) HasStage(stageNumber int) bool {
	for _, st := range t.Stages {
		if st.StageNumber == stageNumber {
			return true
		}
	}
	return false
}

func (t PaymentTicket) ajuste(stageNumber int) float64 {
	v, ok := t.Ajustes[stageNumber]
	if !ok {
		return 0
	}
	return v.Float()
}

type TicketLine struct {
	StageNumber        int     `json:"stage_number"`
	Origin             string  `json:"origin"`
	DisplayDestination string  `json:"destination"`
	EmptyMileage       bool    `json:"empty_mileage"`
	RawMiles           float64 `json:"millas_pcmiller"`
	Ajuste             float64 `json:"ajuste"`
	FinalMiles         float64 `json:"final_miles"`
	NegativeAdjustment bool    `json:"negative_adjustment"`
}

type TicketTotals struct {
	Lines                []TicketLine `json:"lines"`
	TotalMillasAjustadas float64      `json:"total_millas_ajustadas"`
	TotalAvances         float64      `json:"total_avances"`
	Subtotal             float64      `json:"subtotal"`
	TotalPagar           float64      `json:"total_pagar"`
	Warnings             []string     `json:"warnings"`
}

// Calculate computes what is owed to the driver. Order of operations and the
// intermediate rounding of the subtotal are part of the contract:
//
//	finalMiles_i = millas_i - ajuste_i
//	subtotal     = round2(rate * Σ finalMiles_i)
//	totalPagar   = subtotal - (a1 + a2 + a3) - gastos
//
// Adjustments are not clamped; a line driven negative is flagged instead.
func (t PaymentTicket) Calculate() TicketTotals {
	out := TicketTotals{Lines: make([]TicketLine, 0, len(t.Stages)), Warnings: []string{}}

	total := 0.0
	for i, st := range t.Stages {
		aj := t.ajuste(st.StageNumber)
		final := st.MillasPcMiller - aj
		total += final

		line := TicketLine{
			StageNumber:        st.StageNumber,
			Origin:             st.Origin,
			DisplayDestination: st.Destination,
			EmptyMileage:       st.EmptyMileage(),
			RawMiles:           st.MillasPcMiller,
			Ajuste:             aj,
			FinalMiles:         final,
			NegativeAdjustment: final < 0,
		}
		if line.EmptyMileage && i+1 < len(t.Stages) {
			line.DisplayDestination = t.Stages[i+1].Origin
		}
		if line.NegativeAdjustment {
			out.Warnings = append(out.Warnings, fmt.Sprintf("stage %d: adjustment %s exceeds %s miles", st.StageNumber, valueobject.FormatJSNumber(aj), valueobject.FormatJSNumber(st.MillasPcMiller)))
		}
		out.Lines = append(out.Lines, line)
	}

	out.TotalMillasAjustadas = total
	out.TotalAvances = t.Advances.Total()
	out.Subtotal = valueobject.Round2(t.RatePerMile.Float() * total)
	out.TotalPagar = out.Subtotal - out.TotalAvances - t.Gastos.Float()
	return out
}

// TotalPagarDisplay never shows NaN.
func (tt TicketTotals) TotalPagarDisplay() string {
	return valueobject.Money2(tt.TotalPagar)
}

func (tt TicketTotals) Payable() bool {
	return !math.IsNaN(tt.TotalPagar) && !math.IsInf(tt.TotalPagar, 0)
}

// AjustesMap returns the adjustments as numbers, skipping blank entries. The
// second value is false when any entry does not parse.
func (t PaymentTicket) AjustesMap() (map[int]float64, bool) {
	out := make(map[int]float64, len(t.Ajustes))
	for k, v := range t.Ajustes {
		if v.IsBlank() {
			continue
		}
		f, err := v.Parse()
		if err != nil || math.IsInf(f, 0) {
			return nil, false
		}
		out[k] = f
	}
	return out, true
}

// TicketPatch carries operator edits to a ticket. Nil fields are untouched; a
// blank adjustment removes it.
type TicketPatch struct {
	RatePerMile *valueobject.EditableDecimal
	Gastos      *valueobject.EditableDecimal
	Ajustes     map[int]valueobject.EditableDecimal
	Advances    map[int]valueobject.EditableDecimal
}

func (t *PaymentTicket) Apply(p TicketPatch, now time.Time) error {
	for n := range p.Ajustes {
		if !t.HasStage(n) {
			return fmt.Errorf("%w: %d", ErrUnknownStage, n)
		}
	}
	adv := t.Advances
	for n, v := range p.Advances {
		if err := adv.Set(n, v); err != nil {
			return err
		}
	}

	if p.RatePerMile != nil {
		t.RatePerMile = *p.RatePerMile
	}
	if p.Gastos != nil {
		t.Gastos = *p.Gastos
	}
	if t.Ajustes == nil && len(p.Ajustes) > 0 {
		t.Ajustes = map[int]valueobject.EditableDecimal{}
	}
	for n, v := range p.Ajustes {
		if v.IsBlank() {
			delete(t.Ajustes, n)
			continue
		}
		t.Ajustes[n] = v
	}
	t.Advances = adv
	t.UpdatedAt = now
	return nil
}

// Prefill applies values saved by a previous settlement attempt; gastos fall
// back to the trip expense total when nothing was saved.
func (t *PaymentTicket) Prefill(saved *SavedTicketData, expensesTotal *float64) {
	if saved != nil {
		t.Advances = NewAdvances(saved.Anticipo1, saved.Anticipo2, saved.Anticipo3)
		if !saved.GastosAplicados.IsBlank() {
			t.Gastos = saved.GastosAplicados
			return
		}
	}
	if t.Advances.Visible == 0 {
		t.Advances.Visible = 1
	}
	if expensesTotal != nil {
		t.Gastos = valueobject.FromFloat(valueobject.Round2(*expensesTotal))
	}
}
