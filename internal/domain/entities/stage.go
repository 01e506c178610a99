package entities

import (
	"strings"

	"freight_settlement/internal/domain/valueobject"
)

// StageStatus is the settlement state of a trip stage. Lower values are more
// urgent.
type StageStatus int

const (
	StageStatusPendienteCobro StageStatus = 0
	StageStatusPendientePago  StageStatus = 1
	StageStatusPendienteRTS   StageStatus = 2
	StageStatusPagado         StageStatus = 3
)

// NormalizeStatus maps a raw status to {0,1,2,3}. Absent and unknown codes
// become 0 so they are never mistaken for a settled stage.
func NormalizeStatus(raw *int) StageStatus {
	if raw == nil {
		return StageStatusPendienteCobro
	}
	s := StageStatus(*raw)
	if s < StageStatusPendienteCobro || s > StageStatusPagado {
		return StageStatusPendienteCobro
	}
	return s
}

func (s StageStatus) Label() string {
	switch s {
	case StageStatusPendientePago:
		return "Cobrado / Pendiente de pago"
	case StageStatusPendienteRTS:
		return "Cobrado / Pendiente RTS"
	case StageStatusPagado:
		return "Completado"
	default:
		return "Pendiente de cobro"
	}
}

func (s StageStatus) Color() string {
	switch s {
	case StageStatusPendientePago:
		return "orange"
	case StageStatusPendienteRTS:
		return "blue"
	case StageStatusPagado:
		return "green"
	default:
		return "red"
	}
}

type PaymentMethod string

const (
	PaymentMethodRTS      PaymentMethod = "RTS"
	PaymentMethodCheque   PaymentMethod = "CHEQUE"
	PaymentMethodTriumPay PaymentMethod = "TRIUM PAY"
	PaymentMethodDeposito PaymentMethod = "DEPOSITO"
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodRTS,
	PaymentMethodCheque,
	PaymentMethodTriumPay,
	PaymentMethodDeposito,
}

// Known reports whether the trimmed method is empty or one of PaymentMethods.
func (m PaymentMethod) Known() bool {
	v := PaymentMethod(strings.TrimSpace(string(m)))
	if v == "" {
		return true
	}
	for _, pm := range PaymentMethods {
		if v == pm {
			return true
		}
	}
	return false
}

// Stage is one leg of a trip with its own rate and settlement state, as the
// remote system of record reports it.
type Stage struct {
	TripStageID   string                      `json:"trip_stage_id"`
	TripID        string                      `json:"trip_id"`
	Origin        string                      `json:"origin"`
	Destination   string                      `json:"destination"`
	RateTarifa    *float64                    `json:"rate_tarifa"`
	PaymentMethod PaymentMethod               `json:"payment_method"`
	PaidRate      valueobject.EditableDecimal `json:"paid_rate"`
	Status        StageStatus                 `json:"status"`
}

type Trip struct {
	TripID     string  `json:"trip_id"`
	TripNumber string  `json:"trip_number"`
	Stages     []Stage `json:"stages"`
}

// StatusTrip is derived from the current stages on every call.
func (t Trip) StatusTrip() StatusSummary {
	return RollUpStatus(t.Stages)
}

func (t Trip) Critical() CriticalCounts {
	return CountCritical(t.Stages)
}

type StatusSummary struct {
	Status StageStatus `json:"status"`
	Label  string      `json:"label"`
	Color  string      `json:"color"`
}

func summaryOf(s StageStatus) StatusSummary {
	return StatusSummary{Status: s, Label: s.Label(), Color: s.Color()}
}

// RollUpStatus reduces stages to the trip status: the worst stage wins and
// status 1 is folded into 0 because both block payment.
func RollUpStatus(stages []Stage) StatusSummary {
	if len(stages) == 0 {
		return summaryOf(StageStatusPagado)
	}

	hasRTS := false
	for _, st := range stages {
		switch st.Status {
		case StageStatusPendienteCobro, StageStatusPendientePago:
			return summaryOf(StageStatusPendienteCobro)
		case StageStatusPendienteRTS:
			hasRTS = true
		}
	}
	if hasRTS {
		return summaryOf(StageStatusPendienteRTS)
	}
	return summaryOf(StageStatusPagado)
}

// CriticalCounts holds alert counts for statuses 0, 1 and 2.
type CriticalCounts map[StageStatus]int

func NewCriticalCounts() CriticalCounts {
	return CriticalCounts{
		StageStatusPendienteCobro: 0,
		StageStatusPendientePago:  0,
		StageStatusPendienteRTS:   0,
	}
}

func CountCritical(stages []Stage) CriticalCounts {
	counts := NewCriticalCounts()
	for _, st := range stages {
		if _, ok := counts[st.Status]; ok {
			counts[st.Status]++
		}
	}
	return counts
}

func (c CriticalCounts) Add(other CriticalCounts) {
	for k, v := range other {
		if _, ok := c[k]; ok {
			c[k] += v
		}
	}
}

func (c CriticalCounts) Total() int {
	total := 0
	for _, v := range c {
		total += v
	}
	return total
}
