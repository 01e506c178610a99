package entities

import (
	"math"
	"strconv"
	"strings"
	"time"

	"freight_settlement/internal/domain/valueobject"
)

const (
	MsgPaymentMethodEmpty  = "Método de pago vacío"
	MsgPaidRateInvalid     = "Tarifa pagada inválida"
	MsgPaidRateNotPositive = "Tarifa pagada debe ser > 0"
	MsgStatusInvalid       = "Status inválido"
)

// StageEdit is an operator edit not yet confirmed by the remote system. A nil
// field was not touched.
type StageEdit struct {
	TripID        string                       `json:"trip_id"`
	PaymentMethod *string                      `json:"payment_method,omitempty"`
	PaidRate      *valueobject.EditableDecimal `json:"paid_rate,omitempty"`
	Status        *string                      `json:"status,omitempty"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

func (e StageEdit) Empty() bool {
	return e.PaymentMethod == nil && e.PaidRate == nil && e.Status == nil
}

// ChangeSet tracks dirty stages by trip_stage_id, outside of Stage itself.
type ChangeSet struct {
	ID        string               `json:"id"`
	Edits     map[string]StageEdit `json:"edits"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func NewChangeSet(id string, now time.Time) ChangeSet {
	return ChangeSet{
		ID:        id,
		Edits:     map[string]StageEdit{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Record merges edit into any previous edit of the same stage.
func (cs *ChangeSet) Record(stageID string, edit StageEdit, now time.Time) {
	if cs.Edits == nil {
		cs.Edits = map[string]StageEdit{}
	}
	cur := cs.Edits[stageID]
	if edit.TripID != "" {
		cur.TripID = edit.TripID
	}
	if edit.PaymentMethod != nil {
		cur.PaymentMethod = edit.PaymentMethod
	}
	if edit.PaidRate != nil {
		cur.PaidRate = edit.PaidRate
	}
	if edit.Status != nil {
		cur.Status = edit.Status
	}
	cur.UpdatedAt = now
	cs.Edits[stageID] = cur
	cs.UpdatedAt = now
}

func (cs *ChangeSet) Revert(stageID string, now time.Time) bool {
	if _, ok := cs.Edits[stageID]; !ok {
		return false
	}
	delete(cs.Edits, stageID)
	cs.UpdatedAt = now
	return true
}

func (cs ChangeSet) IsDirty(stageID string) bool {
	e, ok := cs.Edits[stageID]
	return ok && !e.Empty()
}

// StageDraft is the editable view of a stage: the stored values with any
// pending edit applied, kept as text the way the operator typed it.
type StageDraft struct {
	TripStageID   string                      `json:"trip_stage_id"`
	TripID        string                      `json:"trip_id"`
	Origin        string                      `json:"origin"`
	Destination   string                      `json:"destination"`
	PaymentMethod string                      `json:"payment_method"`
	PaidRate      valueobject.EditableDecimal `json:"paid_rate"`
	Status        string                      `json:"status"`
}

func DraftFromStage(st Stage) StageDraft {
	return StageDraft{
		TripStageID:   st.TripStageID,
		TripID:        st.TripID,
		Origin:        st.Origin,
		Destination:   st.Destination,
		PaymentMethod: string(st.PaymentMethod),
		PaidRate:      st.PaidRate,
		Status:        strconv.Itoa(int(st.Status)),
	}
}

func (d StageDraft) apply(e StageEdit) StageDraft {
	if e.PaymentMethod != nil {
		d.PaymentMethod = *e.PaymentMethod
	}
	if e.PaidRate != nil {
		d.PaidRate = *e.PaidRate
	}
	if e.Status != nil {
		d.Status = *e.Status
	}
	return d
}

func (cs ChangeSet) Draft(st Stage) StageDraft {
	d := DraftFromStage(st)
	if e, ok := cs.Edits[st.TripStageID]; ok {
		d = d.apply(e)
	}
	return d
}

// ValidateStage reports every violated rule, not only the first one.
func ValidateStage(d StageDraft) []string {
	errs := []string{}

	if strings.TrimSpace(d.PaymentMethod) == "" {
		errs = append(errs, MsgPaymentMethodEmpty)
	}

	rate, err := d.PaidRate.Parse()
	switch {
	case err != nil:
		errs = append(errs, MsgPaidRateInvalid)
	case rate <= 0:
		errs = append(errs, MsgPaidRateNotPositive)
	}

	if d.Status == "" || math.IsNaN(valueobject.JSNumber(d.Status)) {
		errs = append(errs, MsgStatusInvalid)
	}

	return errs
}

// StagePaymentPayload is one item of the bulk stage payment request.
type StagePaymentPayload struct {
	ID     string `json:"id"`
	Metodo string `json:"metodo"`
	Tarifa string `json:"tarifa"`
	Status string `json:"status"`
}

func BuildPayload(d StageDraft) StagePaymentPayload {
	return StagePaymentPayload{
		ID:     d.TripStageID,
		Metodo: strings.TrimSpace(d.PaymentMethod),
		Tarifa: d.PaidRate.Fixed2(),
		Status: valueobject.FormatJSNumber(valueobject.JSNumber(d.Status)),
	}
}

type DirtyStage struct {
	TripID string     `json:"trip_id"`
	Draft  StageDraft `json:"stage"`
}

// CollectDirty flattens edited stages in trip then stage order.
func CollectDirty(trips []Trip, cs ChangeSet) []DirtyStage {
	out := []DirtyStage{}
	for _, trip := range trips {
		for _, st := range trip.Stages {
			if !cs.IsDirty(st.TripStageID) {
				continue
			}
			out = append(out, DirtyStage{TripID: trip.TripID, Draft: cs.Draft(st)})
		}
	}
	return out
}

// Overlay returns the trip as the operator currently sees it. Edited values
// that do not parse leave the stored value in place.
func (cs ChangeSet) Overlay(trip Trip) Trip {
	out := trip
	out.Stages = make([]Stage, len(trip.Stages))
	for i, st := range trip.Stages {
		e, ok := cs.Edits[st.TripStageID]
		if ok {
			if e.PaymentMethod != nil {
				st.PaymentMethod = PaymentMethod(strings.TrimSpace(*e.PaymentMethod))
			}
			if e.PaidRate != nil {
				st.PaidRate = *e.PaidRate
			}
			if e.Status != nil {
				if v := valueobject.JSNumber(*e.Status); *e.Status != "" && !math.IsNaN(v) && v == math.Trunc(v) {
					raw := int(v)
					st.Status = NormalizeStatus(&raw)
				}
			}
		}
		out.Stages[i] = st
	}
	return out
}

type PendingItem struct {
	DirtyStage
	Errors []string `json:"errors"`
}

// PendingReport is what a bulk save would send, with the validation outcome
// of each stage. CanSave is false when nothing is dirty or any stage fails.
type PendingReport struct {
	Items   []PendingItem `json:"items"`
	CanSave bool          `json:"can_save"`
}

func BuildPendingReport(dirty []DirtyStage) PendingReport {
	report := PendingReport{Items: make([]PendingItem, 0, len(dirty)), CanSave: len(dirty) > 0}
	for _, d := range dirty {
		errs := ValidateStage(d.Draft)
		if len(errs) > 0 {
			report.CanSave = false
		}
		report.Items = append(report.Items, PendingItem{DirtyStage: d, Errors: errs})
	}
	return report
}

func (r PendingReport) Failures() []PendingItem {
	out := []PendingItem{}
	for _, it := range r.Items {
		if len(it.Errors) > 0 {
			out = append(out, it)
		}
	}
	return out
}

func (r PendingReport) Payloads() []StagePaymentPayload {
	out := make([]StagePaymentPayload, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, BuildPayload(it.Draft))
	}
	return out
}

// TripView is a trip with the operator's edits applied and its derived
// state.
type TripView struct {
	Trip
	Status      StatusSummary  `json:"status_trip"`
	Counts      CriticalCounts `json:"critical"`
	DirtyStages []string       `json:"dirty_stages"`
}

type TripBoard struct {
	Trips    []TripView     `json:"trips"`
	Critical CriticalCounts `json:"critical"`
	Dirty    int            `json:"dirty"`
}

func BuildBoard(trips []Trip, cs ChangeSet) TripBoard {
	board := TripBoard{Trips: make([]TripView, 0, len(trips)), Critical: NewCriticalCounts()}
	for _, trip := range trips {
		view := TripView{Trip: cs.Overlay(trip), DirtyStages: []string{}}
		view.Status = view.Trip.StatusTrip()
		view.Counts = view.Trip.Critical()
		for _, st := range trip.Stages {
			if cs.IsDirty(st.TripStageID) {
				view.DirtyStages = append(view.DirtyStages, st.TripStageID)
			}
		}
		board.Critical.Add(view.Counts)
		board.Dirty += len(view.DirtyStages)
		board.Trips = append(board.Trips, view)
	}
	return board
}
