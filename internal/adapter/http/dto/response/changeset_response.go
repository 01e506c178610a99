package response

import (
	"time"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/usecase"
)

type StageEditResponse struct {
	TripID        string    `json:"trip_id"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
	PaidRate      *string   `json:"paid_rate,omitempty"`
	Status        *string   `json:"status,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ChangeSetResponse struct {
	ChangeSetID string                       `json:"changeset_id"`
	Edits       map[string]StageEditResponse `json:"edits"`
	Dirty       int                          `json:"dirty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

func FromChangeSet(cs entities.ChangeSet) ChangeSetResponse {
	res := ChangeSetResponse{
		ChangeSetID: cs.ID,
		Edits:       make(map[string]StageEditResponse, len(cs.Edits)),
		CreatedAt:   cs.CreatedAt,
		UpdatedAt:   cs.UpdatedAt,
	}
	for id, e := range cs.Edits {
		er := StageEditResponse{
			TripID:        e.TripID,
			PaymentMethod: e.PaymentMethod,
			Status:        e.Status,
			UpdatedAt:     e.UpdatedAt,
		}
		if e.PaidRate != nil {
			raw := e.PaidRate.Raw()
			er.PaidRate = &raw
		}
		res.Edits[id] = er
		if cs.IsDirty(id) {
			res.Dirty++
		}
	}
	return res
}

type StageDraftResponse struct {
	TripStageID   string `json:"trip_stage_id"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	PaymentMethod string `json:"payment_method"`
	PaidRate      string `json:"paid_rate"`
	Status        string `json:"status"`
}

type PayloadResponse struct {
	ID     string `json:"id"`
	Metodo string `json:"metodo"`
	Tarifa string `json:"tarifa"`
	Status string `json:"status"`
}

// PendingItemResponse is one dirty stage, what would be sent for it and the
// rules it breaks.
type PendingItemResponse struct {
	TripID  string             `json:"trip_id"`
	Stage   StageDraftResponse `json:"stage"`
	Payload PayloadResponse    `json:"payload"`
	Errors  []string           `json:"errors"`
}

type PendingReportResponse struct {
	Items   []PendingItemResponse `json:"items"`
	CanSave bool                  `json:"can_save"`
}

func FromPendingItems(items []entities.PendingItem) []PendingItemResponse {
	out := make([]PendingItemResponse, 0, len(items))
	for _, it := range items {
		d := it.Draft
		errs := it.Errors
		if errs == nil {
			errs = []string{}
		}
		out = append(out, PendingItemResponse{
			TripID: it.TripID,
			Stage: StageDraftResponse{
				TripStageID:   d.TripStageID,
				Origin:        d.Origin,
				Destination:   d.Destination,
				PaymentMethod: d.PaymentMethod,
				PaidRate:      d.PaidRate.Raw(),
				Status:        d.Status,
			},
			Payload: fromPayload(entities.BuildPayload(d)),
			Errors:  errs,
		})
	}
	return out
}

func FromPendingReport(r entities.PendingReport) PendingReportResponse {
	return PendingReportResponse{Items: FromPendingItems(r.Items), CanSave: r.CanSave}
}

func fromPayload(p entities.StagePaymentPayload) PayloadResponse {
	return PayloadResponse{ID: p.ID, Metodo: p.Metodo, Tarifa: p.Tarifa, Status: p.Status}
}

type BulkSaveResponse struct {
	ChangeSetID string            `json:"changeset_id"`
	Saved       int               `json:"saved"`
	Items       []PayloadResponse `json:"items"`
}

func FromBulkSave(r usecase.BulkSaveResult) BulkSaveResponse {
	res := BulkSaveResponse{ChangeSetID: r.ChangeSetID, Saved: r.Saved, Items: make([]PayloadResponse, 0, len(r.Items))}
	for _, p := range r.Items {
		res.Items = append(res.Items, fromPayload(p))
	}
	return res
}
