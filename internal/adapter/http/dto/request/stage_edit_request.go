package request

import (
	"strings"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/domain/valueobject"
)

// StageEditRequest is a partial stage edit. Omitted fields are left as they
// are; paid_rate accepts a JSON string or number.
type StageEditRequest struct {
	TripID        string                       `json:"trip_id" binding:"required"`
	PaymentMethod *string                      `json:"payment_method"`
	PaidRate      *valueobject.EditableDecimal `json:"paid_rate"`
	Status        *string                      `json:"status"`
}

// ToEdit cleans the typed values the same way the board input fields do.
func (r StageEditRequest) ToEdit() entities.StageEdit {
	edit := entities.StageEdit{TripID: strings.TrimSpace(r.TripID)}
	if r.PaymentMethod != nil {
		m := strings.TrimSpace(*r.PaymentMethod)
		edit.PaymentMethod = &m
	}
	if r.PaidRate != nil {
		d := valueobject.FromInput(r.PaidRate.Raw())
		edit.PaidRate = &d
	}
	if r.Status != nil {
		s := strings.TrimSpace(*r.Status)
		edit.Status = &s
	}
	return edit
}
