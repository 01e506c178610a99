package request

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/domain/valueobject"
)

var ErrInvalidPatchKey = errors.New("invalid stage or advance number")

// TicketPatchRequest edits a payment ticket draft. Ajustes are keyed by stage
// number and advances by slot (1..3).
type TicketPatchRequest struct {
	RatePerMile *valueobject.EditableDecimal           `json:"rate_per_mile"`
	Gastos      *valueobject.EditableDecimal           `json:"gastos"`
	Ajustes     map[string]valueobject.EditableDecimal `json:"ajustes"`
	Advances    map[string]valueobject.EditableDecimal `json:"advances"`
}

func (r TicketPatchRequest) Empty() bool {
	return r.RatePerMile == nil && r.Gastos == nil && len(r.Ajustes) == 0 && len(r.Advances) == 0
}

func (r TicketPatchRequest) ToPatch() (entities.TicketPatch, error) {
	var patch entities.TicketPatch
	if r.RatePerMile != nil {
		d := valueobject.FromInput(r.RatePerMile.Raw())
		patch.RatePerMile = &d
	}
	if r.Gastos != nil {
		d := valueobject.FromInput(r.Gastos.Raw())
		patch.Gastos = &d
	}

	var err error
	if patch.Ajustes, err = numbered(r.Ajustes); err != nil {
		return entities.TicketPatch{}, err
	}
	if patch.Advances, err = numbered(r.Advances); err != nil {
		return entities.TicketPatch{}, err
	}
	return patch, nil
}

func numbered(in map[string]valueobject.EditableDecimal) (map[int]valueobject.EditableDecimal, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[int]valueobject.EditableDecimal, len(in))
	for k, v := range in {
		n, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPatchKey, k)
		}
		out[n] = valueobject.FromInput(v.Raw())
	}
	return out, nil
}
