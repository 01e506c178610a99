package response

import (
	"freight_settlement/internal/domain/entities"
)

type StatusResponse struct {
	Status int    `json:"status"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

// CriticalResponse counts stages needing attention by status.
type CriticalResponse struct {
	PendienteCobro int `json:"pendiente_cobro"`
	PendientePago  int `json:"pendiente_pago"`
	PendienteRTS   int `json:"pendiente_rts"`
	Total          int `json:"total"`
}

type StageResponse struct {
	TripStageID   string         `json:"trip_stage_id"`
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	RateTarifa    *float64       `json:"rate_tarifa"`
	PaymentMethod string         `json:"payment_method"`
	PaidRate      string         `json:"paid_rate"`
	Status        StatusResponse `json:"status"`
	Dirty         bool           `json:"dirty"`
}

type TripResponse struct {
	TripID     string           `json:"trip_id"`
	TripNumber string           `json:"trip_number"`
	StatusTrip StatusResponse   `json:"status_trip"`
	Critical   CriticalResponse `json:"critical"`
	Stages     []StageResponse  `json:"stages"`
}

type TripBoardResponse struct {
	Trips       []TripResponse   `json:"trips"`
	Critical    CriticalResponse `json:"critical"`
	DirtyStages int              `json:"dirty_stages"`
}

func FromStatus(s entities.StatusSummary) StatusResponse {
	return StatusResponse{Status: int(s.Status), Label: s.Label, Color: s.Color}
}

func FromCritical(c entities.CriticalCounts) CriticalResponse {
	return CriticalResponse{
		PendienteCobro: c[entities.StageStatusPendienteCobro],
		PendientePago:  c[entities.StageStatusPendientePago],
		PendienteRTS:   c[entities.StageStatusPendienteRTS],
		Total:          c.Total(),
	}
}

func FromTripBoard(b entities.TripBoard) TripBoardResponse {
	out := TripBoardResponse{
		Trips:       make([]TripResponse, 0, len(b.Trips)),
		Critical:    FromCritical(b.Critical),
		DirtyStages: b.Dirty,
	}
	for _, v := range b.Trips {
		out.Trips = append(out.Trips, fromTripView(v))
	}
	return out
}

func fromTripView(v entities.TripView) TripResponse {
	dirty := make(map[string]bool, len(v.DirtyStages))
	for _, id := range v.DirtyStages {
		dirty[id] = true
	}

	res := TripResponse{
		TripID:     v.TripID,
		TripNumber: v.TripNumber,
		StatusTrip: FromStatus(v.Status),
		Critical:   FromCritical(v.Counts),
		Stages:     make([]StageResponse, 0, len(v.Stages)),
	}
	for _, st := range v.Stages {
		res.Stages = append(res.Stages, StageResponse{
			TripStageID:   st.TripStageID,
			Origin:        st.Origin,
			Destination:   st.Destination,
			RateTarifa:    st.RateTarifa,
			PaymentMethod: string(st.PaymentMethod),
			PaidRate:      st.PaidRate.Raw(),
			Status:        StatusResponse{Status: int(st.Status), Label: st.Status.Label(), Color: st.Status.Color()},
			Dirty:         dirty[st.TripStageID],
		})
	}
	return res
}
