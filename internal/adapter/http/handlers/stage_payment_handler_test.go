package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freight_settlement/internal/adapter/http/handlers/mocks"
	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/domain/valueobject"
	"freight_settlement/internal/usecase"
	"freight_settlement/internal/usecase/interfaces"
	"freight_settlement/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func stageRouter(h *StagePaymentHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/trips", h.ListTrips)
	r.GET("/v1/trips/:trip_id/summary", h.TripSummary)
	r.POST("/v1/changesets", h.OpenChangeSet)
	r.PUT("/v1/changesets/:changeset_id/stages/:stage_id", h.RecordEdit)
	r.DELETE("/v1/changesets/:changeset_id/stages/:stage_id", h.RevertEdit)
	r.GET("/v1/changesets/:changeset_id/pending", h.PendingEdits)
	r.POST("/v1/changesets/:changeset_id/save", h.SaveBulk)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestStagePaymentHandler_ListTrips(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with changeset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStagePaymentUseCase(ctrl)

		trips := []entities.Trip{{TripID: "10", Stages: []entities.Stage{{TripStageID: "101", Status: 2}}}}
		uc.EXPECT().ListTrips(gomock.Any(), "cs-1").Return(entities.BuildBoard(trips, entities.NewChangeSet("cs-1", time.Now())), nil)

		w := serve(stageRouter(NewStagePaymentHandler(uc)), http.MethodGet, "/v1/trips?changeset_id=cs-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Trips []struct {
				StatusTrip struct {
					Status int `json:"status"`
				} `json:"status_trip"`
			} `json:"trips"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body.Trips) != 1 || body.Trips[0].StatusTrip.Status != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("remote unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStagePaymentUseCase(ctrl)
		uc.EXPECT().ListTrips(gomock.Any(), "").Return(entities.TripBoard{}, interfaces.ErrRemoteUnavailable)

		w := serve(stageRouter(NewStagePaymentHandler(uc)), http.MethodGet, "/v1/trips", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if decodeError(t, w).Code != "REMOTE_UNAVAILABLE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown changeset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStagePaymentUseCase(ctrl)
		uc.EXPECT().ListTrips(gomock.Any(), "nope").Return(entities.TripBoard{}, usecase.ErrChangeSetNotFound)

		w := serve(stageRouter(NewStagePaymentHandler(uc)), http.MethodGet, "/v1/trips?changeset_id=nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestStagePaymentHandler_TripSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIStagePaymentUseCase(ctrl)
	r := stageRouter(NewStagePaymentHandler(uc))

	uc.EXPECT().TripSummary(gomock.Any(), "10").Return(entities.TripSummary{TripID: "10", Revenue: 1500}, nil)
	w := serve(r, http.MethodGet, "/v1/trips/10/summary", "")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"revenue":"1500.00"`)) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().TripSummary(gomock.Any(), "99").Return(entities.TripSummary{}, usecase.ErrTripNotFound)
	if w := serve(r, http.MethodGet, "/v1/trips/99/summary", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestStagePaymentHandler_RecordEdit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStagePaymentUseCase(ctrl)

		w := serve(stageRouter(NewStagePaymentHandler(uc)), http.MethodPut, "/v1/changesets/cs-1/stages/101", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing trip id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStagePaymentUseCase(ctrl)

		w := serve(stageRouter(NewStagePaymentHandler(uc)), http.MethodPut, "/v1/changesets/cs-1/stages/101", `{"status":"2"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cleans paid rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStagePaymentUseCase(ctrl)

		uc.EXPECT().RecordEdit(gomock.Any(), "cs-1", "101", gomock.AssignableToTypeOf(entities.StageEdit{})).DoAndReturn(
			func(_ context.Context, _ string, stageID string, edit entities.StageEdit) (entities.ChangeSet, error) {
				if edit.TripID != "10" || edit.PaidRate == nil || edit.PaidRate.Raw() != "150.25" || edit.Status != nil {
					t.Fatalf("unexpected edit: %+v", edit)
				}
				cs := entities.NewChangeSet("cs-1", time.Now().UTC())
				cs.Record(stageID, edit, time.Now().UTC())
				return cs, nil
			},
		)

		w := serve(stageRouter(NewStagePaymentHandler(uc)), http.MethodPut, "/v1/changesets/cs-1/stages/101", `{"trip_id":"10","paid_rate":"$150.25"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"dirty":1`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStagePaymentUseCase(ctrl)
		uc.EXPECT().RecordEdit(gomock.Any(), "cs-1", "101", gomock.Any()).Return(entities.ChangeSet{}, usecase.ErrUnknownPaymentMethod)

		w := serve(stageRouter(NewStagePaymentHandler(uc)), http.MethodPut, "/v1/changesets/cs-1/stages/101", `{"trip_id":"10","payment_method":"EFECTIVO"}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "UNKNOWN_PAYMENT_METHOD" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestStagePaymentHandler_ChangeSetLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIStagePaymentUseCase(ctrl)
	r := stageRouter(NewStagePaymentHandler(uc))
	now := time.Now().UTC()

	uc.EXPECT().OpenChangeSet(gomock.Any()).Return(entities.NewChangeSet("cs-1", now), nil)
	if w := serve(r, http.MethodPost, "/v1/changesets", ""); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	uc.EXPECT().RevertEdit(gomock.Any(), "cs-1", "101").Return(entities.NewChangeSet("cs-1", now), nil)
	if w := serve(r, http.MethodDelete, "/v1/changesets/cs-1/stages/101", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().PendingEdits(gomock.Any(), "cs-1").Return(entities.PendingReport{Items: []entities.PendingItem{}}, nil)
	w := serve(r, http.MethodGet, "/v1/changesets/cs-1/pending", "")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"can_save":false`)) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestStagePaymentHandler_SaveBulk(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation failure lists every stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStagePaymentUseCase(ctrl)

		failures := []entities.PendingItem{
			{DirtyStage: entities.DirtyStage{TripID: "10", Draft: entities.StageDraft{TripStageID: "101", PaidRate: valueobject.NewEditableDecimal("")}}, Errors: []string{entities.MsgPaymentMethodEmpty, entities.MsgPaidRateInvalid}},
			{DirtyStage: entities.DirtyStage{TripID: "20", Draft: entities.StageDraft{TripStageID: "201", PaymentMethod: "RTS", PaidRate: valueobject.NewEditableDecimal("0"), Status: "1"}}, Errors: []string{entities.MsgPaidRateNotPositive}},
		}
		uc.EXPECT().SaveBulk(gomock.Any(), "cs-1").Return(usecase.BulkSaveResult{}, &usecase.StageValidationError{Failures: failures})

		w := serve(stageRouter(NewStagePaymentHandler(uc)), http.MethodPost, "/v1/changesets/cs-1/save", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Code    string `json:"code"`
			Details []struct {
				Stage struct {
					TripStageID string `json:"trip_stage_id"`
				} `json:"stage"`
				Errors []string `json:"errors"`
			} `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Code != "VALIDATION_FAILED" || len(body.Details) != 2 || len(body.Details[0].Errors) != 2 || body.Details[1].Stage.TripStageID != "201" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("remote rejection keeps message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStagePaymentUseCase(ctrl)
		uc.EXPECT().SaveBulk(gomock.Any(), "cs-1").Return(usecase.BulkSaveResult{}, &interfaces.RemoteError{Op: "I_pago_stage_bulk", Message: "Stage 101 bloqueado"})

		w := serve(stageRouter(NewStagePaymentHandler(uc)), http.MethodPost, "/v1/changesets/cs-1/save", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "REMOTE_REJECTED" || body.Message != "Stage 101 bloqueado" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStagePaymentUseCase(ctrl)
		uc.EXPECT().SaveBulk(gomock.Any(), "cs-1").Return(usecase.BulkSaveResult{
			ChangeSetID: "cs-1",
			Saved:       1,
			Items:       []entities.StagePaymentPayload{{ID: "101", Metodo: "RTS", Tarifa: "100.00", Status: "3"}},
		}, nil)

		w := serve(stageRouter(NewStagePaymentHandler(uc)), http.MethodPost, "/v1/changesets/cs-1/save", "")
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"tarifa":"100.00"`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStagePaymentUseCase(ctrl)
		uc.EXPECT().SaveBulk(gomock.Any(), "cs-1").Return(usecase.BulkSaveResult{}, errors.New("dynamo down"))

		w := serve(stageRouter(NewStagePaymentHandler(uc)), http.MethodPost, "/v1/changesets/cs-1/save", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
