package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/infrastructure/metrics"
	"freight_settlement/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidChangeSetID   = errors.New("invalid changeset_id")
	ErrChangeSetNotFound    = errors.New("change-set not found")
	ErrInvalidStageID       = errors.New("invalid trip_stage_id")
	ErrInvalidTripID        = errors.New("invalid trip_id")
	ErrTripNotFound         = errors.New("trip not found")
	ErrEmptyEdit            = errors.New("edit changes no field")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrNothingToSave        = errors.New("no pending stage edits")
	ErrStageValidation      = errors.New("stage validation failed")
)

// StageValidationError lists every dirty stage that failed validation. Nothing
// was sent to the remote system.
type StageValidationError struct {
	Failures []entities.PendingItem
}

func (e *StageValidationError) Error() string {
	return fmt.Sprintf("%d stage(s) failed validation", len(e.Failures))
}

func (e *StageValidationError) Unwrap() error {
	return ErrStageValidation
}

type BulkSaveResult struct {
	ChangeSetID string                         `json:"changeset_id"`
	Saved       int                            `json:"saved"`
	Items       []entities.StagePaymentPayload `json:"items"`
}

// IStagePaymentUseCase covers the stage payment board: listing trips with
// pending edits overlaid, editing stages in a change-set and bulk saving it.
type IStagePaymentUseCase interface {
	ListTrips(ctx context.Context, changeSetID string) (entities.TripBoard, error)
	TripSummary(ctx context.Context, tripID string) (entities.TripSummary, error)
	OpenChangeSet(ctx context.Context) (entities.ChangeSet, error)
	RecordEdit(ctx context.Context, changeSetID, stageID string, edit entities.StageEdit) (entities.ChangeSet, error)
	RevertEdit(ctx context.Context, changeSetID, stageID string) (entities.ChangeSet, error)
	PendingEdits(ctx context.Context, changeSetID string) (entities.PendingReport, error)
	SaveBulk(ctx context.Context, changeSetID string) (BulkSaveResult, error)
}

// DefaultBulkSaveTimeout bounds a shared bulk save, refetch and submission
// included.
const DefaultBulkSaveTimeout = 30 * time.Second

type StagePaymentUseCase struct {
	api        interfaces.ILegacyAPI
	changeSets interfaces.IChangeSetRepository

	saves       singleflight.Group
	saveTimeout time.Duration
}

var _ IStagePaymentUseCase = (*StagePaymentUseCase)(nil)

func NewStagePaymentUseCase(api interfaces.ILegacyAPI, changeSets interfaces.IChangeSetRepository) *StagePaymentUseCase {
	return &StagePaymentUseCase{api: api, changeSets: changeSets, saveTimeout: DefaultBulkSaveTimeout}
}

func (u *StagePaymentUseCase) ListTrips(ctx context.Context, changeSetID string) (entities.TripBoard, error) {
	cs := entities.NewChangeSet("", time.Now().UTC())
	if id := strings.TrimSpace(changeSetID); id != "" {
		loaded, err := u.loadChangeSet(ctx, id)
		if err != nil {
			return entities.TripBoard{}, err
		}
		cs = loaded
	}

	trips, err := u.api.ListTrips(ctx)
	if err != nil {
		log.WithError(err).Warn("[stages][usecase] list trips failed")
		return entities.TripBoard{}, err
	}
	board := entities.BuildBoard(trips, cs)
	log.WithFields(log.Fields{"trips": len(board.Trips), "dirty": board.Dirty, "changeset_id": cs.ID}).Debug("[stages][usecase] board built")
	return board, nil
}

func (u *StagePaymentUseCase) TripSummary(ctx context.Context, tripID string) (entities.TripSummary, error) {
	tripID = strings.TrimSpace(tripID)
	if tripID == "" {
		return entities.TripSummary{}, ErrInvalidTripID
	}

	trips, err := u.api.ListTrips(ctx)
	if err != nil {
		return entities.TripSummary{}, err
	}
	var trip *entities.Trip
	for i := range trips {
		if trips[i].TripID == tripID {
			trip = &trips[i]
			break
		}
	}
	if trip == nil {
		return entities.TripSummary{}, ErrTripNotFound
	}

	expenses, err := u.api.ListTripExpenses(ctx, tripID)
	if err != nil {
		log.WithError(err).WithField("trip_id", tripID).Warn("[stages][usecase] expenses lookup failed")
		return entities.TripSummary{}, err
	}
	return entities.Summarize(*trip, expenses), nil
}

func (u *StagePaymentUseCase) OpenChangeSet(ctx context.Context) (entities.ChangeSet, error) {
	cs := entities.NewChangeSet(uuid.NewString(), time.Now().UTC())
	created, err := u.changeSets.Create(ctx, cs)
	if err != nil {
		log.WithError(err).Error("[stages][usecase] change-set create failed")
		return entities.ChangeSet{}, err
	}
	log.WithField("changeset_id", created.ID).Info("[stages][usecase] change-set opened")
	return created, nil
}

// RecordEdit marks the stage dirty. Values are stored as typed; they are
// validated when the change-set is saved.
func (u *StagePaymentUseCase) RecordEdit(ctx context.Context, changeSetID, stageID string, edit entities.StageEdit) (entities.ChangeSet, error) {
	stageID = strings.TrimSpace(stageID)
	if stageID == "" {
		return entities.ChangeSet{}, ErrInvalidStageID
	}
	edit.TripID = strings.TrimSpace(edit.TripID)
	if edit.TripID == "" {
		return entities.ChangeSet{}, ErrInvalidTripID
	}
	if edit.Empty() {
		return entities.ChangeSet{}, ErrEmptyEdit
	}
	if edit.PaymentMethod != nil && !entities.PaymentMethod(*edit.PaymentMethod).Known() {
		return entities.ChangeSet{}, ErrUnknownPaymentMethod
	}

	cs, err := u.loadChangeSet(ctx, changeSetID)
	if err != nil {
		return entities.ChangeSet{}, err
	}
	cs.Record(stageID, edit, time.Now().UTC())
	if err := u.changeSets.Save(ctx, cs); err != nil {
		log.WithError(err).WithField("changeset_id", cs.ID).Error("[stages][usecase] change-set save failed")
		return entities.ChangeSet{}, err
	}
	return cs, nil
}

func (u *StagePaymentUseCase) RevertEdit(ctx context.Context, changeSetID, stageID string) (entities.ChangeSet, error) {
	stageID = strings.TrimSpace(stageID)
	if stageID == "" {
		return entities.ChangeSet{}, ErrInvalidStageID
	}
	cs, err := u.loadChangeSet(ctx, changeSetID)
	if err != nil {
		return entities.ChangeSet{}, err
	}
	if !cs.Revert(stageID, time.Now().UTC()) {
		return cs, nil
	}
	if err := u.changeSets.Save(ctx, cs); err != nil {
		return entities.ChangeSet{}, err
	}
	return cs, nil
}

func (u *StagePaymentUseCase) PendingEdits(ctx context.Context, changeSetID string) (entities.PendingReport, error) {
	cs, err := u.loadChangeSet(ctx, changeSetID)
	if err != nil {
		return entities.PendingReport{}, err
	}
	trips, err := u.api.ListTrips(ctx)
	if err != nil {
		return entities.PendingReport{}, err
	}
	return entities.BuildPendingReport(entities.CollectDirty(trips, cs)), nil
}

// SaveBulk validates every dirty stage and sends them in one request. The
// change-set is cleared only for the stages the remote system accepted;
// concurrent saves of the same change-set share one submission.
func (u *StagePaymentUseCase) SaveBulk(ctx context.Context, changeSetID string) (BulkSaveResult, error) {
	changeSetID = strings.TrimSpace(changeSetID)
	if changeSetID == "" {
		return BulkSaveResult{}, ErrInvalidChangeSetID
	}
	// Shared by every caller of the change-set; detached from the starter's request.
	ch := u.saves.DoChan(changeSetID, func() (any, error) {
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.saveTimeout)
		defer cancel()
		return u.saveBulk(saveCtx, changeSetID)
	})
	select {
	case <-ctx.Done():
		return BulkSaveResult{}, ctx.Err()
	case r := <-ch:
		if r.Shared {
			log.WithField("changeset_id", changeSetID).Info("[stages][usecase] joined in-flight bulk save")
		}
		if r.Err != nil {
			return BulkSaveResult{}, r.Err
		}
		return r.Val.(BulkSaveResult), nil
	}
}

func (u *StagePaymentUseCase) saveBulk(ctx context.Context, changeSetID string) (BulkSaveResult, error) {
	entry := log.WithField("changeset_id", changeSetID)

	cs, err := u.loadChangeSet(ctx, changeSetID)
	if err != nil {
		return BulkSaveResult{}, err
	}
	trips, err := u.api.ListTrips(ctx)
	if err != nil {
		entry.WithError(err).Warn("[stages][usecase] bulk save aborted, trips unavailable")
		return BulkSaveResult{}, err
	}

	dirty := entities.CollectDirty(trips, cs)
	if len(dirty) == 0 {
		return BulkSaveResult{}, ErrNothingToSave
	}
	report := entities.BuildPendingReport(dirty)
	if failures := report.Failures(); len(failures) > 0 {
		metrics.StageBulkSaves.WithLabelValues(metrics.OutcomeInvalid).Inc()
		entry.WithField("failures", len(failures)).Info("[stages][usecase] bulk save refused by validation")
		return BulkSaveResult{}, &StageValidationError{Failures: failures}
	}

	payloads := report.Payloads()
	entry.WithField("items", len(payloads)).Info("[stages][usecase] sending bulk stage payments")
	if err := u.api.BulkUpdateStagePayments(ctx, payloads); err != nil {
		outcome := metrics.OutcomeError
		var remoteErr *interfaces.RemoteError
		if errors.As(err, &remoteErr) {
			outcome = metrics.OutcomeRejected
		}
		metrics.StageBulkSaves.WithLabelValues(outcome).Inc()
		entry.WithError(err).Warn("[stages][usecase] bulk save failed, edits kept")
		return BulkSaveResult{}, err
	}
	metrics.StageBulkSaves.WithLabelValues(metrics.OutcomeSuccess).Inc()

	now := time.Now().UTC()
	for _, d := range dirty {
		cs.Revert(d.Draft.TripStageID, now)
	}
	if err := u.changeSets.Save(ctx, cs); err != nil {
		// The remote already applied the payments; a stale change-set only
		// shows them as pending again.
		entry.WithError(err).Error("[stages][usecase] change-set cleanup failed after bulk save")
	}

	return BulkSaveResult{ChangeSetID: cs.ID, Saved: len(payloads), Items: payloads}, nil
}

func (u *StagePaymentUseCase) loadChangeSet(ctx context.Context, id string) (entities.ChangeSet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChangeSet{}, ErrInvalidChangeSetID
	}
	cs, err := u.changeSets.GetByID(ctx, id)
	if err != nil {
		return entities.ChangeSet{}, err
	}
	if cs.ID == "" {
		return entities.ChangeSet{}, ErrChangeSetNotFound
	}
	return cs, nil
}
