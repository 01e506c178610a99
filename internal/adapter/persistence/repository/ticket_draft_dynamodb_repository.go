package repository

import (
	"context"
	"time"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/domain/valueobject"
	"freight_settlement/internal/infrastructure/config"
	"freight_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type ticketStageItem struct {
	StageNumber    int     `dynamodbav:"stage_number"`
	Origin         string  `dynamodbav:"origin"`
	Destination    string  `dynamodbav:"destination"`
	MillasPcMiller float64 `dynamodbav:"millas_pcmiller"`
	StageType      string  `dynamodbav:"stage_type,omitempty"`
}

// Editable amounts are stored as the text the operator typed.
type ticketDraftItem struct {
	TripID          string            `dynamodbav:"trip_id"`
	TripNumber      string            `dynamodbav:"trip_number"`
	DriverID        string            `dynamodbav:"driver_id"`
	DriverName      string            `dynamodbav:"driver_name"`
	Stages          []ticketStageItem `dynamodbav:"stages"`
	Ajustes         map[string]string `dynamodbav:"ajustes"`
	RatePerMile     string            `dynamodbav:"rate_per_mile"`
	Anticipo1       string            `dynamodbav:"anticipo_1"`
	Anticipo2       string            `dynamodbav:"anticipo_2"`
	Anticipo3       string            `dynamodbav:"anticipo_3"`
	AdvancesVisible int               `dynamodbav:"advances_visible"`
	Gastos          string            `dynamodbav:"gastos"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
	ExpiresAt       int64             `dynamodbav:"expires_at"`
}

// TicketDraftDynamoRepository keeps one in-progress ticket per trip.
//
// Table requirements:
//   - PK: trip_id (string)
//   - TTL attribute: expires_at
type TicketDraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	ttl       time.Duration
}

var _ interfaces.ITicketDraftRepository = (*TicketDraftDynamoRepository)(nil)

func NewTicketDraftDynamoRepository(ddb *dynamodb.Client, cfg config.Config) *TicketDraftDynamoRepository {
	return &TicketDraftDynamoRepository{
		ddb:       ddb,
		tableName: cfg.TicketDraftsTable,
		ttl:       cfg.DraftTTL,
	}
}

func (r *TicketDraftDynamoRepository) GetByTripID(ctx context.Context, tripID string) (entities.PaymentTicket, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"trip_id": &types.AttributeValueMemberS{Value: tripID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentTicket{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentTicket{}, nil
	}

	var it ticketDraftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentTicket{}, err
	}
	return fromTicketDraftItem(it), nil
}

func (r *TicketDraftDynamoRepository) Save(ctx context.Context, t entities.PaymentTicket) error {
	av, err := attributevalue.MarshalMap(toTicketDraftItem(t, r.ttl))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *TicketDraftDynamoRepository) Delete(ctx context.Context, tripID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"trip_id": &types.AttributeValueMemberS{Value: tripID},
		},
	})
	return err
}

func toTicketDraftItem(t entities.PaymentTicket, ttl time.Duration) ticketDraftItem {
	stages := make([]ticketStageItem, 0, len(t.Stages))
	for _, s := range t.Stages {
		stages = append(stages, ticketStageItem{
			StageNumber:    s.StageNumber,
			Origin:         s.Origin,
			Destination:    s.Destination,
			MillasPcMiller: s.MillasPcMiller,
			StageType:      s.StageType,
		})
	}
	ajustes := make(map[int]string, len(t.Ajustes))
	for k, v := range t.Ajustes {
		ajustes[k] = v.Raw()
	}
	return ticketDraftItem{
		TripID:          t.TripID,
		TripNumber:      t.TripNumber,
		DriverID:        t.DriverID,
		DriverName:      t.DriverName,
		Stages:          stages,
		Ajustes:         stringKeyed(ajustes),
		RatePerMile:     t.RatePerMile.Raw(),
		Anticipo1:       t.Advances.A1.Raw(),
		Anticipo2:       t.Advances.A2.Raw(),
		Anticipo3:       t.Advances.A3.Raw(),
		AdvancesVisible: t.Advances.Visible,
		Gastos:          t.Gastos.Raw(),
		UpdatedAt:       formatTime(t.UpdatedAt),
		ExpiresAt:       expiresAt(t.UpdatedAt, ttl),
	}
}

func fromTicketDraftItem(it ticketDraftItem) entities.PaymentTicket {
	stages := make([]entities.TicketStage, 0, len(it.Stages))
	for _, s := range it.Stages {
		stages = append(stages, entities.TicketStage{
			StageNumber:    s.StageNumber,
			Origin:         s.Origin,
			Destination:    s.Destination,
			MillasPcMiller: s.MillasPcMiller,
			StageType:      s.StageType,
		})
	}
	ajustes := map[int]valueobject.EditableDecimal{}
	for k, v := range intKeyed(it.Ajustes) {
		ajustes[k] = valueobject.NewEditableDecimal(v)
	}
	visible := it.AdvancesVisible
	if visible < 1 {
		visible = 1
	}
	return entities.PaymentTicket{
		TripID:      it.TripID,
		TripNumber:  it.TripNumber,
		DriverID:    it.DriverID,
		DriverName:  it.DriverName,
		Stages:      stages,
		Ajustes:     ajustes,
		RatePerMile: valueobject.NewEditableDecimal(it.RatePerMile),
		Advances: entities.Advances{
			A1:      valueobject.NewEditableDecimal(it.Anticipo1),
			A2:      valueobject.NewEditableDecimal(it.Anticipo2),
			A3:      valueobject.NewEditableDecimal(it.Anticipo3),
			Visible: visible,
		},
		Gastos:    valueobject.NewEditableDecimal(it.Gastos),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
