package repository

import (
	"context"
	"sort"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/infrastructure/config"
	"freight_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const authorizationsTripIDIndex = "trip_id-index"

type ticketAuthorizationItem struct {
	ID                string             `dynamodbav:"id"`
	TripID            string             `dynamodbav:"trip_id"`
	DriverID          string             `dynamodbav:"driver_id"`
	Amount            float64            `dynamodbav:"amount"`
	RatePerMile       float64            `dynamodbav:"rate_per_mile"`
	Anticipo1         float64            `dynamodbav:"anticipo_1"`
	Anticipo2         float64            `dynamodbav:"anticipo_2"`
	Anticipo3         float64            `dynamodbav:"anticipo_3"`
	Gastos            float64            `dynamodbav:"gastos"`
	Ajustes           map[string]float64 `dynamodbav:"ajustes"`
	RemoteID          string             `dynamodbav:"remote_id"`
	Status            string             `dynamodbav:"status"`
	Operator          string             `dynamodbav:"operator"`
	Date              string             `dynamodbav:"date"`
	RemoteResponseRaw string             `dynamodbav:"remote_response_raw,omitempty"`
}

// TicketAuthorizationDynamoRepository is the audit trail of authorized
// driver payments.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: trip_id-index (PK: trip_id)
type TicketAuthorizationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketAuthorizationRepository = (*TicketAuthorizationDynamoRepository)(nil)

func NewTicketAuthorizationDynamoRepository(ddb *dynamodb.Client, cfg config.Config) *TicketAuthorizationDynamoRepository {
	return &TicketAuthorizationDynamoRepository{
		ddb:       ddb,
		tableName: cfg.TicketAuthorizationsTable,
	}
}

func (r *TicketAuthorizationDynamoRepository) Create(ctx context.Context, a entities.TicketAuthorization) (entities.TicketAuthorization, error) {
	av, err := attributevalue.MarshalMap(toTicketAuthorizationItem(a))
	if err != nil {
		return entities.TicketAuthorization{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.TicketAuthorization{}, err
	}
	return a, nil
}

// ListByTripID returns the newest authorization first.
func (r *TicketAuthorizationDynamoRepository) ListByTripID(ctx context.Context, tripID string) ([]entities.TicketAuthorization, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(authorizationsTripIDIndex),
		KeyConditionExpression: aws.String("trip_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tripID},
		},
	}

	items := []entities.TicketAuthorization{}
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it ticketAuthorizationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromTicketAuthorizationItem(it))
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func toTicketAuthorizationItem(a entities.TicketAuthorization) ticketAuthorizationItem {
	return ticketAuthorizationItem{
		ID:                a.ID,
		TripID:            a.TripID,
		DriverID:          a.DriverID,
		Amount:            a.Amount,
		RatePerMile:       a.RatePerMile,
		Anticipo1:         a.Anticipo1,
		Anticipo2:         a.Anticipo2,
		Anticipo3:         a.Anticipo3,
		Gastos:            a.Gastos,
		Ajustes:           stringKeyed(a.Ajustes),
		RemoteID:          a.RemoteID,
		Status:            string(a.Status),
		Operator:          a.Operator,
		Date:              formatTime(a.Date),
		RemoteResponseRaw: string(a.RemoteResponseRaw),
	}
}

func fromTicketAuthorizationItem(it ticketAuthorizationItem) entities.TicketAuthorization {
	return entities.TicketAuthorization{
		ID:                it.ID,
		TripID:            it.TripID,
		DriverID:          it.DriverID,
		Amount:            it.Amount,
		RatePerMile:       it.RatePerMile,
		Anticipo1:         it.Anticipo1,
		Anticipo2:         it.Anticipo2,
		Anticipo3:         it.Anticipo3,
		Gastos:            it.Gastos,
		Ajustes:           intKeyed(it.Ajustes),
		RemoteID:          it.RemoteID,
		Status:            entities.AuthorizationStatus(it.Status),
		Operator:          it.Operator,
		Date:              parseTime(it.Date),
		RemoteResponseRaw: []byte(it.RemoteResponseRaw),
	}
}
