package repository

import (
	"context"
	"time"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/infrastructure/config"
	"freight_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// A touched field may hold a blank value, so presence is stored apart from
// the text.
type stageEditItem struct {
	TripID           string `dynamodbav:"trip_id"`
	PaymentMethod    string `dynamodbav:"payment_method"`
	PaymentMethodSet bool   `dynamodbav:"payment_method_set"`
	PaidRate         string `dynamodbav:"paid_rate"`
	PaidRateSet      bool   `dynamodbav:"paid_rate_set"`
	Status           string `dynamodbav:"status"`
	StatusSet        bool   `dynamodbav:"status_set"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

type changeSetItem struct {
	ID        string                   `dynamodbav:"id"`
	Edits     map[string]stageEditItem `dynamodbav:"edits"`
	CreatedAt string                   `dynamodbav:"created_at"`
	UpdatedAt string                   `dynamodbav:"updated_at"`
	ExpiresAt int64                    `dynamodbav:"expires_at"`
}

// ChangeSetDynamoRepository persists pending stage edits.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at
type ChangeSetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	ttl       time.Duration
}

var _ interfaces.IChangeSetRepository = (*ChangeSetDynamoRepository)(nil)

func NewChangeSetDynamoRepository(ddb *dynamodb.Client, cfg config.Config) *ChangeSetDynamoRepository {
	return &ChangeSetDynamoRepository{
		ddb:       ddb,
		tableName: cfg.ChangeSetsTable,
		ttl:       cfg.DraftTTL,
	}
}

func (r *ChangeSetDynamoRepository) Create(ctx context.Context, cs entities.ChangeSet) (entities.ChangeSet, error) {
	av, err := attributevalue.MarshalMap(toChangeSetItem(cs, r.ttl))
	if err != nil {
		return entities.ChangeSet{}, err
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
		return entities.ChangeSet{}, err
	}
	return cs, nil
}

func (r *ChangeSetDynamoRepository) GetByID(ctx context.Context, id string) (entities.ChangeSet, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChangeSet{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChangeSet{}, nil
	}

	var it changeSetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChangeSet{}, err
	}
	return fromChangeSetItem(it), nil
}

func (r *ChangeSetDynamoRepository) Save(ctx context.Context, cs entities.ChangeSet) error {
	av, err := attributevalue.MarshalMap(toChangeSetItem(cs, r.ttl))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ChangeSetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toChangeSetItem(cs entities.ChangeSet, ttl time.Duration) changeSetItem {
	edits := make(map[string]stageEditItem, len(cs.Edits))
	for stageID, e := range cs.Edits {
		it := stageEditItem{TripID: e.TripID, UpdatedAt: formatTime(e.UpdatedAt)}
		it.PaymentMethod, it.PaymentMethodSet = deref(e.PaymentMethod)
		it.PaidRate, it.PaidRateSet = deref(rawPtr(e.PaidRate))
		it.Status, it.StatusSet = deref(e.Status)
		edits[stageID] = it
	}
	return changeSetItem{
		ID:        cs.ID,
		Edits:     edits,
		CreatedAt: formatTime(cs.CreatedAt),
		UpdatedAt: formatTime(cs.UpdatedAt),
		ExpiresAt: expiresAt(cs.UpdatedAt, ttl),
	}
}

func fromChangeSetItem(it changeSetItem) entities.ChangeSet {
	edits := make(map[string]entities.StageEdit, len(it.Edits))
	for stageID, e := range it.Edits {
		edits[stageID] = entities.StageEdit{
			TripID:        e.TripID,
			PaymentMethod: ref(e.PaymentMethod, e.PaymentMethodSet),
			PaidRate:      decimalPtr(ref(e.PaidRate, e.PaidRateSet)),
			Status:        ref(e.Status, e.StatusSet),
			UpdatedAt:     parseTime(e.UpdatedAt),
		}
	}
	return entities.ChangeSet{
		ID:        it.ID,
		Edits:     edits,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
