package repository

import (
	"context"
	"sort"
	"time"

	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChangeOrdersTableName = "change_orders"
	changeOrdersQuoteIDIndex     = "quote_id-index"
)

type changeOrderItemEntry struct {
	Name   string  `dynamodbav:"name"`
	Amount float64 `dynamodbav:"amount"`
}

type changeOrderItem struct {
	ID        string                 `dynamodbav:"id"`
	QuoteID   string                 `dynamodbav:"quote_id"`
	Items     []changeOrderItemEntry `dynamodbav:"items"`
	Reason    string                 `dynamodbav:"reason,omitempty"`
	Amount    float64                `dynamodbav:"amount"`
	NewTotal  float64                `dynamodbav:"new_total"`
	CreatedAt string                 `dynamodbav:"created_at"`
}

// ChangeOrderDynamoRepository persists ChangeOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type ChangeOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChangeOrderRepository = (*ChangeOrderDynamoRepository)(nil)

func NewChangeOrderDynamoRepository(ddb *dynamodb.Client) *ChangeOrderDynamoRepository {
	return &ChangeOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHANGE_ORDERS_TABLE", defaultChangeOrdersTableName),
	}
}

func (r *ChangeOrderDynamoRepository) Create(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error) {
	it := toChangeOrderItem(co)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ChangeOrder{}, err
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
		return entities.ChangeOrder{}, err
	}
	return co, nil
}

func (r *ChangeOrderDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.ChangeOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(changeOrdersQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ChangeOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it changeOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromChangeOrderItem(it))
	}
	// The GSI gives no ordering guarantee; present the ledger oldest first.
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func toChangeOrderItem(co entities.ChangeOrder) changeOrderItem {
	entries := make([]changeOrderItemEntry, 0, len(co.Items))
	for _, item := range co.Items {
		entries = append(entries, changeOrderItemEntry{Name: item.Name, Amount: item.Amount})
	}
	return changeOrderItem{
		ID:        co.ID,
		QuoteID:   co.QuoteID,
		Items:     entries,
		Reason:    co.Reason,
		Amount:    co.Amount,
		NewTotal:  co.NewTotal,
		CreatedAt: co.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromChangeOrderItem(it changeOrderItem) entities.ChangeOrder {
	items := make([]entities.ChangeOrderItem, 0, len(it.Items))
	for _, entry := range it.Items {
		items = append(items, entities.ChangeOrderItem{Name: entry.Name, Amount: entry.Amount})
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ChangeOrder{
		ID:        it.ID,
		QuoteID:   it.QuoteID,
		Items:     items,
		Reason:    it.Reason,
		Amount:    it.Amount,
		NewTotal:  it.NewTotal,
		CreatedAt: createdAt,
	}
}
