package repository

import (
	"context"
	"errors"
	"time"

	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRecommendationsTableName = "recommendations"
	recommendationsAccountIDIndex   = "account_id-index"
)

type recommendationItem struct {
	ID        string         `dynamodbav:"id"`
	AccountID string         `dynamodbav:"account_id"`
	Type      string         `dynamodbav:"type"`
	Priority  int            `dynamodbav:"priority"`
	Title     string         `dynamodbav:"title"`
	Message   string         `dynamodbav:"message"`
	Data      map[string]any `dynamodbav:"data,omitempty"`
	ActedOn   bool           `dynamodbav:"acted_on"`
	Dismissed bool           `dynamodbav:"dismissed"`
	CreatedAt string         `dynamodbav:"created_at"`
	ExpiresAt string         `dynamodbav:"expires_at"`
}

// RecommendationDynamoRepository persists Recommendation entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: account_id-index (PK: account_id)

type RecommendationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRecommendationRepository = (*RecommendationDynamoRepository)(nil)

func NewRecommendationDynamoRepository(ddb *dynamodb.Client) *RecommendationDynamoRepository {
	return &RecommendationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECOMMENDATIONS_TABLE", defaultRecommendationsTableName),
	}
}

func (r *RecommendationDynamoRepository) CreateBatch(ctx context.Context, recs []entities.Recommendation) ([]entities.Recommendation, error) {
	for _, rec := range recs {
		av, err := attributevalue.MarshalMap(toRecommendationItem(rec))
		if err != nil {
			return nil, err
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
			return nil, err
		}
	}
	return recs, nil
}

func (r *RecommendationDynamoRepository) ListByAccountID(ctx context.Context, accountID string) ([]entities.Recommendation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(recommendationsAccountIDIndex),
		KeyConditionExpression: aws.String("account_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: accountID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Recommendation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it recommendationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRecommendationItem(it))
	}
	return items, nil
}

func (r *RecommendationDynamoRepository) MarkActedOn(ctx context.Context, id string) (entities.Recommendation, error) {
	return r.setFlag(ctx, id, "acted_on")
}

func (r *RecommendationDynamoRepository) Dismiss(ctx context.Context, id string) (entities.Recommendation, error) {
	return r.setFlag(ctx, id, "dismissed")
}

func (r *RecommendationDynamoRepository) setFlag(ctx context.Context, id, attr string) (entities.Recommendation, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #flag = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#flag": attr,
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Recommendation{}, nil
		}
		return entities.Recommendation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Recommendation{}, nil
	}

	var it recommendationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Recommendation{}, err
	}
	return fromRecommendationItem(it), nil
}

func toRecommendationItem(rec entities.Recommendation) recommendationItem {
	return recommendationItem{
		ID:        rec.ID,
		AccountID: rec.AccountID,
		Type:      string(rec.Type),
		Priority:  rec.Priority,
		Title:     rec.Title,
		Message:   rec.Message,
		Data:      rec.Data,
		ActedOn:   rec.ActedOn,
		Dismissed: rec.Dismissed,
		CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt: rec.ExpiresAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRecommendationItem(it recommendationItem) entities.Recommendation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	return entities.Recommendation{
		ID:        it.ID,
		AccountID: it.AccountID,
		Type:      entities.RecommendationType(it.Type),
		Priority:  it.Priority,
		Title:     it.Title,
		Message:   it.Message,
		Data:      it.Data,
		ActedOn:   it.ActedOn,
		Dismissed: it.Dismissed,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}
}
