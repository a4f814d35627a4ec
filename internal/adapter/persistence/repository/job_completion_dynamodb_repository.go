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

const defaultJobCompletionsTableName = "job_completions"

type jobCompletionItem struct {
	QuoteID             string  `dynamodbav:"quote_id"`
	ActualHours         float64 `dynamodbav:"actual_hours"`
	ProductCost         float64 `dynamodbav:"product_cost"`
	WaitTimeMinutes     float64 `dynamodbav:"wait_time_minutes"`
	RepositioningNeeded bool    `dynamodbav:"repositioning_needed"`
	CustomerLate        bool    `dynamodbav:"customer_late"`
	Issues              string  `dynamodbav:"issues,omitempty"`
	VarianceHours       float64 `dynamodbav:"variance_hours"`
	CreatedAt           string  `dynamodbav:"created_at"`
}

// JobCompletionDynamoRepository persists JobCompletion entities in DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//
// The quote id is the PK, which guarantees one completion per quote. The
// completion put and the quote's completed transition run in a single
// TransactWriteItems call: a cancelled transaction (record exists, quote
// missing, or quote not in an allowed status) writes nothing and is reported
// as a zero-ID quote with a nil error.

type JobCompletionDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	quotesTableName string
	quotes          *QuoteDynamoRepository
}

var _ interfaces.IJobCompletionRepository = (*JobCompletionDynamoRepository)(nil)

func NewJobCompletionDynamoRepository(ddb *dynamodb.Client, quotes *QuoteDynamoRepository) *JobCompletionDynamoRepository {
	return &JobCompletionDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("JOB_COMPLETIONS_TABLE", defaultJobCompletionsTableName),
		quotesTableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		quotes:          quotes,
	}
}

func (r *JobCompletionDynamoRepository) CreateAndComplete(ctx context.Context, rec entities.JobCompletion, allowedFrom []entities.QuoteStatus, completedAt time.Time) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toJobCompletionItem(rec))
	if err != nil {
		return entities.Quote{}, err
	}

	now := completedAt.UTC().Format(time.RFC3339Nano)
	cond, values := statusGuard(allowedFrom)
	values[":completed"] = &types.AttributeValueMemberS{Value: string(entities.QuoteStatusCompleted)}
	values[":now"] = &types.AttributeValueMemberS{Value: now}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#quote_id)"),
					ExpressionAttributeNames: map[string]string{
						"#quote_id": "quote_id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.quotesTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: rec.QuoteID},
					},
					ConditionExpression:       aws.String(cond),
					UpdateExpression:          aws.String("SET #status = :completed, #completed_at = :now, #updated_at = :now"),
					ExpressionAttributeValues: values,
					ExpressionAttributeNames: map[string]string{
						"#id":           "id",
						"#status":       "status",
						"#completed_at": "completed_at",
						"#updated_at":   "updated_at",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	return r.quotes.GetByID(ctx, rec.QuoteID)
}

func (r *JobCompletionDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.JobCompletion, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobCompletion{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobCompletion{}, nil
	}

	var it jobCompletionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobCompletion{}, err
	}
	return fromJobCompletionItem(it), nil
}

func toJobCompletionItem(rec entities.JobCompletion) jobCompletionItem {
	return jobCompletionItem{
		QuoteID:             rec.QuoteID,
		ActualHours:         rec.ActualHours,
		ProductCost:         rec.ProductCost,
		WaitTimeMinutes:     rec.WaitTimeMinutes,
		RepositioningNeeded: rec.RepositioningNeeded,
		CustomerLate:        rec.CustomerLate,
		Issues:              rec.Issues,
		VarianceHours:       rec.VarianceHours,
		CreatedAt:           rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromJobCompletionItem(it jobCompletionItem) entities.JobCompletion {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.JobCompletion{
		QuoteID:             it.QuoteID,
		ActualHours:         it.ActualHours,
		ProductCost:         it.ProductCost,
		WaitTimeMinutes:     it.WaitTimeMinutes,
		RepositioningNeeded: it.RepositioningNeeded,
		CustomerLate:        it.CustomerLate,
		Issues:              it.Issues,
		VarianceHours:       it.VarianceHours,
		CreatedAt:           createdAt,
	}
}
