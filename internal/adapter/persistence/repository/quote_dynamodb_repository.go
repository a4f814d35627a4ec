package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesShareTokenIndex  = "share_token-index"
	quotesAccountIDIndex   = "account_id-index"
)

type lineItemItem struct {
	ServiceID  string  `dynamodbav:"service_id"`
	Name       string  `dynamodbav:"name"`
	Type       string  `dynamodbav:"type"`
	Hours      float64 `dynamodbav:"hours"`
	HourlyRate float64 `dynamodbav:"hourly_rate"`
	Amount     float64 `dynamodbav:"amount"`
	Included   bool    `dynamodbav:"included"`
}

type quoteItem struct {
	ID        string `dynamodbav:"id"`
	AccountID string `dynamodbav:"account_id"`

	CustomerID    string `dynamodbav:"customer_id"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerEmail string `dynamodbav:"customer_email"`
	CustomerPhone string `dynamodbav:"customer_phone,omitempty"`

	AircraftID    string `dynamodbav:"aircraft_id"`
	AircraftLabel string `dynamodbav:"aircraft_label"`

	ServiceIDs []string `dynamodbav:"service_ids,omitempty"`
	PackageID  string   `dynamodbav:"package_id,omitempty"`

	LineItems        []lineItemItem `dynamodbav:"line_items"`
	TotalHours       float64        `dynamodbav:"total_hours"`
	CalculatedPrice  float64        `dynamodbav:"calculated_price"`
	IsMinimumApplied bool           `dynamodbav:"is_minimum_applied"`
	Total            float64        `dynamodbav:"total"`
	LaborTotal       float64        `dynamodbav:"labor_total"`
	ProductsTotal    float64        `dynamodbav:"products_total"`
	PackageSavings   float64        `dynamodbav:"package_savings"`
	AccessDifficulty float64        `dynamodbav:"access_difficulty"`

	JobLocation string `dynamodbav:"job_location,omitempty"`
	Notes       string `dynamodbav:"notes,omitempty"`
	ShareToken  string `dynamodbav:"share_token"`

	Status        string `dynamodbav:"status"`
	ValidUntil    string `dynamodbav:"valid_until"`
	ScheduledDate string `dynamodbav:"scheduled_date,omitempty"`

	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	SentAt      string `dynamodbav:"sent_at,omitempty"`
	ViewedAt    string `dynamodbav:"viewed_at,omitempty"`
	PaidAt      string `dynamodbav:"paid_at,omitempty"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: share_token-index (PK: share_token)
//   - GSI: account_id-index (PK: account_id)
//
// Status changes go through conditional updates keyed on the stored status,
// so two concurrent writers cannot both move the same quote. A failed
// condition comes back as a zero-ID quote with a nil error; the usecase
// layer re-reads and maps that to a precise domain error.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByShareToken(ctx context.Context, token string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesShareTokenIndex),
		KeyConditionExpression: aws.String("share_token = :token"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByAccountID(ctx context.Context, accountID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesAccountIDIndex),
		KeyConditionExpression: aws.String("account_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: accountID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

// statusStamps maps a target status to the timestamp attribute recorded on
// its first transition.
var statusStamps = map[entities.QuoteStatus]string{
	entities.QuoteStatusSent:      "sent_at",
	entities.QuoteStatusPaid:      "paid_at",
	entities.QuoteStatusCompleted: "completed_at",
}

func (r *QuoteDynamoRepository) TransitionStatus(ctx context.Context, id string, from []entities.QuoteStatus, to entities.QuoteStatus, at time.Time) (entities.Quote, error) {
	now := at.UTC().Format(time.RFC3339Nano)

	cond, values := statusGuard(from)
	updateExpr := "SET #status = :to, #updated_at = :now"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values[":to"] = &types.AttributeValueMemberS{Value: string(to)}
	values[":now"] = &types.AttributeValueMemberS{Value: now}
	if stamp, ok := statusStamps[to]; ok {
		updateExpr += ", #stamp = :now"
		names["#stamp"] = stamp
	}

	return r.update(ctx, id, cond, updateExpr, values, names)
}

func (r *QuoteDynamoRepository) MarkViewed(ctx context.Context, id string, at time.Time) (entities.Quote, error) {
	cond, values := statusGuard([]entities.QuoteStatus{entities.QuoteStatusSent, entities.QuoteStatusViewed})
	// Repeated views keep the first viewed_at; the write stays idempotent.
	updateExpr := "SET #status = :viewed, #viewed_at = if_not_exists(#viewed_at, :now), #updated_at = :now"
	names := map[string]string{
		"#status":     "status",
		"#viewed_at":  "viewed_at",
		"#updated_at": "updated_at",
	}
	values[":viewed"] = &types.AttributeValueMemberS{Value: string(entities.QuoteStatusViewed)}
	values[":now"] = &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)}

	return r.update(ctx, id, cond, updateExpr, values, names)
}

func (r *QuoteDynamoRepository) Schedule(ctx context.Context, id string, date, at time.Time) (entities.Quote, error) {
	cond, values := statusGuard([]entities.QuoteStatus{entities.QuoteStatusPaid})
	updateExpr := "SET #status = :scheduled, #scheduled_date = :date, #updated_at = :now"
	names := map[string]string{
		"#status":         "status",
		"#scheduled_date": "scheduled_date",
		"#updated_at":     "updated_at",
	}
	values[":scheduled"] = &types.AttributeValueMemberS{Value: string(entities.QuoteStatusScheduled)}
	values[":date"] = &types.AttributeValueMemberS{Value: date.UTC().Format(time.RFC3339Nano)}
	values[":now"] = &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)}

	return r.update(ctx, id, cond, updateExpr, values, names)
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// statusGuard builds the condition expression that pins an update to the
// expected stored statuses.
func statusGuard(from []entities.QuoteStatus) (string, map[string]types.AttributeValue) {
	cond := "attribute_exists(#id) AND #status IN ("
	values := make(map[string]types.AttributeValue, len(from)+2)
	for i, s := range from {
		key := fmt.Sprintf(":from%d", i)
		if i > 0 {
			cond += ", "
		}
		cond += key
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
	}
	cond += ")"
	return cond, values
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]lineItemItem, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		items = append(items, lineItemItem{
			ServiceID:  li.ServiceID,
			Name:       li.Name,
			Type:       string(li.Type),
			Hours:      li.Hours,
			HourlyRate: li.HourlyRate,
			Amount:     li.Amount,
			Included:   li.Included,
		})
	}
	return quoteItem{
		ID:               q.ID,
		AccountID:        q.AccountID,
		CustomerID:       q.CustomerID,
		CustomerName:     q.CustomerName,
		CustomerEmail:    q.CustomerEmail,
		CustomerPhone:    q.CustomerPhone,
		AircraftID:       q.AircraftID,
		AircraftLabel:    q.AircraftLabel,
		ServiceIDs:       q.ServiceIDs,
		PackageID:        q.PackageID,
		LineItems:        items,
		TotalHours:       q.TotalHours,
		CalculatedPrice:  q.CalculatedPrice,
		IsMinimumApplied: q.IsMinimumApplied,
		Total:            q.Total,
		LaborTotal:       q.LaborTotal,
		ProductsTotal:    q.ProductsTotal,
		PackageSavings:   q.PackageSavings,
		AccessDifficulty: q.AccessDifficulty,
		JobLocation:      q.JobLocation,
		Notes:            q.Notes,
		ShareToken:       q.ShareToken,
		Status:           string(q.Status),
		ValidUntil:       q.ValidUntil.UTC().Format(time.RFC3339Nano),
		ScheduledDate:    formatOptTime(q.ScheduledDate),
		CreatedAt:        q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        q.UpdatedAt.UTC().Format(time.RFC3339Nano),
		SentAt:           formatOptTime(q.SentAt),
		ViewedAt:         formatOptTime(q.ViewedAt),
		PaidAt:           formatOptTime(q.PaidAt),
		CompletedAt:      formatOptTime(q.CompletedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		items = append(items, entities.LineItem{
			ServiceID:  li.ServiceID,
			Name:       li.Name,
			Type:       entities.ServiceType(li.Type),
			Hours:      li.Hours,
			HourlyRate: li.HourlyRate,
			Amount:     li.Amount,
			Included:   li.Included,
		})
	}
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quote{
		ID:               it.ID,
		AccountID:        it.AccountID,
		CustomerID:       it.CustomerID,
		CustomerName:     it.CustomerName,
		CustomerEmail:    it.CustomerEmail,
		CustomerPhone:    it.CustomerPhone,
		AircraftID:       it.AircraftID,
		AircraftLabel:    it.AircraftLabel,
		ServiceIDs:       it.ServiceIDs,
		PackageID:        it.PackageID,
		LineItems:        items,
		TotalHours:       it.TotalHours,
		CalculatedPrice:  it.CalculatedPrice,
		IsMinimumApplied: it.IsMinimumApplied,
		Total:            it.Total,
		LaborTotal:       it.LaborTotal,
		ProductsTotal:    it.ProductsTotal,
		PackageSavings:   it.PackageSavings,
		AccessDifficulty: it.AccessDifficulty,
		JobLocation:      it.JobLocation,
		Notes:            it.Notes,
		ShareToken:       it.ShareToken,
		Status:           entities.QuoteStatus(it.Status),
		ValidUntil:       validUntil,
		ScheduledDate:    parseOptTime(it.ScheduledDate),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
		SentAt:           parseOptTime(it.SentAt),
		ViewedAt:         parseOptTime(it.ViewedAt),
		PaidAt:           parseOptTime(it.PaidAt),
		CompletedAt:      parseOptTime(it.CompletedAt),
	}
}

func formatOptTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
