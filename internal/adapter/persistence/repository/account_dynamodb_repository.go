package repository

import (
	"context"

	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAccountsTableName = "accounts"

type accountItem struct {
	AccountID           string   `dynamodbav:"account_id"`
	MinimumFee          float64  `dynamodbav:"minimum_fee"`
	MinimumFeeLocations []string `dynamodbav:"minimum_fee_locations,omitempty"`
	LaborRate           float64  `dynamodbav:"labor_rate"`
	QuoteValidityDays   int      `dynamodbav:"quote_validity_days"`
}

// AccountDynamoRepository reads per-account configuration.
//
// Table requirements:
//   - PK: account_id (string)
//
// A missing row is not an error: the zero settings fall back to the engine
// defaults (no minimum fee, default labor rate and validity window).

type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) GetSettings(ctx context.Context, accountID string) (entities.AccountSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"account_id": &types.AttributeValueMemberS{Value: accountID},
		},
	})
	if err != nil {
		return entities.AccountSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.AccountSettings{AccountID: accountID}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AccountSettings{}, err
	}
	return entities.AccountSettings{
		AccountID:           it.AccountID,
		MinimumFee:          it.MinimumFee,
		MinimumFeeLocations: it.MinimumFeeLocations,
		LaborRate:           it.LaborRate,
		QuoteValidityDays:   it.QuoteValidityDays,
	}, nil
}

func (r *AccountDynamoRepository) ListAccountIDs(ctx context.Context) ([]string, error) {
	var ids []string
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("account_id"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it accountItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if it.AccountID != "" {
				ids = append(ids, it.AccountID)
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return ids, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
