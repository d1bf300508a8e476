package repository

import (
	"context"
	"strconv"

	"solar_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"
	commissionRateKey        = "commission_rate"
)

// SettingsDynamoRepository stores platform-wide settings as one item per key.
//
// Table requirements:
//   - PK: id (string)
type SettingsDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoAPI, table string) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "SETTINGS_TABLE", defaultSettingsTableName),
	}
}

// GetCommissionRate returns 0 when the rate was never set.
func (r *SettingsDynamoRepository) GetCommissionRate(ctx context.Context) (float64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(commissionRateKey),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	v, ok := out.Item["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	return strconv.ParseFloat(v.Value, 64)
}

func (r *SettingsDynamoRepository) SetCommissionRate(ctx context.Context, rate float64) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"id":    &types.AttributeValueMemberS{Value: commissionRateKey},
			"value": &types.AttributeValueMemberN{Value: floatToString(rate)},
		},
	})
	return err
}
