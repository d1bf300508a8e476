package repository

import (
	"context"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCommissionPaymentsTableName = "commission_payments"
	paymentsRecordIDIndex              = "record_id-index"
)

type commissionPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	RecordID           string                 `dynamodbav:"record_id"`
	ProjectID          string                 `dynamodbav:"project_id"`
	Amount             float64                `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// CommissionPaymentDynamoRepository persists provider payment attempts.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: record_id-index (PK: record_id)
type CommissionPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICommissionPaymentRepository = (*CommissionPaymentDynamoRepository)(nil)

func NewCommissionPaymentDynamoRepository(ddb DynamoAPI, table string) *CommissionPaymentDynamoRepository {
	return &CommissionPaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "COMMISSION_PAYMENTS_TABLE", defaultCommissionPaymentsTableName),
	}
}

func (r *CommissionPaymentDynamoRepository) Create(ctx context.Context, p entities.CommissionPayment) (entities.CommissionPayment, error) {
	av, err := attributevalue.MarshalMap(toCommissionPaymentItem(p))
	if err != nil {
		return entities.CommissionPayment{}, err
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
		return entities.CommissionPayment{}, err
	}
	return p, nil
}

func (r *CommissionPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.CommissionPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CommissionPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.CommissionPayment{}, nil
	}

	var it commissionPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CommissionPayment{}, err
	}
	return fromCommissionPaymentItem(it), nil
}

func (r *CommissionPaymentDynamoRepository) ListByRecordID(ctx context.Context, recordID string) ([]entities.CommissionPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsRecordIDIndex),
		KeyConditionExpression: aws.String("record_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: recordID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CommissionPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it commissionPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCommissionPaymentItem(it))
	}
	return items, nil
}

func toCommissionPaymentItem(p entities.CommissionPayment) commissionPaymentItem {
	return commissionPaymentItem{
		ID:                 p.ID,
		RecordID:           p.RecordID,
		ProjectID:          p.ProjectID,
		Amount:             p.Amount,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromCommissionPaymentItem(it commissionPaymentItem) entities.CommissionPayment {
	return entities.CommissionPayment{
		ID:                 it.ID,
		RecordID:           it.RecordID,
		ProjectID:          it.ProjectID,
		Amount:             it.Amount,
		Date:               parseTime(it.Date),
		Status:             entities.CommissionPaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
