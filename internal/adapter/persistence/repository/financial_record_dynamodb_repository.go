package repository

import (
	"context"
	"sort"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRecordsTableName = "financial_records"
	recordsProjectIDIndex   = "project_id-index"
)

type recordItem struct {
	ID               string  `dynamodbav:"id"`
	ProjectID        string  `dynamodbav:"project_id"`
	ProjectCity      string  `dynamodbav:"project_city"`
	InstallerID      string  `dynamodbav:"installer_id"`
	FinalPrice       float64 `dynamodbav:"final_price"`
	CommissionRate   float64 `dynamodbav:"commission_rate"`
	CommissionAmount float64 `dynamodbav:"commission_amount"`
	Status           string  `dynamodbav:"status"`
	SignedAt         string  `dynamodbav:"signed_at"`
	PaidAt           string  `dynamodbav:"paid_at,omitempty"`
	PaymentReference string  `dynamodbav:"payment_reference,omitempty"`
}

// FinancialRecordDynamoRepository persists commission records.
//
// Table requirements:
//   - PK: id (string), "fin-" + project id
//   - GSI: project_id-index (PK: project_id)
//
// Records are created by ProjectDynamoRepository.CommitTransition; this
// repository only reads them and moves their status.
type FinancialRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFinancialRecordRepository = (*FinancialRecordDynamoRepository)(nil)

func NewFinancialRecordDynamoRepository(ddb DynamoAPI, table string) *FinancialRecordDynamoRepository {
	return &FinancialRecordDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "FINANCIAL_RECORDS_TABLE", defaultRecordsTableName),
	}
}

func (r *FinancialRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.FinancialRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FinancialRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.FinancialRecord{}, nil
	}
	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinancialRecord{}, err
	}
	return fromRecordItem(it), nil
}

func (r *FinancialRecordDynamoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.FinancialRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(recordsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.FinancialRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.FinancialRecord{}, nil
	}
	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.FinancialRecord{}, err
	}
	return fromRecordItem(it), nil
}

func (r *FinancialRecordDynamoRepository) List(ctx context.Context, status entities.FinancialRecordStatus) ([]entities.FinancialRecord, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	items := make([]entities.FinancialRecord, 0)
	pager := dynamodb.NewScanPaginator(r.ddb, in)
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it recordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromRecordItem(it))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SignedAt.After(items[j].SignedAt) })
	return items, nil
}

func (r *FinancialRecordDynamoRepository) UpdateStatus(ctx context.Context, rec entities.FinancialRecord, from entities.FinancialRecordStatus) (entities.FinancialRecord, error) {
	expr := "SET #status = :status, #paid_at = :paid_at, #payment_reference = :ref"
	values := map[string]types.AttributeValue{
		":status":  &types.AttributeValueMemberS{Value: string(rec.Status)},
		":from":    &types.AttributeValueMemberS{Value: string(from)},
		":paid_at": &types.AttributeValueMemberS{Value: formatTimePtr(rec.PaidAt)},
		":ref":     &types.AttributeValueMemberS{Value: rec.PaymentReference},
	}
	names := map[string]string{
		"#status":            "status",
		"#paid_at":           "paid_at",
		"#payment_reference": "payment_reference",
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(rec.ID),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.FinancialRecord{}, nil
		}
		return entities.FinancialRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FinancialRecord{}, nil
	}
	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FinancialRecord{}, err
	}
	return fromRecordItem(it), nil
}

func toRecordItem(r entities.FinancialRecord) recordItem {
	return recordItem{
		ID:               r.ID,
		ProjectID:        r.ProjectID,
		ProjectCity:      r.ProjectCity,
		InstallerID:      r.InstallerID,
		FinalPrice:       r.FinalPrice,
		CommissionRate:   r.CommissionRate,
		CommissionAmount: r.CommissionAmount,
		Status:           string(r.Status),
		SignedAt:         formatTime(r.SignedAt),
		PaidAt:           formatTimePtr(r.PaidAt),
		PaymentReference: r.PaymentReference,
	}
}

func fromRecordItem(it recordItem) entities.FinancialRecord {
	return entities.FinancialRecord{
		ID:               it.ID,
		ProjectID:        it.ProjectID,
		ProjectCity:      it.ProjectCity,
		InstallerID:      it.InstallerID,
		FinalPrice:       it.FinalPrice,
		CommissionRate:   it.CommissionRate,
		CommissionAmount: it.CommissionAmount,
		Status:           entities.FinancialRecordStatus(it.Status),
		SignedAt:         parseTime(it.SignedAt),
		PaidAt:           parseTimePtr(it.PaidAt),
		PaymentReference: it.PaymentReference,
	}
}
