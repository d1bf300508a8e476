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
	defaultNotificationsTableName = "notifications"
	notificationsUserIDIndex      = "user_id-created_at-index"

	// maxQueryLimit keeps the page size well inside int32.
	maxQueryLimit = 1000
)

type notificationItem struct {
	ID            string                 `dynamodbav:"id"`
	UserID        string                 `dynamodbav:"user_id"`
	MessageKey    string                 `dynamodbav:"message_key"`
	MessageParams map[string]interface{} `dynamodbav:"message_params,omitempty"`
	Link          string                 `dynamodbav:"link"`
	IsRead        bool                   `dynamodbav:"is_read"`
	CreatedAt     string                 `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists in-app notifications.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-created_at-index (PK: user_id, SK: created_at)
type NotificationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb DynamoAPI, table string) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entities.Notification, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > maxQueryLimit {
		limit = maxQueryLimit
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	items := make([]entities.Notification, 0)
	pager := dynamodb.NewQueryPaginator(r.ddb, in)
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it notificationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromNotificationItem(it))
			if limit > 0 && len(items) == limit {
				return items, nil
			}
		}
	}
	return items, nil
}

// CountUnread runs a COUNT query over the user index; read items are
// filtered out server side.
func (r *NotificationDynamoRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	in := &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(notificationsUserIDIndex),
		KeyConditionExpression:   aws.String("user_id = :uid"),
		FilterExpression:         aws.String("#is_read = :unread"),
		ExpressionAttributeNames: map[string]string{"#is_read": "is_read"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":    &types.AttributeValueMemberS{Value: userID},
			":unread": &types.AttributeValueMemberBOOL{Value: false},
		},
		Select: types.SelectCount,
	}

	total := 0
	pager := dynamodb.NewQueryPaginator(r.ddb, in)
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if len(out.Item) == 0 {
		return entities.Notification{}, nil
	}
	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_read = :read"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: map[string]string{"#id": "id", "#is_read": "is_read"},
		ReturnValues:             types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) error {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:            n.ID,
		UserID:        n.UserID,
		MessageKey:    n.MessageKey,
		MessageParams: n.MessageParams,
		Link:          n.Link,
		IsRead:        n.IsRead,
		CreatedAt:     formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:            it.ID,
		UserID:        it.UserID,
		MessageKey:    it.MessageKey,
		MessageParams: it.MessageParams,
		Link:          it.Link,
		IsRead:        it.IsRead,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
