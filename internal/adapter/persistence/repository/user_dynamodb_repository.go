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
	defaultUsersTableName = "users"
	usersRoleIndex        = "role-index"
)

type userItem struct {
	ID                 string   `dynamodbav:"id"`
	Name               string   `dynamodbav:"name"`
	Role               string   `dynamodbav:"role"`
	Email              string   `dynamodbav:"email,omitempty"`
	Phone              string   `dynamodbav:"phone,omitempty"`
	Status             string   `dynamodbav:"status"`
	CreatedAt          string   `dynamodbav:"created_at"`
	ServiceCounties    []string `dynamodbav:"service_counties,omitempty"`
	RegistrationNumber string   `dynamodbav:"registration_number,omitempty"`
	CanLoginAs         bool     `dynamodbav:"can_login_as,omitempty"`
	VisibleTabs        []string `dynamodbav:"visible_tabs,omitempty"`
}

// UserDynamoRepository is the DynamoDB-backed user directory.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: role-index (PK: role)
type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserDirectory = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, table string) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) ListByRole(ctx context.Context, role entities.Role) ([]entities.User, error) {
	return r.queryRole(ctx, role, "")
}

// ListInstallersByCounty queries the installer partition of role-index and
// filters on the county list.
func (r *UserDynamoRepository) ListInstallersByCounty(ctx context.Context, county string) ([]entities.User, error) {
	return r.queryRole(ctx, entities.RoleInstaller, county)
}

func (r *UserDynamoRepository) Upsert(ctx context.Context, u entities.User) error {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *UserDynamoRepository) queryRole(ctx context.Context, role entities.Role, county string) ([]entities.User, error) {
	in := &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(usersRoleIndex),
		KeyConditionExpression:   aws.String("#role = :role"),
		ExpressionAttributeNames: map[string]string{"#role": "role"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: string(role)},
		},
	}
	if county != "" {
		in.FilterExpression = aws.String("contains(#counties, :county)")
		in.ExpressionAttributeNames["#counties"] = "service_counties"
		in.ExpressionAttributeValues[":county"] = &types.AttributeValueMemberS{Value: county}
	}

	users := make([]entities.User, 0)
	pager := dynamodb.NewQueryPaginator(r.ddb, in)
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it userItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			users = append(users, fromUserItem(it))
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func toUserItem(u entities.User) userItem {
	it := userItem{
		ID:                 u.ID,
		Name:               u.Name,
		Role:               string(u.Role),
		Email:              u.Contact.Email,
		Phone:              u.Contact.Phone,
		Status:             string(u.Status),
		CreatedAt:          formatTime(u.CreatedAt),
		ServiceCounties:    u.ServiceCounties,
		RegistrationNumber: u.RegistrationNumber,
	}
	if u.Permissions != nil {
		it.CanLoginAs = u.Permissions.CanLoginAs
		it.VisibleTabs = u.Permissions.VisibleTabs
	}
	return it
}

func fromUserItem(it userItem) entities.User {
	u := entities.User{
		ID:                 it.ID,
		Name:               it.Name,
		Role:               entities.Role(it.Role),
		Contact:            entities.ContactInfo{Email: it.Email, Phone: it.Phone},
		Status:             entities.UserStatus(it.Status),
		CreatedAt:          parseTime(it.CreatedAt),
		ServiceCounties:    it.ServiceCounties,
		RegistrationNumber: it.RegistrationNumber,
	}
	if u.Role == entities.RoleAdmin {
		u.Permissions = &entities.AdminPermissions{CanLoginAs: it.CanLoginAs, VisibleTabs: it.VisibleTabs}
	}
	return u
}
