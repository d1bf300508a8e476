package repository

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/infrastructure/logger"
	"solar_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName = "projects"

	// DynamoDB caps a transaction at 100 items; the project put and an
	// optional record put come first.
	maxTransactItems = 100
)

type quoteItem struct {
	ID                        string   `dynamodbav:"id"`
	InstallerID               string   `dynamodbav:"installer_id"`
	Price                     float64  `dynamodbav:"price"`
	PriceWithoutBattery       *float64 `dynamodbav:"price_without_battery,omitempty"`
	SystemSizeKW              float64  `dynamodbav:"system_size_kw"`
	PanelModelID              string   `dynamodbav:"panel_model_id"`
	InverterModelID           string   `dynamodbav:"inverter_model_id"`
	BatteryModelID            string   `dynamodbav:"battery_model_id,omitempty"`
	Warranty                  string   `dynamodbav:"warranty,omitempty"`
	EstimatedAnnualProduction float64  `dynamodbav:"estimated_annual_production"`
	Equipment                 float64  `dynamodbav:"cost_equipment"`
	Labor                     float64  `dynamodbav:"cost_labor"`
	Permits                   float64  `dynamodbav:"cost_permits"`
}

type reviewItem struct {
	ID          string `dynamodbav:"id"`
	InstallerID string `dynamodbav:"installer_id"`
	HomeownerID string `dynamodbav:"homeowner_id"`
	Rating      int    `dynamodbav:"rating"`
	Comment     string `dynamodbav:"comment,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type projectItem struct {
	ID           string  `dynamodbav:"id"`
	HomeownerID  string  `dynamodbav:"homeowner_id"`
	Street       string  `dynamodbav:"street"`
	City         string  `dynamodbav:"city"`
	County       string  `dynamodbav:"county"`
	EnergyBill   float64 `dynamodbav:"energy_bill"`
	RoofTypeID   string  `dynamodbav:"roof_type_id"`
	Notes        string  `dynamodbav:"notes,omitempty"`
	WantsBattery bool    `dynamodbav:"wants_battery"`
	PhotoRef     string  `dynamodbav:"photo_ref,omitempty"`

	Status             string      `dynamodbav:"status"`
	Quotes             []quoteItem `dynamodbav:"quotes,omitempty"`
	SharedWith         []string    `dynamodbav:"shared_with,omitempty"`
	WinningInstallerID string      `dynamodbav:"winning_installer_id,omitempty"`
	FinalPrice         float64     `dynamodbav:"final_price,omitempty"`
	SignedAt           string      `dynamodbav:"signed_at,omitempty"`
	ReviewSubmitted    bool        `dynamodbav:"review_submitted"`
	Review             *reviewItem `dynamodbav:"review,omitempty"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists projects with their quotes embedded.
//
// Table requirements:
//   - PK: id (string)
//
// Every write goes through CommitTransition, which bundles the project
// (guarded by its version), the financial record created at signing and the
// notifications of the transition into one TransactWriteItems call.
type ProjectDynamoRepository struct {
	ddb                DynamoAPI
	tableName          string
	recordsTable       string
	notificationsTable string
	log                logger.Logger
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

type ProjectTables struct {
	Projects         string
	FinancialRecords string
	Notifications    string
}

func NewProjectDynamoRepository(ddb DynamoAPI, tables ProjectTables, log logger.Logger) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:                ddb,
		tableName:          tableName(tables.Projects, "PROJECTS_TABLE", defaultProjectsTableName),
		recordsTable:       tableName(tables.FinancialRecords, "FINANCIAL_RECORDS_TABLE", defaultRecordsTableName),
		notificationsTable: tableName(tables.Notifications, "NOTIFICATIONS_TABLE", defaultNotificationsTableName),
		log:                log.Named("project_repository"),
	}
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

// List scans with the status, county and homeowner filters pushed down.
// The installer filter looks inside embedded quotes and is applied here.
func (r *ProjectDynamoRepository) List(ctx context.Context, f interfaces.ProjectFilter) ([]entities.Project, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr, names, values := projectFilterExpression(f); expr != "" {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	items := make([]entities.Project, 0)
	pager := dynamodb.NewScanPaginator(r.ddb, in)
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it projectItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p := fromProjectItem(it)
			if f.InstallerID != "" && !involvesInstaller(p, f.InstallerID) {
				continue
			}
			items = append(items, p)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (r *ProjectDynamoRepository) CommitTransition(ctx context.Context, b interfaces.TransitionBundle) (entities.Project, error) {
	next := b.Project.Clone()
	next.Version = b.ExpectedVersion + 1

	av, err := attributevalue.MarshalMap(toProjectItem(next))
	if err != nil {
		return entities.Project{}, err
	}
	put := &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
	if b.ExpectedVersion == 0 {
		put.ConditionExpression = aws.String("attribute_not_exists(#id)")
	} else {
		put.ConditionExpression = aws.String("attribute_exists(#id) AND #version = :expected")
		put.ExpressionAttributeNames["#version"] = "version"
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(b.ExpectedVersion, 10)},
		}
	}
	writes := []types.TransactWriteItem{{Put: put}}

	if b.Record != nil {
		rav, err := attributevalue.MarshalMap(toRecordItem(*b.Record))
		if err != nil {
			return entities.Project{}, err
		}
		writes = append(writes, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.recordsTable),
			Item:                     rav,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
	}

	inline := b.Notifications
	var overflow []entities.Notification
	if room := maxTransactItems - len(writes); len(inline) > room {
		inline, overflow = b.Notifications[:room], b.Notifications[room:]
	}
	for _, n := range inline {
		nav, err := attributevalue.MarshalMap(toNotificationItem(n))
		if err != nil {
			return entities.Project{}, err
		}
		writes = append(writes, types.TransactWriteItem{Put: &types.Put{
			TableName: aws.String(r.notificationsTable),
			Item:      nav,
		}})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		if isTransactionConflict(err) {
			return entities.Project{}, interfaces.ErrVersionConflict
		}
		return entities.Project{}, fmt.Errorf("commit project %s: %w", next.ID, err)
	}

	// The transition is committed; notifications past the transaction limit
	// are written one by one and only logged on failure.
	for _, n := range overflow {
		nav, err := attributevalue.MarshalMap(toNotificationItem(n))
		if err == nil {
			_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
				TableName: aws.String(r.notificationsTable),
				Item:      nav,
			})
		}
		if err != nil {
			r.log.WithError(err).Warn("overflow notification not stored", map[string]interface{}{
				"project_id":      next.ID,
				"notification_id": n.ID,
				"user_id":         n.UserID,
			})
		}
	}
	return next, nil
}

func projectFilterExpression(f interfaces.ProjectFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var clauses []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if len(f.Statuses) > 0 {
		placeholders := make([]string, 0, len(f.Statuses))
		for i, s := range f.Statuses {
			key := fmt.Sprintf(":status%d", i)
			placeholders = append(placeholders, key)
			values[key] = &types.AttributeValueMemberS{Value: string(s)}
		}
		names["#status"] = "status"
		clauses = append(clauses, "#status IN ("+strings.Join(placeholders, ", ")+")")
	}
	if f.County != "" {
		names["#county"] = "county"
		values[":county"] = &types.AttributeValueMemberS{Value: f.County}
		clauses = append(clauses, "#county = :county")
	}
	if f.HomeownerID != "" {
		names["#homeowner_id"] = "homeowner_id"
		values[":homeowner_id"] = &types.AttributeValueMemberS{Value: f.HomeownerID}
		clauses = append(clauses, "#homeowner_id = :homeowner_id")
	}
	if len(clauses) == 0 {
		return "", nil, nil
	}
	return strings.Join(clauses, " AND "), names, values
}

func involvesInstaller(p entities.Project, installerID string) bool {
	if p.WinningInstallerID == installerID || p.IsSharedWith(installerID) {
		return true
	}
	return slices.Contains(p.QuoteInstallerIDs(), installerID)
}

func toProjectItem(p entities.Project) projectItem {
	it := projectItem{
		ID:                 p.ID,
		HomeownerID:        p.HomeownerID,
		Street:             p.Address.Street,
		City:               p.Address.City,
		County:             p.Address.County,
		EnergyBill:         p.EnergyBill,
		RoofTypeID:         p.RoofTypeID,
		Notes:              p.Notes,
		WantsBattery:       p.WantsBattery,
		PhotoRef:           p.PhotoRef,
		Status:             string(p.Status),
		SharedWith:         p.SharedWithInstallerIDs,
		WinningInstallerID: p.WinningInstallerID,
		FinalPrice:         p.FinalPrice,
		SignedAt:           formatTimePtr(p.SignedAt),
		ReviewSubmitted:    p.ReviewSubmitted,
		Version:            p.Version,
		CreatedAt:          formatTime(p.CreatedAt),
		UpdatedAt:          formatTime(p.UpdatedAt),
	}
	for _, q := range p.Quotes {
		it.Quotes = append(it.Quotes, quoteItem{
			ID:                        q.ID,
			InstallerID:               q.InstallerID,
			Price:                     q.Price,
			PriceWithoutBattery:       q.PriceWithoutBattery,
			SystemSizeKW:              q.SystemSizeKW,
			PanelModelID:              q.PanelModelID,
			InverterModelID:           q.InverterModelID,
			BatteryModelID:            q.BatteryModelID,
			Warranty:                  q.Warranty,
			EstimatedAnnualProduction: q.EstimatedAnnualProduction,
			Equipment:                 q.CostBreakdown.Equipment,
			Labor:                     q.CostBreakdown.Labor,
			Permits:                   q.CostBreakdown.Permits,
		})
	}
	if p.Review != nil {
		it.Review = &reviewItem{
			ID:          p.Review.ID,
			InstallerID: p.Review.InstallerID,
			HomeownerID: p.Review.HomeownerID,
			Rating:      p.Review.Rating,
			Comment:     p.Review.Comment,
			CreatedAt:   formatTime(p.Review.CreatedAt),
		}
	}
	return it
}

func fromProjectItem(it projectItem) entities.Project {
	p := entities.Project{
		ID:                     it.ID,
		HomeownerID:            it.HomeownerID,
		Address:                entities.Address{Street: it.Street, City: it.City, County: it.County},
		EnergyBill:             it.EnergyBill,
		RoofTypeID:             it.RoofTypeID,
		Notes:                  it.Notes,
		WantsBattery:           it.WantsBattery,
		PhotoRef:               it.PhotoRef,
		Status:                 entities.ProjectStatus(it.Status),
		SharedWithInstallerIDs: it.SharedWith,
		WinningInstallerID:     it.WinningInstallerID,
		FinalPrice:             it.FinalPrice,
		SignedAt:               parseTimePtr(it.SignedAt),
		ReviewSubmitted:        it.ReviewSubmitted,
		Version:                it.Version,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
	}
	for _, q := range it.Quotes {
		p.Quotes = append(p.Quotes, entities.Quote{
			ID:                        q.ID,
			InstallerID:               q.InstallerID,
			Price:                     q.Price,
			PriceWithoutBattery:       q.PriceWithoutBattery,
			SystemSizeKW:              q.SystemSizeKW,
			PanelModelID:              q.PanelModelID,
			InverterModelID:           q.InverterModelID,
			BatteryModelID:            q.BatteryModelID,
			Warranty:                  q.Warranty,
			EstimatedAnnualProduction: q.EstimatedAnnualProduction,
			CostBreakdown:             entities.CostBreakdown{Equipment: q.Equipment, Labor: q.Labor, Permits: q.Permits},
		})
	}
	if it.Review != nil {
		p.Review = &entities.Review{
			ID:          it.Review.ID,
			ProjectID:   it.ID,
			InstallerID: it.Review.InstallerID,
			HomeownerID: it.Review.HomeownerID,
			Rating:      it.Review.Rating,
			Comment:     it.Review.Comment,
			CreatedAt:   parseTime(it.Review.CreatedAt),
		}
	}
	return p
}
