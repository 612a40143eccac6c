package repository

import (
	"context"
	"errors"
	"time"

	"hyperion_estimating/internal/domain/entities"
	"hyperion_estimating/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName     = "projects"
	defaultActualCostsTableName  = "actual_costs"
	defaultChangeOrdersTableName = "change_orders"
	actualCostsProjectIDIndex    = "project_id-index"
)

type projectItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Region    string `dynamodbav:"region,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type actualCostItem struct {
	ID             string `dynamodbav:"id"`
	ProjectID      string `dynamodbav:"project_id"`
	ComponentID    string `dynamodbav:"component_id,omitempty"`
	EstimateLineID string `dynamodbav:"estimate_line_id,omitempty"`
	Amount         string `dynamodbav:"amount"`
	Category       string `dynamodbav:"category,omitempty"`
	IncurredAt     string `dynamodbav:"incurred_at"`
	CreatedAt      string `dynamodbav:"created_at"`
}

type changeOrderItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	ApprovedAt  string `dynamodbav:"approved_at,omitempty"`
}

// ProjectDynamoRepository persists projects and their reporting satellites
// (actual costs, change orders) in DynamoDB.
//
// Table requirements:
//   - projects: PK id (string)
//   - actual_costs: PK id (string), GSI project_id-index (PK: project_id)
//   - change_orders: PK id (string), GSI project_id-index (PK: project_id)

type ProjectDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	actualsTableName string
	ordersTableName  string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
		actualsTableName: getenvDefault("ACTUAL_COSTS_TABLE", defaultActualCostsTableName),
		ordersTableName:  getenvDefault("CHANGE_ORDERS_TABLE", defaultChangeOrdersTableName),
	}
}

func (r *ProjectDynamoRepository) CreateProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetProjectByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
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

func (r *ProjectDynamoRepository) ListProjects(ctx context.Context) ([]entities.Project, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Project, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProjectItem(it))
	}
	return items, nil
}

func (r *ProjectDynamoRepository) CreateActualCost(ctx context.Context, ac entities.ActualCost) (entities.ActualCost, error) {
	it := toActualCostItem(ac)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ActualCost{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.actualsTableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ActualCost{}, err
	}
	return ac, nil
}

func (r *ProjectDynamoRepository) ListActualCostsByProjectID(ctx context.Context, projectID string) ([]entities.ActualCost, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.actualsTableName),
		IndexName:              aws.String(actualCostsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalActualCosts(out.Items)
}

func (r *ProjectDynamoRepository) ListActualCosts(ctx context.Context) ([]entities.ActualCost, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.actualsTableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalActualCosts(out.Items)
}

func (r *ProjectDynamoRepository) CreateChangeOrder(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error) {
	it := toChangeOrderItem(co)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ChangeOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.ordersTableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	return co, nil
}

func (r *ProjectDynamoRepository) GetChangeOrderByID(ctx context.Context, id string) (entities.ChangeOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.ordersTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ChangeOrder{}, nil
	}

	var it changeOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ChangeOrder{}, err
	}
	return fromChangeOrderItem(it), nil
}

func (r *ProjectDynamoRepository) UpdateChangeOrderStatus(ctx context.Context, id string, status entities.ChangeOrderStatus) (entities.ChangeOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status"
	vals := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	names := map[string]string{
		"#status": "status",
	}
	if status == entities.ChangeOrderStatusApproved {
		expr += ", #approved_at = :approved_at"
		vals[":approved_at"] = &types.AttributeValueMemberS{Value: now}
		names["#approved_at"] = "approved_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.ordersTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ChangeOrder{}, nil
		}
		return entities.ChangeOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ChangeOrder{}, nil
	}

	var it changeOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ChangeOrder{}, err
	}
	return fromChangeOrderItem(it), nil
}

func (r *ProjectDynamoRepository) ListChangeOrders(ctx context.Context) ([]entities.ChangeOrder, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.ordersTableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ChangeOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it changeOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromChangeOrderItem(it))
	}
	return items, nil
}

func unmarshalActualCosts(raw []map[string]types.AttributeValue) ([]entities.ActualCost, error) {
	items := make([]entities.ActualCost, 0, len(raw))
	for _, m := range raw {
		var it actualCostItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromActualCostItem(it))
	}
	return items, nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:        p.ID,
		Name:      p.Name,
		Region:    p.Region,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Project{
		ID:        it.ID,
		Name:      it.Name,
		Region:    it.Region,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func toActualCostItem(ac entities.ActualCost) actualCostItem {
	return actualCostItem{
		ID:             ac.ID,
		ProjectID:      ac.ProjectID,
		ComponentID:    ac.ComponentID,
		EstimateLineID: ac.EstimateLineID,
		Amount:         floatToString(ac.Amount),
		Category:       string(ac.Category),
		IncurredAt:     ac.IncurredAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:      ac.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromActualCostItem(it actualCostItem) entities.ActualCost {
	incurredAt, _ := time.Parse(time.RFC3339Nano, it.IncurredAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ActualCost{
		ID:             it.ID,
		ProjectID:      it.ProjectID,
		ComponentID:    it.ComponentID,
		EstimateLineID: it.EstimateLineID,
		Amount:         stringToFloat(it.Amount),
		Category:       entities.Category(it.Category),
		IncurredAt:     incurredAt,
		CreatedAt:      createdAt,
	}
}

func toChangeOrderItem(co entities.ChangeOrder) changeOrderItem {
	it := changeOrderItem{
		ID:          co.ID,
		ProjectID:   co.ProjectID,
		Description: co.Description,
		Amount:      floatToString(co.Amount),
		Status:      string(co.Status),
		CreatedAt:   co.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if co.ApprovedAt != nil {
		it.ApprovedAt = co.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromChangeOrderItem(it changeOrderItem) entities.ChangeOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	co := entities.ChangeOrder{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		Description: it.Description,
		Amount:      stringToFloat(it.Amount),
		Status:      entities.ChangeOrderStatus(it.Status),
		CreatedAt:   createdAt,
	}
	if it.ApprovedAt != "" {
		approvedAt, err := time.Parse(time.RFC3339Nano, it.ApprovedAt)
		if err == nil {
			co.ApprovedAt = &approvedAt
		}
	}
	return co
}
