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
	defaultEstimatesTableName = "estimates"
	estimatesProjectIDIndex   = "project_id-index"
)

type estimateLineItem struct {
	ID          string `dynamodbav:"id"`
	ComponentID string `dynamodbav:"component_id"`
	TierID      string `dynamodbav:"tier_id"`
	Quantity    string `dynamodbav:"quantity"`
	Unit        string `dynamodbav:"unit,omitempty"`
	TotalCost   string `dynamodbav:"total_cost"`
}

type estimateAssemblyLineItem struct {
	ID                string `dynamodbav:"id"`
	AssemblyID        string `dynamodbav:"assembly_id"`
	Quantity          int    `dynamodbav:"quantity"`
	TotalMaterialCost string `dynamodbav:"total_material_cost"`
	TotalLaborCost    string `dynamodbav:"total_labor_cost"`
	TotalLaborHours   string `dynamodbav:"total_labor_hours"`
}

type estimateItem struct {
	ID            string                     `dynamodbav:"id"`
	ProjectID     string                     `dynamodbav:"project_id,omitempty"`
	Name          string                     `dynamodbav:"name"`
	Kind          string                     `dynamodbav:"kind"`
	Lines         []estimateLineItem         `dynamodbav:"lines,omitempty"`
	AssemblyLines []estimateAssemblyLineItem `dynamodbav:"assembly_lines,omitempty"`
	TotalCost     string                     `dynamodbav:"total_cost"`
	CreatedAt     string                     `dynamodbav:"created_at"`
	UpdatedAt     string                     `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// Lines are embedded in the estimate item. Save replaces lines and the
// cached total in one write, and Delete removes lines together with the
// estimate.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalEstimates(out.Items)
}

func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalEstimates(out.Items)
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func unmarshalEstimates(raw []map[string]types.AttributeValue) ([]entities.Estimate, error) {
	items := make([]entities.Estimate, 0, len(raw))
	for _, m := range raw {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEstimateItem(it))
	}
	return items, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	var lines []estimateLineItem
	for _, l := range e.Lines {
		lines = append(lines, estimateLineItem{
			ID:          l.ID,
			ComponentID: l.ComponentID,
			TierID:      l.TierID,
			Quantity:    floatToString(l.Quantity),
			Unit:        l.Unit,
			TotalCost:   floatToString(l.TotalCost),
		})
	}
	var assemblyLines []estimateAssemblyLineItem
	for _, l := range e.AssemblyLines {
		assemblyLines = append(assemblyLines, estimateAssemblyLineItem{
			ID:                l.ID,
			AssemblyID:        l.AssemblyID,
			Quantity:          l.Quantity,
			TotalMaterialCost: floatToString(l.TotalMaterialCost),
			TotalLaborCost:    floatToString(l.TotalLaborCost),
			TotalLaborHours:   floatToString(l.TotalLaborHours),
		})
	}
	return estimateItem{
		ID:            e.ID,
		ProjectID:     e.ProjectID,
		Name:          e.Name,
		Kind:          string(e.Kind),
		Lines:         lines,
		AssemblyLines: assemblyLines,
		TotalCost:     floatToString(e.TotalCost),
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	totalCost := stringToFloat(it.TotalCost)

	var lines []entities.EstimateLine
	for _, l := range it.Lines {
		lines = append(lines, entities.EstimateLine{
			ID:          l.ID,
			ComponentID: l.ComponentID,
			TierID:      l.TierID,
			Quantity:    stringToFloat(l.Quantity),
			Unit:        l.Unit,
			TotalCost:   stringToFloat(l.TotalCost),
		})
	}
	var assemblyLines []entities.EstimateAssemblyLine
	for _, l := range it.AssemblyLines {
		assemblyLines = append(assemblyLines, entities.EstimateAssemblyLine{
			ID:                l.ID,
			AssemblyID:        l.AssemblyID,
			Quantity:          l.Quantity,
			TotalMaterialCost: stringToFloat(l.TotalMaterialCost),
			TotalLaborCost:    stringToFloat(l.TotalLaborCost),
			TotalLaborHours:   stringToFloat(l.TotalLaborHours),
		})
	}
	return entities.Estimate{
		ID:            it.ID,
		ProjectID:     it.ProjectID,
		Name:          it.Name,
		Kind:          entities.EstimateKind(it.Kind),
		Lines:         lines,
		AssemblyLines: assemblyLines,
		TotalCost:     totalCost,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
