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

const defaultAssembliesTableName = "assemblies"

type assemblyLineItem struct {
	ComponentID string `dynamodbav:"component_id"`
	TierID      string `dynamodbav:"tier_id"`
	Quantity    string `dynamodbav:"quantity"`
	Unit        string `dynamodbav:"unit,omitempty"`
	Note        string `dynamodbav:"note,omitempty"`
}

type assemblyItem struct {
	ID                string             `dynamodbav:"id"`
	Name              string             `dynamodbav:"name"`
	Description       string             `dynamodbav:"description,omitempty"`
	Lines             []assemblyLineItem `dynamodbav:"lines"`
	TotalMaterialCost string             `dynamodbav:"total_material_cost"`
	TotalLaborHours   string             `dynamodbav:"total_labor_hours"`
	CreatedAt         string             `dynamodbav:"created_at"`
	UpdatedAt         string             `dynamodbav:"updated_at"`
}

// AssemblyDynamoRepository persists Assembly entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Lines are embedded in the item, so an assembly is always read and written
// whole. Save replaces the stored item in a single put.

type AssemblyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssemblyRepository = (*AssemblyDynamoRepository)(nil)

func NewAssemblyDynamoRepository(ddb *dynamodb.Client) *AssemblyDynamoRepository {
	return &AssemblyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSEMBLIES_TABLE", defaultAssembliesTableName),
	}
}

func (r *AssemblyDynamoRepository) Create(ctx context.Context, a entities.Assembly) (entities.Assembly, error) {
	it := toAssemblyItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Assembly{}, err
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
		return entities.Assembly{}, err
	}
	return a, nil
}

func (r *AssemblyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Assembly, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Assembly{}, err
	}
	if len(out.Item) == 0 {
		return entities.Assembly{}, nil
	}

	var it assemblyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Assembly{}, err
	}
	return fromAssemblyItem(it), nil
}

func (r *AssemblyDynamoRepository) List(ctx context.Context) ([]entities.Assembly, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Assembly, 0, len(out.Items))
	for _, raw := range out.Items {
		var it assemblyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAssemblyItem(it))
	}
	return items, nil
}

func (r *AssemblyDynamoRepository) Save(ctx context.Context, a entities.Assembly) (entities.Assembly, error) {
	it := toAssemblyItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Assembly{}, err
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
			return entities.Assembly{}, nil
		}
		return entities.Assembly{}, err
	}
	return a, nil
}

func toAssemblyItem(a entities.Assembly) assemblyItem {
	lines := make([]assemblyLineItem, 0, len(a.Lines))
	for _, l := range a.Lines {
		lines = append(lines, assemblyLineItem{
			ComponentID: l.ComponentID,
			TierID:      l.TierID,
			Quantity:    floatToString(l.Quantity),
			Unit:        l.Unit,
			Note:        l.Note,
		})
	}
	return assemblyItem{
		ID:                a.ID,
		Name:              a.Name,
		Description:       a.Description,
		Lines:             lines,
		TotalMaterialCost: floatToString(a.TotalMaterialCost),
		TotalLaborHours:   floatToString(a.TotalLaborHours),
		CreatedAt:         a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAssemblyItem(it assemblyItem) entities.Assembly {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	lines := make([]entities.AssemblyComponentLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.AssemblyComponentLine{
			ComponentID: l.ComponentID,
			TierID:      l.TierID,
			Quantity:    stringToFloat(l.Quantity),
			Unit:        l.Unit,
			Note:        l.Note,
		})
	}
	return entities.Assembly{
		ID:                it.ID,
		Name:              it.Name,
		Description:       it.Description,
		Lines:             lines,
		TotalMaterialCost: stringToFloat(it.TotalMaterialCost),
		TotalLaborHours:   stringToFloat(it.TotalLaborHours),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
