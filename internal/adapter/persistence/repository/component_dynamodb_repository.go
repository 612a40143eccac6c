package repository

import (
	"context"
	"time"

	"hyperion_estimating/internal/domain/entities"
	"hyperion_estimating/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultComponentsTableName = "components"
	defaultTiersTableName      = "quality_tiers"
	tiersComponentIDIndex      = "component_id-index"
)

type componentItem struct {
	ID         string            `dynamodbav:"id"`
	Name       string            `dynamodbav:"name"`
	Category   string            `dynamodbav:"category,omitempty"`
	Unit       string            `dynamodbav:"unit"`
	LaborHours string            `dynamodbav:"labor_hours"`
	Metadata   map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt  string            `dynamodbav:"created_at"`
	UpdatedAt  string            `dynamodbav:"updated_at"`
}

type qualityTierItem struct {
	ID          string `dynamodbav:"id"`
	ComponentID string `dynamodbav:"component_id"`
	Name        string `dynamodbav:"name"`
	UnitCost    string `dynamodbav:"unit_cost"`
	Description string `dynamodbav:"description,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ComponentDynamoRepository persists catalog components and their quality
// tiers in DynamoDB.
//
// Table requirements:
//   - components: PK id (string)
//   - quality_tiers: PK id (string), GSI component_id-index (PK: component_id)

type ComponentDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	tiersTableName string
}

var _ interfaces.IComponentRepository = (*ComponentDynamoRepository)(nil)

func NewComponentDynamoRepository(ddb *dynamodb.Client) *ComponentDynamoRepository {
	return &ComponentDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("COMPONENTS_TABLE", defaultComponentsTableName),
		tiersTableName: getenvDefault("QUALITY_TIERS_TABLE", defaultTiersTableName),
	}
}

func (r *ComponentDynamoRepository) CreateComponent(ctx context.Context, c entities.Component) (entities.Component, error) {
	it := toComponentItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Component{}, err
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
		return entities.Component{}, err
	}
	return c, nil
}

func (r *ComponentDynamoRepository) GetComponentByID(ctx context.Context, id string) (entities.Component, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Component{}, err
	}
	if len(out.Item) == 0 {
		return entities.Component{}, nil
	}

	var it componentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Component{}, err
	}
	return fromComponentItem(it), nil
}

func (r *ComponentDynamoRepository) ListComponents(ctx context.Context) ([]entities.Component, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Component, 0, len(out.Items))
	for _, raw := range out.Items {
		var it componentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromComponentItem(it))
	}
	return items, nil
}

func (r *ComponentDynamoRepository) CreateTier(ctx context.Context, t entities.QualityTier) (entities.QualityTier, error) {
	it := toQualityTierItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QualityTier{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tiersTableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QualityTier{}, err
	}
	return t, nil
}

func (r *ComponentDynamoRepository) ListTiersByComponentID(ctx context.Context, componentID string) ([]entities.QualityTier, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tiersTableName),
		IndexName:              aws.String(tiersComponentIDIndex),
		KeyConditionExpression: aws.String("component_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: componentID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalTiers(out.Items)
}

func (r *ComponentDynamoRepository) ListTiers(ctx context.Context) ([]entities.QualityTier, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tiersTableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalTiers(out.Items)
}

func unmarshalTiers(raw []map[string]types.AttributeValue) ([]entities.QualityTier, error) {
	items := make([]entities.QualityTier, 0, len(raw))
	for _, m := range raw {
		var it qualityTierItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQualityTierItem(it))
	}
	return items, nil
}

func toComponentItem(c entities.Component) componentItem {
	return componentItem{
		ID:         c.ID,
		Name:       c.Name,
		Category:   string(c.Category),
		Unit:       c.Unit,
		LaborHours: floatToString(c.LaborHours),
		Metadata:   c.Metadata,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromComponentItem(it componentItem) entities.Component {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Component{
		ID:         it.ID,
		Name:       it.Name,
		Category:   entities.Category(it.Category),
		Unit:       it.Unit,
		LaborHours: stringToFloat(it.LaborHours),
		Metadata:   it.Metadata,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

func toQualityTierItem(t entities.QualityTier) qualityTierItem {
	return qualityTierItem{
		ID:          t.ID,
		ComponentID: t.ComponentID,
		Name:        t.Name,
		UnitCost:    floatToString(t.UnitCost),
		Description: t.Description,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQualityTierItem(it qualityTierItem) entities.QualityTier {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.QualityTier{
		ID:          it.ID,
		ComponentID: it.ComponentID,
		Name:        it.Name,
		UnitCost:    stringToFloat(it.UnitCost),
		Description: it.Description,
		CreatedAt:   createdAt,
	}
}
