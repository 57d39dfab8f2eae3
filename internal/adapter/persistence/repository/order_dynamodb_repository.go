package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cardpay/internal/domain/entities"
	"cardpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderLineItem struct {
	Name     string `dynamodbav:"name"`
	Quantity int    `dynamodbav:"quantity"`
	Price    string `dynamodbav:"price"`
}

type orderNoteItem struct {
	Text      string `dynamodbav:"text"`
	CreatedAt string `dynamodbav:"created_at"`
}

type orderItem struct {
	ID           string            `dynamodbav:"id"`
	Number       string            `dynamodbav:"number"`
	UserID       string            `dynamodbav:"user_id,omitempty"`
	Total        string            `dynamodbav:"total"`
	Currency     string            `dynamodbav:"currency"`
	Items        []orderLineItem   `dynamodbav:"items"`
	BillingName  string            `dynamodbav:"billing_name,omitempty"`
	BillingEmail string            `dynamodbav:"billing_email,omitempty"`
	Status       string            `dynamodbav:"status"`
	Meta         map[string]string `dynamodbav:"meta"`
	Notes        []orderNoteItem   `dynamodbav:"notes"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists the order ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderLedger = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) MarkComplete(ctx context.Context, id string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.OrderStatusCompleted)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) AddNote(ctx context.Context, id string, text string) error {
	note, err := attributevalue.MarshalMap(orderNoteItem{
		Text:      text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #notes = list_append(if_not_exists(#notes, :empty), :note), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":note":       &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: note}}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#notes":      "notes",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	return err
}

func (r *OrderDynamoRepository) SetMeta(ctx context.Context, id string, key, value string) error {
	_, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #meta.#k = :v, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":v":          &types.AttributeValueMemberS{Value: value},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#meta":       "meta",
			"#k":          key,
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	return err
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	items := make([]orderLineItem, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, orderLineItem{
			Name:     li.Name,
			Quantity: li.Quantity,
			Price:    floatToString(li.Price),
		})
	}
	notes := make([]orderNoteItem, 0, len(o.Notes))
	for _, n := range o.Notes {
		notes = append(notes, orderNoteItem{
			Text:      n.Text,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	meta := o.Meta
	if meta == nil {
		// SetMeta writes into the meta map; it must exist from day one.
		meta = map[string]string{}
	}
	return orderItem{
		ID:           o.ID,
		Number:       o.Number,
		UserID:       o.UserID,
		Total:        floatToString(o.Total),
		Currency:     o.Currency,
		Items:        items,
		BillingName:  o.BillingName,
		BillingEmail: o.BillingEmail,
		Status:       string(o.Status),
		Meta:         meta,
		Notes:        notes,
		CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.Total, 64)

	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		price, _ := strconv.ParseFloat(li.Price, 64)
		items = append(items, entities.OrderItem{Name: li.Name, Quantity: li.Quantity, Price: price})
	}
	notes := make([]entities.OrderNote, 0, len(it.Notes))
	for _, n := range it.Notes {
		at, _ := time.Parse(time.RFC3339Nano, n.CreatedAt)
		notes = append(notes, entities.OrderNote{Text: n.Text, CreatedAt: at})
	}

	return entities.Order{
		ID:           it.ID,
		Number:       it.Number,
		UserID:       it.UserID,
		Total:        total,
		Currency:     it.Currency,
		Items:        items,
		BillingName:  it.BillingName,
		BillingEmail: it.BillingEmail,
		Status:       entities.OrderStatus(it.Status),
		Meta:         it.Meta,
		Notes:        notes,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
