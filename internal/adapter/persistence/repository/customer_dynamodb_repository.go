package repository

import (
	"context"

	"cardpay/internal/domain/entities"
	"cardpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "customers"

type customerCardItem struct {
	ID       string `dynamodbav:"id"`
	Brand    string `dynamodbav:"brand,omitempty"`
	Last4    string `dynamodbav:"last4,omitempty"`
	ExpMonth int64  `dynamodbav:"exp_month,omitempty"`
	ExpYear  int64  `dynamodbav:"exp_year,omitempty"`
}

type customerItem struct {
	UserID        string             `dynamodbav:"user_id"`
	CustomerID    string             `dynamodbav:"customer_id"`
	Cards         []customerCardItem `dynamodbav:"cards"`
	DefaultCardID string             `dynamodbav:"default_card_id,omitempty"`
}

// CustomerDynamoRepository keeps the mapping from platform users to
// processor customers, alongside the saved cards known for each one.
//
// Table requirements:
//   - PK: user_id (string)

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerStore = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Get(ctx context.Context, userID string) (entities.CustomerRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CustomerRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.CustomerRecord{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CustomerRecord{}, err
	}
	return fromCustomerItem(it), nil
}

// Put replaces the stored record wholesale. Concurrent checkouts for the same
// user resolve last-write-wins.
func (r *CustomerDynamoRepository) Put(ctx context.Context, userID string, rec entities.CustomerRecord) error {
	av, err := attributevalue.MarshalMap(toCustomerItem(userID, rec))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toCustomerItem(userID string, rec entities.CustomerRecord) customerItem {
	cards := make([]customerCardItem, 0, len(rec.Cards))
	for _, c := range rec.Cards {
		cards = append(cards, customerCardItem{
			ID:       c.ID,
			Brand:    c.Brand,
			Last4:    c.Last4,
			ExpMonth: c.ExpMonth,
			ExpYear:  c.ExpYear,
		})
	}
	return customerItem{
		UserID:        userID,
		CustomerID:    rec.CustomerID,
		Cards:         cards,
		DefaultCardID: rec.DefaultCardID,
	}
}

func fromCustomerItem(it customerItem) entities.CustomerRecord {
	cards := make([]entities.CardInfo, 0, len(it.Cards))
	for _, c := range it.Cards {
		cards = append(cards, entities.CardInfo{
			ID:       c.ID,
			Brand:    c.Brand,
			Last4:    c.Last4,
			ExpMonth: c.ExpMonth,
			ExpYear:  c.ExpYear,
		})
	}
	return entities.CustomerRecord{
		CustomerID:    it.CustomerID,
		Cards:         cards,
		DefaultCardID: it.DefaultCardID,
	}
}
