package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSnapshotsTableName = "abelv_snapshots"

	collectionServiceOrders = "service_orders"
	collectionLaborHistory  = "hh_historicos"
)

// ISnapshotStore round-trips a whole persisted collection as one opaque JSON
// payload. Each collection is read once at load time and rewritten in full
// after every mutation; there are no partial writes.

type ISnapshotStore interface {
	Load(ctx context.Context, collection string) (payload []byte, found bool, err error)
	Save(ctx context.Context, collection string, payload []byte) error
}

type snapshotItem struct {
	Collection string `dynamodbav:"collection"`
	Payload    string `dynamodbav:"payload"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// DynamoSnapshotStore keeps one item per collection in a single DynamoDB
// table.
//
// Table requirements:
//   - PK: collection (string)

type DynamoSnapshotStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ ISnapshotStore = (*DynamoSnapshotStore)(nil)

func NewDynamoSnapshotStore(ddb *dynamodb.Client) *DynamoSnapshotStore {
	return &DynamoSnapshotStore{
		ddb:       ddb,
		tableName: getenvDefault("SNAPSHOTS_TABLE", defaultSnapshotsTableName),
	}
}

func (s *DynamoSnapshotStore) Load(ctx context.Context, collection string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"collection": &types.AttributeValueMemberS{Value: collection},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return []byte(it.Payload), true, nil
}

func (s *DynamoSnapshotStore) Save(ctx context.Context, collection string, payload []byte) error {
	it := snapshotItem{
		Collection: collection,
		Payload:    string(payload),
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
