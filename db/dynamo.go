package db

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/pitchscore/model"
	"github.com/pkg/errors"
)

// DynamoStore keeps one item per score: PK (id), Document (the analysis JSON)
// and CreatedAt (unix seconds).
type DynamoStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
	now    func() time.Time
}

func NewDynamoStore(client dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table, now: time.Now}
}

// NewDynamoClient connects to DynamoDB, or to a local one when endpoint is set.
func NewDynamoClient(region string, endpoint string) (*dynamodb.DynamoDB, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return dynamodb.New(sess), nil
}

func (s *DynamoStore) Put(ctx context.Context, data model.SheetMusicData) (string, error) {
	doc, err := json.Marshal(data)
	if err != nil {
		return "", errors.Wrap(err, "could not encode score")
	}

	id := newId()
	item := map[string]*dynamodb.AttributeValue{
		"PK":        {S: aws.String(id)},
		"Document":  {S: aws.String(string(doc))},
		"CreatedAt": {N: aws.String(strconv.FormatInt(s.now().Unix(), 10))},
	}
	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return "", errors.Wrap(err, "error from DynamoDB")
	}
	return id, nil
}

func (s *DynamoStore) Get(ctx context.Context, id string) (model.SheetMusicData, bool, error) {
	var data model.SheetMusicData
	out, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	})
	if err != nil {
		return data, false, errors.Wrap(err, "error from DynamoDB")
	}
	if out.Item == nil {
		return data, false, nil
	}

	doc, ok := out.Item["Document"]
	if !ok || doc.S == nil {
		return data, false, errors.Errorf("score %v has no document", id)
	}
	if err := json.Unmarshal([]byte(*doc.S), &data); err != nil {
		return data, false, errors.Wrapf(err, "score %v has a bad document", id)
	}
	return data, true, nil
}
