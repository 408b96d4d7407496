package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cuongbtq/candidate-service/internal/api/model"
)

// DynamoDBAPI is the subset of the DynamoDB client the store calls
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type DynamoDBStore struct {
	client DynamoDBAPI
	table  string
}

func NewDynamoDBStore(client DynamoDBAPI, table string) *DynamoDBStore {
	return &DynamoDBStore{
		client: client,
		table:  table,
	}
}

func (s *DynamoDBStore) Put(ctx context.Context, candidate *model.Candidate) error {
	item, err := attributevalue.MarshalMap(candidate)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put candidate: %w", err)
	}

	return nil
}

func (s *DynamoDBStore) Get(ctx context.Context, id string) (*model.Candidate, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var candidate model.Candidate
	if err := attributevalue.UnmarshalMap(out.Item, &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate: %w", err)
	}

	return &candidate, nil
}

// Scan issues a single request; results beyond DynamoDB's page limit are not
// followed.
func (s *DynamoDBStore) Scan(ctx context.Context) ([]model.CandidateSummary, error) {
	projection := expression.NamesList(
		expression.Name("id"),
		expression.Name("fullname"),
		expression.Name("email"),
	)
	expr, err := expression.NewBuilder().WithProjection(projection).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build projection: %w", err)
	}

	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(s.table),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		// returned as-is, callers surface the store's own message
		return nil, err
	}

	candidates := make([]model.CandidateSummary, 0, len(out.Items))
	if len(out.Items) > 0 {
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &candidates); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidates: %w", err)
		}
	}

	return candidates, nil
}
