// Package dynamo implements cache.VectorStore on DynamoDB, for vector
// caches shared across a fleet without running object storage.
//
// Each item is one vector: partition key "k" (the cache key), "c" (codec
// name), "v" (encoded blob). Feature-hashing vectors at the default 4096
// dimensions encode well under the DynamoDB item size limit.
package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hupe1980/genovec/cache"
	"github.com/hupe1980/genovec/codec"
)

// Client is the subset of the DynamoDB API the store uses. *dynamodb.Client
// satisfies it; tests substitute a mock.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Store implements cache.VectorStore on a DynamoDB table.
type Store struct {
	client Client
	table  string
	codec  codec.Codec
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCodec overrides the codec used for newly written items.
func WithCodec(c codec.Codec) StoreOption {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}

// NewStore creates a Store writing to the given table. The table must have
// a string partition key named "k".
func NewStore(client Client, table string, optFns ...StoreOption) *Store {
	s := &Store{
		client: client,
		table:  table,
		codec:  codec.Default,
	}

	for _, fn := range optFns {
		fn(s)
	}

	return s
}

// Load implements cache.VectorStore.
func (s *Store) Load(ctx context.Context, key cache.Key) ([]float64, bool, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"k": &types.AttributeValueMemberS{Value: string(key)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if out.Item == nil {
		return nil, false, nil
	}

	codecAttr, ok := out.Item["c"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, false, errors.New("cache/dynamo: item missing codec attribute")
	}
	dataAttr, ok := out.Item["v"].(*types.AttributeValueMemberB)
	if !ok {
		return nil, false, errors.New("cache/dynamo: item missing vector attribute")
	}

	c, ok := codec.ByName(codecAttr.Value)
	if !ok {
		return nil, false, fmt.Errorf("cache/dynamo: unknown codec %q for key %s", codecAttr.Value, key)
	}

	v, err := c.Decode(dataAttr.Value)
	if err != nil {
		return nil, false, fmt.Errorf("cache/dynamo: decode key %s: %w", key, err)
	}

	return v, true, nil
}

// Save implements cache.VectorStore. PutItem replaces the whole item, which
// is the idempotent overwrite the cache contract asks for.
func (s *Store) Save(ctx context.Context, key cache.Key, v []float64) error {
	data, err := s.codec.Encode(v)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]types.AttributeValue{
			"k": &types.AttributeValueMemberS{Value: string(key)},
			"c": &types.AttributeValueMemberS{Value: s.codec.Name()},
			"v": &types.AttributeValueMemberB{Value: data},
		},
	})
	return err
}
