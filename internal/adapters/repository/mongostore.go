package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/gurtle/gurtle/internal/domain/model"
	"github.com/gurtle/gurtle/pkg/metrics"
)

// MongoStore is the document-store-backed Store implementation. The client
// handle is safe for concurrent use across handlers; the driver pools
// connections internally, so no additional locking happens here.
type MongoStore struct {
	client         *mongo.Client
	coll           *mongo.Collection
	database       string
	collection     string
	connectTimeout time.Duration
}

// NewMongoStore connects to the store at uri and verifies the connection
// with a ping. A failure here is fatal to startup by design.
func NewMongoStore(ctx context.Context, uri string, opts ...Option) (*MongoStore, error) {
	s := &MongoStore{
		database:       defaultDatabase,
		collection:     defaultCollection,
		connectTimeout: defaultConnectTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	connectCtx, cancel := context.WithTimeout(ctx, s.connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, mongooptions.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}

	s.client = client
	s.coll = client.Database(s.database).Collection(s.collection)
	return s, nil
}

// TopScores implements Store.
func (s *MongoStore) TopScores(ctx context.Context, since string, limit int) ([]model.Entry, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	start := time.Now()

	filter := bson.M{}
	if since != "" {
		filter["datetime"] = bson.M{"$gte": since}
	}
	findOpts := mongooptions.Find().
		SetSort(bson.D{{Key: "score", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, filter, findOpts)
	if err != nil {
		metrics.RecordStoreError("top_scores")
		return nil, fmt.Errorf("find scores: %w", err)
	}
	entries := make([]model.Entry, 0, limit)
	if err := cursor.All(ctx, &entries); err != nil {
		metrics.RecordStoreError("top_scores")
		return nil, fmt.Errorf("decode scores: %w", err)
	}

	metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))
	return entries, nil
}

// CountAtLeast implements Store.
func (s *MongoStore) CountAtLeast(ctx context.Context, score int, since string) (int64, error) {
	start := time.Now()

	filter := bson.M{"score": bson.M{"$gte": score}}
	if since != "" {
		filter["datetime"] = bson.M{"$gte": since}
	}

	n, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		metrics.RecordStoreError("count_at_least")
		return 0, fmt.Errorf("count scores: %w", err)
	}

	metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))
	return n, nil
}

// Insert implements Store.
func (s *MongoStore) Insert(ctx context.Context, e model.Entry) error {
	start := time.Now()

	if _, err := s.coll.InsertOne(ctx, e); err != nil {
		metrics.RecordStoreError("insert")
		return fmt.Errorf("insert score: %w", err)
	}

	metrics.RecordStoreInsertLatency(float64(time.Since(start).Milliseconds()))
	return nil
}

// Count returns the total number of stored entries, used by stats reporting.
func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		metrics.RecordStoreError("count")
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect store: %w", err)
	}
	return nil
}
