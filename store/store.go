package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/yug-24/TaskFlow/config"
)

// ErrNotFound is returned when no document matches an (id, userId) scoped
// operation. Callers cannot tell a missing document from one owned by
// somebody else.
var ErrNotFound = errors.New("document not found")

// Store wraps the MongoDB collections backing the API.
type Store struct {
	client *mongo.Client
	tasks  *mongo.Collection
	habits *mongo.Collection
	logger *zap.SugaredLogger
}

// Connect builds the Mongo client and collection handles. The driver dials
// lazily, so a store that is unreachable at startup only fails the requests
// that touch it; we ping once here to surface problems early in the logs.
func Connect(ctx context.Context, conf config.Config, logger *zap.SugaredLogger) (*Store, error) {
	opts := options.Client().
		ApplyURI(conf.MongoURI).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxConnIdleTime(30 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	db := client.Database(conf.MongoDB)
	s := &Store{
		client: client,
		tasks:  db.Collection("tasks"),
		habits: db.Collection("habits"),
		logger: logger,
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		logger.Warnw("mongodb not reachable at startup, will retry per request", "error", err)
		return s, nil
	}

	s.ensureIndexes(ctx)
	return s, nil
}

// ensureIndexes creates the userId index both collections are queried by.
// Best effort: a failure is logged, not fatal.
func (s *Store) ensureIndexes(ctx context.Context) {
	model := mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}}}
	for name, coll := range map[string]*mongo.Collection{"tasks": s.tasks, "habits": s.habits} {
		if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
			s.logger.Warnw("failed to ensure index", "collection", name, "error", err)
		}
	}
}

// Close releases the connection pool.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
