package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
)

// LogsRepository stores request log entries.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a repository over db.Logs.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs}
}

// Create inserts one entry, assigning an ID and timestamp when missing.
func (r *LogsRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	prepareEntry(entry)
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts entries in one unordered bulk write.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		prepareEntry(entry)
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// Query returns matching entries, newest first.
func (r *LogsRepository) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, logFilter(opts), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := make([]model.LogEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of matching entries. Limit and Skip are ignored.
func (r *LogsRepository) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, logFilter(opts))
}

func prepareEntry(entry *model.LogEntry) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
}

// logFilter translates query options into a MongoDB filter.
// Path is matched as a literal, case-insensitive prefix.
func logFilter(opts model.LogQueryOptions) bson.M {
	filter := bson.M{}

	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.Level != "" {
		filter["level"] = opts.Level
	}
	if opts.Method != "" {
		filter["method"] = opts.Method
	}
	if opts.Path != "" {
		filter["path"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(opts.Path), Options: "i"}
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		window := bson.M{}
		if opts.StartTime != nil {
			window["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			window["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = window
	}

	return filter
}
