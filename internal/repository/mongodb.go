// Package repository persists request logs in MongoDB.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	logsCollection   = "request_logs"
	logsTTLIndexName = "timestamp_ttl"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	EnableCompression      bool
}

// DefaultMongoConfig returns a pool sized for a low-volume log sink.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            20,
		MinPoolSize:            2,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB holds the client and the request log collection.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Logs     *mongo.Collection
}

// NewMongoDB connects with DefaultMongoConfig.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and ensures the log indexes exist.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:   client,
		Database: db,
		Logs:     db.Collection(logsCollection),
	}

	if err := m.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return m, nil
}

func (m *MongoDB) createIndexes(ctx context.Context) error {
	_, err := m.Logs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
		{Keys: bson.D{{Key: "path", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	return err
}

// SetLogsTTL (re)creates the TTL index that expires request logs after ttlDays.
// A non-positive ttlDays removes expiry.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	if _, err := m.Logs.Indexes().DropOne(ctx, logsTTLIndexName); err != nil && !isIndexNotFound(err) {
		return err
	}
	if ttlDays <= 0 {
		return nil
	}

	_, err := m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().
			SetName(logsTTLIndexName).
			SetExpireAfterSeconds(int32(ttlDays * 24 * 60 * 60)),
	})
	return err
}

// isIndexNotFound reports the server error returned when dropping a missing index
// (code 27) or an index on a collection that does not exist yet (code 26).
func isIndexNotFound(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 27 || cmdErr.Code == 26
	}
	return false
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the server with a short timeout.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
