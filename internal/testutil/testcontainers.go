//go:build integration

// Package testutil starts throwaway MongoDB and Redis containers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Container is a started testcontainer and the address clients should dial.
type Container struct {
	Container testcontainers.Container
	// URI is a mongodb:// connection string for MongoDB and host:port for Redis.
	URI string
}

// Cleanup terminates the container.
func (c *Container) Cleanup(ctx context.Context) error {
	if c == nil || c.Container == nil {
		return nil
	}
	if err := c.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to terminate container: %w", err)
	}
	return nil
}

// SetupMongoDB starts a MongoDB container for the request-log repository tests.
func SetupMongoDB(ctx context.Context) (*Container, error) {
	mongoContainer, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		_ = mongoContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &Container{Container: mongoContainer, URI: uri}, nil
}

// SetupRedis starts a Redis container for the shared estimate cache tests.
func SetupRedis(ctx context.Context) (*Container, error) {
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start Redis container: %w", err)
	}

	endpoint, err := redisContainer.Endpoint(ctx, "")
	if err != nil {
		_ = redisContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get Redis endpoint: %w", err)
	}

	return &Container{Container: redisContainer, URI: endpoint}, nil
}

var (
	sharedMongo     *Container
	sharedMongoErr  error
	sharedMongoOnce sync.Once
)

// GetSharedMongoDB starts one MongoDB container per test binary and returns it on every call.
func GetSharedMongoDB(ctx context.Context) (*Container, error) {
	sharedMongoOnce.Do(func() {
		sharedMongo, sharedMongoErr = SetupMongoDB(ctx)
	})
	return sharedMongo, sharedMongoErr
}

// SetupTestMainWithMongoDB wraps m.Run with a shared MongoDB container:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if err := sharedMongo.Cleanup(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: failed to clean up shared MongoDB container: %v\n", err)
	}
	return code
}

// SanitizeDBName turns a test name into a unique, valid MongoDB database name.
func SanitizeDBName(testName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ".", "_").Replace(testName)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1_000_000)
}
