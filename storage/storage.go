package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Store abstracts where corpus files live. The server only fetches; Put
// exists for the import tool to publish corpus files.
type Store interface {
	// Fetch retrieves an object by key. Returns ErrObjectNotFound if the
	// object does not exist.
	Fetch(ctx context.Context, key string) (io.ReadCloser, error)

	// Put stores an object under key
	Put(ctx context.Context, key string, data io.Reader) error
}

// ErrObjectNotFound is returned by Fetch for missing objects. Corpus loaders
// treat it as an empty corpus, not a failure.
var ErrObjectNotFound = errors.New("object not found")

// StoreType represents the storage backend type
type StoreType string

const (
	StoreTypeLocal StoreType = "local"
	StoreTypeS3    StoreType = "s3"
)

// Config holds configuration for a corpus store
type Config struct {
	Type         StoreType
	LocalPath    string // base directory for local storage
	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// NewStore creates a store instance based on configuration
func NewStore(cfg Config) (Store, error) {
	switch cfg.Type {
	case StoreTypeLocal:
		return NewLocalStore(cfg.LocalPath), nil
	case StoreTypeS3:
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// NewStoreFromEnv creates a store instance from environment variables
func NewStoreFromEnv() (Store, error) {
	storeType := os.Getenv("STORAGE_TYPE")
	if storeType == "" {
		storeType = "local" // Default to local for development
	}

	cfg := Config{Type: StoreType(storeType)}

	switch cfg.Type {
	case StoreTypeLocal:
		cfg.LocalPath = os.Getenv("STORAGE_LOCAL_PATH")
		if cfg.LocalPath == "" {
			cfg.LocalPath = "./data"
		}
		return NewLocalStore(cfg.LocalPath), nil

	case StoreTypeS3:
		cfg.S3Bucket = os.Getenv("AWS_S3_BUCKET")
		cfg.S3Region = os.Getenv("AWS_REGION")
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		cfg.AWSAccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		cfg.AWSSecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Store(cfg)

	default:
		return nil, fmt.Errorf("unknown storage type: %s", storeType)
	}
}
