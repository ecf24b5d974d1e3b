package db

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// KeyValueStore is the durable medium behind Store. Get reports a missing key
// with ok=false and a nil error.
type KeyValueStore interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(keys ...string) error
}

// OpenKeyValueStore builds the backend named by backend. The returned close
// function releases the medium and is never nil.
func OpenKeyValueStore(backend string, path string, logger *zap.Logger) (KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendSQLite, "":
		database, err := OpenSQLite(path, logger)
		if err != nil {
			return nil, noop, err
		}
		kv := NewSQLiteKV(database)
		return kv, kv.Close, nil
	case BackendFile:
		kv, err := NewFileKV(path)
		if err != nil {
			return nil, noop, err
		}
		return kv, noop, nil
	case BackendMemory:
		return NewMemoryKV(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", backend)
	}
}
