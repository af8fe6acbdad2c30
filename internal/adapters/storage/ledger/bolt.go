package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/jsamuelsen/gateway-client/internal/ports"
)

const bucketName = "idempotency"

// openTimeout bounds waiting for another process's file lock.
const openTimeout = time.Second

// ErrMissingBucket means the database file was not created by this package.
var ErrMissingBucket = errors.New("idempotency bucket missing")

// Bolt keeps records in a single bolt file so replays survive restarts of
// the sandbox.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the ledger file at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating ledger bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Close releases the file lock.
func (b *Bolt) Close() error {
	return b.db.Close()
}

// Load implements ports.IdempotencyLedger.
func (b *Bolt) Load(ctx context.Context, key string) (*ports.IdempotencyRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var rec *ports.IdempotencyRecord

	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return ErrMissingBucket
		}

		v := bucket.Get([]byte(key))
		if v == nil {
			return nil
		}

		rec = &ports.IdempotencyRecord{}
		return json.Unmarshal(v, rec)
	})
	if err != nil {
		return nil, false, fmt.Errorf("loading idempotency record: %w", err)
	}

	return rec, rec != nil, nil
}

// Store implements ports.IdempotencyLedger.
func (b *Bolt) Store(ctx context.Context, key string, rec *ports.IdempotencyRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding idempotency record: %w", err)
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return ErrMissingBucket
		}

		return bucket.Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("storing idempotency record: %w", err)
	}

	return nil
}

// Name implements ports.HealthChecker.
func (b *Bolt) Name() string { return healthName }

// Check implements ports.HealthChecker by opening a read transaction.
func (b *Bolt) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return b.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(bucketName)) == nil {
			return ErrMissingBucket
		}

		return nil
	})
}
