// Package history persists a local record of submitted transfers, keyed by
// transaction content hash. The store is advisory bookkeeping for the
// wallet's owner; the ledger remains the authority on transaction state.
package history

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var bucketTransfers = []byte("transfers")

// HashSize is the length of a transaction content hash key.
const HashSize = 32

// Record is one submitted transfer.
type Record struct {
	TxHash      []byte // 32-byte content hash
	From        string // hex-encoded sender address
	To          string // hex-encoded destination address
	Amount      string // hex-encoded amount
	SubmittedAt time.Time
}

// Store wraps a bbolt database holding transfer records.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the history database at dbPath. The parent
// directory is created if it does not exist.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("history: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("history: open bolt db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketTransfers)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Put stores one transfer record keyed by its content hash.
func (s *Store) Put(rec *Record) error {
	if rec == nil {
		return fmt.Errorf("%w: record", ErrNilParam)
	}
	if len(rec.TxHash) != HashSize {
		return fmt.Errorf("%w: tx hash must be %d bytes", ErrInvalidHash, HashSize)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
			return fmt.Errorf("history: encode record: %w", err)
		}
		if err := tx.Bucket(bucketTransfers).Put(rec.TxHash, buf.Bytes()); err != nil {
			return fmt.Errorf("history: put record: %w", err)
		}
		return nil
	})
}

// Get retrieves a transfer record by content hash.
func (s *Store) Get(txHash []byte) (*Record, error) {
	if len(txHash) != HashSize {
		return nil, fmt.Errorf("%w: tx hash must be %d bytes", ErrInvalidHash, HashSize)
	}
	var rec Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTransfers).Get(txHash)
		if data == nil {
			return ErrNotFound
		}
		if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&rec); err != nil {
			return fmt.Errorf("history: decode record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns all stored transfer records.
func (s *Store) List() ([]*Record, error) {
	var recs []*Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTransfers).ForEach(func(k, v []byte) error {
			var rec Record
			if err := gob.NewDecoder(bytes.NewReader(v)).Decode(&rec); err != nil {
				return fmt.Errorf("history: decode record in list: %w", err)
			}
			recs = append(recs, &rec)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("history: list records: %w", err)
	}
	return recs, nil
}
