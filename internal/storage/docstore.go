// ABOUTME: Badger-backed document store, the flat key-based Repository backend.
// ABOUTME: One JSON value per record under type-prefixed keys; no query engine.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v3"
)

// Key layout. User-scoped kinds carry the userID in the key the way the
// original per-user collections did; assignments, sessions, and logs are
// keyed by id only and scoped through their parent workout at read time.
const (
	profileKeyPrefix   = "profile:"          // profile:{userID}
	workoutKeyPrefix   = "workout:"          // workout:{userID}:{id}
	exerciseKeyPrefix  = "exercise:"         // exercise:{userID}:{id}
	assignKeyPrefix    = "workout_exercise:" // workout_exercise:{id}
	sessionKeyPrefix   = "session:"          // session:{id}
	logKeyPrefix       = "log:"              // log:{id}
	biometricKeyPrefix = "biometric:"        // biometric:{userID}:{id}
)

// DocStore is the Badger-backed Repository implementation. Filtering,
// joining, and aggregation all happen in memory over decoded records.
type DocStore struct {
	db *badger.DB
}

// Compile-time check that DocStore implements Repository.
var _ Repository = (*DocStore)(nil)

// OpenDocStore opens or creates a Badger store rooted at dir.
func OpenDocStore(dir string) (*DocStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %v", ErrOpenFailed, err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: open badger: %v", ErrOpenFailed, err)
	}
	return &DocStore{db: db}, nil
}

// Close closes the underlying Badger database.
func (s *DocStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// set stores a JSON-encoded value under key.
func (s *DocStore) set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes the value under key into out. Returns ErrNotFound when absent.
func (s *DocStore) get(key string, out any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
}

// delete removes a key. Returns ErrNotFound when the key does not exist.
func (s *DocStore) delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(key)); err != nil {
			if err == badger.ErrKeyNotFound {
				return ErrNotFound
			}
			return err
		}
		return txn.Delete([]byte(key))
	})
}

// deleteIfExists removes a key, ignoring absence. Used by cascades.
func (s *DocStore) deleteIfExists(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// listPrefix decodes every value whose key starts with prefix, appending
// each decoded record via the collect callback.
func listPrefix[T any](s *DocStore, prefix string, collect func(*T)) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec T
				if err := json.Unmarshal(val, &rec); err != nil {
					return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
				}
				collect(&rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

