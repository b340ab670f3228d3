package contacts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const contactsBucket = "contacts"

// BoltStore persists contacts in a bbolt database file.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens the database at path, creating the file and its
// directory when missing. The open times out instead of blocking forever
// when another bot session holds the file lock.
func OpenBoltStore(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open contacts store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(contactsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize contacts store: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close releases the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Put stores a phone number under a name.
func (s *BoltStore) Put(name, phone string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(contactsBucket)).Put([]byte(name), []byte(phone))
	})
}

// All returns every stored contact.
func (s *BoltStore) All() (map[string]string, error) {
	entries := make(map[string]string)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(contactsBucket)).ForEach(func(k, v []byte) error {
			entries[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
