// Package cache provides a local BoltDB-backed cache for SObject describe
// metadata, so repeated query building does not hit the describe endpoint
// for every run.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"sfq/internal/config"
	"sfq/internal/salesforce"
)

// CatalogEntry is a cached field catalog for one SObject.
type CatalogEntry struct {
	SObject string                        `json:"sobject"`
	Fields  []salesforce.FieldDescription `json:"fields"`
	Fetched int64                         `json:"fetched"` // unix seconds
}

// Age returns how long ago the entry was fetched.
func (e CatalogEntry) Age(now time.Time) time.Duration {
	return now.Sub(time.Unix(e.Fetched, 0))
}

const bucketCatalogs = "sobject_catalogs"

// Cache wraps BoltDB and provides catalog lookups with a freshness TTL.
type Cache struct {
	db  *bbolt.DB
	ttl time.Duration
}

// Open opens or creates the cache at the given path, ensuring the parent
// directory and the catalog bucket exist. A zero ttl disables expiry.
func Open(path string, ttl time.Duration) (*Cache, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	timeouts := config.DefaultTimeouts()
	db, err := bbolt.Open(path, config.DBFilePermissions, &bbolt.Options{Timeout: timeouts.DB})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCatalogs))
		return err
	})
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", closeErr)
		}
		return nil, fmt.Errorf("failed to initialize cache bucket: %w", err)
	}

	return &Cache{db: db, ttl: ttl}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close cache database: %w", err)
		}
	}
	return nil
}

// Put stores the field catalog for an SObject, stamping the fetch time.
func (c *Cache) Put(sObjectName string, fields []salesforce.FieldDescription) error {
	entry := CatalogEntry{
		SObject: sObjectName,
		Fields:  fields,
		Fetched: time.Now().Unix(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode catalog entry: %w", err)
	}

	err = c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketCatalogs)).Put([]byte(sObjectName), data)
	})
	if err != nil {
		return NewDatabaseError("put", sObjectName, err)
	}
	return nil
}

// Get returns the cached catalog for an SObject. A missing entry yields
// ErrorTypeNotFound; an entry older than the TTL yields ErrorTypeExpired.
func (c *Cache) Get(sObjectName string) (CatalogEntry, error) {
	var entry CatalogEntry
	err := c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketCatalogs)).Get([]byte(sObjectName))
		if data == nil {
			return NewNotFoundError("get", sObjectName)
		}
		if err := json.Unmarshal(data, &entry); err != nil {
			return NewInvalidDataError("get", sObjectName, err)
		}
		return nil
	})
	if err != nil {
		return CatalogEntry{}, err
	}

	if c.ttl > 0 && entry.Age(time.Now()) > c.ttl {
		return entry, NewExpiredError("get", sObjectName)
	}
	return entry, nil
}

// List returns every cached entry, including expired ones.
func (c *Cache) List() ([]CatalogEntry, error) {
	var entries []CatalogEntry
	err := c.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketCatalogs)).ForEach(func(key, data []byte) error {
			var entry CatalogEntry
			if err := json.Unmarshal(data, &entry); err != nil {
				return NewInvalidDataError("list", string(key), err)
			}
			entries = append(entries, entry)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes the entry for an SObject. Deleting a missing entry is not
// an error.
func (c *Cache) Delete(sObjectName string) error {
	err := c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketCatalogs)).Delete([]byte(sObjectName))
	})
	if err != nil {
		return NewDatabaseError("delete", sObjectName, err)
	}
	return nil
}

// Clear removes every cached entry.
func (c *Cache) Clear() error {
	err := c.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketCatalogs)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(bucketCatalogs))
		return err
	})
	if err != nil {
		return NewDatabaseError("clear", "", err)
	}
	return nil
}
