package blast

import (
	"crypto/sha256"
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"
)

// MAIN is the bucket name for all cached results.
var MAIN = []byte("blast")

// cacheEntry stores one cached search result.
type cacheEntry struct {
	Hits        []Hit
	RetrievedAt int64
}

// Cache stores BLAST results in a bolt database so repeated queries
// for the same sequence skip the network round trip.
type Cache struct {
	db  *bolt.DB
	ttl time.Duration
}

// NewCache creates a cache on top of an open bolt database. A zero
// ttl means entries never expire.
func NewCache(db *bolt.DB, ttl time.Duration) *Cache {
	return &Cache{db: db, ttl: ttl}
}

func cacheKey(program, database, seq string) []byte {
	h := sha256.New()
	h.Write([]byte(program))
	h.Write([]byte{0})
	h.Write([]byte(database))
	h.Write([]byte{0})
	h.Write([]byte(seq))
	return h.Sum(nil)
}

// Get returns the cached hits for a query if present and fresh.
func (c *Cache) Get(program, database, seq string) ([]Hit, bool) {
	b, err := LoadData(c.db, cacheKey(program, database, seq))
	if err != nil {
		log.Error("Error reading BLAST cache:", err)
		return nil, false
	}
	if b == nil {
		return nil, false
	}
	var entry cacheEntry
	if err = json.Unmarshal(b, &entry); err != nil {
		log.Error("Error decoding BLAST cache entry:", err)
		return nil, false
	}
	if c.ttl > 0 && time.Since(time.Unix(entry.RetrievedAt, 0)) > c.ttl {
		return nil, false
	}
	return entry.Hits, true
}

// Put stores the hits for a query.
func (c *Cache) Put(program, database, seq string, hits []Hit) error {
	b, err := json.Marshal(cacheEntry{Hits: hits, RetrievedAt: time.Now().Unix()})
	if err != nil {
		return err
	}
	return SaveData(c.db, cacheKey(program, database, seq), b)
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(MAIN)
		if err != nil {
			return err
		}

		err = b.Put(key, data)
		return err
	})
	return err
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(MAIN)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
