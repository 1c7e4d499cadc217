package chainedtable

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/Cattusorb/ChainedTables/errors"
	"github.com/Cattusorb/ChainedTables/hash"
	I "github.com/Cattusorb/ChainedTables/interfaces"
)

const (
	defaultBucketCount = 1024
)

// ChainedTable is a fixed-size hash table that resolves collisions by
// separate chaining. Every operation routes through
// hash(key) % bucketCount and then works on that single bucket's chain.
// The bucket count never changes after construction: there is no growing
// and no rehashing.
//
// The table is not safe for concurrent use; wrap it with Synchronized when
// calls may overlap.
type ChainedTable struct {
	buckets     []chain
	hashFunc    I.HashFunc
	compareFunc I.CompareFunc
	formatFunc  I.FormatFunc
	keySize     uint
	valueSize   uint
	length      int
}

// New creates a table with n empty buckets over the given injected
// functions. keySize and valueSize declare the byte width of keys and
// values; they are enforced against []byte payloads on every write (other
// key types carry their own width). All arguments are validated up front.
func New(n int, hashFunc I.HashFunc, compareFunc I.CompareFunc, formatFunc I.FormatFunc, keySize, valueSize uint) (*ChainedTable, error) {
	if n <= 0 || hashFunc == nil || compareFunc == nil || formatFunc == nil || keySize == 0 || valueSize == 0 {
		return nil, errors.InvalidConfiguration
	}
	return newTable(n, hashFunc, compareFunc, formatFunc, keySize, valueSize), nil
}

func fixBucketCount(n int) int {
	if n <= 0 {
		log.Printf("Invalid bucket count: %v. Setting to %d\n", n, defaultBucketCount)
		n = defaultBucketCount
	}
	return n
}

// NewDefault creates a table over the default hash/compare/format functions
// from the hash package. The defaults accept keys of any width, so no
// key/value size is declared or enforced. An invalid bucket count is fixed
// up instead of rejected, since the defaults cannot fail validation.
func NewDefault(n int) *ChainedTable {
	return newTable(fixBucketCount(n), hash.KeyHashFunc, hash.KeyCompareFunc, hash.RecordFormatFunc, 0, 0)
}

func newTable(n int, hashFunc I.HashFunc, compareFunc I.CompareFunc, formatFunc I.FormatFunc, keySize, valueSize uint) *ChainedTable {
	return &ChainedTable{
		buckets:     make([]chain, n),
		hashFunc:    hashFunc,
		compareFunc: compareFunc,
		formatFunc:  formatFunc,
		keySize:     keySize,
		valueSize:   valueSize,
	}
}

func (t *ChainedTable) bucketIdx(key I.Key) uint64 {
	return t.hashFunc(key) % uint64(len(t.buckets))
}

func (t *ChainedTable) matchKey(key I.Key) func(*Record) bool {
	return func(r *Record) bool {
		return t.compareFunc(key, r.Key) == 0
	}
}

func (t *ChainedTable) checkSizes(key I.Key, value interface{}) error {
	if t.keySize != 0 {
		if b, ok := key.([]byte); ok && uint(len(b)) != t.keySize {
			return errors.InvalidSize
		}
	}
	if t.valueSize != 0 {
		if b, ok := value.([]byte); ok && uint(len(b)) != t.valueSize {
			return errors.InvalidSize
		}
	}
	return nil
}

// Insert stores the pair without checking for an existing equal key:
// repeated inserts of the same key stack up newest-first in the bucket
// chain, so Search answers with the newest one. Use InsertUnique when
// duplicates must be rejected.
func (t *ChainedTable) Insert(key I.Key, value interface{}) error {
	if t == nil || key == nil || value == nil {
		return errors.NullArgument
	}
	if err := t.checkSizes(key, value); err != nil {
		return err
	}
	t.buckets[t.bucketIdx(key)].pushFront(Record{Key: key, Value: value})
	t.length++
	return nil
}

// InsertUnique behaves like Insert but fails with DuplicateKey when an
// entry with an equal key is already stored.
func (t *ChainedTable) InsertUnique(key I.Key, value interface{}) error {
	if t == nil || key == nil || value == nil {
		return errors.NullArgument
	}
	if err := t.checkSizes(key, value); err != nil {
		return err
	}
	bucket := &t.buckets[t.bucketIdx(key)]
	if bucket.findFirst(t.matchKey(key)) != nil {
		return errors.DuplicateKey
	}
	bucket.pushFront(Record{Key: key, Value: value})
	t.length++
	return nil
}

// Search returns the value of the first (newest) entry whose key compares
// equal to the sought key, or NotFound.
func (t *ChainedTable) Search(key I.Key) (interface{}, error) {
	if t == nil || key == nil {
		return nil, errors.NullArgument
	}
	node := t.buckets[t.bucketIdx(key)].findFirst(t.matchKey(key))
	if node == nil {
		return nil, errors.NotFound
	}
	return node.record.Value, nil
}

// Replace overwrites the value of the first matching entry in place. No new
// entry is constructed and neither chain length nor chain order changes.
func (t *ChainedTable) Replace(key I.Key, newValue interface{}) error {
	if t == nil || key == nil || newValue == nil {
		return errors.NullArgument
	}
	if err := t.checkSizes(key, newValue); err != nil {
		return err
	}
	node := t.buckets[t.bucketIdx(key)].findFirst(t.matchKey(key))
	if node == nil {
		return errors.NotFound
	}
	node.record.Value = newValue
	return nil
}

// Remove unlinks the first matching entry from its bucket chain. The
// removal is eager and structural, not a tombstone: the chain shrinks by
// one node and the table stays untouched when no entry matches.
func (t *ChainedTable) Remove(key I.Key) error {
	if t == nil || key == nil {
		return errors.NullArgument
	}
	bucket := &t.buckets[t.bucketIdx(key)]
	position := bucket.findPosition(t.matchKey(key))
	if position < 0 {
		return errors.NotFound
	}
	bucket.removeAt(position)
	t.length--
	return nil
}

func (t *ChainedTable) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Keys returns every stored key in bucket order, entries within a bucket
// newest-first. Duplicate keys appear once per entry.
func (t *ChainedTable) Keys() []interface{} {
	if t == nil {
		return nil
	}
	r := make([]interface{}, 0, t.length)
	for i := range t.buckets {
		for node := t.buckets[i].first; node != nil; node = node.next {
			r = append(r, node.record.Key)
		}
	}
	return r
}

// ToSTDMap converts to a standard map `map[Key]interface{}`. For duplicate
// keys the entry Search would return wins. Keys the Go runtime cannot hash
// ([]byte and other non-comparable types) are skipped.
func (t *ChainedTable) ToSTDMap() map[I.Key]interface{} {
	r := map[I.Key]interface{}{}
	if t == nil {
		return r
	}
	for i := range t.buckets {
		for node := t.buckets[i].first; node != nil; node = node.next {
			if !reflect.TypeOf(node.record.Key).Comparable() {
				continue
			}
			if _, ok := r[node.record.Key]; !ok {
				r[node.record.Key] = node.record.Value
			}
		}
	}
	return r
}

// FromSTDMap upserts every pair of a standard map: entries with equal keys
// are replaced in place rather than duplicated. Pairs that fail validation
// (a declared-size mismatch on a []byte payload) are logged and skipped.
func (t *ChainedTable) FromSTDMap(stdMap map[I.Key]interface{}) {
	for k, v := range stdMap {
		if err := t.Replace(k, v); err == nil {
			continue
		}
		if err := t.Insert(k, v); err != nil {
			log.Printf("Cannot insert key %v: %v\n", k, err)
		}
	}
}

// String dumps the table: a header, then one line per bucket with the
// bucket index and the bucket's chain rendered through the injected
// formatter. An empty bucket renders as a blank segment. The output is
// deterministic for an unchanged table.
func (t *ChainedTable) String() string {
	var sb strings.Builder
	sb.WriteString("N\tB[n]\n----------------")
	for i := range t.buckets {
		fmt.Fprintf(&sb, "\n%d\t%s", i, t.buckets[i].render(t.formatFunc))
	}
	return sb.String()
}

// CheckConsistency verifies that every record sits in the bucket its key
// hashes to, that the entry count matches Len, and that every stored key is
// searchable.
func (t *ChainedTable) CheckConsistency() error {
	count := 0
	for i := range t.buckets {
		for node := t.buckets[i].first; node != nil; node = node.next {
			expectedIdx := t.bucketIdx(node.record.Key)
			if expectedIdx != uint64(i) {
				return fmt.Errorf("key %v is in bucket %v instead of %v", node.record.Key, i, expectedIdx)
			}
			count++
		}
	}
	if count != t.length {
		return fmt.Errorf("count != t.Len(): %v %v", count, t.length)
	}

	for i := range t.buckets {
		for node := t.buckets[i].first; node != nil; node = node.next {
			if _, err := t.Search(node.record.Key); err != nil {
				return fmt.Errorf("stored key %v is not searchable: %v", node.record.Key, err)
			}
		}
	}
	return nil
}
