package hash

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/OneOfOne/xxhash"
	xxhash2 "github.com/cespare/xxhash/v2"

	I "github.com/Cattusorb/ChainedTables/interfaces"
)

func hashString(in string) uint64 {
	return xxhash.ChecksumString64(in)
}

func hashBytes(in []byte) uint64 {
	return xxhash2.Sum64(in)
}

// KeyHashFunc is the default injected hash function. Integer keys hash to
// themselves so that bucket placement is predictable for small keys; string
// and byte-slice keys go through xxhash; everything else is hashed through
// its Sprintf representation.
func KeyHashFunc(keyI I.Key) uint64 {
	switch key := keyI.(type) {
	case string:
		return hashString(key)
	case []byte:
		return hashBytes(key)
	case int:
		return uint64(key)
	case uint:
		return uint64(key)
	case int8:
		return uint64(key)
	case uint8:
		return uint64(key)
	case int16:
		return uint64(key)
	case uint16:
		return uint64(key)
	case int32:
		return uint64(key)
	case uint32:
		return uint64(key)
	case int64:
		return uint64(key)
	case uint64:
		return key
	case float32:
		return uint64(math.Float32bits(key))
	case float64:
		return math.Float64bits(key)
	default:
		return hashString(fmt.Sprintf("%v", key))
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// KeyCompareFunc is the default injected three-way comparator. Keys of
// different dynamic types never compare equal: they are ordered by type
// identity first, and only keys of one type fall through to the value
// comparison. Unhandled types of the same identity compare by their Sprintf
// representations, which keeps the ordering strict.
func KeyCompareFunc(keyAI, keyBI I.Key) int {
	switch keyA := keyAI.(type) {
	case string:
		if keyB, ok := keyBI.(string); ok {
			return strings.Compare(keyA, keyB)
		}
	case []byte:
		if keyB, ok := keyBI.([]byte); ok {
			return strings.Compare(string(keyA), string(keyB))
		}
	case int:
		if keyB, ok := keyBI.(int); ok {
			return compareInt64(int64(keyA), int64(keyB))
		}
	case uint:
		if keyB, ok := keyBI.(uint); ok {
			return compareUint64(uint64(keyA), uint64(keyB))
		}
	case int8:
		if keyB, ok := keyBI.(int8); ok {
			return compareInt64(int64(keyA), int64(keyB))
		}
	case uint8:
		if keyB, ok := keyBI.(uint8); ok {
			return compareUint64(uint64(keyA), uint64(keyB))
		}
	case int16:
		if keyB, ok := keyBI.(int16); ok {
			return compareInt64(int64(keyA), int64(keyB))
		}
	case uint16:
		if keyB, ok := keyBI.(uint16); ok {
			return compareUint64(uint64(keyA), uint64(keyB))
		}
	case int32:
		if keyB, ok := keyBI.(int32); ok {
			return compareInt64(int64(keyA), int64(keyB))
		}
	case uint32:
		if keyB, ok := keyBI.(uint32); ok {
			return compareUint64(uint64(keyA), uint64(keyB))
		}
	case int64:
		if keyB, ok := keyBI.(int64); ok {
			return compareInt64(keyA, keyB)
		}
	case uint64:
		if keyB, ok := keyBI.(uint64); ok {
			return compareUint64(keyA, keyB)
		}
	case float32:
		if keyB, ok := keyBI.(float32); ok {
			return compareFloat64(float64(keyA), float64(keyB))
		}
	case float64:
		if keyB, ok := keyBI.(float64); ok {
			return compareFloat64(keyA, keyB)
		}
	}
	if typeA, typeB := reflect.TypeOf(keyAI).String(), reflect.TypeOf(keyBI).String(); typeA != typeB {
		return strings.Compare(typeA, typeB)
	}
	return strings.Compare(fmt.Sprintf("%v", keyAI), fmt.Sprintf("%v", keyBI))
}

// RecordFormatFunc is the default injected record formatter.
func RecordFormatFunc(key I.Key, value interface{}) string {
	return fmt.Sprintf("(%v, %v)", key, value)
}
