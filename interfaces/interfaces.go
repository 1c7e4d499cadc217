package interfaces

type Key interface{}

// HashFunc maps a key to a non-negative integer. The table uses the result
// only modulo its bucket count, so distribution quality affects chain
// lengths but not correctness.
type HashFunc func(key Key) uint64

// CompareFunc is a three-way comparator:
//
//	compare(a, b) < 0 if a < b
//	compare(a, b) > 0 if a > b
//	compare(a, b) = 0 if a == b
type CompareFunc func(a, b Key) int

// FormatFunc renders one stored key/value pair for the table dump.
type FormatFunc func(key Key, value interface{}) string

type Table interface {
	Insert(key Key, value interface{}) error
	InsertUnique(key Key, value interface{}) error
	Search(key Key) (value interface{}, err error)
	Replace(key Key, newValue interface{}) error
	Remove(key Key) error
	Len() int
	Keys() []interface{}
	ToSTDMap() map[Key]interface{}
	FromSTDMap(map[Key]interface{})
	String() string
}
