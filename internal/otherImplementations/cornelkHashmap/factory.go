package cornelkHashmap

import (
	e "errors"

	"github.com/cornelk/hashmap"

	"github.com/Cattusorb/ChainedTables/errors"
	I "github.com/Cattusorb/ChainedTables/interfaces"
)

var (
	ErrNotImplemented = e.New("not implemented")
)

// New returns a cornelk/hashmap behind the Table interface. It serves as a
// comparison baseline for tests and benchmarks; the bucket count is ignored
// because the baseline sizes itself.
func New(bucketCount int) I.Table {
	return &hashmapWrapper{}
}

type hashmapWrapper struct {
	hashmap.HashMap
}

func (m *hashmapWrapper) Insert(key I.Key, value interface{}) error {
	m.HashMap.Set(key, value)
	return nil
}

func (m *hashmapWrapper) InsertUnique(key I.Key, value interface{}) error {
	return ErrNotImplemented
}

func (m *hashmapWrapper) Search(key I.Key) (interface{}, error) {
	var err error
	v, ok := m.HashMap.Get(key)
	if !ok {
		err = errors.NotFound
	}
	return v, err
}

func (m *hashmapWrapper) Replace(key I.Key, newValue interface{}) error {
	if _, ok := m.HashMap.Get(key); !ok {
		return errors.NotFound
	}
	m.HashMap.Set(key, newValue)
	return nil
}

func (m *hashmapWrapper) Remove(key I.Key) error {
	m.HashMap.Del(key)
	return nil
}

func (m *hashmapWrapper) Len() int {
	return -1
}

func (m *hashmapWrapper) Keys() []interface{} {
	return nil
}

func (m *hashmapWrapper) ToSTDMap() map[I.Key]interface{} {
	return nil
}

func (m *hashmapWrapper) FromSTDMap(map[I.Key]interface{}) {
}

func (m *hashmapWrapper) String() string {
	return ""
}
