package builtinMap

import (
	"fmt"

	"github.com/Cattusorb/ChainedTables/errors"
	I "github.com/Cattusorb/ChainedTables/interfaces"
)

// New returns a plain Go map behind the Table interface, as the simplest
// possible comparison baseline. The bucket count is ignored.
func New(bucketCount int) I.Table {
	return builtinMap{}
}

type builtinMap map[I.Key]interface{}

func (m builtinMap) Insert(key I.Key, value interface{}) error {
	m[key] = value
	return nil
}

func (m builtinMap) InsertUnique(key I.Key, value interface{}) error {
	if _, ok := m[key]; ok {
		return errors.DuplicateKey
	}
	m[key] = value
	return nil
}

func (m builtinMap) Search(key I.Key) (interface{}, error) {
	value, ok := m[key]
	if !ok {
		return nil, errors.NotFound
	}
	return value, nil
}

func (m builtinMap) Replace(key I.Key, newValue interface{}) error {
	if _, ok := m[key]; !ok {
		return errors.NotFound
	}
	m[key] = newValue
	return nil
}

func (m builtinMap) Remove(key I.Key) error {
	if _, ok := m[key]; !ok {
		return errors.NotFound
	}
	delete(m, key)
	return nil
}

func (m builtinMap) Len() int {
	return len(m)
}

func (m builtinMap) Keys() []interface{} {
	r := make([]interface{}, 0, len(m))
	for key := range m {
		r = append(r, key)
	}
	return r
}

func (m builtinMap) ToSTDMap() map[I.Key]interface{} {
	r := make(map[I.Key]interface{}, len(m))
	for key, value := range m {
		r[key] = value
	}
	return r
}

func (m builtinMap) FromSTDMap(stdMap map[I.Key]interface{}) {
	for key, value := range stdMap {
		m[key] = value
	}
}

func (m builtinMap) String() string {
	return fmt.Sprintf("%v", map[I.Key]interface{}(m))
}
