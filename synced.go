package chainedtable

import (
	"github.com/xaionaro-go/spinlock"

	I "github.com/Cattusorb/ChainedTables/interfaces"
)

// syncedTable serializes every operation of a ChainedTable with a spinlock.
// It is the external locking a bare table requires when calls may overlap.
type syncedTable struct {
	locker  spinlock.Locker
	backend *ChainedTable
}

// Synchronized wraps a table so that all operations are mutually exclusive.
// The wrapped table must not be used directly anymore.
func Synchronized(backend *ChainedTable) I.Table {
	return &syncedTable{backend: backend}
}

func (t *syncedTable) Insert(key I.Key, value interface{}) error {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.backend.Insert(key, value)
}

func (t *syncedTable) InsertUnique(key I.Key, value interface{}) error {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.backend.InsertUnique(key, value)
}

func (t *syncedTable) Search(key I.Key) (interface{}, error) {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.backend.Search(key)
}

func (t *syncedTable) Replace(key I.Key, newValue interface{}) error {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.backend.Replace(key, newValue)
}

func (t *syncedTable) Remove(key I.Key) error {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.backend.Remove(key)
}

func (t *syncedTable) Len() int {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.backend.Len()
}

func (t *syncedTable) Keys() []interface{} {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.backend.Keys()
}

func (t *syncedTable) ToSTDMap() map[I.Key]interface{} {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.backend.ToSTDMap()
}

func (t *syncedTable) FromSTDMap(stdMap map[I.Key]interface{}) {
	t.locker.Lock()
	defer t.locker.Unlock()
	t.backend.FromSTDMap(stdMap)
}

func (t *syncedTable) String() string {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.backend.String()
}

func (t *syncedTable) CheckConsistency() error {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.backend.CheckConsistency()
}
