package tableRoutines

import (
	"testing"

	"github.com/Cattusorb/ChainedTables/errors"
	I "github.com/Cattusorb/ChainedTables/interfaces"
)

type checkConsistencier interface {
	CheckConsistency() error
}

func expect(t *testing.T, table I.Table, key I.Key, expectedValue int) {
	value, err := table.Search(key)
	if err != nil {
		t.Errorf("Got an unexpected error: %v. key == %v; expectedValue == %v", err, key, expectedValue)
		return
	}
	if value != expectedValue {
		t.Errorf(`A wrong value "%v" (instead of %v)`, value, expectedValue)
	}
}

// DoTest runs the behavior every Table implementation has to share:
// insert/search/replace/remove round trips and the entry count. A Len() of
// -1 means "unsupported" and is tolerated.
func DoTest(t *testing.T, factoryFunc TableFactoryFunc) {
	table := factoryFunc(1024)

	if table.Len() != 0 && table.Len() != -1 {
		t.Errorf("table.Len() is not 0: %v", table.Len())
	}

	table.Insert(1024*1024, 1)
	table.Insert("a string", 2)

	expect(t, table, 1024*1024, 1)
	expect(t, table, "a string", 2)

	_, err := table.Search(3)
	if err != errors.NotFound {
		t.Errorf(`An expected "NotFound" error, but got: %v`, err)
	}

	if table.Len() != 2 && table.Len() != -1 {
		t.Errorf("table.Len() is not 2: %v", table.Len())
	}

	err = table.Replace(1024*1024, 42)
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}
	expect(t, table, 1024*1024, 42)

	err = table.Replace(3, 43)
	if err != errors.NotFound {
		t.Errorf(`An expected "NotFound" error, but got: %v`, err)
	}

	err = table.Remove(1024 * 1024)
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}

	_, err = table.Search(1024 * 1024)
	if err != errors.NotFound {
		t.Errorf(`An expected "NotFound" error, but got: %v`, err)
	}

	if table.Len() != 1 && table.Len() != -1 {
		t.Errorf("table.Len() is not 1: %v", table.Len())
	}

	for i := 10; i < 1024*8; i++ {
		table.Insert(i*6000, i)
	}
	err = table.Remove(60000)
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}

	if consistencier, ok := table.(checkConsistencier); ok {
		if err := consistencier.CheckConsistency(); err != nil {
			t.Errorf("Got an unexpected error: %v", err)
			return
		}
	}

	for i := 11; i < 1024*8; i++ {
		r, err := table.Search(i * 6000)
		if err != nil {
			t.Errorf("%v not found", i*6000)
			continue
		}
		if r.(int) != i {
			t.Errorf("%v != %v", r, i)
		}
	}

	for i := 11; i < 1024*8; i++ {
		err := table.Remove(i * 6000)
		if err != nil {
			t.Errorf("Cannot remove %v: %v", i*6000, err)
			continue
		}
	}

	if consistencier, ok := table.(checkConsistencier); ok {
		if err := consistencier.CheckConsistency(); err != nil {
			t.Errorf("Got an unexpected error: %v", err)
		}
	}
}
