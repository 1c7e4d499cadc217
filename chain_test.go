package chainedtable

import (
	"fmt"
	"testing"

	I "github.com/Cattusorb/ChainedTables/interfaces"
)

func formatRecord(key I.Key, value interface{}) string {
	return fmt.Sprintf("(%v, %v)", key, value)
}

func TestChainPushFrontOrder(t *testing.T) {
	c := &chain{}
	c.pushFront(Record{Key: 1, Value: "a"})
	c.pushFront(Record{Key: 2, Value: "b"})
	c.pushFront(Record{Key: 3, Value: "c"})

	if c.len() != 3 {
		t.Fatalf("chain length is not 3: %v", c.len())
	}

	expected := []int{3, 2, 1}
	i := 0
	for node := c.first; node != nil; node = node.next {
		if node.record.Key != expected[i] {
			t.Errorf("position %v holds key %v, expected %v", i, node.record.Key, expected[i])
		}
		i++
	}
}

func TestChainFindFirst(t *testing.T) {
	c := &chain{}
	for i := 0; i < 5; i++ {
		c.pushFront(Record{Key: i, Value: i * 10})
	}

	node := c.findFirst(func(r *Record) bool { return r.Key == 2 })
	if node == nil {
		t.Fatalf("key 2 not found")
	}
	if node.record.Value != 20 {
		t.Errorf(`A wrong value "%v" (instead of 20)`, node.record.Value)
	}

	if c.findFirst(func(r *Record) bool { return r.Key == 100 }) != nil {
		t.Errorf("found a node for a missing key")
	}

	empty := &chain{}
	if empty.findFirst(func(r *Record) bool { return true }) != nil {
		t.Errorf("found a node in an empty chain")
	}
}

func TestChainFindPosition(t *testing.T) {
	c := &chain{}
	for i := 0; i < 4; i++ {
		c.pushFront(Record{Key: i, Value: i})
	}
	// Chain order is 3, 2, 1, 0.
	if pos := c.findPosition(func(r *Record) bool { return r.Key == 3 }); pos != 0 {
		t.Errorf("position of key 3 is %v, expected 0", pos)
	}
	if pos := c.findPosition(func(r *Record) bool { return r.Key == 0 }); pos != 3 {
		t.Errorf("position of key 0 is %v, expected 3", pos)
	}
	if pos := c.findPosition(func(r *Record) bool { return r.Key == 9 }); pos != -1 {
		t.Errorf("position of a missing key is %v, expected -1", pos)
	}
}

func TestChainRemoveAt(t *testing.T) {
	newChain := func() *chain {
		c := &chain{}
		for i := 0; i < 4; i++ {
			c.pushFront(Record{Key: i, Value: i})
		}
		return c // order: 3, 2, 1, 0
	}

	keysOf := func(c *chain) []int {
		var keys []int
		for node := c.first; node != nil; node = node.next {
			keys = append(keys, node.record.Key.(int))
		}
		return keys
	}

	c := newChain()
	if !c.removeAt(0) {
		t.Fatalf("removeAt(0) failed")
	}
	if got := keysOf(c); fmt.Sprint(got) != fmt.Sprint([]int{2, 1, 0}) {
		t.Errorf("after head removal: %v", got)
	}

	c = newChain()
	if !c.removeAt(2) {
		t.Fatalf("removeAt(2) failed")
	}
	if got := keysOf(c); fmt.Sprint(got) != fmt.Sprint([]int{3, 2, 0}) {
		t.Errorf("after middle removal: %v", got)
	}

	c = newChain()
	if !c.removeAt(3) {
		t.Fatalf("removeAt(3) failed")
	}
	if got := keysOf(c); fmt.Sprint(got) != fmt.Sprint([]int{3, 2, 1}) {
		t.Errorf("after tail removal: %v", got)
	}

	if c.removeAt(-1) || c.removeAt(3) {
		t.Errorf("out-of-range removal reported success")
	}
	if c.len() != 3 {
		t.Errorf("failed removals changed the length: %v", c.len())
	}
}

func TestChainRender(t *testing.T) {
	c := &chain{}
	if c.render(formatRecord) != "" {
		t.Errorf("empty chain did not render blank: %q", c.render(formatRecord))
	}

	c.pushFront(Record{Key: 1, Value: "one"})
	c.pushFront(Record{Key: 5, Value: "five"})
	if got := c.render(formatRecord); got != "(5, five) (1, one)" {
		t.Errorf("rendered chain is %q", got)
	}
}
