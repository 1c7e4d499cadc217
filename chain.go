package chainedtable

import (
	"strings"

	I "github.com/Cattusorb/ChainedTables/interfaces"
)

// chainNode wraps one Record into a bucket's singly linked chain.
type chainNode struct {
	record Record
	next   *chainNode
}

// chain is the ordered entry sequence of one bucket. Entries are kept
// newest-first: pushFront prepends, and every scan visits entries in that
// order. No hashing or ordering logic lives here.
type chain struct {
	first  *chainNode
	length int
}

// pushFront links a fully constructed record at the head of the chain.
func (c *chain) pushFront(r Record) {
	c.first = &chainNode{record: r, next: c.first}
	c.length++
}

// findFirst returns the first node whose record matches, or nil. The cursor
// advances on every non-match, so the scan always terminates at the end of
// the chain.
func (c *chain) findFirst(match func(*Record) bool) *chainNode {
	for node := c.first; node != nil; node = node.next {
		if match(&node.record) {
			return node
		}
	}
	return nil
}

// findPosition returns the zero-based position of the first matching record,
// or -1 when the chain has no match.
func (c *chain) findPosition(match func(*Record) bool) int {
	position := 0
	for node := c.first; node != nil; node = node.next {
		if match(&node.record) {
			return position
		}
		position++
	}
	return -1
}

// removeAt unlinks the node at the given zero-based position. The removal is
// structural: the chain shrinks by one node.
func (c *chain) removeAt(position int) bool {
	if position < 0 || position >= c.length {
		return false
	}
	if position == 0 {
		c.first = c.first.next
		c.length--
		return true
	}
	prev := c.first
	for i := 1; i < position; i++ {
		prev = prev.next
	}
	prev.next = prev.next.next
	c.length--
	return true
}

// render concatenates the formatter's output for every entry in chain order.
// An empty chain renders as the empty string.
func (c *chain) render(format I.FormatFunc) string {
	if c.first == nil {
		return ""
	}
	parts := make([]string, 0, c.length)
	for node := c.first; node != nil; node = node.next {
		parts = append(parts, format(node.record.Key, node.record.Value))
	}
	return strings.Join(parts, " ")
}

func (c *chain) len() int {
	return c.length
}
