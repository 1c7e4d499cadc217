// Package chainedtable implements a generic fixed-size hash table with
// separate chaining. Callers inject the hash function, the three-way key
// comparator and the record formatter, so the table stays opaque to the key
// and value types it stores. Collisions are resolved by per-bucket linked
// chains with newest-first ordering; removal is eager and structural. There
// is no resizing and no internal locking (see Synchronized for the latter).
package chainedtable
