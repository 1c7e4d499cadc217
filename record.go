package chainedtable

import (
	I "github.com/Cattusorb/ChainedTables/interfaces"
)

// Record is one stored key/value pair. Both fields are references to
// caller-owned data: the table never copies the payloads, so the referenced
// data must stay alive for as long as the table can hand it back.
type Record struct {
	Key   I.Key
	Value interface{}
}
