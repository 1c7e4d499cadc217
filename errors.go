package chainedtable

import (
	"github.com/Cattusorb/ChainedTables/errors"
)

var (
	NotFound             = errors.NotFound
	NullArgument         = errors.NullArgument
	InvalidConfiguration = errors.InvalidConfiguration
	InvalidSize          = errors.InvalidSize
	DuplicateKey         = errors.DuplicateKey
	NotImplemented       = errors.NotImplemented
)
