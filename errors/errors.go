package errors

import (
	"fmt"
)

var (
	NotFound             = fmt.Errorf("not found")
	NullArgument         = fmt.Errorf("required argument is nil")
	InvalidConfiguration = fmt.Errorf("invalid table configuration")
	InvalidSize          = fmt.Errorf("key/value size does not match the declared size")
	DuplicateKey         = fmt.Errorf("an entry with an equal key already exists")
	NotImplemented       = fmt.Errorf("not implemented")
)
