package tableRoutines

import (
	"encoding/binary"
	"math/rand"

	I "github.com/Cattusorb/ChainedTables/interfaces"
)

type TableFactoryFunc func(bucketCount int) I.Table

type keyStruct struct {
	Key uint32
}

// GenerateKeys returns keyAmount distinct keys of the requested type.
func GenerateKeys(keyAmount int, keyType string) []I.Key {
	resultMap := map[string]bool{}
	for len(resultMap) < keyAmount {
		newKey := make([]byte, 4)
		rand.Read(newKey)
		resultMap[string(newKey)] = true
	}

	i := 0
	result := make([]I.Key, keyAmount)
	for newKey := range resultMap {
		newKeyInt := binary.LittleEndian.Uint32([]byte(newKey))
		switch keyType {
		case "int":
			result[i] = int(newKeyInt)
		case "string":
			result[i] = newKey
		case "struct":
			result[i] = keyStruct{Key: newKeyInt}
		default:
			panic("Unknown key type: " + keyType)
		}
		i++
	}
	return result
}
